package lint

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/notebook-labs/nblint/internal/envstore"
	"github.com/notebook-labs/nblint/internal/graph"
	"github.com/notebook-labs/nblint/internal/notebook"
)

// Options controls a single lint run.
type Options struct {
	// Notebook restricts analysis to the notebook with this exact name.
	// Empty means all notebooks.
	Notebook string
	// InterpreterPath is passed through to the graph builder.
	InterpreterPath string
}

// Linter runs the analysis passes over a notebook project. All state is
// per-run; a Linter is safe to reuse across documents.
type Linter struct {
	builder graph.Builder
	env     envstore.Store
	logger  *slog.Logger
}

// New creates a Linter. The env store is injected rather than read from the
// process so callers and tests control which bindings are visible. A nil
// logger disables logging.
func New(builder graph.Builder, env envstore.Store, logger *slog.Logger) *Linter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Linter{builder: builder, env: env, logger: logger}
}

// Run lints the project and returns the aggregated result. The only error
// path is the graph builder failing outright; everything the engine itself
// detects becomes an issue in the result.
func (l *Linter) Run(ctx context.Context, project *notebook.Project, opts Options) (*Result, error) {
	blocks, index := indexBlocks(project.Notebooks, opts.Notebook)
	l.logger.Debug("lint run started", "blocks", len(blocks), "notebook", opts.Notebook)

	integrationIssues, integrations := checkIntegrations(blocks, index, l.env)
	inputIssues, inputs := checkInputs(blocks, index)

	issues := make([]Issue, 0, len(integrationIssues)+len(inputIssues))
	issues = append(issues, integrationIssues...)
	issues = append(issues, inputIssues...)

	if len(blocks) > 0 {
		raw := make([]notebook.Block, len(blocks))
		for i, b := range blocks {
			raw[i] = b.Block
		}

		g, err := l.builder.Build(ctx, raw, graph.Options{
			AcceptPartial:   true,
			InterpreterPath: opts.InterpreterPath,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build dependency graph: %w", err)
		}

		issues = append(issues, checkUndefined(g, index)...)
		issues = append(issues, checkCycles(g, index)...)
		issues = append(issues, checkUnused(g, index)...)
		issues = append(issues, checkShadowed(g, index)...)
		issues = append(issues, surfaceParseErrors(g, index)...)
	}

	result := aggregate(issues, integrations, inputs)
	l.logger.Debug("lint run finished",
		"errors", result.IssueCount.Errors,
		"warnings", result.IssueCount.Warnings)
	return result, nil
}
