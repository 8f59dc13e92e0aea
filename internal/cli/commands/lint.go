package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/notebook-labs/nblint/internal/cli/output"
	"github.com/notebook-labs/nblint/internal/envstore"
	"github.com/notebook-labs/nblint/internal/graph"
	"github.com/notebook-labs/nblint/internal/lint"
	"github.com/notebook-labs/nblint/internal/notebook"
)

// ErrIssuesFound is returned when linting ran to completion but the
// documents did not pass. main maps it to a distinct exit code so scripts
// can tell "lint failed" from "nblint broke".
var ErrIssuesFound = errors.New("lint issues found")

// LintOptions holds options for the lint command.
type LintOptions struct {
	Notebook    string // Restrict analysis to one notebook by name
	Format      string // Output format override: text, markdown, json
	Interpreter string // Python interpreter for code analysis
	EnvFile     string // Dotenv file layered under the process environment
	Strict      bool   // Treat warnings as failures
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint <file>...",
		Short: "Analyze notebook documents for issues",
		Long: `Analyze notebook documents for correctness and hygiene issues.

Checks variable flow between blocks (undefined, unused, and shadowed
variables), circular dependencies, code that fails to parse, SQL blocks
whose integration has no environment binding, and input blocks that still
need a value.

The command exits 0 when all documents pass, 1 when issues of error
severity were found, and 2 when analysis itself failed.`,
		Example: `  # Lint a document
  nblint lint project.yaml

  # Lint several documents at once
  nblint lint staging.yaml production.yaml

  # Only analyze one notebook inside the document
  nblint lint project.yaml --notebook "Daily Report"

  # Machine-readable output
  nblint lint project.yaml --format json

  # Fail on warnings too
  nblint lint project.yaml --strict`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.Notebook, "notebook", "", "Restrict analysis to the named notebook")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringVar(&opts.Interpreter, "interpreter", "", "Python interpreter used for code analysis")
	cmd.Flags().StringVar(&opts.EnvFile, "env-file", "", "Dotenv file consulted for integration bindings")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Treat warnings as failures")

	return cmd
}

func runLint(cmd *cobra.Command, opts *LintOptions, paths []string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	logger := cmdCtx.Logger

	r := cmdCtx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	// Command flags override config file / env settings.
	notebookFilter := cfg.Notebook
	if opts.Notebook != "" {
		notebookFilter = opts.Notebook
	}
	interpreter := cfg.Interpreter
	if opts.Interpreter != "" {
		interpreter = opts.Interpreter
	}
	envFile := cfg.EnvFile
	if opts.EnvFile != "" {
		envFile = opts.EnvFile
	}
	strict := opts.Strict || cfg.Strict

	env := envstore.OS()
	if envFile != "" {
		layered, err := envstore.WithDotenv(env, envFile)
		if err != nil {
			return fmt.Errorf("failed to load env file: %w", err)
		}
		env = layered
	}

	linter := lint.New(graph.NewPythonBuilder(logger), env, logger)

	reports := make([]output.FileReport, len(paths))
	g, ctx := errgroup.WithContext(cmd.Context())
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			project, err := notebook.Load(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			result, err := linter.Run(ctx, project, lint.Options{
				Notebook:        notebookFilter,
				InterpreterPath: interpreter,
			})
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = output.FileReport{Path: path, Result: result}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := false
	for _, rep := range reports {
		if !rep.Result.Success || (strict && rep.Result.IssueCount.Warnings > 0) {
			failed = true
		}
	}

	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(output.LintOutput{Success: !failed, Files: reports}); err != nil {
			return err
		}
	} else {
		renderLintReports(r, reports)
	}

	if failed {
		return ErrIssuesFound
	}
	return nil
}

// renderLintReports renders text or markdown output for all files.
func renderLintReports(r *output.Renderer, reports []output.FileReport) {
	multi := len(reports) > 1
	for _, rep := range reports {
		if multi {
			r.Header(1, rep.Path)
		}
		renderResult(r, rep.Result)
		if multi {
			r.Println("")
		}
	}
}

func renderResult(r *output.Renderer, res *lint.Result) {
	styles := r.Styles()

	if len(res.Issues) == 0 {
		r.Success("No issues found")
	} else {
		// Group issues by notebook, preserving first-seen order.
		var order []string
		grouped := make(map[string][]lint.Issue)
		for _, issue := range res.Issues {
			if _, seen := grouped[issue.NotebookName]; !seen {
				order = append(order, issue.NotebookName)
			}
			grouped[issue.NotebookName] = append(grouped[issue.NotebookName], issue)
		}

		for _, name := range order {
			if name != "" {
				r.Println(styles.Bold.Render(name))
			}
			for _, issue := range grouped[name] {
				marker := styles.Warning.Render("!")
				if issue.Severity == lint.SeverityError {
					marker = styles.Error.Render("✗")
				}
				r.Printf("  %s %s  %s  %s\n",
					marker,
					severityCell(styles, issue.Severity),
					styles.BlockLabel.Render(issue.BlockLabel),
					issue.Message,
				)
				r.Printf("      %s\n", styles.Muted.Render(issue.Code))
			}
			r.Println("")
		}
	}

	if len(res.Integrations.Configured) > 0 || len(res.Integrations.Missing) > 0 {
		r.Println(styles.Bold.Render("Integrations"))
		if len(res.Integrations.Configured) > 0 {
			r.Printf("  configured: %s\n", strings.Join(res.Integrations.Configured, ", "))
		}
		if len(res.Integrations.Missing) > 0 {
			r.Printf("  missing:    %s\n", styles.Error.Render(strings.Join(res.Integrations.Missing, ", ")))
		}
		r.Println("")
	}

	if res.Inputs.Total > 0 {
		r.Println(styles.Bold.Render("Inputs"))
		r.Printf("  %d of %d have values\n", res.Inputs.WithValues, res.Inputs.Total)
		if len(res.Inputs.NeedingValues) > 0 {
			r.Printf("  needing values: %s\n", strings.Join(res.Inputs.NeedingValues, ", "))
		}
		r.Println("")
	}

	summary := summaryLine(res.IssueCount)
	if res.Success {
		r.Println(summary)
	} else {
		r.Println(styles.Error.Render(summary))
	}
}

func severityCell(styles output.Styles, sev lint.Severity) string {
	switch sev {
	case lint.SeverityError:
		return styles.Error.Render("error  ")
	case lint.SeverityWarning:
		return styles.Warning.Render("warning")
	default:
		return styles.Muted.Render("unknown")
	}
}

func summaryLine(count lint.IssueCount) string {
	if count.Total == 0 {
		return "Summary: 0 issues"
	}
	parts := []string{fmt.Sprintf("%d issues", count.Total)}
	if count.Errors > 0 {
		parts = append(parts, fmt.Sprintf("%d errors", count.Errors))
	}
	if count.Warnings > 0 {
		parts = append(parts, fmt.Sprintf("%d warnings", count.Warnings))
	}
	return "Summary: " + strings.Join(parts, ", ")
}
