package graph

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/notebook-labs/nblint/internal/notebook"
)

// PythonBuilder builds dependency graphs, delegating code-block analysis to
// a Python interpreter.
type PythonBuilder struct {
	logger *slog.Logger
}

// NewPythonBuilder creates a builder. A nil logger disables logging.
func NewPythonBuilder(logger *slog.Logger) *PythonBuilder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &PythonBuilder{logger: logger}
}

// Build implements Builder. Markdown and other non-executable blocks do not
// contribute nodes. Code blocks are analyzed in a single interpreter call;
// SQL and input blocks are analyzed in-process.
func (b *PythonBuilder) Build(ctx context.Context, blocks []notebook.Block, opts Options) (*Graph, error) {
	g := &Graph{}
	codeNodes := make(map[string]int) // block id -> index into g.Nodes
	var requests []analyzerRequest

	for _, block := range blocks {
		switch {
		case block.Type == notebook.BlockCode:
			codeNodes[block.ID] = len(g.Nodes)
			g.Nodes = append(g.Nodes, Node{ID: block.ID, Order: len(g.Nodes)})
			requests = append(requests, analyzerRequest{ID: block.ID, Source: block.Content})
		case block.Type == notebook.BlockSQL:
			node := Node{ID: block.ID, Order: len(g.Nodes)}
			node.InputVariables = extractSQLReferences(block.Content)
			if block.SQL != nil && block.SQL.VariableName != "" {
				node.OutputVariables = []string{block.SQL.VariableName}
			}
			g.Nodes = append(g.Nodes, node)
		case block.Type.IsInput():
			node := Node{ID: block.ID, Order: len(g.Nodes)}
			if block.Input != nil && block.Input.VariableName != "" {
				node.OutputVariables = []string{block.Input.VariableName}
			}
			g.Nodes = append(g.Nodes, node)
		}
	}

	if len(requests) > 0 {
		results, err := runAnalyzer(ctx, opts.InterpreterPath, requests)
		if err != nil {
			return nil, fmt.Errorf("failed to analyze code blocks: %w", err)
		}
		for _, res := range results {
			idx, ok := codeNodes[res.ID]
			if !ok {
				continue
			}
			if res.Error != nil {
				if !opts.AcceptPartial {
					return nil, fmt.Errorf("block %s: %s", res.ID, res.Error.Message)
				}
				b.logger.Debug("block failed to parse", "block", res.ID, "error", res.Error.Message)
				g.Nodes[idx].Error = res.Error
				continue
			}
			g.Nodes[idx].InputVariables = res.InputVariables
			g.Nodes[idx].OutputVariables = res.OutputVariables
		}
	}

	for i := range g.Nodes {
		sort.Strings(g.Nodes[i].InputVariables)
		sort.Strings(g.Nodes[i].OutputVariables)
	}

	g.Edges = buildEdges(g.Nodes)

	b.logger.Debug("dependency graph built", "nodes", len(g.Nodes), "edges", len(g.Edges))
	return g, nil
}

// buildEdges links each reader to the earliest writer of each variable it
// reads. Self-references do not produce edges.
func buildEdges(nodes []Node) []Edge {
	type writer struct {
		id    string
		order int
	}
	writers := make(map[string]writer)
	for _, n := range nodes {
		for _, v := range n.OutputVariables {
			if w, ok := writers[v]; !ok || n.Order < w.order {
				writers[v] = writer{id: n.ID, order: n.Order}
			}
		}
	}

	var edges []Edge
	seen := make(map[Edge]struct{})
	for _, n := range nodes {
		for _, v := range n.InputVariables {
			w, ok := writers[v]
			if !ok || w.id == n.ID {
				continue
			}
			e := Edge{From: n.ID, To: w.id}
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}
