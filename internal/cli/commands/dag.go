package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/notebook-labs/nblint/internal/cli/output"
	"github.com/notebook-labs/nblint/internal/graph"
	"github.com/notebook-labs/nblint/internal/notebook"
)

// NewDAGCommand creates the dag command.
func NewDAGCommand() *cobra.Command {
	var notebookFilter string
	cmd := &cobra.Command{
		Use:   "dag <file>",
		Short: "Show the block dependency graph",
		Long: `Display the dependency graph between blocks of a document.

Each block is shown with the variables it reads and defines, and an edge
for every variable flowing from one block into another.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format (agent-friendly)`,
		Example: `  # Show the dependency graph
  nblint dag project.yaml

  # Output as JSON
  nblint dag project.yaml --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDAG(cmd, args[0], notebookFilter)
		},
	}

	cmd.Flags().StringVar(&notebookFilter, "notebook", "", "Restrict the graph to the named notebook")

	return cmd
}

func runDAG(cmd *cobra.Command, path, notebookFilter string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	project, err := notebook.Load(path)
	if err != nil {
		return err
	}

	var blocks []notebook.Block
	labels := make(map[string]string)
	for _, nb := range project.Notebooks {
		if notebookFilter != "" && nb.Name != notebookFilter {
			continue
		}
		for _, b := range nb.Blocks {
			blocks = append(blocks, b)
			labels[b.ID] = b.Label()
		}
	}

	builder := graph.NewPythonBuilder(cmdCtx.Logger)
	g, err := builder.Build(cmd.Context(), blocks, graph.Options{
		AcceptPartial:   true,
		InterpreterPath: cfg.Interpreter,
	})
	if err != nil {
		return fmt.Errorf("failed to build dependency graph: %w", err)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return dagJSON(r, g, labels)
	case output.ModeMarkdown:
		return dagMarkdown(r, g, labels)
	default:
		return dagText(r, g, labels)
	}
}

// dagText outputs the graph in styled text format.
func dagText(r *output.Renderer, g *graph.Graph, labels map[string]string) error {
	styles := r.Styles()

	r.Header(1, "Dependency Graph")

	for _, node := range g.Nodes {
		r.Println(styles.BlockLabel.Render(labels[node.ID]))
		if node.Error != nil {
			r.Printf("  %s %s\n", styles.Error.Render("parse error:"), node.Error.Message)
		}
		if len(node.InputVariables) > 0 {
			r.Printf("  %s %s\n", styles.Muted.Render("reads:  "), strings.Join(node.InputVariables, ", "))
		}
		if len(node.OutputVariables) > 0 {
			r.Printf("  %s %s\n", styles.Muted.Render("defines:"), strings.Join(node.OutputVariables, ", "))
		}
	}
	r.Println("")

	r.Println(styles.Muted.Render(fmt.Sprintf("Total: %d blocks, %d dependencies", len(g.Nodes), len(g.Edges))))

	return nil
}

// dagMarkdown outputs the graph in markdown format.
func dagMarkdown(r *output.Renderer, g *graph.Graph, labels map[string]string) error {
	r.Println(output.FormatHeader(1, "Dependency Graph"))
	r.Println("")

	for _, node := range g.Nodes {
		r.Printf("- %s\n", labels[node.ID])
		if node.Error != nil {
			r.Printf("  - parse error: %s\n", node.Error.Message)
		}
		if len(node.InputVariables) > 0 {
			r.Printf("  - reads: %s\n", strings.Join(node.InputVariables, ", "))
		}
		if len(node.OutputVariables) > 0 {
			r.Printf("  - defines: %s\n", strings.Join(node.OutputVariables, ", "))
		}
	}
	r.Println("")

	r.Println(output.FormatHeader(2, "Summary"))
	r.Println(output.FormatKeyValue("Total Blocks", fmt.Sprintf("%d", len(g.Nodes))))
	r.Println(output.FormatKeyValue("Total Dependencies", fmt.Sprintf("%d", len(g.Edges))))

	return nil
}

// dagJSON outputs the graph in JSON format.
func dagJSON(r *output.Renderer, g *graph.Graph, labels map[string]string) error {
	dagOutput := output.DAGOutput{
		Nodes:      make([]output.DAGNode, 0, len(g.Nodes)),
		Edges:      make([]output.DAGEdge, 0, len(g.Edges)),
		TotalNodes: len(g.Nodes),
		TotalEdges: len(g.Edges),
	}

	for _, node := range g.Nodes {
		n := output.DAGNode{
			ID:      node.ID,
			Label:   labels[node.ID],
			Inputs:  node.InputVariables,
			Outputs: node.OutputVariables,
		}
		if node.Error != nil {
			n.Error = node.Error.Message
		}
		dagOutput.Nodes = append(dagOutput.Nodes, n)
	}
	for _, e := range g.Edges {
		dagOutput.Edges = append(dagOutput.Edges, output.DAGEdge{From: e.From, To: e.To})
	}

	return r.JSON(dagOutput)
}
