package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/notebook-labs/nblint/internal/cli/output"
	"github.com/notebook-labs/nblint/internal/notebook"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <file>",
		Short: "List the notebooks and blocks in a document",
		Long: `List every notebook in a document with its blocks, their types,
and the variables they define.

Output adapts to environment:
  - Terminal: Styled table output
  - Piped/Scripted: Markdown format (agent-friendly)

Use --output to override: auto, text, markdown, json`,
		Example: `  # List notebooks and blocks
  nblint list project.yaml

  # List as JSON
  nblint list project.yaml --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args[0])
		},
	}

	return cmd
}

func runList(cmd *cobra.Command, path string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	project, err := notebook.Load(path)
	if err != nil {
		return err
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return listJSON(r, project)
	case output.ModeMarkdown:
		return listMarkdown(r, project)
	default:
		return listText(r, project)
	}
}

// blockVariable returns the variable a block defines, if any.
func blockVariable(b notebook.Block) string {
	switch {
	case b.SQL != nil:
		return b.SQL.VariableName
	case b.Input != nil:
		return b.Input.VariableName
	}
	return ""
}

func blockIntegration(b notebook.Block) string {
	if b.SQL != nil {
		return b.SQL.IntegrationID
	}
	return ""
}

// listText outputs notebooks as styled tables.
func listText(r *output.Renderer, project *notebook.Project) error {
	styles := r.Styles()

	title := project.Name
	if title == "" {
		title = "Project"
	}
	r.Header(1, fmt.Sprintf("%s (%d blocks)", title, project.BlockCount()))

	for _, nb := range project.Notebooks {
		r.Println(styles.Header2.Render(nb.Name))

		t := table.NewWriter()
		t.SetOutputMirror(r.Writer())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"#", "Type", "Label", "Variable", "Integration"})
		for i, b := range nb.Blocks {
			t.AppendRow(table.Row{i + 1, string(b.Type), b.Label(), blockVariable(b), blockIntegration(b)})
		}
		t.Render()
		r.Println("")
	}

	return nil
}

// listMarkdown outputs notebooks in markdown format.
func listMarkdown(r *output.Renderer, project *notebook.Project) error {
	title := project.Name
	if title == "" {
		title = "Project"
	}
	r.Println(output.FormatHeader(1, fmt.Sprintf("%s (%d blocks)", title, project.BlockCount())))
	r.Println("")

	for _, nb := range project.Notebooks {
		r.Println(output.FormatHeader(2, nb.Name))

		for _, b := range nb.Blocks {
			r.Printf("- %s\n", b.Label())
			r.Println(output.FormatKeyValue("Type", string(b.Type)))
			if v := blockVariable(b); v != "" {
				r.Println(output.FormatKeyValue("Variable", v))
			}
			if id := blockIntegration(b); id != "" {
				r.Println(output.FormatKeyValue("Integration", id))
			}
		}
		r.Println("")
	}

	return nil
}

// listJSON outputs notebooks in JSON format.
func listJSON(r *output.Renderer, project *notebook.Project) error {
	listOutput := output.ListOutput{
		Project:   project.Name,
		Notebooks: make([]output.NotebookInfo, 0, len(project.Notebooks)),
		Summary: output.ListSummary{
			TotalNotebooks: len(project.Notebooks),
			TotalBlocks:    project.BlockCount(),
			ByType:         make(map[string]int),
		},
	}

	for _, nb := range project.Notebooks {
		info := output.NotebookInfo{
			ID:     nb.ID,
			Name:   nb.Name,
			Blocks: make([]output.BlockInfo, 0, len(nb.Blocks)),
		}
		for _, b := range nb.Blocks {
			listOutput.Summary.ByType[string(b.Type)]++
			info.Blocks = append(info.Blocks, output.BlockInfo{
				ID:          b.ID,
				Type:        string(b.Type),
				Label:       b.Label(),
				Variable:    blockVariable(b),
				Integration: blockIntegration(b),
			})
		}
		listOutput.Notebooks = append(listOutput.Notebooks, info)
	}

	return r.JSON(listOutput)
}
