package output

import "github.com/notebook-labs/nblint/internal/lint"

// ListOutput is the JSON shape of the list command.
type ListOutput struct {
	Project   string         `json:"project"`
	Notebooks []NotebookInfo `json:"notebooks"`
	Summary   ListSummary    `json:"summary"`
}

// NotebookInfo describes one notebook in list output.
type NotebookInfo struct {
	ID     string      `json:"id,omitempty"`
	Name   string      `json:"name"`
	Blocks []BlockInfo `json:"blocks"`
}

// BlockInfo describes one block in list output.
type BlockInfo struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Label       string `json:"label"`
	Variable    string `json:"variable,omitempty"`
	Integration string `json:"integration,omitempty"`
}

// ListSummary holds aggregate counts for list output.
type ListSummary struct {
	TotalNotebooks int            `json:"totalNotebooks"`
	TotalBlocks    int            `json:"totalBlocks"`
	ByType         map[string]int `json:"byType"`
}

// DAGOutput is the JSON shape of the dag command.
type DAGOutput struct {
	Nodes      []DAGNode `json:"nodes"`
	Edges      []DAGEdge `json:"edges"`
	TotalNodes int       `json:"totalNodes"`
	TotalEdges int       `json:"totalEdges"`
}

// DAGNode describes one block in the dependency graph.
type DAGNode struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Inputs  []string `json:"inputVariables"`
	Outputs []string `json:"outputVariables"`
	Error   string   `json:"error,omitempty"`
}

// DAGEdge is a dependency between two blocks: From reads a variable that
// To defines.
type DAGEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// FileReport pairs a document path with its lint result.
type FileReport struct {
	Path   string       `json:"path"`
	Result *lint.Result `json:"result"`
}

// LintOutput is the JSON shape of the lint command.
type LintOutput struct {
	Success bool         `json:"success"`
	Files   []FileReport `json:"files"`
}
