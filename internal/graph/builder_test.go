package graph

import (
	"context"
	"os/exec"
	"testing"

	"github.com/notebook-labs/nblint/internal/notebook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requirePython(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath(DefaultInterpreter); err != nil {
		t.Skipf("%s not available", DefaultInterpreter)
	}
}

func findNode(t *testing.T, g *Graph, id string) Node {
	t.Helper()
	for _, n := range g.Nodes {
		if n.ID == id {
			return n
		}
	}
	t.Fatalf("node %s not found", id)
	return Node{}
}

func TestBuild_SQLAndInputBlocks(t *testing.T) {
	blocks := []notebook.Block{
		{
			ID:    "input-1",
			Type:  notebook.BlockInputText,
			Input: &notebook.InputMetadata{VariableName: "region", Value: "emea"},
		},
		{
			ID:      "sql-1",
			Type:    notebook.BlockSQL,
			Content: "select * from orders where region = {{ region }}",
			SQL:     &notebook.SQLMetadata{VariableName: "orders_df", IntegrationID: "warehouse"},
		},
		{
			ID:      "md-1",
			Type:    notebook.BlockMarkdown,
			Content: "# notes",
		},
	}

	g, err := NewPythonBuilder(nil).Build(context.Background(), blocks, Options{AcceptPartial: true})
	require.NoError(t, err)

	// Markdown contributes no node.
	require.Len(t, g.Nodes, 2)

	input := findNode(t, g, "input-1")
	assert.Equal(t, []string{"region"}, input.OutputVariables)
	assert.Empty(t, input.InputVariables)

	sql := findNode(t, g, "sql-1")
	assert.Equal(t, []string{"orders_df"}, sql.OutputVariables)
	assert.Contains(t, sql.InputVariables, "region")
	assert.Contains(t, sql.InputVariables, "orders")

	// The SQL block depends on the input block.
	assert.Contains(t, g.Edges, Edge{From: "sql-1", To: "input-1"})
}

func TestBuild_CodeBlocks(t *testing.T) {
	requirePython(t)

	blocks := []notebook.Block{
		{ID: "a", Type: notebook.BlockCode, Content: "import pandas as pd\ndf = pd.DataFrame()"},
		{ID: "b", Type: notebook.BlockCode, Content: "result = df.describe()\nprint(result)"},
	}

	g, err := NewPythonBuilder(nil).Build(context.Background(), blocks, Options{AcceptPartial: true})
	require.NoError(t, err)
	require.Len(t, g.Nodes, 2)

	a := findNode(t, g, "a")
	assert.Contains(t, a.OutputVariables, "df")
	assert.Contains(t, a.OutputVariables, "pd")

	b := findNode(t, g, "b")
	assert.Contains(t, b.InputVariables, "df")
	assert.Contains(t, b.OutputVariables, "result")
	assert.NotContains(t, b.InputVariables, "print", "builtins are not inputs")

	assert.Contains(t, g.Edges, Edge{From: "b", To: "a"})
}

func TestBuild_ParseErrorPartial(t *testing.T) {
	requirePython(t)

	blocks := []notebook.Block{
		{ID: "ok", Type: notebook.BlockCode, Content: "x = 1"},
		{ID: "bad", Type: notebook.BlockCode, Content: "def broken(:"},
	}

	g, err := NewPythonBuilder(nil).Build(context.Background(), blocks, Options{AcceptPartial: true})
	require.NoError(t, err)

	bad := findNode(t, g, "bad")
	require.NotNil(t, bad.Error)
	assert.Equal(t, "SyntaxError", bad.Error.Type)
	assert.Empty(t, bad.InputVariables)
	assert.Empty(t, bad.OutputVariables)

	ok := findNode(t, g, "ok")
	assert.Nil(t, ok.Error)
	assert.Equal(t, []string{"x"}, ok.OutputVariables)
}

func TestBuild_ParseErrorStrict(t *testing.T) {
	requirePython(t)

	blocks := []notebook.Block{
		{ID: "bad", Type: notebook.BlockCode, Content: "def broken(:"},
	}

	_, err := NewPythonBuilder(nil).Build(context.Background(), blocks, Options{AcceptPartial: false})
	assert.Error(t, err)
}

func TestBuild_InterpreterMissing(t *testing.T) {
	blocks := []notebook.Block{
		{ID: "a", Type: notebook.BlockCode, Content: "x = 1"},
	}

	_, err := NewPythonBuilder(nil).Build(context.Background(), blocks, Options{
		AcceptPartial:   true,
		InterpreterPath: "/nonexistent/python",
	})
	assert.Error(t, err, "interpreter start failure is a hard error")
}

func TestBuild_Empty(t *testing.T) {
	g, err := NewPythonBuilder(nil).Build(context.Background(), nil, Options{AcceptPartial: true})
	require.NoError(t, err)
	assert.Empty(t, g.Nodes)
	assert.Empty(t, g.Edges)
}

func TestBuildEdges_EarliestWriterWins(t *testing.T) {
	nodes := []Node{
		{ID: "w1", Order: 0, OutputVariables: []string{"df"}},
		{ID: "w2", Order: 1, OutputVariables: []string{"df"}},
		{ID: "r", Order: 2, InputVariables: []string{"df"}},
	}

	edges := buildEdges(nodes)
	assert.Equal(t, []Edge{{From: "r", To: "w1"}}, edges)
}

func TestBuildEdges_NoSelfEdge(t *testing.T) {
	nodes := []Node{
		{ID: "a", Order: 0, InputVariables: []string{"x"}, OutputVariables: []string{"x"}},
	}
	assert.Empty(t, buildEdges(nodes))
}
