package lint

import (
	"testing"

	"github.com/notebook-labs/nblint/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurfaceParseErrors(t *testing.T) {
	g := &graph.Graph{
		Nodes: []graph.Node{
			{ID: "ok"},
			{ID: "bad", Error: &graph.NodeError{Message: "invalid syntax (line 2)", Type: "SyntaxError"}},
		},
	}

	issues := surfaceParseErrors(g, testIndex("ok", "bad"))
	require.Len(t, issues, 1)

	issue := issues[0]
	assert.Equal(t, SeverityError, issue.Severity)
	assert.Equal(t, CodeParseError, issue.Code)
	assert.Equal(t, "bad", issue.BlockID)
	assert.Equal(t, "invalid syntax (line 2)", issue.Message)
	assert.Equal(t, "SyntaxError", issue.Details["errorType"])
}

func TestSurfaceParseErrors_DefaultMessage(t *testing.T) {
	g := &graph.Graph{
		Nodes: []graph.Node{
			{ID: "bad", Error: &graph.NodeError{Type: "SyntaxError"}},
		},
	}

	issues := surfaceParseErrors(g, testIndex("bad"))
	require.Len(t, issues, 1)
	assert.Equal(t, defaultParseErrorMessage, issues[0].Message)
}
