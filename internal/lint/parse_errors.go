package lint

import (
	"github.com/notebook-labs/nblint/internal/graph"
)

const defaultParseErrorMessage = "Failed to parse block code"

// surfaceParseErrors republishes per-node parse failures as issues.
func surfaceParseErrors(g *graph.Graph, index BlockMap) []Issue {
	var issues []Issue
	for _, node := range g.Nodes {
		if node.Error == nil {
			continue
		}
		info, ok := index[node.ID]
		if !ok {
			continue
		}
		message := node.Error.Message
		if message == "" {
			message = defaultParseErrorMessage
		}
		issues = append(issues, newIssue(
			SeverityError,
			CodeParseError,
			message,
			info,
			map[string]any{"errorType": node.Error.Type},
		))
	}
	return issues
}
