package lint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/notebook-labs/nblint/internal/graph"
)

// checkUndefined reports input variables that no block defines and that are
// not builtins.
func checkUndefined(g *graph.Graph, index BlockMap) []Issue {
	defined := make(map[string]struct{})
	for _, node := range g.Nodes {
		for _, v := range node.OutputVariables {
			defined[v] = struct{}{}
		}
	}

	var issues []Issue
	for _, node := range g.Nodes {
		info, ok := index[node.ID]
		if !ok {
			continue
		}
		for _, v := range node.InputVariables {
			if isBuiltin(v) {
				continue
			}
			if _, ok := defined[v]; ok {
				continue
			}
			issues = append(issues, newIssue(
				SeverityError,
				CodeUndefinedVariable,
				fmt.Sprintf("Variable %q is used but never defined", v),
				info,
				map[string]any{"variable": v},
			))
		}
	}
	return issues
}

// checkUnused reports output variables that no block reads. Names with the
// private-by-convention underscore prefix are exempt.
func checkUnused(g *graph.Graph, index BlockMap) []Issue {
	used := make(map[string]struct{})
	for _, node := range g.Nodes {
		for _, v := range node.InputVariables {
			used[v] = struct{}{}
		}
	}

	var issues []Issue
	for _, node := range g.Nodes {
		info, ok := index[node.ID]
		if !ok {
			continue
		}
		for _, v := range node.OutputVariables {
			if strings.HasPrefix(v, "_") {
				continue
			}
			if _, ok := used[v]; ok {
				continue
			}
			issues = append(issues, newIssue(
				SeverityWarning,
				CodeUnusedVariable,
				fmt.Sprintf("Variable %q is defined but never used", v),
				info,
				map[string]any{"variable": v},
			))
		}
	}
	return issues
}

// checkShadowed reports variables redefined by a later block. Blocks are
// processed in ascending order; equal orders keep the graph's node sequence
// (document order). A block redefining its own variable is not flagged.
func checkShadowed(g *graph.Graph, index BlockMap) []Issue {
	nodes := make([]graph.Node, len(g.Nodes))
	copy(nodes, g.Nodes)
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Order < nodes[j].Order
	})

	definedBy := make(map[string]string) // variable -> block id of latest definition

	var issues []Issue
	for _, node := range nodes {
		info, attributable := index[node.ID]
		for _, v := range node.OutputVariables {
			prev, seen := definedBy[v]
			if seen && prev != node.ID && attributable {
				prevLabel := prev
				if prevInfo, ok := index[prev]; ok {
					prevLabel = prevInfo.Label
				}
				issues = append(issues, newIssue(
					SeverityWarning,
					CodeShadowedVariable,
					fmt.Sprintf("Variable %q shadows an earlier definition in %q", v, prevLabel),
					info,
					map[string]any{"variable": v, "previousBlock": prevLabel},
				))
			}
			definedBy[v] = node.ID
		}
	}
	return issues
}
