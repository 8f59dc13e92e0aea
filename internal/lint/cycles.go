package lint

import (
	"github.com/notebook-labs/nblint/internal/graph"
)

const circularDependencyMessage = "Block is part of a circular dependency"

// checkCycles reports every block that participates in a dependency cycle.
// The traversal is an iterative depth-first search with an explicit frame
// stack, so arbitrarily deep graphs cannot exhaust the call stack. Each
// block appears at most once regardless of how many cycles pass through it.
func checkCycles(g *graph.Graph, index BlockMap) []Issue {
	adjacency := make(map[string][]string)
	for _, e := range g.Edges {
		adjacency[e.From] = append(adjacency[e.From], e.To)
	}

	visited := make(map[string]struct{})
	inCycle := make(map[string]struct{})

	type frame struct {
		id   string
		next int
	}

	for _, root := range g.Nodes {
		if _, ok := visited[root.ID]; ok {
			continue
		}

		stack := []frame{{id: root.ID}}
		onStack := map[string]struct{}{root.ID: {}}
		visited[root.ID] = struct{}{}
		found := false

		for len(stack) > 0 && !found {
			top := &stack[len(stack)-1]
			neighbors := adjacency[top.id]

			if top.next >= len(neighbors) {
				delete(onStack, top.id)
				stack = stack[:len(stack)-1]
				continue
			}

			neighbor := neighbors[top.next]
			top.next++

			if _, seen := visited[neighbor]; !seen {
				visited[neighbor] = struct{}{}
				onStack[neighbor] = struct{}{}
				stack = append(stack, frame{id: neighbor})
				continue
			}

			if _, active := onStack[neighbor]; active {
				// Cycle found: everything from the neighbor's position on
				// the current path through the top of the stack is in it.
				for i := len(stack) - 1; i >= 0; i-- {
					inCycle[stack[i].id] = struct{}{}
					if stack[i].id == neighbor {
						break
					}
				}
				found = true
			}
		}
	}

	var issues []Issue
	for _, node := range g.Nodes {
		if _, ok := inCycle[node.ID]; !ok {
			continue
		}
		info, ok := index[node.ID]
		if !ok {
			continue
		}
		issues = append(issues, newIssue(
			SeverityError,
			CodeCircularDependency,
			circularDependencyMessage,
			info,
			nil,
		))
	}
	return issues
}
