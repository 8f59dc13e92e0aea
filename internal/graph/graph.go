// Package graph builds the block dependency graph: per block, which
// variable names it reads and writes, plus directed depends-on edges
// between blocks. Python code blocks are analyzed by a Python interpreter;
// SQL and input blocks are analyzed in-process.
package graph

import (
	"context"

	"github.com/notebook-labs/nblint/internal/notebook"
)

// NodeError describes a per-block analysis failure.
type NodeError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Node carries the variable flow of a single block.
type Node struct {
	// ID is the block id.
	ID string
	// InputVariables are the names the block reads, sorted.
	InputVariables []string
	// OutputVariables are the names the block writes, sorted.
	OutputVariables []string
	// Order is the block's position among analyzed blocks.
	Order int
	// Error is set when the block's code could not be analyzed. Such nodes
	// carry empty variable sets.
	Error *NodeError
}

// Edge is a directed dependency: block From reads a variable block To writes.
type Edge struct {
	From string
	To   string
}

// Graph is the dependency graph over a list of blocks.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// Options controls graph construction.
type Options struct {
	// AcceptPartial keeps building when individual blocks fail to parse;
	// failed blocks become nodes with Error set. Without it, any parse
	// failure aborts the build.
	AcceptPartial bool
	// InterpreterPath overrides the Python interpreter used for code
	// blocks. Empty means "python3" on PATH.
	InterpreterPath string
}

// Builder constructs a dependency graph from an ordered block list.
type Builder interface {
	Build(ctx context.Context, blocks []notebook.Block, opts Options) (*Graph, error)
}
