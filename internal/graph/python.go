package graph

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultInterpreter is used when no interpreter override is given.
const DefaultInterpreter = "python3"

//go:embed analyzer.py
var analyzerScript string

// analyzerRequest is one code block sent to the interpreter.
type analyzerRequest struct {
	ID     string `json:"id"`
	Source string `json:"source"`
}

// analyzerResult is the per-block analysis returned by the interpreter.
type analyzerResult struct {
	ID              string     `json:"id"`
	InputVariables  []string   `json:"inputVariables"`
	OutputVariables []string   `json:"outputVariables"`
	Error           *NodeError `json:"error,omitempty"`
}

// runAnalyzer executes the embedded analyzer script against the given code
// blocks. A failure to start or run the interpreter is a hard error; per-block
// parse failures come back inside the results.
func runAnalyzer(ctx context.Context, interpreter string, requests []analyzerRequest) ([]analyzerResult, error) {
	if interpreter == "" {
		interpreter = DefaultInterpreter
	}

	input, err := json.Marshal(requests)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analyzer input: %w", err)
	}

	cmd := exec.CommandContext(ctx, interpreter, "-c", analyzerScript)
	cmd.Stdin = bytes.NewReader(input)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("interpreter %s failed: %s", interpreter, msg)
	}

	var results []analyzerResult
	if err := json.Unmarshal(stdout.Bytes(), &results); err != nil {
		return nil, fmt.Errorf("failed to decode analyzer output: %w", err)
	}
	return results, nil
}
