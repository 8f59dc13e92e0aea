// Package lint is the static-analysis engine for notebook documents. It
// inspects the data flow between blocks and reports correctness and hygiene
// issues: undefined, unused, and shadowed variables, circular dependencies,
// parse failures, unconfigured integrations, and unfilled inputs.
//
// Findings are data, never errors: a malformed block yields issues about
// that block without aborting analysis of the rest of the document. The
// only hard failure is the dependency-graph builder refusing to run.
package lint

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity indicates the importance of an issue.
type Severity int

// Severity levels for issues.
const (
	// SeverityError indicates an issue that makes the document incorrect.
	SeverityError Severity = iota
	// SeverityWarning indicates a hygiene issue worth reviewing.
	SeverityWarning
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the severity as its string form.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a severity from its string form.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch strings.ToLower(v) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	default:
		return fmt.Errorf("unknown severity %q", v)
	}
	return nil
}

// Issue codes. A code is a stable diagnostic identifier; codes are never
// reused for a different meaning.
const (
	CodeUndefinedVariable  = "undefined-variable"
	CodeUnusedVariable     = "unused-variable"
	CodeShadowedVariable   = "shadowed-variable"
	CodeCircularDependency = "circular-dependency"
	CodeParseError         = "parse-error"
	CodeMissingIntegration = "missing-integration"
	CodeMissingInput       = "missing-input"
)

// Issue is one diagnostic finding attributed to a block.
type Issue struct {
	Severity     Severity       `json:"severity"`
	Code         string         `json:"code"`
	Message      string         `json:"message"`
	BlockID      string         `json:"blockId"`
	BlockLabel   string         `json:"blockLabel"`
	NotebookName string         `json:"notebookName"`
	Details      map[string]any `json:"details,omitempty"`
}

// newIssue builds an issue attributed to the given block.
func newIssue(severity Severity, code, message string, info BlockInfo, details map[string]any) Issue {
	return Issue{
		Severity:     severity,
		Code:         code,
		Message:      message,
		BlockID:      info.ID,
		BlockLabel:   info.Label,
		NotebookName: info.NotebookName,
		Details:      details,
	}
}
