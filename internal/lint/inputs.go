package lint

import (
	"fmt"
	"sort"
)

// hasUsableValue reports whether an input value can be used at run time:
// present, not null, and not an empty string. Any other value counts,
// including false and zero.
func hasUsableValue(value any) bool {
	if value == nil {
		return false
	}
	if s, ok := value.(string); ok && s == "" {
		return false
	}
	return true
}

// checkInputs scans interactive-input blocks and reports those whose
// variable has no usable value. Blocks without a variable name do not
// qualify for the check.
func checkInputs(blocks []ScopedBlock, index BlockMap) ([]Issue, InputSummary) {
	summary := InputSummary{NeedingValues: []string{}}

	var issues []Issue
	for _, block := range blocks {
		if !block.Type.IsInput() || block.Input == nil {
			continue
		}
		name := block.Input.VariableName
		if name == "" {
			continue
		}

		summary.Total++
		if hasUsableValue(block.Input.Value) {
			summary.WithValues++
			continue
		}
		summary.NeedingValues = append(summary.NeedingValues, name)

		info, ok := index[block.ID]
		if !ok {
			continue
		}
		issues = append(issues, newIssue(
			SeverityWarning,
			CodeMissingInput,
			fmt.Sprintf("Input variable %q has no value; supply one before running the notebook", name),
			info,
			map[string]any{"variable": name, "inputType": block.Type.InputKind()},
		))
	}

	sort.Strings(summary.NeedingValues)
	return issues, summary
}
