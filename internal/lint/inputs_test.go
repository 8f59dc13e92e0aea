package lint

import (
	"testing"

	"github.com/notebook-labs/nblint/internal/notebook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inputBlock(id string, blockType notebook.BlockType, variableName string, value any) ScopedBlock {
	return ScopedBlock{
		Block: notebook.Block{
			ID:    id,
			Type:  blockType,
			Input: &notebook.InputMetadata{VariableName: variableName, Value: value},
		},
		NotebookName: "Main",
	}
}

func TestCheckInputs_EmptyStringNeedsValue(t *testing.T) {
	blocks := []ScopedBlock{
		inputBlock("i1", notebook.BlockInputText, "threshold", ""),
	}

	issues, summary := checkInputs(blocks, testIndex("i1"))

	require.Len(t, issues, 1)
	issue := issues[0]
	assert.Equal(t, SeverityWarning, issue.Severity)
	assert.Equal(t, CodeMissingInput, issue.Code)
	assert.Equal(t, "threshold", issue.Details["variable"])
	assert.Equal(t, "text", issue.Details["inputType"])

	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 0, summary.WithValues)
	assert.Equal(t, []string{"threshold"}, summary.NeedingValues)
}

func TestCheckInputs_UsableValues(t *testing.T) {
	blocks := []ScopedBlock{
		inputBlock("i1", notebook.BlockInputText, "name", "alice"),
		inputBlock("i2", notebook.BlockInputCheckbox, "enabled", false),
		inputBlock("i3", notebook.BlockInputSlider, "ratio", 0),
	}

	issues, summary := checkInputs(blocks, testIndex("i1", "i2", "i3"))

	assert.Empty(t, issues, "false and zero are usable values")
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 3, summary.WithValues)
	assert.Empty(t, summary.NeedingValues)
}

func TestCheckInputs_NilValueNeedsValue(t *testing.T) {
	blocks := []ScopedBlock{
		inputBlock("i1", notebook.BlockInputDate, "start_date", nil),
	}

	issues, summary := checkInputs(blocks, testIndex("i1"))

	assert.Len(t, issues, 1)
	assert.Equal(t, []string{"start_date"}, summary.NeedingValues)
}

func TestCheckInputs_NoVariableNameSkipped(t *testing.T) {
	blocks := []ScopedBlock{
		inputBlock("i1", notebook.BlockInputText, "", "value"),
	}

	issues, summary := checkInputs(blocks, testIndex("i1"))

	assert.Empty(t, issues)
	assert.Equal(t, 0, summary.Total)
}

func TestCheckInputs_NeedingValuesSorted(t *testing.T) {
	blocks := []ScopedBlock{
		inputBlock("i1", notebook.BlockInputText, "zeta", nil),
		inputBlock("i2", notebook.BlockInputText, "alpha", nil),
		inputBlock("i3", notebook.BlockInputText, "mid", "ok"),
	}

	_, summary := checkInputs(blocks, testIndex("i1", "i2", "i3"))

	assert.Equal(t, []string{"alpha", "zeta"}, summary.NeedingValues)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.WithValues)
}

func TestCheckInputs_NonInputBlocksIgnored(t *testing.T) {
	blocks := []ScopedBlock{
		{Block: notebook.Block{ID: "c1", Type: notebook.BlockCode}, NotebookName: "Main"},
		{Block: notebook.Block{ID: "s1", Type: notebook.BlockSQL, SQL: &notebook.SQLMetadata{}}, NotebookName: "Main"},
	}

	issues, summary := checkInputs(blocks, testIndex("c1", "s1"))
	assert.Empty(t, issues)
	assert.Equal(t, 0, summary.Total)
}
