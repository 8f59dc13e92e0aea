// Package notebook defines the document model for notebook project files:
// named notebooks holding ordered, typed blocks. The lint engine consumes
// this model; it never mutates it.
package notebook

import (
	"strings"
)

// BlockType identifies the kind of a block.
type BlockType string

// Block types.
const (
	BlockCode     BlockType = "code"
	BlockSQL      BlockType = "sql"
	BlockMarkdown BlockType = "markdown"

	BlockInputText      BlockType = "input-text"
	BlockInputTextarea  BlockType = "input-textarea"
	BlockInputCheckbox  BlockType = "input-checkbox"
	BlockInputSelect    BlockType = "input-select"
	BlockInputSlider    BlockType = "input-slider"
	BlockInputDate      BlockType = "input-date"
	BlockInputDateRange BlockType = "input-date-range"
	BlockInputFile      BlockType = "input-file"
)

// inputTypes is the fixed set of interactive-input block kinds.
var inputTypes = map[BlockType]struct{}{
	BlockInputText:      {},
	BlockInputTextarea:  {},
	BlockInputCheckbox:  {},
	BlockInputSelect:    {},
	BlockInputSlider:    {},
	BlockInputDate:      {},
	BlockInputDateRange: {},
	BlockInputFile:      {},
}

// IsInput reports whether the type is an interactive-input kind.
func (t BlockType) IsInput() bool {
	_, ok := inputTypes[t]
	return ok
}

// InputKind returns the bare input kind ("text", "slider", ...) for
// interactive-input types, or an empty string for other types.
func (t BlockType) InputKind() string {
	if !t.IsInput() {
		return ""
	}
	return strings.TrimPrefix(string(t), "input-")
}

// SQLMetadata is the metadata variant carried by SQL blocks.
type SQLMetadata struct {
	// IntegrationID names the external data source the query runs against.
	// Empty for queries over in-memory dataframes.
	IntegrationID string `yaml:"integrationId"`
	// VariableName is the variable the query result is assigned to.
	VariableName string `yaml:"variableName"`
}

// InputMetadata is the metadata variant carried by interactive-input blocks.
type InputMetadata struct {
	VariableName string `yaml:"variableName"`
	// Value is the current value; nil when absent or explicitly null.
	Value any `yaml:"value"`
}

// Block is a single content unit inside a notebook.
type Block struct {
	ID         string
	Type       BlockType
	SortingKey string
	Content    string

	// Exactly one variant is non-nil, matching Type; both are nil for
	// types that carry no metadata.
	SQL   *SQLMetadata
	Input *InputMetadata
}

// defaultLabels maps block types to the label used when a block has no
// usable content line.
var defaultLabels = map[BlockType]string{
	BlockCode:           "Code block",
	BlockSQL:            "SQL block",
	BlockMarkdown:       "Markdown block",
	BlockInputText:      "Text input",
	BlockInputTextarea:  "Textarea input",
	BlockInputCheckbox:  "Checkbox input",
	BlockInputSelect:    "Select input",
	BlockInputSlider:    "Slider input",
	BlockInputDate:      "Date input",
	BlockInputDateRange: "Date range input",
	BlockInputFile:      "File input",
}

const maxLabelLen = 60

// Label returns a short human-readable summary of the block: the first
// non-empty line of content, truncated, or a type-based default.
func (b *Block) Label() string {
	for _, line := range strings.Split(b.Content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if runes := []rune(line); len(runes) > maxLabelLen {
			return string(runes[:maxLabelLen-3]) + "..."
		}
		return line
	}
	if label, ok := defaultLabels[b.Type]; ok {
		return label
	}
	return string(b.Type) + " block"
}

// Notebook is a named, ordered collection of blocks.
type Notebook struct {
	ID     string
	Name   string
	Blocks []Block
}

// Project is the root of a notebook document.
type Project struct {
	Name      string
	Notebooks []Notebook
}

// BlockCount returns the total number of blocks across all notebooks.
func (p *Project) BlockCount() int {
	n := 0
	for _, nb := range p.Notebooks {
		n += len(nb.Blocks)
	}
	return n
}
