package notebook

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// rawBlock is the on-disk block shape. Metadata is kept as a yaml.Node so
// it can be decoded into the variant matching the block type.
type rawBlock struct {
	ID         string    `yaml:"id"`
	Type       BlockType `yaml:"type"`
	SortingKey string    `yaml:"sortingKey"`
	Content    string    `yaml:"content"`
	Metadata   yaml.Node `yaml:"metadata"`
}

type rawNotebook struct {
	ID     string     `yaml:"id"`
	Name   string     `yaml:"name"`
	Blocks []rawBlock `yaml:"blocks"`
}

type rawProject struct {
	Name      string        `yaml:"name"`
	Notebooks []rawNotebook `yaml:"notebooks"`
}

type rawDocument struct {
	Version int        `yaml:"version"`
	Project rawProject `yaml:"project"`
}

// Load reads and parses a notebook project file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read notebook file: %w", err)
	}
	project, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return project, nil
}

// Parse decodes a notebook project document from YAML.
func Parse(data []byte) (*Project, error) {
	var doc rawDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}

	project := &Project{
		Name:      doc.Project.Name,
		Notebooks: make([]Notebook, 0, len(doc.Project.Notebooks)),
	}
	for _, rn := range doc.Project.Notebooks {
		nb := Notebook{
			ID:     rn.ID,
			Name:   rn.Name,
			Blocks: make([]Block, 0, len(rn.Blocks)),
		}
		for _, rb := range rn.Blocks {
			block, err := decodeBlock(rb)
			if err != nil {
				return nil, fmt.Errorf("notebook %q: %w", rn.Name, err)
			}
			nb.Blocks = append(nb.Blocks, block)
		}
		project.Notebooks = append(project.Notebooks, nb)
	}
	return project, nil
}

// decodeBlock converts a raw block, decoding the metadata variant for the
// block's type. Unknown metadata keys are ignored; blocks without an id are
// assigned one so downstream attribution always has a stable key.
func decodeBlock(rb rawBlock) (Block, error) {
	block := Block{
		ID:         rb.ID,
		Type:       rb.Type,
		SortingKey: rb.SortingKey,
		Content:    rb.Content,
	}
	if block.ID == "" {
		block.ID = uuid.NewString()
	}

	hasMetadata := rb.Metadata.Kind != 0 && rb.Metadata.Kind != yaml.ScalarNode

	switch {
	case rb.Type == BlockSQL:
		meta := &SQLMetadata{}
		if hasMetadata {
			if err := rb.Metadata.Decode(meta); err != nil {
				return Block{}, fmt.Errorf("block %s: invalid sql metadata: %w", block.ID, err)
			}
		}
		block.SQL = meta
	case rb.Type.IsInput():
		meta := &InputMetadata{}
		if hasMetadata {
			if err := rb.Metadata.Decode(meta); err != nil {
				return Block{}, fmt.Errorf("block %s: invalid input metadata: %w", block.ID, err)
			}
		}
		block.Input = meta
	}

	return block, nil
}
