package lint

import (
	"github.com/notebook-labs/nblint/internal/notebook"
)

// BlockInfo is the read-only display view of a block used for issue
// attribution.
type BlockInfo struct {
	ID           string
	Label        string
	Type         notebook.BlockType
	NotebookName string
	SortingKey   string
}

// BlockMap resolves block ids to display metadata. A graph node whose id is
// not in the map cannot be attributed and is skipped by every check.
type BlockMap map[string]BlockInfo

// ScopedBlock pairs a block with its owning notebook's name.
type ScopedBlock struct {
	notebook.Block
	NotebookName string
}

// indexBlocks returns the in-scope blocks in document order and the lookup
// from block id to display metadata. The filter is exact string equality on
// notebook name; a filter matching nothing yields an empty block list.
func indexBlocks(notebooks []notebook.Notebook, notebookFilter string) ([]ScopedBlock, BlockMap) {
	var blocks []ScopedBlock
	index := make(BlockMap)

	for _, nb := range notebooks {
		if notebookFilter != "" && nb.Name != notebookFilter {
			continue
		}
		for _, block := range nb.Blocks {
			blocks = append(blocks, ScopedBlock{Block: block, NotebookName: nb.Name})
			index[block.ID] = BlockInfo{
				ID:           block.ID,
				Label:        block.Label(),
				Type:         block.Type,
				NotebookName: nb.Name,
				SortingKey:   block.SortingKey,
			}
		}
	}
	return blocks, index
}
