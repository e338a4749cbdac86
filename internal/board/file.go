package board

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/tideboard/internal/logger"
	"github.com/bethropolis/tideboard/internal/types"
)

// ErrNoFilePath is returned when saving a board that has never had a path.
var ErrNoFilePath = errors.New("no file path specified for saving")

// fileEntity is the on-disk form of an entity.
type fileEntity struct {
	ID    int    `toml:"id"`
	Label string `toml:"label"`
	X     int    `toml:"x"`
	Y     int    `toml:"y"`
}

type fileFormat struct {
	Entities []fileEntity `toml:"entity"`
}

// Load reads a board file. A missing file yields an empty board bound to
// filePath, as for a new document.
func Load(filePath string) (*Board, error) {
	b := New()
	b.filePath = filePath

	var data fileFormat
	_, err := toml.DecodeFile(filePath, &data)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Infof("Board file '%s' not found, starting empty", filePath)
			return b, nil
		}
		return nil, fmt.Errorf("failed to parse board file '%s': %w", filePath, err)
	}

	for i, fe := range data.Entities {
		id := types.EntityID(fe.ID)
		if id <= 0 {
			id = b.nextID
		}
		if !b.Insert(Entity{ID: id, Label: fe.Label, Pos: types.Point{X: fe.X, Y: fe.Y}}, -1) {
			logger.Warnf("Board file '%s': entity #%d has duplicate id %d, skipped", filePath, i, fe.ID)
		}
	}
	b.revision = 0
	b.markSaved()
	logger.Infof("Loaded board '%s' with %d entities", filePath, b.Len())
	return b, nil
}

// Save writes the board to filePath, or to its current path when empty.
func (b *Board) Save(filePath string) error {
	path := b.filePath
	if filePath != "" {
		path = filePath
	}
	if path == "" {
		return ErrNoFilePath
	}

	data := fileFormat{Entities: make([]fileEntity, 0, b.Len())}
	for _, e := range b.Entities() {
		data.Entities = append(data.Entities, fileEntity{ID: int(e.ID), Label: e.Label, X: e.Pos.X, Y: e.Pos.Y})
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(data); err != nil {
		return fmt.Errorf("failed to encode board: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}

	b.filePath = path
	b.markSaved()
	return nil
}
