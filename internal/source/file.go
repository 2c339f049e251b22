package source

import (
	"context"

	"github.com/jacksmith/adminui/internal/model"
)

// FileSource reads records from a local JSON or YAML file.
type FileSource struct {
	path string
}

// NewFileSource returns a FileSource for path. The format follows the
// extension: .yaml/.yml are YAML, everything else JSON.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) String() string {
	return s.path
}

// Fetch reads and decodes the file.
func (s *FileSource) Fetch(ctx context.Context) ([]model.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, loadError(s, err)
	}
	records, err := model.LoadRecords(s.path)
	if err != nil {
		return nil, loadError(s, err)
	}
	return records, nil
}
