package seeds

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps each result as indented JSON in <dir>/<scenario>.seeds.json.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir. The directory is created on
// the first Save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path returns the file a scenario is stored in.
func (s *FileStore) Path(scenario string) string {
	return filepath.Join(s.dir, scenario+".seeds.json")
}

// Save writes the result, replacing any previous one.
func (s *FileStore) Save(_ context.Context, scenario string, result *Result) error {
	data, err := encodeResult(result)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create dumps dir: %w", err)
	}

	// Readers only ever see a complete dump.
	tmp, err := os.CreateTemp(s.dir, scenario+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create dump file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write dump file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write dump file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path(scenario)); err != nil {
		return fmt.Errorf("failed to save dump file: %w", err)
	}
	return nil
}

// Load reads the result of a scenario.
func (s *FileStore) Load(_ context.Context, scenario string) (*Result, error) {
	data, err := os.ReadFile(s.Path(scenario))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrResultNotFound, scenario)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read dump file: %w", err)
	}
	return decodeResult(data)
}

// Close is a no-op.
func (s *FileStore) Close() error {
	return nil
}
