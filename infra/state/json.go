package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kilianp07/tripsched/core/model"
)

// JSONStore keeps the whole schedule as one pretty-printed JSON document:
// destinations keyed by name, trips keyed by id. Saves go through a temp
// file and rename so a crash mid-write never leaves a truncated state file.
type JSONStore struct {
	path string
}

// NewJSONStore creates a store at path, creating parent directories.
func NewJSONStore(path string) (*JSONStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return &JSONStore{path: path}, nil
}

func (s *JSONStore) Load() (model.State, bool, error) {
	b, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return model.State{}, false, nil
	}
	if err != nil {
		return model.State{}, false, fmt.Errorf("read state file: %w", err)
	}
	st := model.NewState()
	if err := json.Unmarshal(b, &st); err != nil {
		return model.State{}, false, fmt.Errorf("decode state file %s: %w", s.path, err)
	}
	return st, true, nil
}

func (s *JSONStore) Save(st model.State) error {
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(b, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *JSONStore) Close() error { return nil }
