// Package state persists the full schedule between CLI invocations. Two
// backends exist: a JSON snapshot file and a SQLite database. The core never
// sees either; it only exchanges model.State values.
package state

import (
	"fmt"
	"strings"

	"github.com/kilianp07/tripsched/core/model"
)

// Store loads and saves full schedule snapshots.
type Store interface {
	// Load reads the persisted state. The bool is false when nothing has
	// been saved yet, which is not an error for a fresh workspace.
	Load() (st model.State, ok bool, err error)
	// Save replaces the persisted state with st.
	Save(st model.State) error
	Close() error
}

// Open selects a backend by name: "json" or "sqlite".
func Open(backend, path string) (Store, error) {
	switch strings.ToLower(backend) {
	case "", "json":
		return NewJSONStore(path)
	case "sqlite":
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown state backend %q", backend)
	}
}
