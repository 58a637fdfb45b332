package state

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/kilianp07/tripsched/core/model"
)

// SQLiteStore persists the schedule in a SQLite database. The driver is
// pure Go (modernc.org/sqlite), so no cgo toolchain is required.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the database at path and ensures schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	schema := `
	CREATE TABLE IF NOT EXISTS destinations (
		name   TEXT PRIMARY KEY,
		region TEXT NOT NULL DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS trips (
		id          INTEGER PRIMARY KEY,
		destination TEXT NOT NULL REFERENCES destinations(name),
		start_date  TEXT NOT NULL,
		end_date    TEXT NOT NULL,
		notes       TEXT NOT NULL DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS meta (
		key   TEXT PRIMARY KEY,
		value INTEGER NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		if cerr := db.Close(); cerr != nil {
			return nil, fmt.Errorf("close db: %v (schema err: %w)", cerr, err)
		}
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load() (model.State, bool, error) {
	st := model.NewState()

	var next sql.NullInt64
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'next_trip_id'`).Scan(&next)
	if err == sql.ErrNoRows {
		return model.State{}, false, nil
	}
	if err != nil {
		return model.State{}, false, fmt.Errorf("load meta: %w", err)
	}
	st.NextTripID = next.Int64

	rows, err := s.db.Query(`SELECT name, region FROM destinations`)
	if err != nil {
		return model.State{}, false, fmt.Errorf("load destinations: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var d model.Destination
		if err := rows.Scan(&d.Name, &d.Region); err != nil {
			return model.State{}, false, err
		}
		st.Destinations[d.Name] = d
	}
	if err := rows.Err(); err != nil {
		return model.State{}, false, err
	}

	trows, err := s.db.Query(`SELECT id, destination, start_date, end_date, notes FROM trips`)
	if err != nil {
		return model.State{}, false, fmt.Errorf("load trips: %w", err)
	}
	defer func() { _ = trows.Close() }()
	for trows.Next() {
		var t model.Trip
		var start, end string
		if err := trows.Scan(&t.ID, &t.Destination, &start, &end, &t.Notes); err != nil {
			return model.State{}, false, err
		}
		if t.Start, err = model.ParseDate(start); err != nil {
			return model.State{}, false, fmt.Errorf("trip %d: %w", t.ID, err)
		}
		if t.End, err = model.ParseDate(end); err != nil {
			return model.State{}, false, fmt.Errorf("trip %d: %w", t.ID, err)
		}
		st.Trips[t.ID] = t
	}
	if err := trows.Err(); err != nil {
		return model.State{}, false, err
	}
	return st, true, nil
}

// Save rewrites the whole schedule in one transaction. The dataset is a
// single user's trip plan; replacing it wholesale is simpler and safer than
// diffing.
func (s *SQLiteStore) Save(st model.State) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{`DELETE FROM trips`, `DELETE FROM destinations`, `DELETE FROM meta`} {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	for _, d := range st.Destinations {
		if _, err := tx.Exec(`INSERT INTO destinations (name, region) VALUES (?, ?)`, d.Name, d.Region); err != nil {
			return fmt.Errorf("save destination %q: %w", d.Name, err)
		}
	}
	for _, t := range st.Trips {
		if _, err := tx.Exec(
			`INSERT INTO trips (id, destination, start_date, end_date, notes) VALUES (?, ?, ?, ?, ?)`,
			t.ID, t.Destination, model.FormatDate(t.Start), model.FormatDate(t.End), t.Notes,
		); err != nil {
			return fmt.Errorf("save trip %d: %w", t.ID, err)
		}
	}
	if _, err := tx.Exec(`INSERT INTO meta (key, value) VALUES ('next_trip_id', ?)`, st.NextTripID); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) Close() error { return s.db.Close() }
