// Package journal keeps an append-only record of schedule changes in a JSONL
// file with size/age based rotation. It is purely observational: a journal
// failure is logged by the caller and never blocks or rolls back a mutation.
package journal

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/kilianp07/tripsched/core/model"
)

// Action identifies the kind of schedule change a record describes.
type Action string

const (
	ActionDestinationAdded   Action = "destination_added"
	ActionDestinationRemoved Action = "destination_removed"
	ActionTripAdded          Action = "trip_added"
	ActionTripRemoved        Action = "trip_removed"
)

// Record captures one schedule mutation.
type Record struct {
	Timestamp   time.Time          `json:"timestamp"`
	Action      Action             `json:"action"`
	Destination *model.Destination `json:"destination,omitempty"`
	Trip        *model.Trip        `json:"trip,omitempty"`
}

// Query defines filters for retrieving records. Zero values match everything.
type Query struct {
	Start       time.Time
	End         time.Time
	Action      Action
	Destination string
}

// Store persists Records and supports querying across rotated files.
type Store interface {
	Append(ctx context.Context, rec Record) error
	Query(ctx context.Context, q Query) ([]Record, error)
	Close() error
}

// FileStore is a JSONL Store with automatic rotation.
type FileStore struct {
	out  *lumberjack.Logger
	path string
}

// Options carries rotation knobs. Zero values disable the respective limit.
type Options struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// NewFileStore creates a rotating JSONL store at path, creating parent
// directories as needed.
func NewFileStore(path string, opts Options) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
	}
	return &FileStore{out: lj, path: path}, nil
}

// Append writes the record as one JSON line, rotating first if needed.
func (s *FileStore) Append(_ context.Context, rec Record) error {
	return json.NewEncoder(s.out).Encode(rec)
}

// Query scans the journal and its rotated siblings for matching records.
// Unparseable lines are skipped rather than failing the whole read.
func (s *FileStore) Query(_ context.Context, q Query) ([]Record, error) {
	files, err := journalFiles(s.path)
	if err != nil {
		return nil, err
	}
	var res []Record
	for _, f := range files {
		file, err := os.Open(f)
		if err != nil {
			continue
		}
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			var r Record
			if err := json.Unmarshal(scanner.Bytes(), &r); err != nil {
				continue
			}
			if matches(r, q) {
				res = append(res, r)
			}
		}
		_ = file.Close()
	}
	return res, nil
}

// journalFiles returns the current journal plus its rotated backups.
// lumberjack names backups by splitting the extension off the filename and
// inserting a timestamp: "tripsched.journal" rotates to
// "tripsched-2024-01-01T10-00-00.000.journal", so a plain "path*" glob would
// never see them.
func journalFiles(path string) ([]string, error) {
	ext := filepath.Ext(path)
	prefix := path[:len(path)-len(ext)]
	backups, err := filepath.Glob(prefix + "-*" + ext)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err == nil {
		backups = append(backups, path)
	}
	return backups, nil
}

func matches(r Record, q Query) bool {
	if !q.Start.IsZero() && r.Timestamp.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && r.Timestamp.After(q.End) {
		return false
	}
	if q.Action != "" && r.Action != q.Action {
		return false
	}
	if q.Destination != "" {
		switch {
		case r.Destination != nil && r.Destination.Name == q.Destination:
		case r.Trip != nil && r.Trip.Destination == q.Destination:
		default:
			return false
		}
	}
	return true
}

// Close closes the underlying writer.
func (s *FileStore) Close() error { return s.out.Close() }
