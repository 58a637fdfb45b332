package config

import "fmt"

// JournalConfig defines settings for the change journal and its rotation.
type JournalConfig struct {
	// Enabled turns journalling off entirely when false.
	Enabled *bool `json:"enabled"`
	// Path is the file location of the journal.
	Path string `json:"path"`
	// MaxSizeMB triggers rotation when the file exceeds this size in megabytes.
	MaxSizeMB int `json:"max_size_mb"`
	// MaxBackups limits the number of rotated files to keep.
	MaxBackups int `json:"max_backups"`
	// MaxAgeDays removes rotated files older than this number of days.
	MaxAgeDays int `json:"max_age_days"`
}

// IsEnabled resolves the optional flag; journalling defaults to on.
func (c JournalConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// SetDefaults applies sane defaults.
func (c *JournalConfig) SetDefaults() {
	if c.Path == "" {
		c.Path = "tripsched.journal"
	}
	if c.MaxSizeMB <= 0 {
		c.MaxSizeMB = 10
	}
	if c.MaxBackups <= 0 {
		c.MaxBackups = 3
	}
}

// Validate checks mandatory fields.
func (c JournalConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("journal path is required")
	}
	return nil
}
