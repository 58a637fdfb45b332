package config

import "fmt"

// StateConfig selects where the schedule is persisted between runs.
type StateConfig struct {
	// Backend selects the store type: "json" or "sqlite".
	Backend string `json:"backend"`
	// Path is the file location of the state store.
	Path string `json:"path"`
}

// SetDefaults applies the JSON file backend with a per-backend default path.
func (c *StateConfig) SetDefaults() {
	if c.Backend == "" {
		c.Backend = "json"
	}
	if c.Path == "" {
		switch c.Backend {
		case "sqlite":
			c.Path = "tripsched.db"
		default:
			c.Path = "tripsched.json"
		}
	}
}

// Validate checks mandatory fields.
func (c StateConfig) Validate() error {
	if c.Backend != "json" && c.Backend != "sqlite" {
		return fmt.Errorf("unknown state backend %s", c.Backend)
	}
	if c.Path == "" {
		return fmt.Errorf("state path is required")
	}
	return nil
}
