package model

import (
	"fmt"
	"strings"
)

// Destination is a named place that can be visited. Name is the unique key
// within a schedule; Region optionally narrows it to a locality within the
// territory the tool covers.
type Destination struct {
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
}

// Validate checks that the destination is well formed.
func (d Destination) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("destination name must not be empty")
	}
	return nil
}
