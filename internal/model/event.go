package model

import (
	"fmt"
)

// Event is a single analytics event. Params are flattened to strings so
// they can be echoed to the console and shipped to any analytics backend.
type Event struct {
	Name   string
	Value  string
	Params map[string]string
}

// Validate validates the event.
func (e Event) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("event name is required: %w", ErrNotValid)
	}
	return nil
}
