package models

import "time"

// Commitment is an immovable weekly appointment (a treatment block). The
// engine derives commute buffers around it; the commitment itself is never
// moved or shortened.
type Commitment struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Day       time.Weekday `json:"day"`
	Start     string       `json:"start"` // HH:MM format
	End       string       `json:"end"`   // HH:MM format
	DeletedAt *string      `json:"deleted_at,omitempty"`
}
