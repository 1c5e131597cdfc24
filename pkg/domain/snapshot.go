package domain

import "time"

// Snapshot is the full serialized contents of every collection plus export
// metadata. It is the exchange format for export, import, and archival.
// The current-user pointer is deliberately not part of a snapshot.
type Snapshot struct {
	Visits          []Visit          `json:"visits"`
	Orders          []Order          `json:"orders"`
	Attendance      []Attendance     `json:"attendance"`
	Goals           []Goal           `json:"goals"`
	Representatives []Representative `json:"representatives"`
	ExportDate      time.Time        `json:"exportDate"`
}
