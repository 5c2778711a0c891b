package domain

import "time"

// Event records one detected availability change. Events live in memory
// only and feed the RSS endpoint; nothing here is persisted.
type Event struct {
	AlertName string
	Result    string
	Empty     bool
	At        time.Time
}
