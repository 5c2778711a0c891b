package repository

import "context"

// Repository persists the last-notified canonical result per alert name.
// Writes are immediately durable.
type Repository interface {
	// Get returns the stored result for the alert, and whether a row exists.
	Get(ctx context.Context, alertName string) (string, bool, error)
	// Put creates the row if absent, else overwrites its value.
	Put(ctx context.Context, alertName, result string) error
}
