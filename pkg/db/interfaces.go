package db

import "context"

// Database defines the operations the draw history store supports.
// The postgres package provides the production implementation.
type Database interface {
	GetDrawRuns(ctx context.Context) ([]DrawRun, error)
	GetAssignments(ctx context.Context, runID string) ([]Assignment, error)
	InsertDrawRun(ctx context.Context, run DrawRun, assignments []Assignment, notes []CapacityNote) error
}
