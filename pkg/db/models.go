package db

import "time"

// DrawRun represents a completed draw record
type DrawRun struct {
	ID          string
	CreatedAt   time.Time
	Seed        int64
	PeopleCount int
	GroupCount  int
}

// Assignment represents one person's placement within a draw run
type Assignment struct {
	ID       string
	RunID    string
	GroupID  string
	Person   string
	Position int
}

// CapacityNote records a group that exceeded its planned ceiling in a run
type CapacityNote struct {
	ID       string
	RunID    string
	GroupID  string
	Ceiling  int
	Overflow int
}
