package models

import "time"

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

const (
	DefaultStatus   = StatusPending
	DefaultPriority = PriorityMedium
)

// Task is the sole persisted entity. ID and CreatedAt are stamped by the
// store on insert; UserID is stamped by the server and never comes from
// a client payload.
type Task struct {
	ID        string
	UserID    string
	Title     string
	Status    string
	Priority  string
	CreatedAt time.Time
}
