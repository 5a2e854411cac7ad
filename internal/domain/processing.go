package domain

import "time"

type ProcessingState string

const (
	StateUnprocessed ProcessingState = "unprocessed"
	StateProcessed   ProcessingState = "processed"
	StateInvalid     ProcessingState = "invalid"
	StateFailed      ProcessingState = "failed"
)

// ProcessingLogEntry is the persisted processing state of one file in one category.
type ProcessingLogEntry struct {
	ID          int64      `db:"id"`
	Category    Category   `db:"category"`
	Filename    string     `db:"filename"`
	IsProcessed bool       `db:"is_processed"`
	ProcessedAt *time.Time `db:"processed_at"`
	AttemptedAt *time.Time `db:"attempted_at"`
	Message     *string    `db:"message"`
	IsValid     bool       `db:"is_valid"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// State derives the tracker state from the stored flags.
func (e *ProcessingLogEntry) State() ProcessingState {
	switch {
	case e.IsProcessed && !e.IsValid:
		return StateInvalid
	case e.IsProcessed:
		return StateProcessed
	case e.AttemptedAt != nil:
		return StateFailed
	default:
		return StateUnprocessed
	}
}

// ProcessingStatus is a point-in-time count of tracker states for a category.
type ProcessingStatus struct {
	Category    Category `db:"-"`
	Total       int      `db:"total"`
	Processed   int      `db:"processed"`
	Invalid     int      `db:"invalid"`
	Failed      int      `db:"failed"`
	Unprocessed int      `db:"unprocessed"`
}

// TrackedFiles splits bucket files by tracker state. Untracked files are in neither list.
type TrackedFiles struct {
	Unprocessed []StorageObject
	Processed   []StorageObject
	Untracked   int
}

// TrackDecision is the outcome of asking the tracker whether a file may be processed.
type TrackDecision struct {
	Entry      *ProcessingLogEntry
	ShouldSkip bool
	Reason     string
}
