package domain

import (
	"time"

	"github.com/google/uuid"
)

// FailedFile names a file that could not be synced or processed.
type FailedFile struct {
	Name  string
	Error string
}

// SyncResult holds statistics about a folder sync.
type SyncResult struct {
	Category    Category
	Uploaded    int
	Skipped     int
	Failed      int
	Total       int
	FailedFiles []FailedFile
	Duration    time.Duration
}

type ResultStatus string

const (
	ResultProcessed ResultStatus = "processed"
	ResultInvalid   ResultStatus = "invalid"
	ResultSkipped   ResultStatus = "skipped"
	ResultFailed    ResultStatus = "failed"
	ResultPending   ResultStatus = "pending"
)

// ProcessingResult is the outcome of processing one file.
type ProcessingResult struct {
	FileName string
	Status   ResultStatus
	RecordID int64
	Message  string
	Err      error
}

// ProgressEvent is emitted by the runner after each file.
type ProgressEvent struct {
	Index  int
	Total  int
	Result ProcessingResult
}

// RunSummary holds statistics about a bucket processing run.
type RunSummary struct {
	RunID     uuid.UUID
	Category  Category
	DryRun    bool
	Total     int
	Processed int
	Invalid   int
	Errors    int
	Skipped   int
	Results   []ProcessingResult
	Duration  time.Duration
}

// FailedFiles returns the failed results with their messages.
func (s *RunSummary) FailedFiles() []FailedFile {
	var out []FailedFile
	for _, r := range s.Results {
		if r.Status == ResultFailed {
			out = append(out, FailedFile{Name: r.FileName, Error: r.Message})
		}
	}
	return out
}

// ProcessOptions control a single file run.
type ProcessOptions struct {
	Force bool
}
