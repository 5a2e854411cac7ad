package domain

import "time"

type EventAction string

const (
	EventMaterialized EventAction = "materialized"
	EventQuarantined  EventAction = "quarantined"
)

// DocumentEvent announces the outcome of processing a file.
type DocumentEvent struct {
	ID        string      `json:"id"`
	Action    EventAction `json:"action"`
	Category  Category    `json:"category"`
	FileName  string      `json:"file_name"`
	RecordID  int64       `json:"record_id,omitempty"`
	Message   string      `json:"message,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}
