package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventComplaintFiled EventType = "complaint_filed"
	EventTaskAssigned   EventType = "task_assigned"
	EventTaskCompleted  EventType = "task_completed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	ComplaintID string      `json:"complaint_id"`
	Timestamp   time.Time   `json:"timestamp"`
	Payload     interface{} `json:"payload"`
}

// ComplaintFiledPayload payload.
type ComplaintFiledPayload struct {
	LocationQR string  `json:"location_qr"`
	Contact    *string `json:"contact,omitempty"`
	Type       string  `json:"type,omitempty"`
}

// TaskAssignedPayload payload.
type TaskAssignedPayload struct {
	WorkerID   string `json:"worker_id"`
	OfficialID string `json:"official_id,omitempty"`
}

// TaskCompletedPayload payload.
type TaskCompletedPayload struct {
	NotesPreview string `json:"notes_preview"`
	PhotoURL     string `json:"photo_url"`
}
