package domain

import "time"

// ComplaintStatus enumerates lifecycle states for complaints.
//
// The only legal transitions are Pending -> Assigned -> Completed.
// Transitions are enforced by guarded single-statement updates in the
// repository; no transition is ever reversed and no complaint is
// deleted.
type ComplaintStatus string

const (
	ComplaintStatusPending   ComplaintStatus = "Pending"
	ComplaintStatusAssigned  ComplaintStatus = "Assigned"
	ComplaintStatusCompleted ComplaintStatus = "Completed"
)

// Complaint is the aggregate for location-tagged issue reports.
type Complaint struct {
	ComplaintID        string
	LocationQR         string
	Description        string
	Contact            *string
	Status             ComplaintStatus
	AssignedWorkerID   *string
	CompletionPhotoURL *string
	CreatedAt          time.Time
}
