package dto

import (
	"github.com/spec-kit/complaint-service/internal/domain"
)

const viewDateLayout = "2006-01-02"

// PilgrimComplaintView is the projection returned by
// get_pilgrim_status. Field names are the wire contract.
type PilgrimComplaintView struct {
	ID             string  `json:"id"`
	Location       string  `json:"location"`
	Description    string  `json:"description"`
	Status         string  `json:"status"`
	AssignedWorker *string `json:"assignedWorker"`
	Date           string  `json:"date"`
}

// DashboardComplaintView is the projection returned by
// get_official_dashboard.
type DashboardComplaintView struct {
	ID               string  `json:"id"`
	Location         string  `json:"location"`
	Description      string  `json:"description"`
	Status           string  `json:"status"`
	Contact          *string `json:"contact"`
	Date             string  `json:"date"`
	AssignedWorkerID *string `json:"assigned_worker_id"`
}

// WorkerTaskView is the projection returned by get_worker_tasks.
type WorkerTaskView struct {
	ID          string `json:"id"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Date        string `json:"date"`
}

// NewPilgrimComplaintView maps a complaint to the pilgrim status view.
// The date carries the creation day only, not the full timestamp.
func NewPilgrimComplaintView(c domain.Complaint) PilgrimComplaintView {
	return PilgrimComplaintView{
		ID:             c.ComplaintID,
		Location:       c.LocationQR,
		Description:    c.Description,
		Status:         string(c.Status),
		AssignedWorker: c.AssignedWorkerID,
		Date:           c.CreatedAt.Format(viewDateLayout),
	}
}

// NewPilgrimComplaintViews maps a slice, always returning a non-nil
// slice so empty result sets encode as [] instead of null.
func NewPilgrimComplaintViews(complaints []domain.Complaint) []PilgrimComplaintView {
	views := make([]PilgrimComplaintView, 0, len(complaints))
	for _, c := range complaints {
		views = append(views, NewPilgrimComplaintView(c))
	}
	return views
}

// NewDashboardComplaintView maps a complaint to the dashboard view.
func NewDashboardComplaintView(c domain.Complaint) DashboardComplaintView {
	return DashboardComplaintView{
		ID:               c.ComplaintID,
		Location:         c.LocationQR,
		Description:      c.Description,
		Status:           string(c.Status),
		Contact:          c.Contact,
		Date:             c.CreatedAt.Format(viewDateLayout),
		AssignedWorkerID: c.AssignedWorkerID,
	}
}

// NewDashboardComplaintViews maps a slice.
func NewDashboardComplaintViews(complaints []domain.Complaint) []DashboardComplaintView {
	views := make([]DashboardComplaintView, 0, len(complaints))
	for _, c := range complaints {
		views = append(views, NewDashboardComplaintView(c))
	}
	return views
}

// NewWorkerTaskView maps a complaint to the worker task view.
func NewWorkerTaskView(c domain.Complaint) WorkerTaskView {
	return WorkerTaskView{
		ID:          c.ComplaintID,
		Location:    c.LocationQR,
		Description: c.Description,
		Status:      string(c.Status),
		Date:        c.CreatedAt.Format(viewDateLayout),
	}
}

// NewWorkerTaskViews maps a slice.
func NewWorkerTaskViews(complaints []domain.Complaint) []WorkerTaskView {
	views := make([]WorkerTaskView, 0, len(complaints))
	for _, c := range complaints {
		views = append(views, NewWorkerTaskView(c))
	}
	return views
}

// WorkerViews maps the roster; WorkerRef already carries the wire
// field names.
func WorkerViews(workers []domain.WorkerRef) []domain.WorkerRef {
	if workers == nil {
		return []domain.WorkerRef{}
	}
	return workers
}
