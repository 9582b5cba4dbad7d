package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/complaint-service/internal/domain"
	"github.com/spec-kit/complaint-service/internal/events"
	"github.com/spec-kit/complaint-service/internal/repository"
	apperrors "github.com/spec-kit/complaint-service/pkg/util"
)

// ComplaintService owns the complaint lifecycle. It is the only writer
// of status, assigned_worker_id and completion_photo_url; every other
// component reads.
type ComplaintService struct {
	complaints repository.ComplaintRepository
	dispatcher events.Dispatcher
}

// FileComplaintInput describes complaint creation payload. Type is
// accepted for wire compatibility but nothing branches on it.
type FileComplaintInput struct {
	LocationQR  string
	Description string
	Contact     *string
	Type        string
}

// NewComplaintService constructs the service.
func NewComplaintService(complaints repository.ComplaintRepository, dispatcher events.Dispatcher) *ComplaintService {
	return &ComplaintService{complaints: complaints, dispatcher: dispatcher}
}

// FileComplaint creates a complaint in the Pending state with a
// sequence-generated ID.
func (s *ComplaintService) FileComplaint(ctx context.Context, input FileComplaintInput) (*domain.Complaint, error) {
	if input.LocationQR == "" || input.Description == "" {
		return nil, apperrors.NewValidationError("Location and description are required.", nil)
	}

	complaintID, err := s.complaints.NextComplaintID(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	complaint := &domain.Complaint{
		ComplaintID: complaintID,
		LocationQR:  input.LocationQR,
		Description: input.Description,
		Contact:     input.Contact,
		Status:      domain.ComplaintStatusPending,
	}
	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		Type:        events.EventComplaintFiled,
		ComplaintID: complaint.ComplaintID,
		Payload: events.ComplaintFiledPayload{
			LocationQR: complaint.LocationQR,
			Contact:    complaint.Contact,
			Type:       input.Type,
		},
	})
	return complaint, nil
}

// AssignTask transitions a Pending complaint to Assigned. The official
// ID is accepted but not persisted; an audit trail is out of scope.
func (s *ComplaintService) AssignTask(ctx context.Context, complaintID, workerID, officialID string) error {
	if complaintID == "" || workerID == "" {
		return apperrors.NewValidationError("Complaint ID and Worker ID are required.", nil)
	}

	if err := s.complaints.AssignWorker(ctx, complaintID, workerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Complaint not found or already assigned.", map[string]any{"complaint_id": complaintID})
		}
		return apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		Type:        events.EventTaskAssigned,
		ComplaintID: complaintID,
		Payload: events.TaskAssignedPayload{
			WorkerID:   workerID,
			OfficialID: officialID,
		},
	})
	return nil
}

// CompleteTask transitions an Assigned complaint to Completed,
// recording the completion evidence. Returns the stored photo URL.
func (s *ComplaintService) CompleteTask(ctx context.Context, complaintID, notes, photoFilename string) (string, error) {
	if complaintID == "" || notes == "" {
		return "", apperrors.NewValidationError("Complaint ID and completion notes are required.", nil)
	}

	photoURL := domain.CompletionPhotoURL(photoFilename)
	if err := s.complaints.Complete(ctx, complaintID, notes, photoURL); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewNotFound("Complaint not found or not assigned.", map[string]any{"complaint_id": complaintID})
		}
		return "", apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		Type:        events.EventTaskCompleted,
		ComplaintID: complaintID,
		Payload: events.TaskCompletedPayload{
			NotesPreview: stringPreview(notes, 120),
			PhotoURL:     photoURL,
		},
	})
	return photoURL, nil
}

func (s *ComplaintService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

// stringPreview truncates to max runes, never splitting a multi-byte
// sequence.
func stringPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	runes := []rune(body)
	if len(runes) <= max {
		return body
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
