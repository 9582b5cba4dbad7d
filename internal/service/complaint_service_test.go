package service_test

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/spec-kit/complaint-service/internal/domain"
	"github.com/spec-kit/complaint-service/internal/events"
	"github.com/spec-kit/complaint-service/internal/service"
)

func strPtr(s string) *string { return &s }

// capture subscribes to every complaint event type and records what
// gets published.
func captureEvents(d events.Dispatcher) *[]events.Event {
	var seen []events.Event
	record := func(_ context.Context, e events.Event) error {
		seen = append(seen, e)
		return nil
	}
	d.Subscribe(events.EventComplaintFiled, record)
	d.Subscribe(events.EventTaskAssigned, record)
	d.Subscribe(events.EventTaskCompleted, record)
	return &seen
}

func TestFileComplaintRejectsEmptyFields(t *testing.T) {
	svc := service.NewComplaintService(new(MockComplaintRepository), nil)

	_, err := svc.FileComplaint(context.Background(), service.FileComplaintInput{Description: "d"})
	assertDomainCode(t, err, "VALIDATION_FAILED")

	_, err = svc.FileComplaint(context.Background(), service.FileComplaintInput{LocationQR: "GATE-1"})
	assertDomainCode(t, err, "VALIDATION_FAILED")
}

func TestFileComplaintCreatesPending(t *testing.T) {
	complaints := new(MockComplaintRepository)
	complaints.On("NextComplaintID", mock.Anything).Return("C001", nil)
	complaints.On("Create", mock.Anything, mock.AnythingOfType("*domain.Complaint")).Return(nil)

	dispatcher := events.NewInMemoryDispatcher()
	seen := captureEvents(dispatcher)

	svc := service.NewComplaintService(complaints, dispatcher)
	complaint, err := svc.FileComplaint(context.Background(), service.FileComplaintInput{
		LocationQR:  "GATE-1",
		Description: "Broken tap",
		Contact:     strPtr("9999999999"),
		Type:        "pilgrim",
	})

	assert.NoError(t, err)
	assert.Equal(t, "C001", complaint.ComplaintID)
	assert.Equal(t, domain.ComplaintStatusPending, complaint.Status)
	assert.Nil(t, complaint.AssignedWorkerID)

	assert.Len(t, *seen, 1)
	assert.Equal(t, events.EventComplaintFiled, (*seen)[0].Type)
	assert.NotEmpty(t, (*seen)[0].ID)
	complaints.AssertExpectations(t)
}

func TestFileComplaintSequentialIDs(t *testing.T) {
	complaints := new(MockComplaintRepository)
	complaints.On("NextComplaintID", mock.Anything).Return("C001", nil).Once()
	complaints.On("NextComplaintID", mock.Anything).Return("C002", nil).Once()
	complaints.On("NextComplaintID", mock.Anything).Return("C003", nil).Once()
	complaints.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := service.NewComplaintService(complaints, nil)

	var ids []string
	for i := 0; i < 3; i++ {
		c, err := svc.FileComplaint(context.Background(), service.FileComplaintInput{
			LocationQR:  "GATE-1",
			Description: "issue",
		})
		assert.NoError(t, err)
		ids = append(ids, c.ComplaintID)
	}
	assert.Equal(t, []string{"C001", "C002", "C003"}, ids)
}

func TestAssignTaskRejectsEmptyFields(t *testing.T) {
	svc := service.NewComplaintService(new(MockComplaintRepository), nil)

	assertDomainCode(t, svc.AssignTask(context.Background(), "", "W-01", ""), "VALIDATION_FAILED")
	assertDomainCode(t, svc.AssignTask(context.Background(), "C001", "", ""), "VALIDATION_FAILED")
}

func TestAssignTaskTransitionsPending(t *testing.T) {
	complaints := new(MockComplaintRepository)
	complaints.On("AssignWorker", mock.Anything, "C001", "W-01").Return(nil)

	dispatcher := events.NewInMemoryDispatcher()
	seen := captureEvents(dispatcher)

	svc := service.NewComplaintService(complaints, dispatcher)
	err := svc.AssignTask(context.Background(), "C001", "W-01", "O-01")

	assert.NoError(t, err)
	assert.Len(t, *seen, 1)
	assert.Equal(t, events.EventTaskAssigned, (*seen)[0].Type)
	payload := (*seen)[0].Payload.(events.TaskAssignedPayload)
	assert.Equal(t, "W-01", payload.WorkerID)
	complaints.AssertExpectations(t)
}

// Assigning an already-assigned (or missing) complaint reports the
// same single not-found kind; the failed attempt publishes nothing.
func TestAssignTaskNotPendingIsNotFound(t *testing.T) {
	complaints := new(MockComplaintRepository)
	complaints.On("AssignWorker", mock.Anything, "C001", "W-02").Return(pgx.ErrNoRows)

	dispatcher := events.NewInMemoryDispatcher()
	seen := captureEvents(dispatcher)

	svc := service.NewComplaintService(complaints, dispatcher)
	err := svc.AssignTask(context.Background(), "C001", "W-02", "")

	assertDomainCode(t, err, "NOT_FOUND")
	assert.Empty(t, *seen)
}

func TestCompleteTaskRejectsEmptyFields(t *testing.T) {
	svc := service.NewComplaintService(new(MockComplaintRepository), nil)

	_, err := svc.CompleteTask(context.Background(), "", "fixed", "")
	assertDomainCode(t, err, "VALIDATION_FAILED")
	_, err = svc.CompleteTask(context.Background(), "C001", "", "")
	assertDomainCode(t, err, "VALIDATION_FAILED")
}

func TestCompleteTaskDefaultPhoto(t *testing.T) {
	complaints := new(MockComplaintRepository)
	complaints.On("Complete", mock.Anything, "C001", "fixed the tap", "uploads/default_proof.jpg").Return(nil)

	svc := service.NewComplaintService(complaints, nil)
	photoURL, err := svc.CompleteTask(context.Background(), "C001", "fixed the tap", "")

	assert.NoError(t, err)
	assert.Equal(t, "uploads/default_proof.jpg", photoURL)
	complaints.AssertExpectations(t)
}

func TestCompleteTaskCustomPhoto(t *testing.T) {
	complaints := new(MockComplaintRepository)
	complaints.On("Complete", mock.Anything, "C001", "done", "uploads/proof_c001.jpg").Return(nil)

	dispatcher := events.NewInMemoryDispatcher()
	seen := captureEvents(dispatcher)

	svc := service.NewComplaintService(complaints, dispatcher)
	photoURL, err := svc.CompleteTask(context.Background(), "C001", "done", "proof_c001.jpg")

	assert.NoError(t, err)
	assert.Equal(t, "uploads/proof_c001.jpg", photoURL)
	assert.Len(t, *seen, 1)
	assert.Equal(t, events.EventTaskCompleted, (*seen)[0].Type)
}

func TestCompleteTaskNotesPreviewKeepsRunesIntact(t *testing.T) {
	notes := strings.Repeat("ü", 200)

	complaints := new(MockComplaintRepository)
	complaints.On("Complete", mock.Anything, "C001", notes, "uploads/default_proof.jpg").Return(nil)

	dispatcher := events.NewInMemoryDispatcher()
	seen := captureEvents(dispatcher)

	svc := service.NewComplaintService(complaints, dispatcher)
	_, err := svc.CompleteTask(context.Background(), "C001", notes, "")

	assert.NoError(t, err)
	assert.Len(t, *seen, 1)
	preview := (*seen)[0].Payload.(events.TaskCompletedPayload).NotesPreview
	assert.True(t, utf8.ValidString(preview), "truncation must not split a rune")
	assert.Equal(t, 120, utf8.RuneCountInString(preview))
	assert.True(t, strings.HasSuffix(preview, "..."))
}

func TestCompleteTaskNotAssignedIsNotFound(t *testing.T) {
	complaints := new(MockComplaintRepository)
	complaints.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(pgx.ErrNoRows)

	svc := service.NewComplaintService(complaints, nil)
	_, err := svc.CompleteTask(context.Background(), "C001", "notes", "")
	assertDomainCode(t, err, "NOT_FOUND")
}
