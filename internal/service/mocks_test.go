package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/spec-kit/complaint-service/internal/domain"
)

// MockUserRepository is a testify mock for repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByPhoneAndRole(ctx context.Context, phone string, role domain.Role) (*domain.User, error) {
	args := m.Called(ctx, phone, role)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByIDAndRole(ctx context.Context, userID string, role domain.Role) (*domain.User, error) {
	args := m.Called(ctx, userID, role)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) PilgrimPhoneExists(ctx context.Context, phone string) (bool, error) {
	args := m.Called(ctx, phone)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) NextPilgrimID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) ListWorkers(ctx context.Context) ([]domain.WorkerRef, error) {
	args := m.Called(ctx)
	if w := args.Get(0); w != nil {
		return w.([]domain.WorkerRef), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockComplaintRepository is a testify mock for
// repository.ComplaintRepository.
type MockComplaintRepository struct {
	mock.Mock
}

func (m *MockComplaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}

func (m *MockComplaintRepository) NextComplaintID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockComplaintRepository) AssignWorker(ctx context.Context, complaintID, workerID string) error {
	args := m.Called(ctx, complaintID, workerID)
	return args.Error(0)
}

func (m *MockComplaintRepository) Complete(ctx context.Context, complaintID, notes, photoURL string) error {
	args := m.Called(ctx, complaintID, notes, photoURL)
	return args.Error(0)
}

func (m *MockComplaintRepository) ListByContact(ctx context.Context, contact string) ([]domain.Complaint, error) {
	args := m.Called(ctx, contact)
	if c := args.Get(0); c != nil {
		return c.([]domain.Complaint), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockComplaintRepository) ListOpen(ctx context.Context) ([]domain.Complaint, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.([]domain.Complaint), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockComplaintRepository) ListByWorker(ctx context.Context, workerID string) ([]domain.Complaint, error) {
	args := m.Called(ctx, workerID)
	if c := args.Get(0); c != nil {
		return c.([]domain.Complaint), args.Error(1)
	}
	return nil, args.Error(1)
}
