package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/complaint-service/internal/domain"
	"github.com/spec-kit/complaint-service/internal/persistence"
	"github.com/spec-kit/complaint-service/internal/repository"
	apperrors "github.com/spec-kit/complaint-service/pkg/util"
)

const workerRosterCacheKey = "dashboard:workers"

// DashboardService provides read-only projections over complaints and
// users. It never writes complaint state.
type DashboardService struct {
	complaints repository.ComplaintRepository
	users      repository.UserRepository
	cache      *persistence.Redis
	rosterTTL  time.Duration
	logger     *zap.Logger
}

// NewDashboardService constructs the service. cache may be nil; the
// roster then always comes from Postgres.
func NewDashboardService(
	complaints repository.ComplaintRepository,
	users repository.UserRepository,
	cache *persistence.Redis,
	rosterTTL time.Duration,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		complaints: complaints,
		users:      users,
		cache:      cache,
		rosterTTL:  rosterTTL,
		logger:     logger,
	}
}

// PilgrimStatus lists a pilgrim's complaints by contact number, newest
// first.
func (s *DashboardService) PilgrimStatus(ctx context.Context, contact string) ([]domain.Complaint, error) {
	if contact == "" {
		return nil, apperrors.NewValidationError("Contact number is required to view status.", nil)
	}
	complaints, err := s.complaints.ListByContact(ctx, contact)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return complaints, nil
}

// OfficialDashboard returns open complaints in FIFO triage order plus
// the worker roster.
func (s *DashboardService) OfficialDashboard(ctx context.Context) ([]domain.Complaint, []domain.WorkerRef, error) {
	complaints, err := s.complaints.ListOpen(ctx)
	if err != nil {
		return nil, nil, apperrors.MapError(err)
	}
	workers, err := s.workerRoster(ctx)
	if err != nil {
		return nil, nil, apperrors.MapError(err)
	}
	return complaints, workers, nil
}

// WorkerTasks lists complaints assigned to a worker, newest first.
func (s *DashboardService) WorkerTasks(ctx context.Context, workerID string) ([]domain.Complaint, error) {
	if workerID == "" {
		return nil, apperrors.NewValidationError("Worker ID is required to fetch tasks.", nil)
	}
	tasks, err := s.complaints.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tasks, nil
}

// workerRoster reads the roster through the Redis cache. Workers are
// pre-seeded rows that change rarely, so a short TTL is enough; any
// cache failure falls back to Postgres silently.
func (s *DashboardService) workerRoster(ctx context.Context) ([]domain.WorkerRef, error) {
	if s.cache != nil && s.cache.Client != nil {
		cached, err := s.cache.Client.Get(ctx, workerRosterCacheKey).Bytes()
		if err == nil {
			var workers []domain.WorkerRef
			if err := json.Unmarshal(cached, &workers); err == nil {
				return workers, nil
			}
			s.logger.Warn("discarding malformed worker roster cache entry")
		}
	}

	workers, err := s.users.ListWorkers(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && s.cache.Client != nil && s.rosterTTL > 0 {
		if payload, err := json.Marshal(workers); err == nil {
			if err := s.cache.Client.Set(ctx, workerRosterCacheKey, payload, s.rosterTTL).Err(); err != nil {
				s.logger.Debug("worker roster cache write failed", zap.Error(err))
			}
		}
	}
	return workers, nil
}
