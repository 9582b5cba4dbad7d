package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/complaint-service/internal/domain"
)

// ComplaintRepository encapsulates complaint persistence. The status
// transitions are expressed as single guarded updates so the
// datastore's row locking is the sole source of mutual exclusion: two
// concurrent assignments of the same Pending complaint cannot both
// succeed.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	NextComplaintID(ctx context.Context) (string, error)
	AssignWorker(ctx context.Context, complaintID, workerID string) error
	Complete(ctx context.Context, complaintID, notes, photoURL string) error
	ListByContact(ctx context.Context, contact string) ([]domain.Complaint, error)
	ListOpen(ctx context.Context) ([]domain.Complaint, error)
	ListByWorker(ctx context.Context, workerID string) ([]domain.Complaint, error)
}

type complaintRepository struct {
	pool *pgxpool.Pool
}

// NewComplaintRepository instantiates repository.
func NewComplaintRepository(pool *pgxpool.Pool) ComplaintRepository {
	return &complaintRepository{pool: pool}
}

// NextComplaintID draws the next value from the complaint sequence.
// Formatting happens in Go because lpad would truncate counters past
// the three digit width instead of widening them.
func (r *complaintRepository) NextComplaintID(ctx context.Context) (string, error) {
	var seq int64
	if err := r.pool.QueryRow(ctx, `SELECT nextval('complaint_id_seq')`).Scan(&seq); err != nil {
		return "", err
	}
	return domain.FormatComplaintID(seq), nil
}

func (r *complaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	const query = `
        INSERT INTO complaints (complaint_id, location_qr, description, contact, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		complaint.ComplaintID,
		complaint.LocationQR,
		complaint.Description,
		complaint.Contact,
		complaint.Status,
	).Scan(&complaint.CreatedAt)
}

// AssignWorker transitions a complaint from Pending to Assigned. A
// zero-row result means the complaint is absent or not Pending; both
// are reported as pgx.ErrNoRows, matching the single not-found error
// kind of the API contract.
func (r *complaintRepository) AssignWorker(ctx context.Context, complaintID, workerID string) error {
	const query = `
        UPDATE complaints SET status=$1, assigned_worker_id=$2
        WHERE complaint_id=$3 AND status=$4`

	cmd, err := r.pool.Exec(ctx, query,
		domain.ComplaintStatusAssigned,
		workerID,
		complaintID,
		domain.ComplaintStatusPending,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Complete transitions a complaint from Assigned to Completed, records
// the proof photo path and appends the worker notes to the
// append-only description.
func (r *complaintRepository) Complete(ctx context.Context, complaintID, notes, photoURL string) error {
	const query = `
        UPDATE complaints
        SET status=$1,
            completion_photo_url=$2,
            description = description || E'\n\nWorker Notes: ' || $3
        WHERE complaint_id=$4 AND status=$5`

	cmd, err := r.pool.Exec(ctx, query,
		domain.ComplaintStatusCompleted,
		photoURL,
		notes,
		complaintID,
		domain.ComplaintStatusAssigned,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

const complaintColumns = `
        complaint_id, location_qr, description, contact, status,
        assigned_worker_id, completion_photo_url, created_at`

func (r *complaintRepository) ListByContact(ctx context.Context, contact string) ([]domain.Complaint, error) {
	const query = `
        SELECT` + complaintColumns + `
        FROM complaints WHERE contact=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, contact)
}

// ListOpen returns Pending and Assigned complaints oldest first so the
// longest-waiting items surface at the top of the dashboard.
func (r *complaintRepository) ListOpen(ctx context.Context) ([]domain.Complaint, error) {
	const query = `
        SELECT` + complaintColumns + `
        FROM complaints WHERE status IN ($1, $2) ORDER BY created_at ASC`
	return r.list(ctx, query, domain.ComplaintStatusPending, domain.ComplaintStatusAssigned)
}

func (r *complaintRepository) ListByWorker(ctx context.Context, workerID string) ([]domain.Complaint, error) {
	const query = `
        SELECT` + complaintColumns + `
        FROM complaints WHERE assigned_worker_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, workerID)
}

func (r *complaintRepository) list(ctx context.Context, query string, args ...any) ([]domain.Complaint, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComplaints(rows)
}

func scanComplaints(rows pgx.Rows) ([]domain.Complaint, error) {
	var result []domain.Complaint
	for rows.Next() {
		var complaint domain.Complaint
		if err := rows.Scan(
			&complaint.ComplaintID,
			&complaint.LocationQR,
			&complaint.Description,
			&complaint.Contact,
			&complaint.Status,
			&complaint.AssignedWorkerID,
			&complaint.CompletionPhotoURL,
			&complaint.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, complaint)
	}
	return result, rows.Err()
}
