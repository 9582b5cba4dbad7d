package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/complaint-service/internal/domain"
)

// UserRepository defines persistence access for users of any role.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByPhoneAndRole(ctx context.Context, phone string, role domain.Role) (*domain.User, error)
	GetByIDAndRole(ctx context.Context, userID string, role domain.Role) (*domain.User, error)
	PilgrimPhoneExists(ctx context.Context, phone string) (bool, error)
	NextPilgrimID(ctx context.Context) (string, error)
	ListWorkers(ctx context.Context) ([]domain.WorkerRef, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (user_id, name, phone_number, password_hash, role)
        VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		user.UserID,
		user.Name,
		user.PhoneNumber,
		user.PasswordHash,
		user.Role,
	)
	return err
}

func (r *userRepository) GetByPhoneAndRole(ctx context.Context, phone string, role domain.Role) (*domain.User, error) {
	const query = `
        SELECT user_id, name, phone_number, password_hash, role
        FROM users WHERE phone_number=$1 AND role=$2`
	return r.fetchSingle(ctx, query, phone, role)
}

func (r *userRepository) GetByIDAndRole(ctx context.Context, userID string, role domain.Role) (*domain.User, error) {
	const query = `
        SELECT user_id, name, phone_number, password_hash, role
        FROM users WHERE user_id=$1 AND role=$2`
	return r.fetchSingle(ctx, query, userID, role)
}

func (r *userRepository) fetchSingle(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var user domain.User
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&user.UserID,
		&user.Name,
		&user.PhoneNumber,
		&user.PasswordHash,
		&user.Role,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) PilgrimPhoneExists(ctx context.Context, phone string) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1 FROM users WHERE phone_number=$1 AND role=$2
        )`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, phone, domain.RolePilgrim).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// NextPilgrimID draws the next value from the pilgrim sequence. The
// sequence is the source of uniqueness; counting rows at request time
// is not safe under concurrent registrations.
func (r *userRepository) NextPilgrimID(ctx context.Context) (string, error) {
	var seq int64
	if err := r.pool.QueryRow(ctx, `SELECT nextval('pilgrim_id_seq')`).Scan(&seq); err != nil {
		return "", err
	}
	return domain.FormatPilgrimID(seq), nil
}

func (r *userRepository) ListWorkers(ctx context.Context) ([]domain.WorkerRef, error) {
	const query = `SELECT user_id, name FROM users WHERE role=$1 ORDER BY user_id`

	rows, err := r.pool.Query(ctx, query, domain.RoleWorker)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workers []domain.WorkerRef
	for rows.Next() {
		var w domain.WorkerRef
		if err := rows.Scan(&w.UserID, &w.Name); err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}
	return workers, rows.Err()
}
