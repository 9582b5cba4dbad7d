package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/complaint-service/internal/auth"
	"github.com/spec-kit/complaint-service/internal/domain"
	"github.com/spec-kit/complaint-service/internal/repository"
	apperrors "github.com/spec-kit/complaint-service/pkg/util"
)

const uniqueViolationCode = "23505"

// IdentityService resolves registration and login against the users
// table. No session or token is issued: every call re-authenticates
// implicitly by trusting the caller-supplied ID, a known weakness of
// the API contract.
type IdentityService struct {
	users    repository.UserRepository
	verifier auth.Verifier
}

// NewIdentityService builds the service.
func NewIdentityService(users repository.UserRepository, verifier auth.Verifier) *IdentityService {
	return &IdentityService{users: users, verifier: verifier}
}

// RegisterPilgrim creates a pilgrim account with a sequence-generated
// human-readable ID.
func (s *IdentityService) RegisterPilgrim(ctx context.Context, name, phone, password string) (*domain.User, error) {
	if name == "" || phone == "" || password == "" {
		return nil, apperrors.NewValidationError("All fields are required for registration.", nil)
	}

	exists, err := s.users.PilgrimPhoneExists(ctx, phone)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if exists {
		return nil, apperrors.NewConflict("Phone number already registered.", map[string]any{"phone": phone})
	}

	userID, err := s.users.NextPilgrimID(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	stored, err := s.verifier.Encode(password)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	user := &domain.User{
		UserID:       userID,
		Name:         name,
		PhoneNumber:  phone,
		PasswordHash: stored,
		Role:         domain.RolePilgrim,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// the partial unique index on pilgrim phones is the real
		// uniqueness guarantee; the pre-check above only exists for the
		// friendlier conflict message
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, apperrors.NewConflict("Phone number already registered.", map[string]any{"phone": phone})
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// Login authenticates a caller. Pilgrims log in by phone number,
// workers and officials by user ID. Missing rows and credential
// mismatches are indistinguishable to the caller.
func (s *IdentityService) Login(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
	var (
		user *domain.User
		err  error
	)
	if role == domain.RolePilgrim {
		user, err = s.users.GetByPhoneAndRole(ctx, username, role)
	} else {
		user, err = s.users.GetByIDAndRole(ctx, username, role)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invalidCredentials(role)
		}
		return nil, apperrors.MapError(err)
	}

	if err := s.verifier.Verify(user.PasswordHash, password); err != nil {
		return nil, invalidCredentials(role)
	}
	return user, nil
}

func invalidCredentials(role domain.Role) error {
	return apperrors.NewUnauthorized(fmt.Sprintf("Invalid credentials for %s.", role))
}
