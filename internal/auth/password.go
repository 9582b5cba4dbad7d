package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/complaint-service/internal/config"
)

// ErrCredentialMismatch is returned when verification fails for any
// reason; callers surface it uniformly as an auth failure.
var ErrCredentialMismatch = errors.New("credential mismatch")

// Verifier is the pluggable credential verification strategy. Encode
// produces the stored form at registration, Verify checks a supplied
// password against the stored form at login.
type Verifier interface {
	Encode(plain string) (string, error)
	Verify(stored, supplied string) error
}

// NewVerifier selects an implementation from config. "plain" is the
// default because the wire contract compares passwords verbatim;
// "bcrypt" is the implementation any real deployment must run with.
func NewVerifier(cfg config.AuthConfig) Verifier {
	if cfg.CredentialMode == "bcrypt" {
		return BcryptVerifier{Cost: cfg.BcryptCost}
	}
	return PlainVerifier{}
}

// PlainVerifier stores and compares passwords verbatim. This is a mock
// credential scheme carried over for wire compatibility; it offers no
// security whatsoever.
type PlainVerifier struct{}

func (PlainVerifier) Encode(plain string) (string, error) {
	return plain, nil
}

func (PlainVerifier) Verify(stored, supplied string) error {
	if stored != supplied {
		return ErrCredentialMismatch
	}
	return nil
}

// BcryptVerifier stores a salted one-way hash and compares in constant
// time.
type BcryptVerifier struct {
	Cost int
}

func (v BcryptVerifier) Encode(plain string) (string, error) {
	cost := v.Cost
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (v BcryptVerifier) Verify(stored, supplied string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)); err != nil {
		return ErrCredentialMismatch
	}
	return nil
}
