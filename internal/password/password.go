package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor used for all new digests.
const Cost = 12

// Error variables
var (
	ErrTooShort    = errors.New("password must be at least 6 characters long")
	ErrNoLowercase = errors.New("password must contain at least one lowercase letter")
	ErrNoUppercase = errors.New("password must contain at least one uppercase letter")
	ErrNoDigit     = errors.New("password must contain at least one digit")

	// ErrMismatch is returned when the plaintext does not match the digest.
	ErrMismatch = errors.New("password does not match")
	// ErrInvalidDigest is returned when the stored digest is malformed,
	// so callers can tell corruption apart from a wrong password.
	ErrInvalidDigest = errors.New("stored password digest is malformed")
)

// Hash derives a storable digest from a plaintext password.
// Each digest embeds a fresh random salt.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), Cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Compare verifies a plaintext password against a stored digest.
func Compare(plaintext, digest string) error {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return ErrInvalidDigest
	}
}

// ValidateStrength checks password strength rules in order.
// The first violated rule wins.
func ValidateStrength(plaintext string) error {
	if len(plaintext) < 6 {
		return ErrTooShort
	}

	var hasLower, hasUpper, hasDigit bool
	for _, r := range plaintext {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}

	if !hasLower {
		return ErrNoLowercase
	}
	if !hasUpper {
		return ErrNoUppercase
	}
	if !hasDigit {
		return ErrNoDigit
	}
	return nil
}

// IsPolicyViolation reports whether err is one of the strength rule errors.
func IsPolicyViolation(err error) bool {
	return errors.Is(err, ErrTooShort) ||
		errors.Is(err, ErrNoLowercase) ||
		errors.Is(err, ErrNoUppercase) ||
		errors.Is(err, ErrNoDigit)
}
