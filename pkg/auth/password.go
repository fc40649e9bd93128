package auth

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	pkgerrors "orgdir/pkg/errors"
)

// dummyHash is compared against when the user does not exist, so failed
// logins take the same time whether or not the username is valid.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("timing-equalizer"), bcrypt.DefaultCost)

// PasswordHasher hashes and verifies passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
	VerifyDummy(password string)
}

// BcryptHasher implements PasswordHasher with bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the given cost; values below
// bcrypt.MinCost fall back to bcrypt.DefaultCost
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash of the password
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", pkgerrors.NewInternalError("failed to hash password").WithCause(err)
	}
	return string(hashed), nil
}

// Verify reports whether the password matches the hash
func (h *BcryptHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// VerifyDummy burns the same work as Verify against a throwaway hash
func (h *BcryptHasher) VerifyDummy(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

// ValidatePasswordPolicy checks the minimum password requirements: at least
// minLength characters, with at least one letter and one digit.
func ValidatePasswordPolicy(password string, minLength int) error {
	if len(password) < minLength {
		return pkgerrors.NewPasswordPolicyError("password is too short")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter {
		return pkgerrors.NewPasswordPolicyError("password must contain at least one letter")
	}
	if !hasDigit {
		return pkgerrors.NewPasswordPolicyError("password must contain at least one digit")
	}
	return nil
}
