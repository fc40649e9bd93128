package valueobjects

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"orgdir/domain/config"
	pkgerrors "orgdir/pkg/errors"
)

// letters, digits and underscores, starting with a letter or digit
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_]*$`)

// Username is a value object for a user login name
type Username struct {
	value string
}

// NewUsername creates a username with validation using default configuration
func NewUsername(value string) (Username, error) {
	return NewUsernameWithConfig(value, config.DefaultDomainConfig())
}

// NewUsernameWithConfig creates a username with validation and configuration
func NewUsernameWithConfig(value string, cfg *config.DomainConfig) (Username, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	if value == "" {
		return Username{}, pkgerrors.NewValidationError("username is empty").
			WithCode(pkgerrors.CodeUsernameEmpty)
	}

	length := utf8.RuneCountInString(value)
	if length < cfg.MinUsernameLength {
		return Username{}, invalidUsername(value,
			fmt.Sprintf("must be at least %d characters long", cfg.MinUsernameLength))
	}
	if length > cfg.MaxUsernameLength {
		return Username{}, invalidUsername(value,
			fmt.Sprintf("must be at most %d characters long", cfg.MaxUsernameLength))
	}

	if !usernamePattern.MatchString(value) {
		return Username{}, invalidUsername(value,
			"can only contain letters, digits, and underscores, and must start with a letter or digit")
	}

	return Username{value: value}, nil
}

func invalidUsername(value, reason string) error {
	return pkgerrors.NewValidationError(fmt.Sprintf("invalid username: %s", reason)).
		WithCode(pkgerrors.CodeUsernameInvalid).
		WithDetail("username", value)
}

// String returns the underlying username
func (u Username) String() string { return u.value }

// Equals checks if two usernames are equal
func (u Username) Equals(other Username) bool { return u.value == other.value }
