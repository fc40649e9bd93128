package valueobjects

import (
	"unicode/utf8"

	"orgdir/domain/config"
	pkgerrors "orgdir/pkg/errors"
)

// ActivityName is a value object for an activity category name
type ActivityName struct {
	value string
}

// NewActivityName creates an activity name with validation using default configuration
func NewActivityName(value string) (ActivityName, error) {
	return NewActivityNameWithConfig(value, config.DefaultDomainConfig())
}

// NewActivityNameWithConfig creates an activity name with validation and configuration
func NewActivityNameWithConfig(value string, cfg *config.DomainConfig) (ActivityName, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	if value == "" {
		return ActivityName{}, pkgerrors.NewValidationError("activity name is empty").
			WithCode(pkgerrors.CodeActivityNameEmpty)
	}

	if length := utf8.RuneCountInString(value); length > cfg.MaxActivityNameLength {
		return ActivityName{}, pkgerrors.NewValidationError("activity name exceeds maximum length").
			WithCode(pkgerrors.CodeActivityNameTooLong).
			WithDetail("name_length", length).
			WithDetail("max_length", cfg.MaxActivityNameLength)
	}

	return ActivityName{value: value}, nil
}

// String returns the underlying name
func (n ActivityName) String() string { return n.value }

// Equals checks if two activity names are equal
func (n ActivityName) Equals(other ActivityName) bool { return n.value == other.value }
