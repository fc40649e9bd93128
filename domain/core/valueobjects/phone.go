package valueobjects

import (
	"fmt"
	"regexp"

	"orgdir/domain/config"
	pkgerrors "orgdir/pkg/errors"
)

var (
	phoneDigits = regexp.MustCompile(`[^\d]`)
	// optional leading +, then digits/spaces/dashes/parentheses, at least 10 chars
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]{10,}$`)
)

// Phone is a value object for an organization phone number
type Phone struct {
	value string
}

// NewPhone creates a phone with validation using default configuration
func NewPhone(value string) (Phone, error) {
	return NewPhoneWithConfig(value, config.DefaultDomainConfig())
}

// NewPhoneWithConfig creates a phone with validation and configuration
func NewPhoneWithConfig(value string, cfg *config.DomainConfig) (Phone, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	if value == "" {
		return Phone{}, pkgerrors.NewValidationError("organization phone number is empty").
			WithCode(pkgerrors.CodePhoneEmpty)
	}

	digits := phoneDigits.ReplaceAllString(value, "")
	if len(digits) < cfg.MinPhoneDigits || len(digits) > cfg.MaxPhoneDigits {
		return Phone{}, invalidPhone(value)
	}

	if !phonePattern.MatchString(value) {
		return Phone{}, invalidPhone(value)
	}

	return Phone{value: value}, nil
}

func invalidPhone(value string) error {
	return pkgerrors.NewValidationError(
		fmt.Sprintf("invalid organization phone number format: %s", value)).
		WithCode(pkgerrors.CodePhoneInvalid).
		WithDetail("phone", value)
}

// String returns the phone number as entered
func (p Phone) String() string { return p.value }

// Equals checks if two phone numbers are equal
func (p Phone) Equals(other Phone) bool { return p.value == other.value }
