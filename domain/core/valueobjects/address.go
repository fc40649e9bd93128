package valueobjects

import (
	"unicode/utf8"

	"orgdir/domain/config"
	pkgerrors "orgdir/pkg/errors"
)

// Address is a value object for a building address
type Address struct {
	value string
}

// NewAddress creates an address with validation using default configuration
func NewAddress(value string) (Address, error) {
	return NewAddressWithConfig(value, config.DefaultDomainConfig())
}

// NewAddressWithConfig creates an address with validation and configuration
func NewAddressWithConfig(value string, cfg *config.DomainConfig) (Address, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	if value == "" {
		return Address{}, pkgerrors.NewValidationError("building address is empty").
			WithCode(pkgerrors.CodeAddressEmpty)
	}

	if length := utf8.RuneCountInString(value); length > cfg.MaxAddressLength {
		return Address{}, pkgerrors.NewValidationError("building address exceeds maximum length").
			WithCode(pkgerrors.CodeAddressTooLong).
			WithDetail("address_length", length).
			WithDetail("max_length", cfg.MaxAddressLength)
	}

	return Address{value: value}, nil
}

// String returns the underlying address
func (a Address) String() string { return a.value }

// Equals checks if two addresses are equal
func (a Address) Equals(other Address) bool { return a.value == other.value }
