package config

// DomainConfig holds all configurable business rules and constraints
type DomainConfig struct {
	// Activity constraints
	MaxActivityNestingLevel int
	MaxActivityNameLength   int

	// Building constraints
	MaxAddressLength int

	// Organization constraints
	MinPhoneDigits int
	MaxPhoneDigits int

	// User constraints
	MinUsernameLength int
	MaxUsernameLength int
	MinPasswordLength int

	// Query limits
	DefaultPageLimit int
	MaxPageLimit     int
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		MaxActivityNestingLevel: 3,
		MaxActivityNameLength:   255,

		MaxAddressLength: 255,

		MinPhoneDigits: 10,
		MaxPhoneDigits: 15,

		MinUsernameLength: 3,
		MaxUsernameLength: 255,
		MinPasswordLength: 8,

		DefaultPageLimit: 10,
		MaxPageLimit:     100,
	}
}

// LoadDomainConfig loads domain configuration based on environment
func LoadDomainConfig(environment string) *DomainConfig {
	cfg := DefaultDomainConfig()
	if environment == "development" {
		// Deeper taxonomies are convenient when seeding data by hand
		cfg.MaxActivityNestingLevel = 5
		cfg.MaxPageLimit = 1000
	}
	return cfg
}
