package services

import (
	"context"

	"go.uber.org/zap"

	"orgdir/application/ports"
	"orgdir/domain/config"
	"orgdir/domain/core/entities"
	"orgdir/domain/core/valueobjects"
	"orgdir/pkg/auth"
	pkgerrors "orgdir/pkg/errors"
)

// UserService manages user accounts and credential verification.
type UserService struct {
	users  ports.UserRepository
	hasher auth.PasswordHasher
	cfg    *config.DomainConfig
	logger *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(
	users ports.UserRepository,
	hasher auth.PasswordHasher,
	cfg *config.DomainConfig,
	logger *zap.Logger,
) *UserService {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &UserService{
		users:  users,
		hasher: hasher,
		cfg:    cfg,
		logger: logger,
	}
}

// Create registers a new user with a unique username
func (s *UserService) Create(ctx context.Context, username, password string) (*entities.User, error) {
	usernameVO, err := valueobjects.NewUsernameWithConfig(username, s.cfg)
	if err != nil {
		return nil, err
	}

	if err := auth.ValidatePasswordPolicy(password, s.cfg.MinPasswordLength); err != nil {
		return nil, err
	}

	exists, err := s.users.UsernameExists(ctx, usernameVO.String())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, pkgerrors.NewUserExistsError(usernameVO.String())
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := entities.NewUser(usernameVO, hash)
	if err := s.users.Add(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Debug("User created",
		zap.String("id", user.ID().String()),
		zap.String("username", usernameVO.String()),
	)

	return user, nil
}

// GetByID returns the user with the given ID, or a not-found error
func (s *UserService) GetByID(ctx context.Context, id valueobjects.UserID) (*entities.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, pkgerrors.NewUserNotFoundError(id.String())
	}
	return user, nil
}

// Authenticate verifies a username/password pair. A missing user still runs
// a hash comparison so both failure paths take comparable time.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*entities.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.hasher.VerifyDummy(password)
		return nil, pkgerrors.NewInvalidCredentialsError()
	}

	if !s.hasher.Verify(user.PasswordHash(), password) {
		return nil, pkgerrors.NewInvalidCredentialsError()
	}

	return user, nil
}
