//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"orgdir/infrastructure/config"
)

// SuperSet is the complete provider set for the application
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideDomainConfig,
	ProvideMetrics,
	ProvidePasswordHasher,
	ProvideTokenManager,
	ProvideRepositories,
	ProvideActivityService,
	ProvideBuildingService,
	ProvideOrganizationService,
	ProvideUserService,
	ProvideAPIKeyService,
	ProvideCommandBus,
	ProvideQueryBus,
	ProvideMediator,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired dependency container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil
}
