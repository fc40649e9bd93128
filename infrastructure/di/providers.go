package di

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"orgdir/application/commands"
	"orgdir/application/commands/bus"
	commandhandlers "orgdir/application/commands/handlers"
	"orgdir/application/mediator"
	"orgdir/application/ports"
	"orgdir/application/queries"
	querybus "orgdir/application/queries/bus"
	queryhandlers "orgdir/application/queries/handlers"
	"orgdir/application/services"
	domainconfig "orgdir/domain/config"
	"orgdir/infrastructure/config"
	"orgdir/infrastructure/persistence/memory"
	"orgdir/infrastructure/persistence/postgres"
	"orgdir/pkg/auth"
	"orgdir/pkg/observability"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideDomainConfig loads the business rule configuration
func ProvideDomainConfig(cfg *config.Config) *domainconfig.DomainConfig {
	return domainconfig.LoadDomainConfig(cfg.Environment)
}

// ProvideMetrics creates the Prometheus metrics collector
func ProvideMetrics() *observability.Collector {
	return observability.NewCollector("orgdir")
}

// ProvidePasswordHasher creates the bcrypt password hasher
func ProvidePasswordHasher(cfg *config.Config) auth.PasswordHasher {
	return auth.NewBcryptHasher(cfg.BcryptCost)
}

// ProvideTokenManager creates the JWT token manager. Development gets a
// fixed fallback secret so the server runs without configuration.
func ProvideTokenManager(cfg *config.Config) (*auth.TokenManager, error) {
	secret := cfg.JWTSecret
	if secret == "" && !cfg.IsProduction() {
		secret = "development-secret-change-in-production"
	}
	return auth.NewTokenManager(auth.JWTConfig{
		SecretKey: secret,
		Issuer:    cfg.JWTIssuer,
		Audience:  cfg.JWTAudience,
	})
}

// Repositories bundles the persistence ports behind one provider so the
// memory/Postgres choice is made in a single place.
type Repositories struct {
	Activities    ports.ActivityRepository
	Buildings     ports.BuildingRepository
	Organizations ports.OrganizationRepository
	Users         ports.UserRepository
	APIKeys       ports.APIKeyRepository

	pool *pgxpool.Pool
}

// Close releases the connection pool, if any
func (r *Repositories) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

// ProvideRepositories selects the storage backend from configuration: an
// empty DSN yields the in-memory repositories, anything else Postgres with
// the schema migrated on startup.
func ProvideRepositories(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Repositories, error) {
	if cfg.DatabaseDSN == "" {
		logger.Info("Using in-memory repositories")
		return &Repositories{
			Activities:    memory.NewActivityRepository(),
			Buildings:     memory.NewBuildingRepository(),
			Organizations: memory.NewOrganizationRepository(),
			Users:         memory.NewUserRepository(),
			APIKeys:       memory.NewAPIKeyRepository(),
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("Using Postgres repositories")
	activities := postgres.NewActivityRepository(pool)
	buildings := postgres.NewBuildingRepository(pool)
	return &Repositories{
		Activities:    activities,
		Buildings:     buildings,
		Organizations: postgres.NewOrganizationRepository(pool, buildings, activities),
		Users:         postgres.NewUserRepository(pool),
		APIKeys:       postgres.NewAPIKeyRepository(pool),
		pool:          pool,
	}, nil
}

// ProvideActivityService creates the activity service
func ProvideActivityService(repos *Repositories, domainCfg *domainconfig.DomainConfig, logger *zap.Logger) *services.ActivityService {
	return services.NewActivityService(repos.Activities, domainCfg, logger)
}

// ProvideBuildingService creates the building service
func ProvideBuildingService(repos *Repositories, domainCfg *domainconfig.DomainConfig, logger *zap.Logger) *services.BuildingService {
	return services.NewBuildingService(repos.Buildings, domainCfg, logger)
}

// ProvideOrganizationService creates the organization service
func ProvideOrganizationService(repos *Repositories, domainCfg *domainconfig.DomainConfig, logger *zap.Logger) *services.OrganizationService {
	return services.NewOrganizationService(repos.Organizations, repos.Buildings, repos.Activities, domainCfg, logger)
}

// ProvideUserService creates the user service
func ProvideUserService(repos *Repositories, hasher auth.PasswordHasher, domainCfg *domainconfig.DomainConfig, logger *zap.Logger) *services.UserService {
	return services.NewUserService(repos.Users, hasher, domainCfg, logger)
}

// ProvideAPIKeyService creates the API key service
func ProvideAPIKeyService(repos *Repositories, logger *zap.Logger) *services.APIKeyService {
	return services.NewAPIKeyService(repos.APIKeys, repos.Users, logger)
}

// ProvideCommandBus creates a command bus with every handler registered.
// Registration happens only here, at composition time.
func ProvideCommandBus(
	activities *services.ActivityService,
	buildings *services.BuildingService,
	organizations *services.OrganizationService,
	users *services.UserService,
	keys *services.APIKeyService,
) *bus.CommandBus {
	commandBus := bus.NewCommandBus()

	commandBus.Register(commands.CreateActivityCommand{}, commandhandlers.NewCreateActivityHandler(activities))
	commandBus.Register(commands.CreateBuildingCommand{}, commandhandlers.NewCreateBuildingHandler(buildings))
	commandBus.Register(commands.CreateOrganizationCommand{}, commandhandlers.NewCreateOrganizationHandler(organizations))
	commandBus.Register(commands.CreateUserCommand{}, commandhandlers.NewCreateUserHandler(users))
	commandBus.Register(commands.CreateAPIKeyCommand{}, commandhandlers.NewCreateAPIKeyHandler(keys))
	commandBus.Register(commands.BanAPIKeyCommand{}, commandhandlers.NewBanAPIKeyHandler(keys))

	return commandBus
}

// ProvideQueryBus creates a query bus with every handler registered. When a
// cache TTL is configured, read handlers are wrapped with caching.
func ProvideQueryBus(
	cfg *config.Config,
	activities *services.ActivityService,
	buildings *services.BuildingService,
	organizations *services.OrganizationService,
	users *services.UserService,
	keys *services.APIKeyService,
) *querybus.QueryBus {
	queryBus := querybus.NewQueryBus()

	wrap := func(h querybus.QueryHandler) querybus.QueryHandler { return h }
	if cfg.QueryCacheTTL > 0 {
		caching := querybus.NewCachingMiddleware(NewInMemoryCache(), cfg.QueryCacheTTL)
		wrap = caching.Wrap
	}

	// Registration happens once at composition time; a duplicate here is a
	// programming error, so fail loudly instead of discarding it.
	register := func(queryType querybus.Query, handler querybus.QueryHandler) {
		if err := queryBus.Register(queryType, handler); err != nil {
			panic(err)
		}
	}

	register(queries.GetActivityByIDQuery{}, wrap(queryhandlers.NewGetActivityByIDHandler(activities)))
	register(queries.GetActivitiesQuery{}, wrap(queryhandlers.NewGetActivitiesHandler(activities)))
	register(queries.GetBuildingByIDQuery{}, wrap(queryhandlers.NewGetBuildingByIDHandler(buildings)))
	register(queries.GetBuildingByAddressQuery{}, wrap(queryhandlers.NewGetBuildingByAddressHandler(buildings)))
	register(queries.GetOrganizationByIDQuery{}, wrap(queryhandlers.NewGetOrganizationByIDHandler(organizations)))
	register(queries.SearchOrganizationsByNameQuery{}, wrap(queryhandlers.NewSearchOrganizationsByNameHandler(organizations)))
	register(queries.GetOrganizationsByAddressQuery{}, wrap(queryhandlers.NewGetOrganizationsByAddressHandler(organizations)))
	register(queries.GetOrganizationsByActivityQuery{}, wrap(queryhandlers.NewGetOrganizationsByActivityHandler(organizations)))
	register(queries.GetOrganizationsByRadiusQuery{}, wrap(queryhandlers.NewGetOrganizationsByRadiusHandler(organizations)))
	register(queries.GetOrganizationsByRectangleQuery{}, wrap(queryhandlers.NewGetOrganizationsByRectangleHandler(organizations)))
	register(queries.GetUserByIDQuery{}, wrap(queryhandlers.NewGetUserByIDHandler(users)))

	// Authentication and key verification stay uncached: both have side
	// effects (timing defense, last-used tracking).
	register(queries.AuthenticateUserQuery{}, queryhandlers.NewAuthenticateUserHandler(users))
	register(queries.GetAPIKeyQuery{}, queryhandlers.NewGetAPIKeyHandler(keys))

	return queryBus
}

// ProvideMediator creates the mediator facade over both buses
func ProvideMediator(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	logger *zap.Logger,
	metrics *observability.Collector,
) mediator.IMediator {
	return mediator.NewMediator(commandBus, queryBus, logger, metrics)
}
