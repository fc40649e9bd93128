package di

import (
	"go.uber.org/zap"

	"orgdir/application/commands/bus"
	"orgdir/application/mediator"
	querybus "orgdir/application/queries/bus"
	"orgdir/infrastructure/config"
	"orgdir/pkg/auth"
	"orgdir/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	Repositories *Repositories
	CommandBus   *bus.CommandBus
	QueryBus     *querybus.QueryBus
	Mediator     mediator.IMediator
	TokenManager *auth.TokenManager
	Metrics      *observability.Collector
}

// Close releases resources held by the container
func (c *Container) Close() {
	if c.Repositories != nil {
		c.Repositories.Close()
	}
	if c.Logger != nil {
		c.Logger.Sync()
	}
}
