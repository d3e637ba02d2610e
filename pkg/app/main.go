// Package app holds the shared infrastructure handed to every bounded context.
package app

import (
	"github.com/gorilla/sessions"

	"github.com/ralungei/fusion-procurement/pkg/cache"
	"github.com/ralungei/fusion-procurement/pkg/config"
	"github.com/ralungei/fusion-procurement/pkg/database"
	"github.com/ralungei/fusion-procurement/pkg/events"
	"github.com/ralungei/fusion-procurement/pkg/fusion"
	"github.com/ralungei/fusion-procurement/pkg/logger"
)

// Application is built once in main and passed to each context's route
// registration. Use the context-aware logger methods inside requests so
// trace_id, span_id and request_id are attached:
//
//	app.Logger.InfoContext(ctx, "listing built", "products", n)
//
// Fields that a process does not need are nil: the worker has no Fusion
// client or session store.
type Application struct {
	Config       *config.Config
	Db           *database.Database
	Logger       logger.Logger
	EventBus     *events.EventBus
	Redis        *cache.RedisClient
	Fusion       *fusion.Client
	SessionStore sessions.Store
}
