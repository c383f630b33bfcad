// Package app wires the application together: configuration, database
// pool, Genkit, the icon toolchain and the HTTP API server.
package app

import (
	"context"
	"log/slog"

	"github.com/firebase/genkit/go/genkit"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aiconic/aiconic/internal/agent"
	"github.com/aiconic/aiconic/internal/api"
	"github.com/aiconic/aiconic/internal/config"
	"github.com/aiconic/aiconic/internal/icon"
	"github.com/aiconic/aiconic/internal/store"
	"github.com/aiconic/aiconic/internal/style"
	"github.com/aiconic/aiconic/internal/tools"
)

// App is the application container. All fields are initialized by Setup
// and valid until Close.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	Genkit *genkit.Genkit
	Pool   *pgxpool.Pool

	Styles    *style.Registry
	Generator *icon.Generator
	Store     *store.Store
	Toolbox   *tools.Toolbox
	Agent     *agent.Agent
	Server    *api.Server

	cancel context.CancelFunc
}

// Close releases all resources held by the App. Safe to call on a
// partially initialized App (Setup calls it on failure).
func (a *App) Close() error {
	if a.cancel != nil {
		a.cancel()
	}
	if a.Pool != nil {
		a.Pool.Close()
		if a.Logger != nil {
			a.Logger.Debug("database pool closed")
		}
	}
	return nil
}
