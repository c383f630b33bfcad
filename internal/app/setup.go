package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/compat_oai/openai"
	"github.com/firebase/genkit/go/plugins/googlegenai"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/time/rate"

	"github.com/aiconic/aiconic/db"
	"github.com/aiconic/aiconic/internal/agent"
	"github.com/aiconic/aiconic/internal/api"
	"github.com/aiconic/aiconic/internal/config"
	"github.com/aiconic/aiconic/internal/icon"
	"github.com/aiconic/aiconic/internal/store"
	"github.com/aiconic/aiconic/internal/style"
	"github.com/aiconic/aiconic/internal/tools"
)

// Setup creates and initializes the application.
// Returns an App with embedded cleanup — call Close() to release.
func Setup(ctx context.Context, cfg *config.Config, logger *slog.Logger) (_ *App, retErr error) {
	if cfg == nil {
		return nil, config.ErrConfigNil
	}
	if logger == nil {
		logger = slog.Default()
	}

	a := &App{Config: cfg, Logger: logger}

	// On error, clean up everything already initialized
	defer func() {
		if retErr != nil {
			if err := a.Close(); err != nil {
				logger.Warn("cleanup during setup failure", "error", err)
			}
		}
	}()

	pool, err := provideDBPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.Pool = pool

	g, err := provideGenkit(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	a.Genkit = g

	a.Styles = style.NewRegistry()

	a.Generator, err = icon.New(icon.Config{
		Genkit:      g,
		Styles:      a.Styles,
		Logger:      logger,
		ModelName:   cfg.FullModelName(),
		Temperature: float64(cfg.Temperature),
	})
	if err != nil {
		return nil, fmt.Errorf("creating icon generator: %w", err)
	}

	a.Store, err = store.New(pool, logger)
	if err != nil {
		return nil, fmt.Errorf("creating store: %w", err)
	}

	a.Toolbox, err = tools.New(tools.Config{
		Genkit:    g,
		Generator: a.Generator,
		Store:     a.Store,
		Logger:    logger,
		ModelName: cfg.FullModelName(),
	})
	if err != nil {
		return nil, fmt.Errorf("creating toolbox: %w", err)
	}

	a.Agent, err = agent.New(agent.Config{
		Genkit:    g,
		Toolbox:   a.Toolbox,
		Styles:    a.Styles,
		Logger:    logger,
		ModelName: cfg.FullModelName(),
		MaxTurns:  cfg.MaxTurns,
		Limiter:   provideLimiter(cfg),
	})
	if err != nil {
		return nil, fmt.Errorf("creating agent: %w", err)
	}

	a.Server, err = api.NewServer(api.ServerConfig{
		Logger:      logger,
		Runner:      a.Agent,
		Store:       a.Store,
		Styles:      a.Styles,
		Pool:        pool,
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		return nil, fmt.Errorf("creating API server: %w", err)
	}

	_, cancel := context.WithCancel(ctx)
	a.cancel = cancel

	return a, nil
}

// provideGenkit initializes Genkit with the configured AI provider plugin.
func provideGenkit(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*genkit.Genkit, error) {
	var g *genkit.Genkit

	switch cfg.Provider {
	case config.ProviderOpenAI:
		g = genkit.Init(ctx, genkit.WithPlugins(&openai.OpenAI{}))
		if g == nil {
			return nil, errors.New("initializing genkit with openai provider")
		}
	default: // googleai
		g = genkit.Init(ctx, genkit.WithPlugins(&googlegenai.GoogleAI{}))
		if g == nil {
			return nil, errors.New("initializing genkit with googleai provider")
		}
	}

	logger.Info("initialized Genkit", "provider", cfg.Provider, "model", cfg.ModelName)
	return g, nil
}

// provideDBPool creates a PostgreSQL connection pool and runs migrations.
// Pool is configured with sensible defaults for connection management.
func provideDBPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	if err := db.Migrate(cfg.PostgresURL()); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.PostgresConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parsing connection config: %w", err)
	}

	poolCfg.MaxConns = 10
	poolCfg.MinConns = 2
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return pool, nil
}

// provideLimiter builds the model-call rate limiter from config. Burst
// scales with the sustained rate so short tool-heavy exchanges are not
// throttled turn by turn.
func provideLimiter(cfg *config.Config) *rate.Limiter {
	burst := int(cfg.RateLimit * 2)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
}
