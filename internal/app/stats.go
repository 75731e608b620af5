package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stpnv0/ExploreWithMe/internal/config"
	"github.com/stpnv0/ExploreWithMe/internal/handler"
	"github.com/stpnv0/ExploreWithMe/internal/middleware"
	"github.com/stpnv0/ExploreWithMe/internal/repository"
	"github.com/stpnv0/ExploreWithMe/internal/router"
	"github.com/stpnv0/ExploreWithMe/internal/service"
	"github.com/wb-go/wbf/logger"
)

const statsMigrationsDir = "migrations/stats"

// StatsApp is the statistics service. It owns its own database.
type StatsApp struct {
	cfg        *config.StatsConfig
	log        logger.Logger
	pool       *pgxpool.Pool
	httpServer *http.Server
}

func NewStats(cfg *config.StatsConfig) (*StatsApp, error) {
	app := &StatsApp{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"ExploreWithMe-stats",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = runMigrations("pgx", cfg.Postgres.DSN(), statsMigrationsDir, log); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	hitService := service.NewHitService(repository.NewHitRepo(app.pool), log)
	r := router.InitStatsRouter(
		cfg.Gin.Mode,
		handler.NewStatsHandler(hitService),
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.Recovery(log),
	)
	app.httpServer = newHTTPServer(cfg.Server, r)

	return app, nil
}

func (a *StatsApp) initDB() error {
	poolCfg, err := pgxpool.ParseConfig(a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("parse dsn: %w", err)
	}
	poolCfg.MaxConns = int32(a.cfg.Postgres.MaxOpenConns)
	poolCfg.MaxConnLifetime = a.cfg.Postgres.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	if err = pool.Ping(context.Background()); err != nil {
		pool.Close()
		return fmt.Errorf("pinging database: %w", err)
	}

	a.pool = pool
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *StatsApp) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, a.httpServer, a.log); err != nil {
		return err
	}

	if err := shutdownHTTP(a.httpServer, a.cfg.Server, a.log); err != nil {
		return err
	}

	a.pool.Close()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
