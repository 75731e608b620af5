package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stpnv0/ExploreWithMe/internal/config"
	"github.com/stpnv0/ExploreWithMe/internal/handler"
	"github.com/stpnv0/ExploreWithMe/internal/middleware"
	"github.com/stpnv0/ExploreWithMe/internal/repository"
	"github.com/stpnv0/ExploreWithMe/internal/router"
	"github.com/stpnv0/ExploreWithMe/internal/scheduler"
	"github.com/stpnv0/ExploreWithMe/internal/service"
	"github.com/stpnv0/ExploreWithMe/internal/statsclient"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations/ewm"

// App is the main service: events, participation requests and their peripherals.
type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"ExploreWithMe",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = runMigrations("postgres", cfg.Postgres.DSN(), migrationsDir, log); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	app.initServices()

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() {
	tx := repository.NewTxManager(a.db)
	eventRepo := repository.NewEventRepo(a.db)
	requestRepo := repository.NewRequestRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	categoryRepo := repository.NewCategoryRepo(a.db)
	locationRepo := repository.NewLocationRepo(a.db)
	compilationRepo := repository.NewCompilationRepo(a.db, tx)
	commentRepo := repository.NewCommentRepo(a.db)

	stats := statsclient.New(a.cfg.Stats.BaseURL, a.cfg.Stats.Timeout, a.cfg.Stats.Strategy())

	viewService := service.NewViewService(stats, eventRepo, a.cfg.Stats.App, a.cfg.Scheduler.BatchSize, a.log)
	eventService := service.NewEventService(tx, eventRepo, locationRepo, categoryRepo, userRepo, viewService, a.log)
	requestService := service.NewRequestService(tx, requestRepo, eventRepo, userRepo, a.cfg.Requests.CancelOwnerCheck, a.log)
	userService := service.NewUserService(userRepo)
	categoryService := service.NewCategoryService(categoryRepo, eventRepo)
	compilationService := service.NewCompilationService(compilationRepo, eventRepo)
	commentService := service.NewCommentService(commentRepo, eventRepo, userRepo)

	if a.cfg.Scheduler.Enabled {
		a.scheduler = scheduler.New(viewService, a.cfg.Scheduler.Interval, a.log)
	}

	h := handler.NewHandler(eventService, requestService, userService, categoryService, compilationService, commentService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = newHTTPServer(a.cfg.Server, r)
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.scheduler != nil {
		go a.scheduler.Start(ctx)
	}

	if err := serve(ctx, a.httpServer, a.log); err != nil {
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	if err := shutdownHTTP(a.httpServer, a.cfg.Server, a.log); err != nil {
		return err
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func newHTTPServer(cfg config.ServerConfig, h http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// serve blocks until ctx is cancelled or the server fails to run.
func serve(ctx context.Context, srv *http.Server, log logger.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", srv.Addr),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
		return nil
	case err := <-errCh:
		return err
	}
}

func shutdownHTTP(srv *http.Server, cfg config.ServerConfig, log logger.Logger) error {
	log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.WriteTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	return nil
}

func runMigrations(driver, dsn, dir string, log logger.Logger) error {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	log.Info("migrations applied successfully", logger.String("dir", dir))
	return nil
}
