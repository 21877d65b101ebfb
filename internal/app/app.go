package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clubhub/clubhub-api/internal/adapters/primary/rest"
	"github.com/clubhub/clubhub-api/pkg/logger"
)

// App represents the main application structure.
type App struct {
	serviceProvider *serviceProvider
	server          *http.Server
}

// NewApp initializes the application and its dependencies.
func NewApp(ctx context.Context) (*App, error) {
	a := &App{}

	err := a.initDeps(ctx)
	if err != nil {
		return nil, fmt.Errorf("new app: %w", err)
	}

	return a, nil
}

// Run starts the HTTP server and blocks until a shutdown signal arrives.
func (a *App) Run() {
	defer a.gracefulShutdown()

	logger.Log.Info("API starting")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("http server stopped: %v", err)
		}
	}()
	logger.Log.Infof("Listening on %s", a.server.Addr)

	sig := <-sigChan
	logger.Log.Infof("Received signal %v, starting graceful shutdown...", sig)
}

// gracefulShutdown handles cleanup of all resources
func (a *App) gracefulShutdown() {
	logger.Log.Info("Starting graceful shutdown...")

	if a.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.server.Shutdown(ctx); err != nil {
			logger.Log.Errorf("Error shutting down http server: %v", err)
		} else {
			logger.Log.Info("HTTP server stopped")
		}
	}

	if a.serviceProvider != nil {
		if a.serviceProvider.redisClient != nil {
			if err := a.serviceProvider.redisClient.Close(); err != nil {
				logger.Log.Errorf("Error closing redis connection: %v", err)
			} else {
				logger.Log.Info("Redis connection closed")
			}
		}

		if a.serviceProvider.db != nil {
			sqlDB, err := a.serviceProvider.db.DB()
			if err != nil {
				logger.Log.Errorf("Failed to get underlying sql.DB: %v", err)
			} else if err := sqlDB.Close(); err != nil {
				logger.Log.Errorf("Error closing database connection: %v", err)
			} else {
				logger.Log.Info("Database connection closed")
			}
		}
	}

	logger.Log.Info("Graceful shutdown completed")

	// Close logger resources last
	if err := logger.Cleanup(); err != nil {
		// Can't log this error as logger is closing
		_ = err
	}
}

// initDeps initializes application dependencies
func (a *App) initDeps(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initServiceProvider,
		a.initLogger,
		a.initServer,
	}

	for _, f := range inits {
		err := f(ctx)
		if err != nil {
			return fmt.Errorf("init deps: %w", err)
		}
	}

	return nil
}

func (a *App) initServiceProvider(_ context.Context) error {
	a.serviceProvider = newServiceProvider()
	return nil
}

func (a *App) initLogger(_ context.Context) error {
	return logger.Init(logger.Config{
		Debug:     a.serviceProvider.cfg.Logger.Debug(),
		LogToFile: a.serviceProvider.cfg.Logger.LogToFile(),
		LogsDir:   a.serviceProvider.cfg.Logger.LogsDir(),
	})
}

func (a *App) initServer(_ context.Context) error {
	if !a.serviceProvider.cfg.Logger.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	rest.Setup(
		engine,
		a.serviceProvider.AuthHandler(),
		a.serviceProvider.ClubHandler(),
		a.serviceProvider.EventHandler(),
		a.serviceProvider.Cfg().Auth.Secret(),
	)

	a.server = &http.Server{
		Addr:              a.serviceProvider.cfg.HTTP.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return nil
}
