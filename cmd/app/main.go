package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medorders/cmd"
	"medorders/internal/adapters/out/postgres"
	"medorders/internal/adapters/out/redis"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, configs, logger); err != nil {
		log.Fatalf("medorders: %v", err)
	}
}

func run(ctx context.Context, configs cmd.Config, logger *slog.Logger) error {
	gormDB, err := postgres.Open(configs.DSN(), configs.GormLogLevel())
	if err != nil {
		return err
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	cache, err := redis.Connect(ctx, configs.RedisURL, "medorders:")
	if err != nil {
		return err
	}
	defer cache.Close()

	app, err := cmd.NewCompositionRoot(configs, gormDB, cache, logger)
	if err != nil {
		return err
	}
	if err = app.BootstrapAdmin(ctx); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	loadDotEnv()

	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		RedisURL:         goDotEnvVariable("REDIS_URL"),
		StatsRefreshCron: goDotEnvVariable("STATS_REFRESH_CRON"),
		StatsCacheTTL:    goDotEnvVariable("STATS_CACHE_TTL"),
		TaxRate:          goDotEnvVariable("TAX_RATE"),
		DeliveryFee:      goDotEnvVariable("DELIVERY_FEE"),
		LogLevel:         goDotEnvVariable("LOG_LEVEL"),
		AdminUsername:    goDotEnvVariable("ADMIN_USERNAME"),
		AdminPassword:    goDotEnvVariable("ADMIN_PASSWORD"),
	}
	return config
}

// loadDotEnv reads .env when present. Variables already set in the
// environment take precedence.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil {
		log.Infof("no .env file loaded: %v", err)
	}
}

func goDotEnvVariable(key string) string {
	return os.Getenv(key)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e, err := app.CreateRouter()
	if err != nil {
		return err
	}
	if port == "" {
		port = "8080"
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "HTTP server listening", "port", port)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.InfoContext(shutdownCtx, "Shutting down HTTP server")
	return e.Shutdown(shutdownCtx)
}
