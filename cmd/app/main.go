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

	"orderbot/cmd"
	httpin "orderbot/internal/adapters/in/http"
	"orderbot/internal/adapters/out/postgres"
	"orderbot/internal/adapters/out/rabbitmq"
	"orderbot/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/spf13/pflag"
)

func main() {
	envFile := pflag.String("env-file", ".env", "dotenv file to load before reading the environment")
	migrate := pflag.Bool("migrate", false, "create the schema and seed the menu before serving")
	pflag.Parse()

	configs, err := cmd.LoadConfig(*envFile)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Connect(ctx, configs.Postgres(), logger)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	if *migrate || configs.DBAutoMigrate {
		if err := migrateDB(ctx, db); err != nil {
			log.Fatalf("Error migrating database: %v", err)
		}
		logger.InfoContext(ctx, "Database schema is up to date")
	}

	var publisher ports.OrderEventPublisher
	if configs.RabbitMQURL != "" {
		p, err := rabbitmq.Dial(configs.RabbitMQURL, configs.RabbitMQExchange, logger)
		if err != nil {
			log.Fatalf("Error connecting to RabbitMQ: %v", err)
		}
		defer func() { _ = p.Close() }()
		publisher = p
	} else {
		logger.WarnContext(ctx, "RABBITMQ_URL is not set, placed orders will not be published")
	}

	app := cmd.NewCompositionRoot(configs, db.Gorm, publisher, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	e, err := newWebServer(&app, logger)
	if err != nil {
		log.Fatalf("Error creating web server: %v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Web server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Web server shutdown failed", "error", err)
	}
}

func migrateDB(ctx context.Context, db *postgres.DB) error {
	if err := postgres.Migrate(ctx, db.Gorm); err != nil {
		return err
	}
	return postgres.SeedMenu(ctx, db.Gorm, postgres.DefaultMenu)
}

func newWebServer(app *cmd.CompositionRoot, logger *slog.Logger) (*echo.Echo, error) {
	server := httpin.NewServer(
		app.CreateAddToOrderCommandHandler(),
		app.CreateRemoveFromOrderCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateTrackOrderQueryHandler(),
		logger,
	)
	return httpin.NewEcho(server, logger)
}
