package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ahmednasr/askme/internal/config"
	"github.com/ahmednasr/askme/internal/handler"
	"github.com/ahmednasr/askme/internal/middleware"
	"github.com/ahmednasr/askme/internal/persona"
	"github.com/ahmednasr/askme/internal/retry"
	"github.com/ahmednasr/askme/internal/service"
)

const shutdownTimeout = 10 * time.Second

// main is the single entry‑point for the REST API.
func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	p, err := persona.Load(cfg.PersonaFile, cfg.UserBio)
	if err != nil {
		return err
	}

	llm, err := service.NewLLM(ctx, cfg)
	if err != nil {
		return err
	}
	if c, ok := llm.(io.Closer); ok {
		defer c.Close()
	}

	policy := retry.Policy{
		MaxAttempts:     cfg.RetryMaxAttempts,
		InitialInterval: cfg.RetryInitialInterval,
		MaxInterval:     cfg.RetryMaxInterval,
		MaxElapsed:      cfg.RetryMaxElapsed,
		AttemptTimeout:  cfg.RetryAttemptTimeout,
	}
	answerSvc := service.NewAnswerService(llm, p, policy, logger)

	logger.Info("configuration loaded",
		zap.String("provider", cfg.Provider),
		zap.String("model", cfg.ActiveModel()),
		zap.String("persona", p.Name),
		zap.Int("retry_max_attempts", policy.MaxAttempts))

	app := newApp(cfg, logger)
	handler.RegisterRoutes(app, answerSvc, handler.NewHealthHandler(cfg.Provider, cfg.ActiveModel()))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting", zap.String("port", cfg.Port))
		return app.Listen(":" + cfg.Port)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(sctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newApp(cfg config.Config, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "askme",
		ReadTimeout:           cfg.ReadTimeout(),
		WriteTimeout:          cfg.WriteTimeout(),
		ErrorHandler:          handler.ErrorHandler(logger),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.AllowedOrigins, ","),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, " + middleware.HeaderRequestID,
	}))
	app.Use(middleware.Logging(logger))
	return app
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.LogDev {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zc.Level = level
	return zc.Build()
}
