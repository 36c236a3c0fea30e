package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"strokescan/internal/classifier"
	"strokescan/internal/classifier/tfserving"
	"strokescan/internal/config"
	"strokescan/internal/core"
	"strokescan/internal/db"
	"strokescan/internal/http/handler"
	"strokescan/internal/http/handler/middleware"
	"strokescan/internal/http/payload"
	"strokescan/internal/http/server"
	"strokescan/internal/http/view"
	"strokescan/internal/metrics"
	"strokescan/internal/repository"
	"strokescan/internal/storage"
	"strokescan/pkg/jwt"
	"strokescan/pkg/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		log.NewZapLogger("strokescan", log.ParseLevel("info")).Errorw("failed to create config", "error", err)
		return err
	}

	logger := log.NewZapLogger("strokescan", log.ParseLevel(config.LogLevel))
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	dbConn, err := db.Open(logger, config.DBDriver, config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err, "driver", config.DBDriver)
		return err
	}
	defer dbConn.Close()

	// repository
	repo := repository.NewPredictionRepository(dbConn)

	var seed []repository.User
	if config.AdminPassword != "" {
		admin, err := core.NewAdminUser(config.AdminPassword)
		if err != nil {
			logger.Errorw("failed to build admin user", "error", err)
			return err
		}
		seed = append(seed, admin)
	}

	err = repo.MigrateAndSeed(ctx, seed...)
	if err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	images, err := newImageStore(ctx, config)
	if err != nil {
		logger.Errorw("failed to set up image storage", "error", err, "backend", config.StorageBackend)
		return err
	}

	// metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.New(registry)

	// model
	model := tfserving.NewModel(
		&http.Client{Timeout: config.ModelTimeout},
		config.ModelServerURL,
		config.ModelName)

	loadCtx, cancel := context.WithTimeout(ctx, config.ModelTimeout)
	err = model.Load(loadCtx)
	cancel()
	if err != nil {
		logger.Errorw("failed to load model", "error", err, "model", config.ModelName, "url", config.ModelServerURL)
		return err
	}

	strokeClassifier := classifier.NewClassifier(logger, model, appMetrics)

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.SessionSecret))

	// strokescan
	scan := core.NewStrokeScan(
		logger,
		repo,
		jwtService,
		strokeClassifier,
		images,
		config.SessionTTL)

	renderer, err := view.NewRenderer()
	if err != nil {
		logger.Errorw("failed to parse templates", "error", err)
		return err
	}

	cookie := middleware.SessionCookie{
		TTL:    config.SessionTTL,
		Secure: config.CookieSecure,
	}

	// handler
	pageHlr := handler.NewPageHandler(
		logger,
		payload.DecodeValidator{},
		scan,
		renderer,
		appMetrics,
		cookie,
		config.MaxUploadBytes)

	hdlr := newRouter(logger, pageHlr, scan, cookie, appMetrics, registry)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func newImageStore(ctx context.Context, cfg config.App) (core.ImageStore, error) {
	switch cfg.StorageBackend {
	case config.StorageS3:
		client, err := storage.NewS3Client(ctx, storage.S3Options{
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
		})
		if err != nil {
			return nil, err
		}
		return storage.NewS3Store(client, cfg.S3.Bucket), nil
	default:
		store, err := storage.NewLocalStore(cfg.UploadDir)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
