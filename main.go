package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"property-service/internal/config"
	"property-service/internal/handler"
	"property-service/internal/logger"
	"property-service/internal/mongo"
	"property-service/internal/repository"
	"property-service/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("property service stopped", logger.Err(err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlx.Connect(cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info("connected to database", "driver", cfg.Database.Driver)

	mongoClient, err := mongo.NewMongoClient(ctx, cfg.Mongo.URI)
	if err != nil {
		return err
	}
	defer mongoClient.Disconnect(context.Background())
	log.Info("connected to MongoDB", "database", cfg.Mongo.Database, "bucket", cfg.Images.Bucket)

	listingRepo := repository.NewListingRepository(db)
	imageRepo, err := repository.NewImageRepository(mongoClient, cfg.Mongo.Database, cfg.Images.Bucket)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: handler.NewRouter(handler.Deps{
			Listings: service.NewListingService(listingRepo),
			Images:   service.NewImageService(imageRepo, cfg.Images.PublicBaseURL),
			Ping:     listingRepo.Ping,
			Logger:   log,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("property service listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
