package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/config"
	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/db"
	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/handler"
	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/middleware"
	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/repository"
	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/router"
	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/service"
	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/storage"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "catalog-api")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	blobs, err := newBlobStore(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to init blob storage: %v", err)
	}

	handler.InitMetrics(pool)
	cache.SetCounters(handler.Metrics.CacheHits, handler.Metrics.CacheMisses)

	videoRepo := repository.NewVideoRepo(pool)
	categoryRepo := repository.NewCategoryRepo(pool)
	genreRepo := repository.NewGenreRepo(pool)
	castMemberRepo := repository.NewCastMemberRepo(pool)

	videoSvc := service.NewVideoService(videoRepo, blobs, cache)
	categorySvc := service.NewCategoryService(categoryRepo)
	genreSvc := service.NewGenreService(genreRepo)
	castMemberSvc := service.NewCastMemberService(castMemberRepo)
	statsSvc := service.NewStatsService(pool)

	purgeWorker := service.NewPurgeWorker(pool, blobs, 30*24*time.Hour, time.Hour)
	go purgeWorker.Start(ctx)
	defer purgeWorker.Stop()

	app := fiber.New(fiber.Config{
		AppName:      "Catalog API",
		ServerHeader: "Catalog",
		BodyLimit:    1 << 30, // video uploads up to 1GB
	})

	router.Setup(app, &router.Handlers{
		Video:      handler.NewVideoHandler(videoSvc, genreSvc),
		Category:   handler.NewCategoryHandler(categorySvc),
		Genre:      handler.NewGenreHandler(genreSvc),
		CastMember: handler.NewCastMemberHandler(castMemberSvc),
		Stats:      handler.NewStatsHandler(statsSvc),
		Export:     handler.NewExportHandler(pool),
		Health:     handler.NewHealthHandler(pool, cache.Client()),
	}, cfg.CORSOrigins)

	log.Printf("catalog backend starting on :%s (env=%s, storage=%s)", cfg.Port, cfg.Environment, cfg.StorageDriver)
	log.Fatal(app.Listen(":" + cfg.Port))
}

func newBlobStore(ctx context.Context, cfg *config.Config) (storage.BlobStore, error) {
	if cfg.StorageDriver == "s3" {
		return storage.NewS3Store(ctx, cfg.S3Bucket, cfg.AWSRegion)
	}
	return storage.NewFSStore(cfg.StorageDir), nil
}
