package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/handler"
	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Video      *handler.VideoHandler
	Category   *handler.CategoryHandler
	Genre      *handler.GenreHandler
	CastMember *handler.CastMemberHandler
	Stats      *handler.StatsHandler
	Export     *handler.ExportHandler
	Health     *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	// Health checks (before API group)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)

	// Prometheus metrics
	app.Get("/metrics", handler.MetricsHandler())

	readLimit := middleware.NewReadRateLimiter().Handler()
	writeLimit := middleware.NewWriteRateLimiter().Handler()
	uploadLimit := middleware.NewUploadRateLimiter().Handler()

	// API routes
	api := app.Group("/api")

	// Video routes — writes carry multipart uploads, so they get the
	// tighter upload limiter.
	api.Get("/videos", h.Video.List, readLimit)
	api.Get("/videos/:id", h.Video.Get, readLimit)
	api.Post("/videos", h.Video.Create, uploadLimit)
	api.Put("/videos/:id", h.Video.Update, uploadLimit)
	api.Delete("/videos/:id", h.Video.Delete, writeLimit)

	// Category routes
	api.Get("/categories", h.Category.List, readLimit)
	api.Get("/categories/:id", h.Category.Get, readLimit)
	api.Post("/categories", h.Category.Create, writeLimit)
	api.Put("/categories/:id", h.Category.Update, writeLimit)
	api.Delete("/categories/:id", h.Category.Delete, writeLimit)

	// Genre routes
	api.Get("/genres", h.Genre.List, readLimit)
	api.Get("/genres/:id", h.Genre.Get, readLimit)
	api.Post("/genres", h.Genre.Create, writeLimit)
	api.Put("/genres/:id", h.Genre.Update, writeLimit)
	api.Delete("/genres/:id", h.Genre.Delete, writeLimit)

	// Cast member routes
	api.Get("/cast-members", h.CastMember.List, readLimit)
	api.Get("/cast-members/:id", h.CastMember.Get, readLimit)
	api.Post("/cast-members", h.CastMember.Create, writeLimit)
	api.Put("/cast-members/:id", h.CastMember.Update, writeLimit)
	api.Delete("/cast-members/:id", h.CastMember.Delete, writeLimit)

	// Stats routes
	api.Get("/stats", h.Stats.GetStats, readLimit)

	// Export routes
	api.Get("/export/videos", h.Export.ExportVideos, readLimit)
}
