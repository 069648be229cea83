package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"alumnihub/docs"
	"alumnihub/internal/config"
	"alumnihub/internal/database"
	"alumnihub/internal/database/migration"
	"alumnihub/internal/extract"
	handlers "alumnihub/internal/http/handler"
	"alumnihub/internal/http/middleware"
	"alumnihub/internal/notify"
	"alumnihub/internal/otel"
	"alumnihub/internal/repository/postgres"
	"alumnihub/internal/service"
	"alumnihub/internal/storage"
)

// @title Alumni Community Portal API
// @version 1.0
// @BasePath /
func main() {
	ctx := context.Background()
	loc := time.UTC

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	// Tracing first so the DB driver and HTTP layer pick up the provider.
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(ctx); err != nil {
			log.Printf("tracing shutdown: %v", err)
		}
	}()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Notification dispatch runs on its own workers; a full queue drops mail
	// rather than blocking a request.
	dispatcher := notify.NewDispatcher(notify.NewSMTPSender(cfg.SMTP), cfg.Notify.QueueSize, cfg.Notify.Workers)
	defer dispatcher.Close()

	userRepo := postgres.NewUserPostgres(db)
	msgRepo := postgres.NewMessagePostgres(db)
	resumeRepo := postgres.NewResumePostgres(db)
	donationRepo := postgres.NewDonationPostgres(db)

	userSvc := service.NewUserService(userRepo)
	msgSvc := service.NewMessageService(msgRepo, userRepo, dispatcher)
	resumeSvc := service.NewResumeService(resumeRepo, extract.NewDocconvExtractor(cfg.Upload.TempDir), cfg.Upload.MaxBytes)
	donationSvc := service.NewDonationService(objStore, donationRepo, cfg.Upload.MaxBytes)

	app := fiber.New(fiber.Config{
		// Multipart overhead on top of the 2 MiB payload cap.
		BodyLimit:    int(cfg.Upload.MaxBytes) + 1<<20,
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register prometheus metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app, db, userSvc, msgSvc, resumeSvc, donationSvc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
