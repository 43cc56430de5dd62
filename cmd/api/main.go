package main

import (
	"context"
	"strings"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"magicvilla/docs"
	"magicvilla/internal/config"
	"magicvilla/internal/database"
	"magicvilla/internal/database/migration"
	handlers "magicvilla/internal/http/handler"
	"magicvilla/internal/http/middleware"
	"magicvilla/internal/logging"
	"magicvilla/internal/otel"
	"magicvilla/internal/repository/postgres"
	"magicvilla/internal/service"
	"magicvilla/internal/storage"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// @title Magic Villa API
// @version 1.0
// @BasePath /
func main() {
	ctx := context.Background()

	// Configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)
	defer log.Sync()

	shutdownTracing, err := otel.Init(ctx, "magicvilla-api", log)
	if err != nil {
		log.Fatal("tracing_init_failed", zap.Error(err))
	}
	defer shutdownTracing(context.Background())

	db, err := database.Open(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal("db_connect_failed", zap.Error(err))
	}
	defer db.Close()

	if cfg.Database.Migrate {
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			log.Fatal("db_migration_failed", zap.Error(err))
		}
	}

	// Image routes answer 503 when no object storage is configured.
	images := storage.Disabled()
	if cfg.MinIO.Endpoint != "" {
		if images, err = storage.NewMinIO(ctx, cfg.MinIO); err != nil {
			log.Fatal("object_storage_init_failed", zap.Error(err))
		}
	} else {
		log.Warn("object_storage_disabled")
	}

	villaRepo := postgres.NewVillaRepository(db)
	numberRepo := postgres.NewVillaNumberRepository(db)
	villaSvc := service.NewVillaService(villaRepo, images)
	numberSvc := service.NewVillaNumberService(numberRepo, villaRepo)

	prom, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal("metrics_init_failed", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(prom.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app, db, villaSvc, numberSvc, cfg.APIToken)

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
	log.Info("server_starting", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server_failed", zap.Error(err))
	}
}
