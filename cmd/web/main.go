package main

import (
	"context"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"magicvilla/internal/apiclient"
	"magicvilla/internal/config"
	"magicvilla/internal/http/middleware"
	"magicvilla/internal/logging"
	"magicvilla/internal/otel"
	"magicvilla/internal/web"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()
	log := logging.New(cfg.LogLevel)
	defer log.Sync()

	shutdownTracing, err := otel.Init(ctx, "magicvilla-web", log)
	if err != nil {
		log.Fatal("tracing_init_failed", zap.Error(err))
	}
	defer shutdownTracing(context.Background())

	// One client for both services; it holds no per-call state.
	client := apiclient.New()
	villas := web.NewVillaService(client, cfg.Web.VillaAPIURL, cfg.Web.APIToken)
	numbers := web.NewVillaNumberService(client, cfg.Web.VillaAPIURL, cfg.Web.APIToken)

	app := fiber.New()
	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))

	web.RegisterRoutes(app, villas, numbers, log)

	addr := ":" + cfg.Web.Port
	log.Info("server_starting", zap.String("addr", addr), zap.String("villa_api_url", cfg.Web.VillaAPIURL))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server_failed", zap.Error(err))
	}
}
