package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/assistant"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/scheduler"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/session"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/wizard"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/handlers"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/repositories"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/seed"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/services"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/shared/database"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/shared/middleware"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/shared/utils"

	_ "github.com/MuhamadAgungGumelar/ecoscan-be/cmd/api/docs"
)

// @title EcoScan API
// @version 1.0
// @description Sustainable product catalog, scanner, recycling locator and product creator
// @contact.name API Support
// @contact.email support@ecoscan.app
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.IsDevelopment())
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("🚀 Starting ecoscan-api")

	// Init database
	db, err := database.NewDB(cfg.DatabaseName, cfg.IsDevelopment())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

	if err := seed.Seed(db.GORM); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed demo catalog")
	}

	// Init repositories (use GORM instance)
	productRepo := repositories.NewProductRepo(db.GORM)
	scanRepo := repositories.NewScanRepo(db.GORM)
	pointRepo := repositories.NewRecyclingPointRepo(db.GORM)
	convRepo := repositories.NewConversationRepo(db.GORM)

	// Init assistant (scripted replies behind a typing delay)
	assistantService := assistant.NewService(cfg.AssistantReplyDelay)
	log.Info().Str("provider", assistantService.GetProviderName()).Dur("delay", cfg.AssistantReplyDelay).Msg("🤖 Assistant ready")

	// Init services
	scannerService := services.NewScannerService(productRepo, scanRepo)
	svc := &handlers.Services{
		Sessions:      session.NewStore(),
		Assistant:     assistantService,
		Transcripts:   assistant.NewTranscripts(assistantService),
		Products:      services.NewProductService(productRepo),
		Export:        services.NewExportService(productRepo, export.NewService(), cfg.PublicBaseURL),
		Scanner:       scannerService,
		Recycling:     services.NewRecyclingService(pointRepo),
		Conversations: services.NewConversationService(convRepo),
		Wizard:        services.NewWizardService(wizard.NewStore(), productRepo),
		Dashboard:     services.NewDashboardService(productRepo, convRepo, analytics.NewAggregator(db.GORM)),
		Profile:       services.NewProfileService(productRepo, scannerService),
	}

	// Init scheduler (idle session sweeper)
	sched := scheduler.NewScheduler()
	if err := sched.AddJob("session-sweep", cfg.SessionSweepSchedule, func() {
		svc.Sessions.Sweep(cfg.SessionTTL)
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to schedule session sweep")
	}
	sched.Start()
	defer sched.Stop()

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "EcoScan API",
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSOrigins,
		AllowHeaders:  strings.Join([]string{fiber.HeaderOrigin, fiber.HeaderContentType, fiber.HeaderAccept, session.Header}, ", "),
		ExposeHeaders: strings.Join([]string{session.Header, fiber.HeaderContentDisposition}, ", "),
	}))
	app.Use(middleware.RequestLogger())

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	handlers.RegisterRoutes(app, svc)

	go func() {
		log.Info().Msgf("✅ ecoscan-api running at :%s", cfg.Port)
		log.Info().Msgf("📄 Swagger UI: %s/swagger/", cfg.PublicBaseURL)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Server stopped")
		}
	}()

	// Wait for shutdown signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("🛑 Shutting down ecoscan-api...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}
	log.Info().Msg("👋 Goodbye!")
}
