package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/mobilityworks/roadnet/internal/config"
	"github.com/mobilityworks/roadnet/internal/database"
	"github.com/mobilityworks/roadnet/internal/handlers"
	"github.com/mobilityworks/roadnet/internal/middleware"
	"github.com/mobilityworks/roadnet/internal/types"
	"github.com/mobilityworks/roadnet/internal/utils"

	_ "github.com/mobilityworks/roadnet/docs/api" // Swagger docs
)

// @title Road Management API
// @version 1.0
// @description Multi-tenant road network management service: JWT auth, customer tenants, versioned GeoJSON road networks.

// @host localhost:8000
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Enable spatial support, then migrate and seed
	if err := database.Bootstrap(cfg, db); err != nil {
		log.Fatalf("Failed to bootstrap database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if cfg.SeedDemoData {
		if err := database.Seed(cfg, db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppTitle,
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Prometheus metrics
	prometheus := fiberprometheus.New("roadnet")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api/v1
	api := app.Group("/api/v1")

	// Version middleware
	api.Use(middleware.VersionMiddleware(cfg.AppVersion))

	// Create handlers
	authHandler := &handlers.AuthHandler{Cfg: cfg, DB: db}
	customerHandler := &handlers.CustomerHandler{DB: db}
	networkHandler := &handlers.NetworkHandler{DB: db}
	healthHandler := &handlers.HealthHandler{Cfg: cfg, DB: db}

	// Health check (public)
	api.Get("/health_check", healthHandler.HealthCheck)

	// Auth routes
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/register", middleware.AuthAdmin(cfg, db), authHandler.Register)

	// Customer routes (admin only)
	api.Post("/customers", middleware.AuthAdmin(cfg, db), customerHandler.CreateCustomer)
	api.Get("/customers", middleware.AuthAdmin(cfg, db), customerHandler.ListCustomers)

	// Road network routes (any authenticated user, tenant-scoped)
	api.Post("/road-network", middleware.AuthUser(cfg, db), networkHandler.CreateNetwork)
	api.Put("/road-network", middleware.AuthUser(cfg, db), networkHandler.UpdateNetwork)
	api.Get("/road-network", middleware.AuthUser(cfg, db), networkHandler.ListNetworks)
	api.Get("/road-network/edges", middleware.AuthUser(cfg, db), networkHandler.GetNetworkEdges)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Resource Not Found")
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	log.Printf("Starting %s on port %s", cfg.AppTitle, cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler renders every unhandled error as the standard envelope
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	detail := "Internal Server Error"

	var customErr *types.CustomError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &customErr):
		code = customErr.Code
		detail = customErr.Message
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		detail = fiberErr.Message
	}

	return utils.ErrorResponse(c, code, detail)
}
