package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tomplanche/vps-back/internal/config"
	"github.com/tomplanche/vps-back/internal/database"
	"github.com/tomplanche/vps-back/internal/handlers"
	"github.com/tomplanche/vps-back/internal/middleware"
	"github.com/tomplanche/vps-back/internal/models"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := models.AutoMigrate(database.DB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "vps-back",
		ServerHeader: "vps-back",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": fiber.Map{
					"message": err.Error(),
				},
			})
		},
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(compress.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS(cfg.AllowedOrigins))

	// Health check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": fiber.Map{
				"message": "Hello, I'm Tom Planche!",
			},
		})
	})

	// Initialize handlers
	sourceHandler := handlers.NewSourceHandler()
	stickerHandler := handlers.NewStickerHandler()
	brewHandler := handlers.NewBrewHandler()

	// Brew routes are public: Homebrew clients cannot send custom headers.
	brewGroup := app.Group("/brew")
	brewGroup.Get("/track/:project/:filename", brewHandler.Track)
	brewGroup.Get("/stats", brewHandler.Stats)

	// Protected routes
	secure := app.Group("/secure", middleware.APIKeyAuth(cfg))

	// Source routes
	secure.Get("/source", sourceHandler.List)
	secure.Post("/source", sourceHandler.Increment)

	// Sticker routes
	secure.Get("/stickers", stickerHandler.List)
	secure.Get("/stickers/:id", stickerHandler.Get)
	secure.Post("/stickers", stickerHandler.Create)

	// Static files
	app.Static("/static", cfg.StaticDir)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Shutting down server...")
		app.Shutdown()
	}()

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	log.Printf("Starting vps-back server on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
