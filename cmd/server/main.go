package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/glamora/internal/config"
	"github.com/example/glamora/internal/database"
	"github.com/example/glamora/internal/routes"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	if cfg.SeedDatabase {
		if err := database.Seed(db); err != nil {
			log.Fatalf("database seeding failed: %v", err)
		}
	}

	app := fiber.New(fiber.Config{
		AppName: "Glamora Backend",
	})

	app.Use(recover.New())
	app.Use(logger.New())

	app.Static("/uploads", cfg.UploadDir)

	routes.Register(app, db, cfg)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
