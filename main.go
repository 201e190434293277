package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"hr-management-backend/config"
	_ "hr-management-backend/docs"
	"hr-management-backend/repository"
	"hr-management-backend/router"
	"hr-management-backend/seeder"
)

// @title HR Management API
// @version 1.0
// @description Backend API for employee records, attendance, trips, meetings, timesheets, trainings, feedback, announcements, leave and payroll.
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:5000
// @BasePath /api
// @schemes http
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a PASETO token.
func main() {
	cfg := config.LoadConfig()

	store, err := repository.OpenStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open data store: %v", err)
	}

	seeder.SeedUsers(repository.NewUserRepository(store))

	app := fiber.New()
	config.SetupCORS(app)
	app.Use(logger.New())

	if err := router.SetupRoutes(app, store, cfg); err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	log.Printf("HR Management Backend running on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Printf("CORS enabled for origins: %v", config.GetAllowedOrigins())
	log.Fatal(app.Listen(":" + cfg.Port))
}
