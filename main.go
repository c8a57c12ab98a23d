package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"Sistem-Manajemen-Parkir/config"
	_ "Sistem-Manajemen-Parkir/docs" // Import docs untuk swagger
	"Sistem-Manajemen-Parkir/repository"
	"Sistem-Manajemen-Parkir/router"
	"Sistem-Manajemen-Parkir/seeder"

	_ "time/tzdata"
)

// @title Sistem Manajemen Parkir API
// @version 1.0
// @description API untuk sistem manajemen parkir dengan reservasi slot berbasis QR, verifikasi gerbang masuk/keluar, dan manajemen establishment
// @termsOfService https://github.com/your-repo/terms/
//
// @contact.name API Support
// @contact.url https://github.com/your-repo
// @contact.email support@example.com
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3000
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and PASETO token.
//
// @tag.name Auth
// @tag.description Authentication endpoints
//
// @tag.name Users
// @tag.description User management endpoints
//
// @tag.name Establishments
// @tag.description Establishment and schedule management endpoints
//
// @tag.name Slots
// @tag.description Parking slot management endpoints
//
// @tag.name Transactions
// @tag.description Reservation and gate verification endpoints
//
// @tag.name Reports
// @tag.description Reporting endpoints for admin
func main() {

	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file tidak ditemukan, menggunakan environment variables sistem")
	}

	cfg := config.LoadConfig()

	config.MongoConnect()
	config.InitDatabase()

	defer config.DisconnectDB()

	// Jalankan dengan argumen "seed" untuk mengisi data awal lalu berhenti.
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		userRepo := repository.NewUserRepository()
		estRepo := repository.NewEstablishmentRepository()
		slotRepo := repository.NewSlotRepository()
		seeder.SeedUsers(userRepo)
		seeder.SeedEstablishments(estRepo, slotRepo, userRepo)
		return
	}

	app := fiber.New()

	// Setup CORS menggunakan konfigurasi dari cors.go
	config.SetupCORS(app)

	app.Use(logger.New())

	// Setup routes (termasuk Swagger di dalamnya)
	router.SetupRoutes(app, cfg)

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Printf("Health Check: http://localhost:%s/", cfg.Port)
	log.Printf("CORS enabled for origins: %v", config.GetAllowedOrigins())
	log.Fatal(app.Listen(":" + cfg.Port))
}
