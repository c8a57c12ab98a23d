package router

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"Sistem-Manajemen-Parkir/config"
	"Sistem-Manajemen-Parkir/config/middleware"
	_ "Sistem-Manajemen-Parkir/docs"
	"Sistem-Manajemen-Parkir/handlers"
	"Sistem-Manajemen-Parkir/pkg/mailer"
	"Sistem-Manajemen-Parkir/pkg/qr"
	"Sistem-Manajemen-Parkir/repository"
)

func SetupRoutes(app *fiber.App, cfg *config.AppConfig) {
	log.Println("Memulai pendaftaran rute aplikasi...")

	codec := qr.NewCodec(cfg.QR_SECRET)
	mail := mailer.NewMailer(cfg)

	// Inisialisasi Repositories
	userRepo := repository.NewUserRepository()
	estRepo := repository.NewEstablishmentRepository()
	slotRepo := repository.NewSlotRepository()
	txRepo := repository.NewTransactionRepository(slotRepo)

	// Inisialisasi Handlers
	authHandler := handlers.NewAuthHandler(userRepo, mail, cfg)
	userHandler := handlers.NewUserHandler(userRepo)
	estHandler := handlers.NewEstablishmentHandler(estRepo)
	slotHandler := handlers.NewSlotHandler(slotRepo, estRepo)
	txHandler := handlers.NewTransactionHandler(txRepo, slotRepo, codec)
	reportHandler := handlers.NewReportHandler(txRepo)

	// Health check & Docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Sistem Manajemen Parkir API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	// API v1 group
	api := app.Group("/api/v1")

	// Authentication routes
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/verify-otp", authHandler.VerifyOTP)

	// User routes
	protectedUserGroup := api.Group("/users", middleware.AuthMiddleware())
	protectedUserGroup.Post("/change-password", authHandler.ChangePassword)
	protectedUserGroup.Get("/:id", userHandler.GetUserByID)
	protectedUserGroup.Put("/:id", userHandler.UpdateUser)

	// Admin routes
	adminGroup := api.Group("/admin", middleware.AuthMiddleware(), middleware.AdminMiddleware())
	adminGroup.Get("/users", userHandler.GetAllUsers)
	adminGroup.Delete("/users/:id", userHandler.DeleteUser)

	// Establishment routes: baca untuk semua user login, tulis untuk pengelola/admin
	estGroup := api.Group("/establishments", middleware.AuthMiddleware())
	estGroup.Get("/", estHandler.GetAllEstablishments)
	estGroup.Get("/:id", estHandler.GetEstablishmentByID)
	estGroup.Get("/:id/schedule", estHandler.GetSchedule)
	estGroup.Get("/:id/slots", slotHandler.GetSlots)

	pengelolaEstGroup := estGroup.Group("/", middleware.PengelolaMiddleware())
	pengelolaEstGroup.Post("/", estHandler.CreateEstablishment)
	pengelolaEstGroup.Put("/:id", estHandler.UpdateEstablishment)
	pengelolaEstGroup.Delete("/:id", estHandler.DeleteEstablishment)
	pengelolaEstGroup.Post("/:id/slots", slotHandler.CreateSlot)

	// Slot routes
	slotGroup := api.Group("/slots", middleware.AuthMiddleware())
	slotGroup.Get("/:id", slotHandler.GetSlotByID)

	pengelolaSlotGroup := slotGroup.Group("/", middleware.PengelolaMiddleware())
	pengelolaSlotGroup.Put("/:id", slotHandler.UpdateSlot)
	pengelolaSlotGroup.Delete("/:id", slotHandler.DeleteSlot)

	// Transaction routes
	txGroup := api.Group("/transactions", middleware.AuthMiddleware())
	txGroup.Post("/reserve", txHandler.ReserveSlot)
	txGroup.Get("/my-history", txHandler.GetMyTransactions)
	txGroup.Get("/:id", txHandler.GetTransactionByID)
	txGroup.Post("/:id/cancel", txHandler.CancelTransaction)

	// Verifikasi gerbang dijalankan oleh pengelola atau admin
	gateGroup := txGroup.Group("/", middleware.PengelolaMiddleware())
	gateGroup.Post("/verify-entry", txHandler.VerifyEntry)
	gateGroup.Post("/verify-exit", txHandler.VerifyExit)

	// Report routes
	adminGroup.Get("/dashboard-stats", reportHandler.GetDashboardStats)

	log.Println("Semua rute aplikasi berhasil didaftarkan.")
	log.Println("Routes yang tersedia:")
	log.Println("- POST /api/v1/auth/register")
	log.Println("- POST /api/v1/auth/login")
	log.Println("- POST /api/v1/auth/verify-otp")
	log.Println("- POST /api/v1/users/change-password (protected)")
	log.Println("- GET /api/v1/users/:id (protected)")
	log.Println("- PUT /api/v1/users/:id (protected)")
	log.Println("- GET /api/v1/admin/users (admin only)")
	log.Println("- DELETE /api/v1/admin/users/:id (admin only)")
	log.Println("- GET /api/v1/admin/dashboard-stats (admin only)")
	log.Println("- GET /api/v1/establishments (protected)")
	log.Println("- GET /api/v1/establishments/:id (protected)")
	log.Println("- GET /api/v1/establishments/:id/schedule (protected)")
	log.Println("- GET /api/v1/establishments/:id/slots (protected)")
	log.Println("- POST /api/v1/establishments (pengelola/admin)")
	log.Println("- PUT /api/v1/establishments/:id (pengelola/admin)")
	log.Println("- DELETE /api/v1/establishments/:id (pengelola/admin)")
	log.Println("- POST /api/v1/establishments/:id/slots (pengelola/admin)")
	log.Println("- GET /api/v1/slots/:id (protected)")
	log.Println("- PUT /api/v1/slots/:id (pengelola/admin)")
	log.Println("- DELETE /api/v1/slots/:id (pengelola/admin)")
	log.Println("- POST /api/v1/transactions/reserve (protected)")
	log.Println("- GET /api/v1/transactions/my-history (protected)")
	log.Println("- GET /api/v1/transactions/:id (protected)")
	log.Println("- POST /api/v1/transactions/:id/cancel (protected)")
	log.Println("- POST /api/v1/transactions/verify-entry (pengelola/admin)")
	log.Println("- POST /api/v1/transactions/verify-exit (pengelola/admin)")
	log.Println("Swagger documentation tersedia di: /docs/index.html")
}
