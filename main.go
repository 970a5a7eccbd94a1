package main

import (
	"log"

	"lms/config"
	controllers "lms/controllers/course"
	"lms/database"
	"lms/repository"
	courseRoutes "lms/routers/courseRoutes"
	"lms/services"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Database setup failed: %v", err)
	}

	catalogRepo := repository.NewCatalogRepo(db)
	enrollmentRepo := repository.NewEnrollmentRepo(db)
	progressRepo := repository.NewProgressRepo(db)
	quizScoreRepo := repository.NewQuizScoreRepo(db)
	certificateRepo := repository.NewCertificateRepo(db)
	userRepo := repository.NewUserRepo(db)

	mailer := utils.NewMailer(cfg.SendGridKey, cfg.EmailSender, cfg.BaseURL)

	catalogService := services.NewCatalogService(catalogRepo, enrollmentRepo, progressRepo)
	enrollmentService := services.NewEnrollmentService(catalogRepo, enrollmentRepo)
	progressService := services.NewProgressService(catalogRepo, enrollmentRepo, progressRepo)
	quizService := services.NewQuizService(catalogRepo, quizScoreRepo)
	certificateService := services.NewCertificateService(
		catalogRepo, enrollmentRepo, progressRepo, quizScoreRepo,
		certificateRepo, userRepo, cfg.CertificateDir, mailer,
	)

	ctrl := controllers.NewCourseController(
		catalogService, enrollmentService, progressService, quizService, certificateService,
	)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Generated certificates are served as static files
	app.Static("/certificates", cfg.CertificateDir)

	courseRoutes.SetupCourseRoutes(app, ctrl)

	if _, err := utils.StartMaintenanceScheduler(cfg.MaintenanceCron, cfg.CertificateDir, enrollmentRepo, certificateRepo); err != nil {
		log.Fatalf("Scheduler setup failed: %v", err)
	}

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
