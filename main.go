package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/SaifulSk/tuition-plus-connect/app/config"
	"github.com/SaifulSk/tuition-plus-connect/app/database"
	"github.com/SaifulSk/tuition-plus-connect/app/metrics"
	"github.com/SaifulSk/tuition-plus-connect/app/routes/attendance"
	"github.com/SaifulSk/tuition-plus-connect/app/routes/auth"
	"github.com/SaifulSk/tuition-plus-connect/app/routes/dashboard"
	"github.com/SaifulSk/tuition-plus-connect/app/routes/fees"
	"github.com/SaifulSk/tuition-plus-connect/app/routes/homework"
	"github.com/SaifulSk/tuition-plus-connect/app/routes/schedule"
	"github.com/SaifulSk/tuition-plus-connect/app/routes/students"
	"github.com/SaifulSk/tuition-plus-connect/app/routes/syllabus"
	"github.com/SaifulSk/tuition-plus-connect/app/routes/tests"
	"github.com/SaifulSk/tuition-plus-connect/app/services"
)

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

func main() {
	config.Load()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	sched, err := services.StartScheduler(config.GetDB(), config.AppConfig.OverdueCron, config.AppConfig.OverdueAfter)
	if err != nil {
		log.Fatal("Failed to start scheduler:", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:      "Tuition Plus Connect",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.AllowedOrigin,
		AllowCredentials: config.AppConfig.AllowedOrigin != "*",
	}))
	app.Use(metrics.Middleware)

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := config.GetDB().Ping(); err != nil {
			return c.Status(503).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", metrics.Handler())

	auth.SetupAuthRoutes(app)
	students.SetupStudentsRoutes(app)
	attendance.SetupAttendanceRoutes(app)
	fees.SetupFeesRoutes(app)
	homework.SetupHomeworkRoutes(app)
	tests.SetupTestsRoutes(app)
	schedule.SetupScheduleRoutes(app)
	syllabus.SetupSyllabusRoutes(app)
	dashboard.SetupDashboardRoutes(app)

	log.Printf("Server starting on port %s", config.AppConfig.Port)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
