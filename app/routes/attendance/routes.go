package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
	"github.com/SaifulSk/tuition-plus-connect/app/routes/auth"
)

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetAttendanceAPI)
	api.Get("/summary", GetAttendanceSummaryAPI)
	api.Get("/date/:date", auth.RequireRole(models.RoleTeacher, models.RoleAdmin), GetAttendanceByDateAPI)
	api.Post("/", auth.RequireRole(models.RoleTeacher, models.RoleAdmin), MarkAttendanceAPI)
}
