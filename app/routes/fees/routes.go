package fees

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
	"github.com/SaifulSk/tuition-plus-connect/app/routes/auth"
)

func SetupFeesRoutes(app *fiber.App) {
	api := app.Group("/api/fees")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetFeesAPI)
	api.Get("/summary", GetFeeSummaryAPI)
	api.Post("/", auth.RequireRole(models.RoleTeacher, models.RoleAdmin), CreateFeeAPI)
	api.Put("/:id", auth.RequireRole(models.RoleTeacher, models.RoleAdmin), UpdateFeeAPI)
	api.Post("/:id/pay", auth.RequireRole(models.RoleTeacher, models.RoleAdmin), MarkFeePaidAPI)
}
