package tests

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
	"github.com/SaifulSk/tuition-plus-connect/app/routes/auth"
)

func SetupTestsRoutes(app *fiber.App) {
	api := app.Group("/api/tests")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetTestsAPI)
	api.Get("/performance", GetPerformanceAPI)
	api.Get("/:id/results", GetResultsAPI)
	api.Post("/", auth.RequireRole(models.RoleTeacher, models.RoleAdmin), CreateTestAPI)
	api.Put("/:id", auth.RequireRole(models.RoleTeacher, models.RoleAdmin), UpdateTestAPI)
	api.Delete("/:id", auth.RequireRole(models.RoleTeacher, models.RoleAdmin), DeleteTestAPI)
	api.Post("/:id/results", auth.RequireRole(models.RoleTeacher, models.RoleAdmin), RecordResultAPI)
}
