package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
)

func asUser(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := &models.User{ID: "u1", IsActive: true}
		for _, name := range roles {
			user.Roles = append(user.Roles, &models.Role{Name: name})
		}
		c.Locals("user", user)
		return c.Next()
	}
}

func TestRequireRole(t *testing.T) {
	ok := func(c *fiber.Ctx) error { return c.SendStatus(200) }

	app := fiber.New()
	app.Get("/teacher-only", asUser(models.RoleTeacher), RequireRole(models.RoleTeacher, models.RoleAdmin), ok)
	app.Get("/parent-denied", asUser(models.RoleParent), RequireRole(models.RoleTeacher, models.RoleAdmin), ok)
	app.Get("/no-user", RequireRole(models.RoleTeacher), ok)

	tests := []struct {
		name string
		path string
		want int
	}{
		{"matching role passes", "/teacher-only", 200},
		{"wrong role is forbidden", "/parent-denied", 403},
		{"missing identity is unauthorized", "/no-user", 401},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestCurrentUser(t *testing.T) {
	app := fiber.New()
	app.Get("/", asUser(models.RoleStudent), func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		require.NotNil(t, user)
		assert.Equal(t, "u1", user.ID)
		assert.True(t, user.HasRole(models.RoleStudent))
		assert.False(t, user.HasRole(models.RoleAdmin))
		return c.SendStatus(200)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
