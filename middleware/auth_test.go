package middleware_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"gde/config"
	"gde/database"
	"gde/middleware"
	"gde/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.Database = database.DbInstance{Db: db}
	return db
}

func newAuth(ttl time.Duration) *middleware.Auth {
	return middleware.NewAuth(&config.Config{JWTSecret: "test-secret", TokenTTL: ttl})
}

func protectedApp(auth *middleware.Auth, roles ...string) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{auth.Authenticate()}
	if len(roles) > 0 {
		handlers = append(handlers, auth.RequireRole(roles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		user, _ := middleware.CurrentUser(c)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "ok", user.Email)
	})
	app.Get("/protected", handlers...)
	return app
}

func createUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	user := &models.User{
		Email:    email,
		Username: email,
		Password: "irrelevant",
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func get(t *testing.T, app *fiber.App, token string) int {
	req := httptest.NewRequest("GET", "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAuthenticate_ValidToken(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "valid@example.com", models.RoleUser)

	auth := newAuth(time.Hour)
	token, err := auth.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	app := protectedApp(auth)
	assert.Equal(t, fiber.StatusOK, get(t, app, token))
}

func TestAuthenticate_Failures(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "failures@example.com", models.RoleUser)

	auth := newAuth(time.Hour)
	validToken, err := auth.GenerateToken(user)
	require.NoError(t, err)

	expiredAuth := newAuth(-time.Hour)
	expiredToken, err := expiredAuth.GenerateToken(user)
	require.NoError(t, err)

	otherSecret := middleware.NewAuth(&config.Config{JWTSecret: "other-secret", TokenTTL: time.Hour})
	forgedToken, err := otherSecret.GenerateToken(user)
	require.NoError(t, err)

	unknownAuth := newAuth(time.Hour)
	unknownToken, err := unknownAuth.GenerateToken(&models.User{Email: "ghost@example.com"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"missing token", ""},
		{"malformed token", "not-a-token"},
		{"tampered token", validToken + "x"},
		{"expired token", expiredToken},
		{"wrong secret", forgedToken},
		{"unknown subject", unknownToken},
	}

	app := protectedApp(auth)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, fiber.StatusUnauthorized, get(t, app, tt.token))
		})
	}
}

func TestRequireRole(t *testing.T) {
	db := setupDB(t)
	teacher := createUser(t, db, "teacher@example.com", models.RoleTeacher)
	student := createUser(t, db, "student@example.com", models.RoleStudent)
	admin := createUser(t, db, "admin@example.com", models.RoleAdmin)

	auth := newAuth(time.Hour)
	app := protectedApp(auth, models.RoleTeacher)

	teacherToken, err := auth.GenerateToken(teacher)
	require.NoError(t, err)
	studentToken, err := auth.GenerateToken(student)
	require.NoError(t, err)
	adminToken, err := auth.GenerateToken(admin)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, get(t, app, teacherToken))
	assert.Equal(t, fiber.StatusForbidden, get(t, app, studentToken))
	// flat role set, no hierarchy: admin is not implicitly a teacher
	assert.Equal(t, fiber.StatusForbidden, get(t, app, adminToken))
}
