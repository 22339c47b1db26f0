package authController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gde/config"
	"gde/database"
	"gde/middleware"
	"gde/models"
	authRoutes "gde/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) *fiber.App {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.Database = database.DbInstance{Db: db}

	auth := middleware.NewAuth(&config.Config{JWTSecret: "test-secret", TokenTTL: time.Hour})
	app := fiber.New()
	authRoutes.SetupAuthRoutes(app, auth)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (int, envelope) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func registerBody(email, username string) fiber.Map {
	return fiber.Map{
		"email":    email,
		"username": username,
		"password": "x",
		"role":     "student",
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	app := setupApp(t)

	code, _ := doRequest(t, app, http.MethodPost, "/api/auth/register", registerBody("dup@example.com", "first_user"), "")
	require.Equal(t, http.StatusCreated, code)

	code, env := doRequest(t, app, http.MethodPost, "/api/auth/register", registerBody("dup@example.com", "second_user"), "")
	assert.Equal(t, http.StatusConflict, code)
	assert.False(t, env.Status)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	app := setupApp(t)

	code, _ := doRequest(t, app, http.MethodPost, "/api/auth/register", registerBody("one@example.com", "same_name"), "")
	require.Equal(t, http.StatusCreated, code)

	code, _ = doRequest(t, app, http.MethodPost, "/api/auth/register", registerBody("two@example.com", "same_name"), "")
	assert.Equal(t, http.StatusConflict, code)
}

func TestRegister_InvalidBody(t *testing.T) {
	app := setupApp(t)

	code, _ := doRequest(t, app, http.MethodPost, "/api/auth/register", fiber.Map{
		"email":    "not-an-email",
		"username": "ok_name",
		"password": "x",
	}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	code, _ = doRequest(t, app, http.MethodPost, "/api/auth/register", fiber.Map{
		"email":    "role@example.com",
		"username": "role_name",
		"password": "x",
		"role":     "superadmin",
	}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestLogin_WrongPassword(t *testing.T) {
	app := setupApp(t)

	code, _ := doRequest(t, app, http.MethodPost, "/api/auth/register", registerBody("login@example.com", "login_user"), "")
	require.Equal(t, http.StatusCreated, code)

	code, _ = doRequest(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "login@example.com",
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestLogin_InactiveUser(t *testing.T) {
	app := setupApp(t)

	code, _ := doRequest(t, app, http.MethodPost, "/api/auth/register", registerBody("inactive@example.com", "inactive_user"), "")
	require.Equal(t, http.StatusCreated, code)

	db := database.Database.Db
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "inactive@example.com").Update("is_active", false).Error)

	code, _ = doRequest(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "inactive@example.com",
		"password": "x",
	}, "")
	assert.Equal(t, http.StatusBadRequest, code)
}

// Register, login and fetch the profile end to end.
func TestRegisterLoginMe(t *testing.T) {
	app := setupApp(t)

	code, _ := doRequest(t, app, http.MethodPost, "/api/auth/register", registerBody("alice@example.com", "alice_dubois"), "")
	require.Equal(t, http.StatusCreated, code)

	code, env := doRequest(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "alice@example.com",
		"password": "x",
	}, "")
	require.Equal(t, http.StatusOK, code)

	var loginData struct {
		AccessToken string      `json:"access_token"`
		TokenType   string      `json:"token_type"`
		User        models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &loginData))
	require.NotEmpty(t, loginData.AccessToken)
	assert.Equal(t, "bearer", loginData.TokenType)

	code, env = doRequest(t, app, http.MethodGet, "/api/auth/me", nil, loginData.AccessToken)
	require.Equal(t, http.StatusOK, code)

	var me models.User
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "alice_dubois", me.Username)
	assert.Equal(t, models.RoleStudent, me.Role)
}

func TestInstrumentMembership(t *testing.T) {
	app := setupApp(t)
	db := database.Database.Db

	instrument := models.Instrument{Name: "Piano"}
	require.NoError(t, db.Create(&instrument).Error)

	code, _ := doRequest(t, app, http.MethodPost, "/api/auth/register", registerBody("inst@example.com", "inst_user"), "")
	require.Equal(t, http.StatusCreated, code)

	code, env := doRequest(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "inst@example.com",
		"password": "x",
	}, "")
	require.Equal(t, http.StatusOK, code)
	var loginData struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &loginData))
	token := loginData.AccessToken

	// unknown instrument
	code, _ = doRequest(t, app, http.MethodPost, "/api/auth/me/instruments/999", nil, token)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = doRequest(t, app, http.MethodPost, "/api/auth/me/instruments/1", nil, token)
	require.Equal(t, http.StatusOK, code)

	code, env = doRequest(t, app, http.MethodGet, "/api/auth/me", nil, token)
	require.Equal(t, http.StatusOK, code)
	var me models.User
	require.NoError(t, json.Unmarshal(env.Data, &me))
	require.Len(t, me.Instruments, 1)
	assert.Equal(t, "Piano", me.Instruments[0].Name)

	code, _ = doRequest(t, app, http.MethodDelete, "/api/auth/me/instruments/1", nil, token)
	require.Equal(t, http.StatusOK, code)

	code, env = doRequest(t, app, http.MethodGet, "/api/auth/me", nil, token)
	require.Equal(t, http.StatusOK, code)
	me = models.User{}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Empty(t, me.Instruments)
}
