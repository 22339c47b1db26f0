package marketplaceController_test

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
	marketplaceRoutes "gde/routers/marketplaceRoutes"

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
	marketplaceRoutes.SetupMarketplaceRoutes(app, auth)
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

func signup(t *testing.T, app *fiber.App, email, username, role string) string {
	code, _ := doRequest(t, app, http.MethodPost, "/api/auth/register", fiber.Map{
		"email": email, "username": username, "password": "secret", "role": role,
	}, "")
	require.Equal(t, http.StatusCreated, code)

	code, env := doRequest(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email": email, "password": "secret",
	}, "")
	require.Equal(t, http.StatusOK, code)

	var loginData struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &loginData))
	return loginData.AccessToken
}

func listItems(t *testing.T, app *fiber.App, path string) []models.MarketplaceItem {
	code, env := doRequest(t, app, http.MethodGet, path, nil, "")
	require.Equal(t, http.StatusOK, code)
	var items []models.MarketplaceItem
	require.NoError(t, json.Unmarshal(env.Data, &items))
	return items
}

func TestListItems_SoldFiltering(t *testing.T) {
	app := setupApp(t)
	adminToken := signup(t, app, "admin@example.com", "admin_user", "admin")

	code, _ := doRequest(t, app, http.MethodPost, "/api/marketplace/", fiber.Map{
		"title": "Guitare Yamaha F310", "price": 150.0,
	}, adminToken)
	require.Equal(t, http.StatusCreated, code)

	code, _ = doRequest(t, app, http.MethodPost, "/api/marketplace/", fiber.Map{
		"title": "Métronome Wittner", "price": 45.0,
	}, adminToken)
	require.Equal(t, http.StatusCreated, code)

	code, _ = doRequest(t, app, http.MethodPatch, "/api/marketplace/2/mark-sold", nil, adminToken)
	require.Equal(t, http.StatusOK, code)

	items := listItems(t, app, "/api/marketplace/")
	require.Len(t, items, 1)
	assert.Equal(t, "Guitare Yamaha F310", items[0].Title)

	items = listItems(t, app, "/api/marketplace/?include_sold=true")
	assert.Len(t, items, 2)
}

func TestCreateItem_Validation(t *testing.T) {
	app := setupApp(t)
	adminToken := signup(t, app, "admin@example.com", "admin_user", "admin")

	tests := []struct {
		name  string
		price float64
	}{
		{"zero price", 0},
		{"negative price", -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := doRequest(t, app, http.MethodPost, "/api/marketplace/", fiber.Map{
				"title": "Pupitre", "price": tt.price,
			}, adminToken)
			assert.Equal(t, http.StatusUnprocessableEntity, code)
		})
	}
}

func TestMutations_AdminOnly(t *testing.T) {
	app := setupApp(t)
	adminToken := signup(t, app, "admin@example.com", "admin_user", "admin")
	userToken := signup(t, app, "user@example.com", "plain_user", "user")

	code, _ := doRequest(t, app, http.MethodPost, "/api/marketplace/", fiber.Map{
		"title": "Accordeur Chromatique", "price": 15.0,
	}, adminToken)
	require.Equal(t, http.StatusCreated, code)

	code, _ = doRequest(t, app, http.MethodPost, "/api/marketplace/", fiber.Map{
		"title": "Interdit", "price": 10.0,
	}, userToken)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = doRequest(t, app, http.MethodPut, "/api/marketplace/1", fiber.Map{
		"title": "Interdit", "price": 10.0,
	}, userToken)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = doRequest(t, app, http.MethodPatch, "/api/marketplace/1/mark-sold", nil, userToken)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = doRequest(t, app, http.MethodDelete, "/api/marketplace/1", nil, userToken)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestUpdateAndDelete(t *testing.T) {
	app := setupApp(t)
	adminToken := signup(t, app, "admin@example.com", "admin_user", "admin")

	code, _ := doRequest(t, app, http.MethodPost, "/api/marketplace/", fiber.Map{
		"title": "Clavier Casio", "price": 200.0,
	}, adminToken)
	require.Equal(t, http.StatusCreated, code)

	code, env := doRequest(t, app, http.MethodPut, "/api/marketplace/1", fiber.Map{
		"title": "Clavier Casio CT-S300", "price": 180.0,
	}, adminToken)
	require.Equal(t, http.StatusOK, code)
	var item models.MarketplaceItem
	require.NoError(t, json.Unmarshal(env.Data, &item))
	assert.Equal(t, 180.0, item.Price)

	code, _ = doRequest(t, app, http.MethodDelete, "/api/marketplace/1", nil, adminToken)
	require.Equal(t, http.StatusOK, code)

	code, _ = doRequest(t, app, http.MethodGet, "/api/marketplace/1", nil, "")
	assert.Equal(t, http.StatusNotFound, code)
}
