package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/glamora/internal/cart"
	"github.com/example/glamora/internal/config"
	"github.com/example/glamora/internal/database"
	"github.com/example/glamora/internal/identity"
	"github.com/example/glamora/internal/models"
	"github.com/example/glamora/internal/routes"
	"github.com/example/glamora/internal/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		AppPort:         "0",
		JWTSecret:       "test-secret",
		TokenExpires:    time.Hour,
		UploadDir:       t.TempDir(),
		MaxUploadSize:   5 * 1024 * 1024,
		RateLimitMax:    1000,
		RateLimitWindow: time.Minute,
	}
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()

	db := newTestDB(t)
	cfg := testConfig(t)

	app := fiber.New()
	routes.Register(app, db, cfg)
	return app, db, cfg
}

func createUser(t *testing.T, db *gorm.DB, cfg *config.Config, email string) (models.User, string) {
	t.Helper()

	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	user := models.User{Name: "Jane Doe", Email: email, PasswordHash: hash}
	require.NoError(t, db.Create(&user).Error)

	token, err := utils.GenerateToken(cfg.JWTSecret, user.ID, cfg.TokenExpires)
	require.NoError(t, err)
	return user, token
}

func seedCheckoutData(t *testing.T, db *gorm.DB) (models.Product, models.RentalPeriod, models.DeliveryOption) {
	t.Helper()

	product := models.Product{Name: "Pearl Necklace", BasePrice: 65.99, Stock: 3, Active: true}
	require.NoError(t, db.Create(&product).Error)

	period := models.RentalPeriod{Name: "7 Days", Days: 7, Multiplier: 1}
	require.NoError(t, db.Create(&period).Error)

	delivery := models.DeliveryOption{Name: "Standard Delivery", Price: 5.99, Days: 7}
	require.NoError(t, db.Create(&delivery).Error)
	return product, period, delivery
}

func jsonRequest(method, path string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func shippingPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"address": "1 Harbor Way",
		"city":    "Portsmouth",
		"state":   "NH",
		"zip":     "03801",
		"country": "USA",
	}
}

func TestCreateOrderEndpoint(t *testing.T) {
	app, db, cfg := setupApp(t)
	user, token := createUser(t, db, cfg, "jane@example.com")
	product, period, delivery := seedCheckoutData(t, db)

	carts := cart.NewStore(db)
	_, err := carts.AddItem(identity.ForUser(user.ID), product.ID, period.ID)
	require.NoError(t, err)

	req := jsonRequest(http.MethodPost, "/api/orders/", map[string]interface{}{
		"shipping":    shippingPayload(),
		"delivery_id": delivery.ID.String(),
	})
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	number := data["order_number"].(string)
	assert.True(t, strings.HasPrefix(number, "ORD"))

	var record models.Order
	require.NoError(t, db.Preload("Items").First(&record, "order_number = ?", number).Error)
	assert.Equal(t, 71.98, record.Total)
	assert.Len(t, record.Items, 1)

	items, err := carts.Items(identity.ForUser(user.ID))
	require.NoError(t, err)
	assert.Empty(t, items, "cart should be empty after checkout")
}

func TestCreateOrderRequiresToken(t *testing.T) {
	app, db, _ := setupApp(t)
	_, _, delivery := seedCheckoutData(t, db)

	req := jsonRequest(http.MethodPost, "/api/orders/", map[string]interface{}{
		"shipping":    shippingPayload(),
		"delivery_id": delivery.ID.String(),
	})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	app, db, cfg := setupApp(t)
	_, token := createUser(t, db, cfg, "jane@example.com")
	_, _, delivery := seedCheckoutData(t, db)

	req := jsonRequest(http.MethodPost, "/api/orders/", map[string]interface{}{
		"shipping":    shippingPayload(),
		"delivery_id": delivery.ID.String(),
	})
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateOrderBadShipping(t *testing.T) {
	app, db, cfg := setupApp(t)
	user, token := createUser(t, db, cfg, "jane@example.com")
	product, period, delivery := seedCheckoutData(t, db)

	carts := cart.NewStore(db)
	_, err := carts.AddItem(identity.ForUser(user.ID), product.ID, period.ID)
	require.NoError(t, err)

	payload := shippingPayload()
	payload["zip"] = ""

	req := jsonRequest(http.MethodPost, "/api/orders/", map[string]interface{}{
		"shipping":    payload,
		"delivery_id": delivery.ID.String(),
	})
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	items, err := carts.Items(identity.ForUser(user.ID))
	require.NoError(t, err)
	assert.Len(t, items, 1, "failed checkout must not touch the cart")
}

func TestListAndGetOrders(t *testing.T) {
	app, db, cfg := setupApp(t)
	user, token := createUser(t, db, cfg, "jane@example.com")
	product, period, delivery := seedCheckoutData(t, db)

	carts := cart.NewStore(db)
	_, err := carts.AddItem(identity.ForUser(user.ID), product.ID, period.ID)
	require.NoError(t, err)

	createReq := jsonRequest(http.MethodPost, "/api/orders/", map[string]interface{}{
		"shipping":    shippingPayload(),
		"delivery_id": delivery.ID.String(),
	})
	createReq.Header.Set("Authorization", "Bearer "+token)
	createResp, err := app.Test(createReq, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, createResp.StatusCode)

	createBody := decodeBody(t, createResp)
	number := createBody["data"].(map[string]interface{})["order_number"].(string)

	listReq := httptest.NewRequest(http.MethodGet, "/api/orders/", nil)
	listReq.Header.Set("Authorization", "Bearer "+token)
	listResp, err := app.Test(listReq, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, listResp.StatusCode)

	listBody := decodeBody(t, listResp)
	assert.Len(t, listBody["data"].([]interface{}), 1)

	getReq := httptest.NewRequest(http.MethodGet, "/api/orders/"+number, nil)
	getReq.Header.Set("Authorization", "Bearer "+token)
	getResp, err := app.Test(getReq, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, getResp.StatusCode)

	getBody := decodeBody(t, getResp)
	data := getBody["data"].(map[string]interface{})
	assert.Equal(t, number, data["order_number"])
	assert.Equal(t, 71.98, data["total"])
}

func TestGetOrderMasksOtherUsers(t *testing.T) {
	app, db, cfg := setupApp(t)
	user, token := createUser(t, db, cfg, "jane@example.com")
	product, period, delivery := seedCheckoutData(t, db)

	carts := cart.NewStore(db)
	_, err := carts.AddItem(identity.ForUser(user.ID), product.ID, period.ID)
	require.NoError(t, err)

	createReq := jsonRequest(http.MethodPost, "/api/orders/", map[string]interface{}{
		"shipping":    shippingPayload(),
		"delivery_id": delivery.ID.String(),
	})
	createReq.Header.Set("Authorization", "Bearer "+token)
	createResp, err := app.Test(createReq, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, createResp.StatusCode)

	number := decodeBody(t, createResp)["data"].(map[string]interface{})["order_number"].(string)

	_, otherToken := createUser(t, db, cfg, "eve@example.com")
	getReq := httptest.NewRequest(http.MethodGet, "/api/orders/"+number, nil)
	getReq.Header.Set("Authorization", "Bearer "+otherToken)
	getResp, err := app.Test(getReq, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, getResp.StatusCode)
}
