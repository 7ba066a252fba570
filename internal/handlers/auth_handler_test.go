package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	app, _, _ := setupApp(t)

	registerResp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/register", map[string]interface{}{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"password": "secret123",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, registerResp.StatusCode)

	registerBody := decodeBody(t, registerResp)
	assert.NotEmpty(t, registerBody["token"])

	loginResp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "jane@example.com",
		"password": "secret123",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, loginResp.StatusCode)

	loginBody := decodeBody(t, loginResp)
	token := loginBody["token"].(string)
	require.NotEmpty(t, token)

	meReq := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	meReq.Header.Set("Authorization", "Bearer "+token)
	meResp, err := app.Test(meReq, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, meResp.StatusCode)

	meBody := decodeBody(t, meResp)
	data := meBody["data"].(map[string]interface{})
	assert.Equal(t, "jane@example.com", data["email"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app, _, _ := setupApp(t)

	payload := map[string]interface{}{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"password": "secret123",
	}

	first, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/register", payload), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, first.StatusCode)

	second, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/register", payload), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, second.StatusCode)
}

func TestRegisterRejectsBadEmail(t *testing.T) {
	app, _, _ := setupApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/register", map[string]interface{}{
		"name":     "Jane Doe",
		"email":    "not-an-email",
		"password": "secret123",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLoginWrongPassword(t *testing.T) {
	app, db, cfg := setupApp(t)
	createUser(t, db, cfg, "jane@example.com")

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "jane@example.com",
		"password": "wrong",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
