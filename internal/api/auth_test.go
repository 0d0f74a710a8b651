package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forkwell/mealvault/backend/internal/service"
)

func TestLoginEndpoint(t *testing.T) {
	engine, _ := setupTestRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    service.DemoEmail,
		"password": service.DemoPassword,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["token"])
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	engine, _ := setupTestRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    service.DemoEmail,
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginEndpointMissingFields(t *testing.T) {
	engine, _ := setupTestRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": service.DemoEmail,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutEndpoint(t *testing.T) {
	engine, token := setupTestRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
