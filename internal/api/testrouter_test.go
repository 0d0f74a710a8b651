package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/forkwell/mealvault/backend/internal/api"
	"github.com/forkwell/mealvault/backend/internal/repository"
	"github.com/forkwell/mealvault/backend/internal/router"
	"github.com/forkwell/mealvault/backend/internal/service"
	"github.com/forkwell/mealvault/backend/internal/testhelpers"
)

func setupTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, nil, "test-secret")
	require.NoError(t, authSvc.SeedDemoUser(context.Background()))

	repo := repository.NewRecipeRepository(
		db,
		repository.NewIngredientStore(db),
		repository.NewNutritionStore(db),
	)

	engine := router.SetupRouter(
		api.NewAuthHandler(authSvc),
		api.NewRecipeHandler(repo),
		api.NewMealPlanHandler(repo),
		api.NewImageHandler(repo, nil),
		authSvc,
	)

	token, err := authSvc.Login(context.Background(), service.DemoEmail, service.DemoPassword)
	require.NoError(t, err)
	return engine, token
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRoutesRequireAuth(t *testing.T) {
	engine, _ := setupTestRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/recipes", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
