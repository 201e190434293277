package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"hr-management-backend/config"
	"hr-management-backend/models"
	"hr-management-backend/pkg/password"
	"hr-management-backend/repository"
	"hr-management-backend/router"
)

const pasetoTestSecret = "eHh4eHh4eHh4eHh4eHh4eHh4eHh4eHh4eHh4eHh4eHg="

type testEnv struct {
	app   *fiber.App
	store *repository.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	store, err := repository.OpenStore(dir)
	require.NoError(t, err)

	cfg := &config.AppConfig{
		Port:         "5000",
		DataDir:      dir,
		UploadDir:    dir,
		PasetoSecret: pasetoTestSecret,
	}

	app := fiber.New()
	require.NoError(t, router.SetupRoutes(app, store, cfg))

	return &testEnv{app: app, store: store}
}

// addUser stores a user directly, bypassing the signup endpoint. The
// password is always "pass123".
func (e *testEnv) addUser(t *testing.T, email, role, name string) models.User {
	t.Helper()

	hash, err := password.HashPassword("pass123")
	require.NoError(t, err)
	return repository.NewUserRepository(e.store).Create(email, hash, role, name, "", "")
}

// request performs a JSON request, authenticated via the header pair
// when user is non-nil, and decodes the JSON response body.
func (e *testEnv) request(t *testing.T, method, path string, body any, user *models.User) (int, map[string]any) {
	t.Helper()

	resp := e.rawRequest(t, method, path, body, user)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := map[string]any{}
	if len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, &out), "body: %s", data)
	}
	return resp.StatusCode, out
}

func (e *testEnv) rawRequest(t *testing.T, method, path string, body any, user *models.User) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != nil {
		req.Header.Set("X-User-Email", user.Email)
		req.Header.Set("X-User-Role", user.Role)
	}

	resp, err := e.app.Test(req, 10000)
	require.NoError(t, err)
	return resp
}
