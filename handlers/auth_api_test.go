package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, http.MethodPost, "/api/signup", map[string]any{
		"email":    "new@company.com",
		"password": "secret",
		"role":     "employee",
		"name":     "New Person",
	}, nil)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "User created successfully", body["message"])

	user := body["user"].(map[string]any)
	assert.Equal(t, "new@company.com", user["email"])
	assert.NotContains(t, user, "password")
}

func TestSignupMissingFields(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, http.MethodPost, "/api/signup", map[string]any{
		"email": "new@company.com",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Missing required fields", body["error"])
}

func TestSignupDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "taken@company.com", "employee", "First")

	status, body := env.request(t, http.MethodPost, "/api/signup", map[string]any{
		"email":    "taken@company.com",
		"password": "secret",
		"role":     "employee",
		"name":     "Second",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "User already exists", body["error"])
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "emp@company.com", "employee", "Emp")

	status, body := env.request(t, http.MethodPost, "/api/login", map[string]any{
		"email":    "emp@company.com",
		"password": "pass123",
		"role":     "employee",
	}, nil)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Login successful", body["message"])
	assert.NotEmpty(t, body["token"])

	user := body["user"].(map[string]any)
	assert.NotContains(t, user, "password")
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "emp@company.com", "employee", "Emp")

	status, body := env.request(t, http.MethodPost, "/api/login", map[string]any{
		"email":    "emp@company.com",
		"password": "nope",
		"role":     "employee",
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", body["error"])
}

func TestAuthMiddlewareRejectsMissingHeaders(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, http.MethodGet, "/api/attendance", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Authentication required", body["error"])
}

func TestAuthMiddlewareRejectsUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	ghost := env.addUser(t, "real@company.com", "employee", "Real")
	ghost.Email = "ghost@company.com"

	status, body := env.request(t, http.MethodGet, "/api/attendance", nil, &ghost)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "User not found", body["error"])
}

func TestBearerTokenAuthenticates(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "emp@company.com", "employee", "Emp")

	_, body := env.request(t, http.MethodPost, "/api/login", map[string]any{
		"email":    "emp@company.com",
		"password": "pass123",
		"role":     "employee",
	}, nil)
	token := body["token"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/attendance", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := env.app.Test(req, 10000)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	emp := env.addUser(t, "emp@company.com", "employee", "Old Name")

	form := strings.NewReader("name=New+Name&phone=12345")
	req := httptest.NewRequest(http.MethodPut, "/api/update_profile", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-User-Email", emp.Email)
	req.Header.Set("X-User-Role", emp.Role)

	resp, err := env.app.Test(req, 10000)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	updated, ok := env.store.Users.Get(emp.ID)
	require.True(t, ok)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "12345", updated.Phone)
}

func TestUpdateProfileRequiresName(t *testing.T) {
	env := newTestEnv(t)
	emp := env.addUser(t, "emp@company.com", "employee", "Emp")

	status, body := env.request(t, http.MethodPut, "/api/update_profile", map[string]any{}, &emp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Name is required", body["error"])
}
