package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, http.MethodGet, "/api/health", nil, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "1.0.0", body["version"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestChat(t *testing.T) {
	env := newTestEnv(t)
	emp := env.addUser(t, "emp@company.com", "employee", "Emp")

	status, body := env.request(t, http.MethodPost, "/api/chat", map[string]any{}, &emp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Message is required", body["error"])

	status, body = env.request(t, http.MethodPost, "/api/chat", map[string]any{
		"message": "hello",
	}, &emp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Hello! I'm your HR Assistant. How can I help you today?", body["response"])
}

func TestAnalyzeText(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, http.MethodPost, "/api/analyze_text", map[string]any{}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "No text provided", body["error"])

	status, body = env.request(t, http.MethodPost, "/api/analyze_text", map[string]any{
		"text": "Please verify your bank account, mail fraud@scam.com about $900",
	}, nil)
	require.Equal(t, http.StatusOK, status)

	classification := body["classification"].(map[string]any)
	assert.Equal(t, "Fraud", classification["label"])
	assert.Equal(t, float64(2), body["priority_score"])

	evidence := body["evidence"].(map[string]any)
	assert.Len(t, evidence["emails"].([]any), 1)

	entities := evidence["entities"].(map[string]any)
	assert.Empty(t, entities["PERSON"].([]any))
}

func TestAnalyzeFile(t *testing.T) {
	env := newTestEnv(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "report.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("contact a@b.com\nsecond line"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/analyze_file", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := env.app.Test(req, 10000)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAnalyzeFileMissingPart(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, http.MethodPost, "/api/analyze_file", nil, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "No file part", body["error"])
}
