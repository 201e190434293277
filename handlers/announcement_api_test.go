package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnouncementCreateRequiresHR(t *testing.T) {
	env := newTestEnv(t)
	emp := env.addUser(t, "emp@company.com", "employee", "Emp")

	status, body := env.request(t, http.MethodPost, "/api/announcements", map[string]any{
		"title": "Notice", "content": "Hello",
	}, &emp)

	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Only HR can create announcements", body["error"])
}

func TestAnnouncementLifecycle(t *testing.T) {
	env := newTestEnv(t)
	emp := env.addUser(t, "emp@company.com", "employee", "Emp")
	hr := env.addUser(t, "hr@company.com", "hr", "HR")

	status, body := env.request(t, http.MethodPost, "/api/announcements", map[string]any{
		"title":   "Office closed",
		"content": "Closed on Friday for maintenance.",
	}, &hr)
	require.Equal(t, http.StatusOK, status)
	created := body["announcement"].(map[string]any)
	assert.Equal(t, "general", created["type"])
	assert.Equal(t, "normal", created["priority"])
	assert.Equal(t, "all", created["targetAudience"])
	assert.Equal(t, true, created["isActive"])

	// Everyone sees active announcements, annotated with the author.
	_, body = env.request(t, http.MethodGet, "/api/announcements", nil, &emp)
	records := body["announcements"].([]any)
	require.Len(t, records, 1)
	assert.Equal(t, "HR", records[0].(map[string]any)["createdByName"])

	// Deactivated announcements drop out of the list.
	status, _ = env.request(t, http.MethodPut, "/api/announcements/1", map[string]any{
		"isActive": false,
	}, &hr)
	require.Equal(t, http.StatusOK, status)

	_, body = env.request(t, http.MethodGet, "/api/announcements", nil, &emp)
	assert.Empty(t, body["announcements"].([]any))

	status, body = env.request(t, http.MethodDelete, "/api/announcements/1", nil, &hr)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Announcement deleted successfully", body["message"])

	status, body = env.request(t, http.MethodDelete, "/api/announcements/1", nil, &hr)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Announcement not found", body["error"])
}

func TestAnnouncementCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	hr := env.addUser(t, "hr@company.com", "hr", "HR")

	status, body := env.request(t, http.MethodPost, "/api/announcements", map[string]any{
		"title": "No content",
	}, &hr)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Title and content are required", body["error"])
}
