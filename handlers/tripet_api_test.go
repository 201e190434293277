package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripetCreateAndList(t *testing.T) {
	env := newTestEnv(t)
	emp := env.addUser(t, "emp@company.com", "employee", "Emp")

	status, body := env.request(t, http.MethodPost, "/api/tripets", map[string]any{
		"destination": "Berlin",
		"purpose":     "Conference",
		"startDate":   "2026-04-01",
		"endDate":     "2026-04-03",
	}, &emp)

	require.Equal(t, http.StatusOK, status)
	tripet := body["tripet"].(map[string]any)
	assert.Equal(t, "Pending", tripet["status"])
	assert.Equal(t, float64(emp.ID), tripet["employeeId"])

	status, body = env.request(t, http.MethodGet, "/api/tripets", nil, &emp)
	require.Equal(t, http.StatusOK, status)
	records := body["tripets"].([]any)
	require.Len(t, records, 1)
	assert.Equal(t, "Emp", records[0].(map[string]any)["employeeName"])
}

func TestTripetCreateMissingFields(t *testing.T) {
	env := newTestEnv(t)
	emp := env.addUser(t, "emp@company.com", "employee", "Emp")

	status, body := env.request(t, http.MethodPost, "/api/tripets", map[string]any{
		"destination": "Berlin",
	}, &emp)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Missing required fields", body["error"])
}

func TestTripetStatusOnlyChangedByHR(t *testing.T) {
	env := newTestEnv(t)
	emp := env.addUser(t, "emp@company.com", "employee", "Emp")
	hr := env.addUser(t, "hr@company.com", "hr", "HR")

	_, body := env.request(t, http.MethodPost, "/api/tripets", map[string]any{
		"destination": "Berlin",
		"purpose":     "Conference",
		"startDate":   "2026-04-01",
		"endDate":     "2026-04-03",
	}, &emp)

	// Owner edits fields but cannot flip the status.
	status, body := env.request(t, http.MethodPut, "/api/tripets/1", map[string]any{
		"destination": "Munich",
		"status":      "Approved",
	}, &emp)
	require.Equal(t, http.StatusOK, status)
	tripet := body["tripet"].(map[string]any)
	assert.Equal(t, "Munich", tripet["destination"])
	assert.Equal(t, "Pending", tripet["status"])

	// HR flips the status but leaves other fields alone.
	status, body = env.request(t, http.MethodPut, "/api/tripets/1", map[string]any{
		"destination": "Hamburg",
		"status":      "Approved",
	}, &hr)
	require.Equal(t, http.StatusOK, status)
	tripet = body["tripet"].(map[string]any)
	assert.Equal(t, "Munich", tripet["destination"])
	assert.Equal(t, "Approved", tripet["status"])

	// Approved requests can no longer be deleted by their owner.
	status, body = env.request(t, http.MethodDelete, "/api/tripets/1", nil, &emp)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Unauthorized", body["error"])
}

func TestTripetUpdateByStranger(t *testing.T) {
	env := newTestEnv(t)
	emp := env.addUser(t, "emp@company.com", "employee", "Emp")
	stranger := env.addUser(t, "other@company.com", "employee", "Other")

	env.request(t, http.MethodPost, "/api/tripets", map[string]any{
		"destination": "Berlin",
		"purpose":     "Conference",
		"startDate":   "2026-04-01",
		"endDate":     "2026-04-03",
	}, &emp)

	status, body := env.request(t, http.MethodPut, "/api/tripets/1", map[string]any{
		"destination": "Paris",
	}, &stranger)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Unauthorized", body["error"])
}

func TestTripetNotFound(t *testing.T) {
	env := newTestEnv(t)
	emp := env.addUser(t, "emp@company.com", "employee", "Emp")

	status, body := env.request(t, http.MethodDelete, "/api/tripets/99", nil, &emp)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Tripet not found", body["error"])
}
