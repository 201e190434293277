package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaveCreateComputesWorkingDays(t *testing.T) {
	env := newTestEnv(t)
	emp := env.addUser(t, "emp@company.com", "employee", "Emp")

	// Monday through next Monday: five weekdays plus one, minus the weekend.
	status, body := env.request(t, http.MethodPost, "/api/leaves", map[string]any{
		"leaveType": "Annual Leave",
		"startDate": "2026-03-02",
		"endDate":   "2026-03-09",
		"reason":    "Family visit",
	}, &emp)

	require.Equal(t, http.StatusOK, status)
	leave := body["leave"].(map[string]any)
	assert.Equal(t, float64(6), leave["days"])
	assert.Equal(t, "Pending", leave["status"])
}

func TestLeaveCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	emp := env.addUser(t, "emp@company.com", "employee", "Emp")

	status, body := env.request(t, http.MethodPost, "/api/leaves", map[string]any{
		"leaveType": "Sabbatical",
		"startDate": "2026-03-02",
		"endDate":   "2026-03-03",
		"reason":    "Break",
	}, &emp)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "errors")
}

func TestLeaveStatusUpdateRequiresHR(t *testing.T) {
	env := newTestEnv(t)
	emp := env.addUser(t, "emp@company.com", "employee", "Emp")
	hr := env.addUser(t, "hr@company.com", "hr", "HR")

	env.request(t, http.MethodPost, "/api/leaves", map[string]any{
		"leaveType": "Sick Leave",
		"startDate": "2026-03-02",
		"endDate":   "2026-03-03",
		"reason":    "Flu recovery",
	}, &emp)

	status, body := env.request(t, http.MethodPut, "/api/leaves/1/status", map[string]any{
		"status": "Approved",
	}, &emp)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Unauthorized", body["error"])

	status, body = env.request(t, http.MethodPut, "/api/leaves/1/status", map[string]any{
		"status": "Approved",
	}, &hr)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Approved", body["leave"].(map[string]any)["status"])
}

func TestLeaveListScopedByRole(t *testing.T) {
	env := newTestEnv(t)
	emp := env.addUser(t, "emp@company.com", "employee", "Emp")
	other := env.addUser(t, "other@company.com", "employee", "Other")
	hr := env.addUser(t, "hr@company.com", "hr", "HR")

	env.request(t, http.MethodPost, "/api/leaves", map[string]any{
		"leaveType": "Sick Leave", "startDate": "2026-03-02", "endDate": "2026-03-03", "reason": "Flu recovery",
	}, &emp)
	env.request(t, http.MethodPost, "/api/leaves", map[string]any{
		"leaveType": "Casual Leave", "startDate": "2026-03-04", "endDate": "2026-03-05", "reason": "Errand day",
	}, &other)

	_, body := env.request(t, http.MethodGet, "/api/leaves", nil, &emp)
	assert.Len(t, body["leaves"].([]any), 1)

	_, body = env.request(t, http.MethodGet, "/api/leaves", nil, &hr)
	assert.Len(t, body["leaves"].([]any), 2)
}

func TestHolidaysEndpoint(t *testing.T) {
	env := newTestEnv(t)
	emp := env.addUser(t, "emp@company.com", "employee", "Emp")

	status, body := env.request(t, http.MethodGet, "/api/holidays?year=2026", nil, &emp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(2026), body["year"])

	holidays := body["holidays"].(map[string]any)
	assert.Equal(t, "Christmas Day", holidays["2026-12-25"])
	assert.Len(t, holidays, 6)
}
