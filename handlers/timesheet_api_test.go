package handlers_test

import (
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimesheetCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	emp := env.addUser(t, "emp@company.com", "employee", "Emp")

	status, body := env.request(t, http.MethodPost, "/api/timesheets", map[string]any{
		"date": "2026-03-02",
	}, &emp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Missing required fields", body["error"])

	status, body = env.request(t, http.MethodPost, "/api/timesheets", map[string]any{
		"date":  "2026-03-02",
		"hours": 25,
	}, &emp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid hours value", body["error"])

	status, body = env.request(t, http.MethodPost, "/api/timesheets", map[string]any{
		"date":    "2026-03-02",
		"hours":   0,
		"project": "Apollo",
	}, &emp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Timesheet entry created successfully", body["message"])
}

func TestTimesheetUpdateAndDeleteOwnership(t *testing.T) {
	env := newTestEnv(t)
	emp := env.addUser(t, "emp@company.com", "employee", "Emp")
	stranger := env.addUser(t, "other@company.com", "employee", "Other")

	env.request(t, http.MethodPost, "/api/timesheets", map[string]any{
		"date":  "2026-03-02",
		"hours": 8,
	}, &emp)

	status, body := env.request(t, http.MethodPut, "/api/timesheets/1", map[string]any{
		"hours": 6,
	}, &stranger)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Unauthorized", body["error"])

	status, body = env.request(t, http.MethodPut, "/api/timesheets/1", map[string]any{
		"hours": 6.5,
	}, &emp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 6.5, body["timesheet"].(map[string]any)["hours"])

	status, body = env.request(t, http.MethodDelete, "/api/timesheets/1", nil, &emp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Timesheet entry deleted successfully", body["message"])
}

func TestTimesheetSummaryMonthly(t *testing.T) {
	env := newTestEnv(t)
	emp := env.addUser(t, "emp@company.com", "employee", "Emp")
	hr := env.addUser(t, "hr@company.com", "hr", "HR")

	today := time.Now().Format("2006-01-02")
	env.request(t, http.MethodPost, "/api/timesheets", map[string]any{
		"date": today, "hours": 8, "project": "Apollo",
	}, &emp)
	env.request(t, http.MethodPost, "/api/timesheets", map[string]any{
		"date": today, "hours": 2,
	}, &emp)

	status, body := env.request(t, http.MethodGet, "/api/timesheets/summary?period=monthly", nil, &emp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(10), body["total_hours"])
	assert.Equal(t, float64(2), body["total_entries"])

	projects := body["project_summary"].(map[string]any)
	assert.Contains(t, projects, "Apollo")
	assert.Contains(t, projects, "No Project")

	// Employees never get a per-employee breakdown.
	assert.Empty(t, body["employee_summary"].(map[string]any))

	_, body = env.request(t, http.MethodGet, "/api/timesheets/summary?period=monthly", nil, &hr)
	employees := body["employee_summary"].(map[string]any)
	require.Contains(t, employees, "Emp")
	assert.Equal(t, float64(10), employees["Emp"].(map[string]any)["hours"])
}

func TestTimesheetSummaryEmptyRange(t *testing.T) {
	env := newTestEnv(t)
	emp := env.addUser(t, "emp@company.com", "employee", "Emp")

	status, body := env.request(t, http.MethodGet, "/api/timesheets/summary?start_date=2020-01-01&end_date=2020-01-31", nil, &emp)
	require.Equal(t, http.StatusOK, status)

	period := body["period"].(map[string]any)
	assert.Equal(t, "2020-01-01", period["start_date"])
	assert.Equal(t, "2020-01-31", period["end_date"])
	assert.Equal(t, "custom", period["type"])
	assert.Equal(t, float64(0), body["total_hours"])
	assert.NotNil(t, body["project_summary"])
}

func TestTimesheetExport(t *testing.T) {
	env := newTestEnv(t)
	emp := env.addUser(t, "emp@company.com", "employee", "Emp")

	env.request(t, http.MethodPost, "/api/timesheets", map[string]any{
		"date": "2026-03-02", "hours": 8, "project": "Apollo",
	}, &emp)

	resp := env.rawRequest(t, http.MethodGet, "/api/timesheets/export", nil, &emp)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	// XLSX workbooks are zip archives.
	require.Greater(t, len(data), 4)
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}
