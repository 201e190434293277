package handlers

import (
	"fmt"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"hr-management-backend/config/middleware"
	"hr-management-backend/models"
	"hr-management-backend/repository"
)

type TimesheetHandler struct {
	timesheetRepo repository.TimesheetRepository
	userRepo      repository.UserRepository
	now           func() time.Time
}

func NewTimesheetHandler(timesheetRepo repository.TimesheetRepository, userRepo repository.UserRepository) *TimesheetHandler {
	return &TimesheetHandler{
		timesheetRepo: timesheetRepo,
		userRepo:      userRepo,
		now:           time.Now,
	}
}

func (h *TimesheetHandler) visibleEntries(user models.User) []models.TimesheetEntry {
	if user.Role == "hr" {
		return h.timesheetRepo.All()
	}
	return h.timesheetRepo.ForEmployee(user.ID)
}

// List godoc
// @Summary List timesheet entries
// @Tags Timesheets
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Inclusive range start (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive range end (YYYY-MM-DD)"
// @Success 200 {object} object{timesheets=[]models.TimesheetWithName}
// @Router /api/timesheets [get]
func (h *TimesheetHandler) List(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	records := h.visibleEntries(user)

	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate != "" && endDate != "" {
		filtered := records[:0]
		for _, rec := range records {
			if rec.Date >= startDate && rec.Date <= endDate {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Date > records[j].Date })

	annotated := make([]models.TimesheetWithName, 0, len(records))
	for _, rec := range records {
		annotated = append(annotated, models.TimesheetWithName{
			TimesheetEntry: rec,
			EmployeeName:   h.userRepo.NameOf(rec.EmployeeID),
		})
	}

	return c.JSON(fiber.Map{"timesheets": annotated})
}

// Create godoc
// @Summary Log a timesheet entry
// @Tags Timesheets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body models.TimesheetCreatePayload true "Timesheet entry"
// @Success 200 {object} object{message=string,timesheet=models.TimesheetEntry}
// @Failure 400 {object} object{error=string}
// @Router /api/timesheets [post]
func (h *TimesheetHandler) Create(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	var payload models.TimesheetCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if payload.Date == "" || payload.Hours == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
	}
	if *payload.Hours < 0 || *payload.Hours > 24 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid hours value"})
	}

	now := h.now().Format(time.RFC3339)
	timesheet := h.timesheetRepo.Create(func(id int) models.TimesheetEntry {
		return models.TimesheetEntry{
			ID:          id,
			EmployeeID:  user.ID,
			Date:        payload.Date,
			Project:     payload.Project,
			Task:        payload.Task,
			Hours:       *payload.Hours,
			Description: payload.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	})

	return c.JSON(fiber.Map{"message": "Timesheet entry created successfully", "timesheet": timesheet})
}

func (h *TimesheetHandler) Update(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	id, err := c.ParamsInt("timesheetId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid timesheet id"})
	}

	entry, ok := h.timesheetRepo.FindByID(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Timesheet entry not found"})
	}

	if user.Role != "hr" && entry.EmployeeID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var payload models.TimesheetUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if payload.Hours != nil && (*payload.Hours < 0 || *payload.Hours > 24) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid hours value"})
	}

	updated, _ := h.timesheetRepo.Update(id, func(t *models.TimesheetEntry) {
		if payload.Date != "" {
			t.Date = payload.Date
		}
		if payload.Project != nil {
			t.Project = *payload.Project
		}
		if payload.Task != nil {
			t.Task = *payload.Task
		}
		if payload.Description != nil {
			t.Description = *payload.Description
		}
		if payload.Hours != nil {
			t.Hours = *payload.Hours
		}
		t.UpdatedAt = h.now().Format(time.RFC3339)
	})

	return c.JSON(fiber.Map{"message": "Timesheet entry updated successfully", "timesheet": updated})
}

func (h *TimesheetHandler) Delete(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	id, err := c.ParamsInt("timesheetId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid timesheet id"})
	}

	entry, ok := h.timesheetRepo.FindByID(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Timesheet entry not found"})
	}

	if user.Role != "hr" && entry.EmployeeID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Unauthorized"})
	}

	h.timesheetRepo.Delete(id)
	return c.JSON(fiber.Map{"message": "Timesheet entry deleted successfully"})
}

// summaryWindow resolves the reporting range. An explicit range wins;
// otherwise "weekly" covers the current Sunday-to-Saturday week and
// anything else the current calendar month.
func (h *TimesheetHandler) summaryWindow(startQ, endQ, period string) (string, string) {
	if startQ != "" && endQ != "" {
		return startQ, endQ
	}

	now := h.now()
	if period == "weekly" {
		startOfWeek := now.AddDate(0, 0, -int(now.Weekday()))
		endOfWeek := startOfWeek.AddDate(0, 0, 6)
		return startOfWeek.Format(dateLayout), endOfWeek.Format(dateLayout)
	}

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	endOfMonth := startOfMonth.AddDate(0, 1, -1)
	return startOfMonth.Format(dateLayout), endOfMonth.Format(dateLayout)
}

// Summary godoc
// @Summary Aggregate timesheet hours by project and, for HR, by employee
// @Tags Timesheets
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Inclusive range start (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive range end (YYYY-MM-DD)"
// @Param period query string false "weekly or monthly"
// @Success 200 {object} models.TimesheetSummary
// @Router /api/timesheets/summary [get]
func (h *TimesheetHandler) Summary(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	period := c.Query("period")
	startDate, endDate := h.summaryWindow(c.Query("start_date"), c.Query("end_date"), period)

	periodType := period
	if periodType == "" {
		periodType = "custom"
	}

	summary := models.TimesheetSummary{
		Period:          models.SummaryPeriod{StartDate: startDate, EndDate: endDate, Type: periodType},
		ProjectSummary:  map[string]*models.PeriodTotals{},
		EmployeeSummary: map[string]*models.PeriodTotals{},
	}

	for _, rec := range h.visibleEntries(user) {
		if rec.Date < startDate || rec.Date > endDate {
			continue
		}

		summary.TotalHours += rec.Hours
		summary.TotalEntries++

		project := rec.Project
		if project == "" {
			project = "No Project"
		}
		if summary.ProjectSummary[project] == nil {
			summary.ProjectSummary[project] = &models.PeriodTotals{}
		}
		summary.ProjectSummary[project].Hours += rec.Hours
		summary.ProjectSummary[project].Entries++

		if user.Role == "hr" {
			name := h.userRepo.NameOf(rec.EmployeeID)
			if summary.EmployeeSummary[name] == nil {
				summary.EmployeeSummary[name] = &models.PeriodTotals{}
			}
			summary.EmployeeSummary[name].Hours += rec.Hours
			summary.EmployeeSummary[name].Entries++
		}
	}

	return c.JSON(summary)
}

// Export godoc
// @Summary Export visible timesheet entries as an XLSX workbook
// @Tags Timesheets
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param start_date query string false "Inclusive range start (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive range end (YYYY-MM-DD)"
// @Success 200 {file} binary
// @Router /api/timesheets/export [get]
func (h *TimesheetHandler) Export(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	records := h.visibleEntries(user)

	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate != "" && endDate != "" {
		filtered := records[:0]
		for _, rec := range records {
			if rec.Date >= startDate && rec.Date <= endDate {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Date < records[j].Date })

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Timesheets"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"Date", "Employee", "Project", "Task", "Hours", "Description"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, rec := range records {
		values := []interface{}{
			rec.Date,
			h.userRepo.NameOf(rec.EmployeeID),
			rec.Project,
			rec.Task,
			rec.Hours,
			rec.Description,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build workbook"})
	}

	filename := fmt.Sprintf("timesheets_%s.xlsx", h.now().Format(dateLayout))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}
