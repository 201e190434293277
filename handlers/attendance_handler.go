package handlers

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"hr-management-backend/config/middleware"
	"hr-management-backend/models"
	"hr-management-backend/repository"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "3:04 PM"
)

type AttendanceHandler struct {
	attendanceRepo repository.AttendanceRepository
	userRepo       repository.UserRepository
	now            func() time.Time
}

func NewAttendanceHandler(attendanceRepo repository.AttendanceRepository, userRepo repository.UserRepository) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		now:            time.Now,
	}
}

// CheckIn godoc
// @Summary Record today's check-in for the caller
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string,checkInTime=string}
// @Failure 400 {object} object{error=string}
// @Router /api/checkin [post]
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)
	now := h.now()
	today := now.Format(dateLayout)

	existing, found := h.attendanceRepo.FindByEmployeeAndDate(user.ID, today)
	if found && existing.CheckIn != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Already checked in today"})
	}

	checkInTime := now.Format(clockLayout)
	if found {
		h.attendanceRepo.Update(existing.ID, func(rec *models.AttendanceRecord) {
			rec.CheckIn = checkInTime
			rec.Status = "Present"
		})
	} else {
		h.attendanceRepo.Create(user.ID, today, checkInTime, "Present")
	}

	return c.JSON(fiber.Map{
		"message":     "Checked in successfully",
		"checkInTime": checkInTime,
	})
}

// CheckOut godoc
// @Summary Record check-out and compute worked hours
// @Description Closes today's open check-in, or yesterday's for overnight shifts.
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string,checkOutTime=string,hours=number}
// @Failure 400 {object} object{error=string}
// @Router /api/checkout [post]
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)
	now := h.now()
	today := now.Format(dateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)

	record, found := h.attendanceRepo.FindOpen(user.ID, today)
	if !found {
		record, found = h.attendanceRepo.FindOpen(user.ID, yesterday)
	}
	if !found {
		if closed, ok := h.attendanceRepo.FindByEmployeeAndDate(user.ID, today); ok && closed.CheckOut != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Already checked out"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No open check-in found"})
	}

	checkOutTime := now.Format(clockLayout)
	hours, err := workedHours(record.Date, record.CheckIn, now)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid check-in time on record"})
	}

	h.attendanceRepo.Update(record.ID, func(rec *models.AttendanceRecord) {
		rec.CheckOut = checkOutTime
		rec.Hours = hours
	})

	return c.JSON(fiber.Map{
		"message":      "Checked out successfully",
		"checkOutTime": checkOutTime,
		"hours":        hours,
	})
}

// List godoc
// @Summary List attendance records
// @Description HR sees all records; employees see their own.
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{attendance=[]models.AttendanceWithName}
// @Router /api/attendance [get]
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	var records []models.AttendanceRecord
	if user.Role == "hr" {
		records = h.attendanceRepo.All()
	} else {
		records = h.attendanceRepo.ForEmployee(user.ID)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Date > records[j].Date })

	annotated := make([]models.AttendanceWithName, 0, len(records))
	for _, rec := range records {
		annotated = append(annotated, models.AttendanceWithName{
			AttendanceRecord: rec,
			EmployeeName:     h.userRepo.NameOf(rec.EmployeeID),
		})
	}

	return c.JSON(fiber.Map{"attendance": annotated})
}

// workedHours computes the span between a recorded check-in and the
// check-out instant, rolling over midnight when the check-out clock
// reads earlier than the check-in. Result is rounded to one decimal.
func workedHours(date, checkIn string, checkOut time.Time) (float64, error) {
	start, err := time.ParseInLocation(dateLayout+" "+clockLayout, fmt.Sprintf("%s %s", date, checkIn), checkOut.Location())
	if err != nil {
		return 0, err
	}

	end := checkOut
	if end.Before(start) {
		end = end.AddDate(0, 0, 1)
	}

	hours := end.Sub(start).Hours()
	return math.Round(hours*10) / 10, nil
}
