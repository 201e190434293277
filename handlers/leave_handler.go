package handlers

import (
	"sort"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"hr-management-backend/config/middleware"
	"hr-management-backend/models"
	"hr-management-backend/pkg/utils"
	"hr-management-backend/repository"
)

type LeaveHandler struct {
	leaveRepo repository.LeaveRepository
	userRepo  repository.UserRepository
}

func NewLeaveHandler(leaveRepo repository.LeaveRepository, userRepo repository.UserRepository) *LeaveHandler {
	return &LeaveHandler{leaveRepo: leaveRepo, userRepo: userRepo}
}

// List godoc
// @Summary List leave requests
// @Description HR sees every request; employees see their own.
// @Tags Leaves
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{leaves=[]models.LeaveWithName}
// @Router /api/leaves [get]
func (h *LeaveHandler) List(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	var records []models.LeaveRequest
	if user.Role == "hr" {
		records = h.leaveRepo.All()
	} else {
		records = h.leaveRepo.ForEmployee(user.ID)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].AppliedDate > records[j].AppliedDate })

	annotated := make([]models.LeaveWithName, 0, len(records))
	for _, rec := range records {
		annotated = append(annotated, models.LeaveWithName{
			LeaveRequest: rec,
			EmployeeName: h.userRepo.NameOf(rec.EmployeeID),
		})
	}

	return c.JSON(fiber.Map{"leaves": annotated})
}

// Create godoc
// @Summary Submit a leave request
// @Description Day count covers weekdays in the range, minus company holidays.
// @Tags Leaves
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param leave body models.LeaveCreatePayload true "Leave request"
// @Success 200 {object} object{message=string,leave=models.LeaveRequest}
// @Failure 400 {object} object{error=string,errors=array}
// @Router /api/leaves [post]
func (h *LeaveHandler) Create(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	var payload models.LeaveCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errs := utils.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	days := utils.WorkingDays(payload.StartDate, payload.EndDate)
	if days == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Requested range contains no working days"})
	}

	leave := h.leaveRepo.Create(func(id int) models.LeaveRequest {
		return models.LeaveRequest{
			ID:          id,
			EmployeeID:  user.ID,
			LeaveType:   payload.LeaveType,
			StartDate:   payload.StartDate,
			EndDate:     payload.EndDate,
			Days:        days,
			Reason:      payload.Reason,
			Status:      "Pending",
			AppliedDate: time.Now().Format(dateLayout),
		}
	})

	return c.JSON(fiber.Map{"message": "Leave request submitted successfully", "leave": leave})
}

// UpdateStatus approves or rejects a leave request. HR only, enforced
// by the route middleware.
func (h *LeaveHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("leaveId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid leave id"})
	}

	var payload models.LeaveStatusPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errs := utils.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	updated, ok := h.leaveRepo.Update(id, func(l *models.LeaveRequest) {
		l.Status = payload.Status
	})
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leave request not found"})
	}

	return c.JSON(fiber.Map{"message": "Leave status updated successfully", "leave": updated})
}

// Delete cancels a leave request. Employees may only cancel their own
// pending requests; HR may remove any.
func (h *LeaveHandler) Delete(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	id, err := c.ParamsInt("leaveId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid leave id"})
	}

	leave, ok := h.leaveRepo.FindByID(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leave request not found"})
	}

	if user.Role != "hr" && (leave.EmployeeID != user.ID || leave.Status != "Pending") {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Unauthorized"})
	}

	h.leaveRepo.Delete(id)
	return c.JSON(fiber.Map{"message": "Leave request deleted successfully"})
}

// Holidays godoc
// @Summary List company holidays for a year
// @Tags Leaves
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year, defaults to the current one"
// @Success 200 {object} object{year=int,holidays=map[string]string}
// @Router /api/holidays [get]
func (h *LeaveHandler) Holidays(c *fiber.Ctx) error {
	year := time.Now().Year()
	if q := c.Query("year"); q != "" {
		parsed, err := strconv.Atoi(q)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid year"})
		}
		year = parsed
	}

	return c.JSON(fiber.Map{"year": year, "holidays": utils.CompanyHolidays(year)})
}
