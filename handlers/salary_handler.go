package handlers

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"hr-management-backend/config/middleware"
	"hr-management-backend/models"
	"hr-management-backend/pkg/utils"
	"hr-management-backend/repository"
)

type SalaryHandler struct {
	salaryRepo repository.SalaryRepository
	userRepo   repository.UserRepository
}

func NewSalaryHandler(salaryRepo repository.SalaryRepository, userRepo repository.UserRepository) *SalaryHandler {
	return &SalaryHandler{salaryRepo: salaryRepo, userRepo: userRepo}
}

// List godoc
// @Summary List payroll records
// @Description HR sees every record; employees see their own payslips.
// @Tags Salaries
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{salaries=[]models.SalaryWithName}
// @Router /api/salaries [get]
func (h *SalaryHandler) List(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	var records []models.Salary
	if user.Role == "hr" {
		records = h.salaryRepo.All()
	} else {
		records = h.salaryRepo.ForEmployee(user.ID)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Month > records[j].Month })

	annotated := make([]models.SalaryWithName, 0, len(records))
	for _, rec := range records {
		annotated = append(annotated, models.SalaryWithName{
			Salary:       rec,
			EmployeeName: h.userRepo.NameOf(rec.EmployeeID),
		})
	}

	return c.JSON(fiber.Map{"salaries": annotated})
}

// Create godoc
// @Summary Create a payroll record for an employee (HR only)
// @Tags Salaries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param salary body models.SalaryCreatePayload true "Payroll data"
// @Success 200 {object} object{message=string,salary=models.Salary}
// @Failure 400 {object} object{error=string,errors=array}
// @Router /api/salaries [post]
func (h *SalaryHandler) Create(c *fiber.Ctx) error {
	var payload models.SalaryCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errs := utils.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	if _, ok := h.userRepo.FindByID(payload.EmployeeID); !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}

	if _, exists := h.salaryRepo.FindByEmployeeAndMonth(payload.EmployeeID, payload.Month); exists {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Salary record already exists for this month"})
	}

	now := time.Now().Format(time.RFC3339)
	salary := h.salaryRepo.Create(func(id int) models.Salary {
		return models.Salary{
			ID:          id,
			EmployeeID:  payload.EmployeeID,
			Month:       payload.Month,
			BasicSalary: payload.BasicSalary,
			Allowances:  payload.Allowances,
			Deductions:  payload.Deductions,
			NetSalary:   payload.BasicSalary + payload.Allowances - payload.Deductions,
			Status:      "Processing",
			Notes:       payload.Notes,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	})

	return c.JSON(fiber.Map{"message": "Salary record created successfully", "salary": salary})
}

// Update adjusts amounts or marks the record paid. HR only, enforced
// by the route middleware. The net amount is recomputed on every change.
func (h *SalaryHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("salaryId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid salary id"})
	}

	var payload models.SalaryUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errs := utils.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	updated, ok := h.salaryRepo.Update(id, func(s *models.Salary) {
		if payload.BasicSalary != nil {
			s.BasicSalary = *payload.BasicSalary
		}
		if payload.Allowances != nil {
			s.Allowances = *payload.Allowances
		}
		if payload.Deductions != nil {
			s.Deductions = *payload.Deductions
		}
		if payload.Notes != "" {
			s.Notes = payload.Notes
		}
		if payload.Status != "" {
			s.Status = payload.Status
			if payload.Status == "Paid" && s.PaidAt == "" {
				s.PaidAt = time.Now().Format(time.RFC3339)
			}
		}
		s.NetSalary = s.BasicSalary + s.Allowances - s.Deductions
		s.UpdatedAt = time.Now().Format(time.RFC3339)
	})
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Salary record not found"})
	}

	return c.JSON(fiber.Map{"message": "Salary record updated successfully", "salary": updated})
}

func (h *SalaryHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("salaryId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid salary id"})
	}

	if !h.salaryRepo.Delete(id) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Salary record not found"})
	}

	return c.JSON(fiber.Map{"message": "Salary record deleted successfully"})
}
