package handlers

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"hr-management-backend/config/middleware"
	"hr-management-backend/models"
	"hr-management-backend/repository"
)

type TripetHandler struct {
	tripetRepo repository.TripetRepository
	userRepo   repository.UserRepository
}

func NewTripetHandler(tripetRepo repository.TripetRepository, userRepo repository.UserRepository) *TripetHandler {
	return &TripetHandler{tripetRepo: tripetRepo, userRepo: userRepo}
}

// List godoc
// @Summary List trip requests
// @Tags Tripets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{tripets=[]models.TripetWithName}
// @Router /api/tripets [get]
func (h *TripetHandler) List(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	var records []models.Tripet
	if user.Role == "hr" {
		records = h.tripetRepo.All()
	} else {
		records = h.tripetRepo.ForEmployee(user.ID)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Date > records[j].Date })

	annotated := make([]models.TripetWithName, 0, len(records))
	for _, rec := range records {
		annotated = append(annotated, models.TripetWithName{
			Tripet:       rec,
			EmployeeName: h.userRepo.NameOf(rec.EmployeeID),
		})
	}

	return c.JSON(fiber.Map{"tripets": annotated})
}

// Create godoc
// @Summary Submit a trip request
// @Tags Tripets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tripet body models.TripetCreatePayload true "Trip request"
// @Success 200 {object} object{message=string,tripet=models.Tripet}
// @Failure 400 {object} object{error=string}
// @Router /api/tripets [post]
func (h *TripetHandler) Create(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	var payload models.TripetCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if payload.Destination == "" || payload.Purpose == "" || payload.StartDate == "" || payload.EndDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
	}

	tripet := h.tripetRepo.Create(func(id int) models.Tripet {
		return models.Tripet{
			ID:             id,
			EmployeeID:     user.ID,
			Destination:    payload.Destination,
			Purpose:        payload.Purpose,
			StartDate:      payload.StartDate,
			EndDate:        payload.EndDate,
			Accommodation:  payload.Accommodation,
			Transportation: payload.Transportation,
			Status:         "Pending",
			Date:           time.Now().Format(dateLayout),
		}
	})

	return c.JSON(fiber.Map{"message": "Tripet created successfully", "tripet": tripet})
}

// Update applies a partial update. HR may only change the status;
// owners may edit everything but the status.
func (h *TripetHandler) Update(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	id, err := c.ParamsInt("tripetId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid tripet id"})
	}

	tripet, ok := h.tripetRepo.FindByID(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tripet not found"})
	}

	if user.Role != "hr" && tripet.EmployeeID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var payload models.TripetUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	updated, _ := h.tripetRepo.Update(id, func(t *models.Tripet) {
		if user.Role == "hr" {
			if payload.Status != "" {
				t.Status = payload.Status
			}
			return
		}
		if payload.Destination != "" {
			t.Destination = payload.Destination
		}
		if payload.Purpose != "" {
			t.Purpose = payload.Purpose
		}
		if payload.StartDate != "" {
			t.StartDate = payload.StartDate
		}
		if payload.EndDate != "" {
			t.EndDate = payload.EndDate
		}
		if payload.Accommodation != "" {
			t.Accommodation = payload.Accommodation
		}
		if payload.Transportation != "" {
			t.Transportation = payload.Transportation
		}
	})

	return c.JSON(fiber.Map{"message": "Tripet updated successfully", "tripet": updated})
}

// Delete removes a trip request. Employees may only remove their own
// pending requests; HR may remove any.
func (h *TripetHandler) Delete(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	id, err := c.ParamsInt("tripetId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid tripet id"})
	}

	tripet, ok := h.tripetRepo.FindByID(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tripet not found"})
	}

	if user.Role != "hr" && (tripet.EmployeeID != user.ID || tripet.Status != "Pending") {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Unauthorized"})
	}

	h.tripetRepo.Delete(id)
	return c.JSON(fiber.Map{"message": "Tripet deleted successfully"})
}
