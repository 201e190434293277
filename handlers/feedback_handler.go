package handlers

import (
	"math"
	"time"

	"github.com/gofiber/fiber/v2"

	"hr-management-backend/config/middleware"
	"hr-management-backend/models"
	"hr-management-backend/repository"
)

type FeedbackHandler struct {
	feedbackRepo repository.FeedbackRepository
}

func NewFeedbackHandler(feedbackRepo repository.FeedbackRepository) *FeedbackHandler {
	return &FeedbackHandler{feedbackRepo: feedbackRepo}
}

// List godoc
// @Summary List feedback entries
// @Description HR sees all feedback; employees see their own submissions.
// @Tags Feedbacks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{feedbacks=[]models.Feedback}
// @Router /api/feedbacks [get]
func (h *FeedbackHandler) List(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	var feedbacks []models.Feedback
	if user.Role == "hr" {
		feedbacks = h.feedbackRepo.All()
	} else {
		feedbacks = h.feedbackRepo.ForEmployee(user.ID)
	}

	return c.JSON(fiber.Map{"feedbacks": feedbacks})
}

// Create godoc
// @Summary Submit feedback
// @Tags Feedbacks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param feedback body models.FeedbackCreatePayload true "Feedback"
// @Success 200 {object} object{message=string,feedback=models.Feedback}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Router /api/feedbacks [post]
func (h *FeedbackHandler) Create(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	if user.Role != "employee" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only employees can submit feedback"})
	}

	var payload models.FeedbackCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if payload.Type == "" || payload.Title == "" || payload.Rating == nil || payload.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Type, title, rating, and category are required"})
	}
	if *payload.Rating < 1 || *payload.Rating > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Rating must be between 1 and 5"})
	}

	employeeName := user.Name
	if payload.Anonymous {
		employeeName = "Anonymous"
	}

	feedback := h.feedbackRepo.Create(func(id int) models.Feedback {
		return models.Feedback{
			ID:           id,
			EmployeeID:   user.ID,
			EmployeeName: employeeName,
			Type:         payload.Type,
			Title:        payload.Title,
			Description:  payload.Description,
			Rating:       *payload.Rating,
			Category:     payload.Category,
			Anonymous:    payload.Anonymous,
			SubmittedAt:  time.Now().Format(time.RFC3339),
			Status:       "pending",
		}
	})

	return c.JSON(fiber.Map{"message": "Feedback submitted successfully", "feedback": feedback})
}

// UpdateStatus moves a feedback entry through pending/reviewed/resolved. HR only.
func (h *FeedbackHandler) UpdateStatus(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	if user.Role != "hr" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only HR can update feedback status"})
	}

	id, err := c.ParamsInt("feedbackId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid feedback id"})
	}

	var payload models.FeedbackStatusPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if payload.Status != "pending" && payload.Status != "reviewed" && payload.Status != "resolved" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
	}

	if _, ok := h.feedbackRepo.FindByID(id); !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Feedback not found"})
	}

	h.feedbackRepo.Update(id, func(f *models.Feedback) {
		f.Status = payload.Status
		f.ReviewedAt = time.Now().Format(time.RFC3339)
	})

	return c.JSON(fiber.Map{"message": "Feedback status updated successfully"})
}

// Stats godoc
// @Summary Aggregate feedback counts, average rating and category split
// @Tags Feedbacks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{stats=models.FeedbackStats}
// @Failure 403 {object} object{error=string}
// @Router /api/feedbacks/stats [get]
func (h *FeedbackHandler) Stats(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	if user.Role != "hr" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only HR can view feedback statistics"})
	}

	stats := models.FeedbackStats{Categories: map[string]int{}}

	ratingSum, ratingCount := 0, 0
	for _, feedback := range h.feedbackRepo.All() {
		stats.Total++
		switch feedback.Status {
		case "pending":
			stats.Pending++
		case "reviewed":
			stats.Reviewed++
		case "resolved":
			stats.Resolved++
		}
		if feedback.Rating > 0 {
			ratingSum += feedback.Rating
			ratingCount++
		}
		stats.Categories[feedback.Category]++
	}

	if ratingCount > 0 {
		stats.AverageRating = math.Round(float64(ratingSum)/float64(ratingCount)*10) / 10
	}

	return c.JSON(fiber.Map{"stats": stats})
}
