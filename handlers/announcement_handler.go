package handlers

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"hr-management-backend/config/middleware"
	"hr-management-backend/models"
	"hr-management-backend/repository"
)

type AnnouncementHandler struct {
	announcementRepo repository.AnnouncementRepository
	userRepo         repository.UserRepository
}

func NewAnnouncementHandler(announcementRepo repository.AnnouncementRepository, userRepo repository.UserRepository) *AnnouncementHandler {
	return &AnnouncementHandler{announcementRepo: announcementRepo, userRepo: userRepo}
}

// List godoc
// @Summary List active announcements, newest first
// @Tags Announcements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{announcements=[]models.AnnouncementWithName}
// @Router /api/announcements [get]
func (h *AnnouncementHandler) List(c *fiber.Ctx) error {
	records := h.announcementRepo.Active()

	sort.Slice(records, func(i, j int) bool { return records[i].CreatedAt > records[j].CreatedAt })

	annotated := make([]models.AnnouncementWithName, 0, len(records))
	for _, rec := range records {
		name := "HR Team"
		if creator, ok := h.userRepo.FindByID(rec.CreatedBy); ok {
			name = creator.Name
		}
		annotated = append(annotated, models.AnnouncementWithName{
			Announcement:  rec,
			CreatedByName: name,
		})
	}

	return c.JSON(fiber.Map{"announcements": annotated})
}

// Create godoc
// @Summary Publish an announcement (HR only)
// @Tags Announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param announcement body models.AnnouncementCreatePayload true "Announcement"
// @Success 200 {object} object{message=string,announcement=models.Announcement}
// @Failure 403 {object} object{error=string}
// @Router /api/announcements [post]
func (h *AnnouncementHandler) Create(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	if user.Role != "hr" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only HR can create announcements"})
	}

	var payload models.AnnouncementCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if payload.Title == "" || payload.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title and content are required"})
	}

	announcementType := payload.Type
	if announcementType == "" {
		announcementType = "general"
	}
	priority := payload.Priority
	if priority == "" {
		priority = "normal"
	}
	audience := payload.TargetAudience
	if audience == "" {
		audience = "all"
	}

	announcement := h.announcementRepo.Create(func(id int) models.Announcement {
		return models.Announcement{
			ID:             id,
			Title:          payload.Title,
			Content:        payload.Content,
			Type:           announcementType,
			Priority:       priority,
			CreatedBy:      user.ID,
			CreatedAt:      time.Now().Format(time.RFC3339),
			IsActive:       true,
			TargetAudience: audience,
		}
	})

	return c.JSON(fiber.Map{"message": "Announcement created successfully", "announcement": announcement})
}

func (h *AnnouncementHandler) Update(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	if user.Role != "hr" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only HR can update announcements"})
	}

	id, err := c.ParamsInt("announcementId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid announcement id"})
	}

	if _, ok := h.announcementRepo.FindByID(id); !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Announcement not found"})
	}

	var payload models.AnnouncementUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	updated, _ := h.announcementRepo.Update(id, func(a *models.Announcement) {
		if payload.Title != "" {
			a.Title = payload.Title
		}
		if payload.Content != "" {
			a.Content = payload.Content
		}
		if payload.Type != "" {
			a.Type = payload.Type
		}
		if payload.Priority != "" {
			a.Priority = payload.Priority
		}
		if payload.IsActive != nil {
			a.IsActive = *payload.IsActive
		}
		if payload.TargetAudience != "" {
			a.TargetAudience = payload.TargetAudience
		}
	})

	return c.JSON(fiber.Map{"message": "Announcement updated successfully", "announcement": updated})
}

func (h *AnnouncementHandler) Delete(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	if user.Role != "hr" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only HR can delete announcements"})
	}

	id, err := c.ParamsInt("announcementId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid announcement id"})
	}

	if !h.announcementRepo.Delete(id) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Announcement not found"})
	}

	return c.JSON(fiber.Map{"message": "Announcement deleted successfully"})
}
