package handlers

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"hr-management-backend/config/middleware"
	"hr-management-backend/models"
	"hr-management-backend/repository"
)

type MeetingHandler struct {
	meetingRepo repository.MeetingRepository
	userRepo    repository.UserRepository
}

func NewMeetingHandler(meetingRepo repository.MeetingRepository, userRepo repository.UserRepository) *MeetingHandler {
	return &MeetingHandler{meetingRepo: meetingRepo, userRepo: userRepo}
}

// List godoc
// @Summary List meetings visible to the caller
// @Description HR sees every meeting; others see meetings they organize or attend.
// @Tags Meetings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{meetings=[]models.MeetingWithName}
// @Router /api/meetings [get]
func (h *MeetingHandler) List(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	var records []models.Meeting
	if user.Role == "hr" {
		records = h.meetingRepo.All()
	} else {
		records = h.meetingRepo.VisibleTo(user.ID)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date > records[j].Date
		}
		return records[i].StartTime > records[j].StartTime
	})

	annotated := make([]models.MeetingWithName, 0, len(records))
	for _, rec := range records {
		annotated = append(annotated, models.MeetingWithName{
			Meeting:       rec,
			OrganizerName: h.userRepo.NameOf(rec.OrganizerID),
		})
	}

	return c.JSON(fiber.Map{"meetings": annotated})
}

// Create godoc
// @Summary Schedule a meeting
// @Tags Meetings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param meeting body models.MeetingCreatePayload true "Meeting data"
// @Success 200 {object} object{message=string,meeting=models.Meeting}
// @Failure 400 {object} object{error=string}
// @Router /api/meetings [post]
func (h *MeetingHandler) Create(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	var payload models.MeetingCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if payload.Title == "" || payload.Date == "" || payload.StartTime == "" || payload.EndTime == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
	}

	participants := payload.Participants
	if participants == nil {
		participants = []int{}
	}

	meeting := h.meetingRepo.Create(func(id int) models.Meeting {
		return models.Meeting{
			ID:           id,
			OrganizerID:  user.ID,
			Title:        payload.Title,
			Date:         payload.Date,
			StartTime:    payload.StartTime,
			EndTime:      payload.EndTime,
			Location:     payload.Location,
			Agenda:       payload.Agenda,
			Participants: participants,
			Status:       "Scheduled",
			CreatedAt:    time.Now().Format(time.RFC3339),
		}
	})

	return c.JSON(fiber.Map{"message": "Meeting created successfully", "meeting": meeting})
}

func (h *MeetingHandler) Update(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	id, err := c.ParamsInt("meetingId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid meeting id"})
	}

	meeting, ok := h.meetingRepo.FindByID(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Meeting not found"})
	}

	if user.Role != "hr" && meeting.OrganizerID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var payload models.MeetingUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	updated, _ := h.meetingRepo.Update(id, func(m *models.Meeting) {
		if payload.Title != "" {
			m.Title = payload.Title
		}
		if payload.Date != "" {
			m.Date = payload.Date
		}
		if payload.StartTime != "" {
			m.StartTime = payload.StartTime
		}
		if payload.EndTime != "" {
			m.EndTime = payload.EndTime
		}
		if payload.Location != "" {
			m.Location = payload.Location
		}
		if payload.Agenda != "" {
			m.Agenda = payload.Agenda
		}
		if payload.Participants != nil {
			m.Participants = *payload.Participants
		}
		if payload.Status != "" {
			m.Status = payload.Status
		}
	})

	return c.JSON(fiber.Map{"message": "Meeting updated successfully", "meeting": updated})
}

func (h *MeetingHandler) Delete(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	id, err := c.ParamsInt("meetingId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid meeting id"})
	}

	meeting, ok := h.meetingRepo.FindByID(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Meeting not found"})
	}

	if user.Role != "hr" && meeting.OrganizerID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Unauthorized"})
	}

	h.meetingRepo.Delete(id)
	return c.JSON(fiber.Map{"message": "Meeting deleted successfully"})
}
