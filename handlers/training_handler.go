package handlers

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"hr-management-backend/config/middleware"
	"hr-management-backend/models"
	"hr-management-backend/repository"
)

type TrainingHandler struct {
	trainingRepo repository.TrainingRepository
	userRepo     repository.UserRepository
}

func NewTrainingHandler(trainingRepo repository.TrainingRepository, userRepo repository.UserRepository) *TrainingHandler {
	return &TrainingHandler{trainingRepo: trainingRepo, userRepo: userRepo}
}

// List godoc
// @Summary List the training catalog with the caller's enrollment state
// @Tags Trainings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{trainings=[]models.TrainingWithStatus}
// @Router /api/trainings [get]
func (h *TrainingHandler) List(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	enrolled := map[int]bool{}
	for _, enrollment := range h.trainingRepo.EnrollmentsFor(user.ID) {
		enrolled[enrollment.TrainingID] = true
	}

	trainings := h.trainingRepo.AllTrainings()
	annotated := make([]models.TrainingWithStatus, 0, len(trainings))
	for _, training := range trainings {
		annotated = append(annotated, models.TrainingWithStatus{
			Training:   training,
			IsEnrolled: enrolled[training.ID],
		})
	}

	return c.JSON(fiber.Map{"trainings": annotated})
}

// Enroll godoc
// @Summary Enroll the caller into a training
// @Tags Trainings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param enrollment body models.EnrollPayload true "Training to enroll into"
// @Success 200 {object} object{message=string,enrollment=models.Enrollment}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/trainings/enroll [post]
func (h *TrainingHandler) Enroll(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	var payload models.EnrollPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if payload.TrainingID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Training ID required"})
	}

	training, ok := h.trainingRepo.FindTraining(payload.TrainingID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Training not found"})
	}

	if training.SeatsAvailable <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No seats available"})
	}

	if _, exists := h.trainingRepo.FindEnrollment(user.ID, payload.TrainingID); exists {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Already enrolled"})
	}

	enrollment := h.trainingRepo.CreateEnrollment(func(id int) models.Enrollment {
		return models.Enrollment{
			ID:         id,
			EmployeeID: user.ID,
			TrainingID: payload.TrainingID,
			EnrolledAt: time.Now().Format(time.RFC3339),
			Status:     "Enrolled",
			Progress:   0,
		}
	})
	h.trainingRepo.UpdateTraining(payload.TrainingID, func(t *models.Training) {
		t.SeatsAvailable--
	})

	return c.JSON(fiber.Map{"message": "Successfully enrolled", "enrollment": enrollment})
}

// My godoc
// @Summary List trainings the caller is enrolled in
// @Tags Trainings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{trainings=[]models.TrainingWithEnrollment}
// @Router /api/trainings/my [get]
func (h *TrainingHandler) My(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	enrollments := h.trainingRepo.EnrollmentsFor(user.ID)
	trainings := make([]models.TrainingWithEnrollment, 0, len(enrollments))
	for _, enrollment := range enrollments {
		training, ok := h.trainingRepo.FindTraining(enrollment.TrainingID)
		if !ok {
			continue
		}
		trainings = append(trainings, models.TrainingWithEnrollment{
			Training:   training,
			Enrollment: enrollment,
		})
	}

	return c.JSON(fiber.Map{"trainings": trainings})
}

// Complete marks the caller's enrollment finished and issues a
// certificate carrying a verification code and QR image.
func (h *TrainingHandler) Complete(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	trainingID, err := c.ParamsInt("trainingId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid training id"})
	}

	enrollment, ok := h.trainingRepo.FindEnrollment(user.ID, trainingID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not enrolled in this training"})
	}

	training, ok := h.trainingRepo.FindTraining(trainingID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Training not found"})
	}

	completedAt := time.Now().Format(time.RFC3339)
	h.trainingRepo.UpdateEnrollment(enrollment.ID, func(e *models.Enrollment) {
		e.Status = "Completed"
		e.Progress = 100
		e.CompletedAt = completedAt
	})

	verificationCode := uuid.NewString()
	certificate := h.trainingRepo.CreateCertificate(func(id int) models.Certificate {
		return models.Certificate{
			ID:               id,
			EmployeeID:       user.ID,
			TrainingID:       trainingID,
			TrainingTitle:    training.Title,
			Trainer:          training.Trainer,
			CompletionDate:   completedAt,
			CertificateURL:   fmt.Sprintf("/certificates/%d.pdf", id),
			VerificationCode: verificationCode,
		}
	})

	response := fiber.Map{"message": "Training completed", "certificate": certificate}
	if png, err := qrcode.Encode("/api/certificates/verify/"+verificationCode, qrcode.Medium, 256); err == nil {
		response["qrCode"] = "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
	}

	return c.JSON(response)
}

func (h *TrainingHandler) Certificate(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	trainingID, err := c.ParamsInt("trainingId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid training id"})
	}

	certificate, ok := h.trainingRepo.FindCertificate(user.ID, trainingID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certificate not found"})
	}

	return c.JSON(fiber.Map{"certificate": certificate})
}

// Verify resolves a certificate by its verification code. The route is
// public so printed QR codes can be scanned without logging in.
func (h *TrainingHandler) Verify(c *fiber.Ctx) error {
	code := c.Params("code")

	certificate, ok := h.trainingRepo.FindCertificateByCode(code)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certificate not found"})
	}

	return c.JSON(fiber.Map{
		"valid":        true,
		"certificate":  certificate,
		"employeeName": h.userRepo.NameOf(certificate.EmployeeID),
	})
}

// Feedback records a rating and optional comment on the caller's enrollment.
func (h *TrainingHandler) Feedback(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	trainingID, err := c.ParamsInt("trainingId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid training id"})
	}

	var payload models.TrainingFeedbackPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if payload.Rating == nil || *payload.Rating < 1 || *payload.Rating > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Rating must be between 1 and 5"})
	}

	enrollment, ok := h.trainingRepo.FindEnrollment(user.ID, trainingID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not enrolled in this training"})
	}

	h.trainingRepo.UpdateEnrollment(enrollment.ID, func(e *models.Enrollment) {
		e.Rating = *payload.Rating
		e.Feedback = payload.Feedback
		e.FeedbackSubmittedAt = time.Now().Format(time.RFC3339)
	})

	return c.JSON(fiber.Map{"message": "Feedback submitted successfully"})
}
