package router

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"hr-management-backend/chatbot"
	"hr-management-backend/config"
	"hr-management-backend/config/middleware"
	_ "hr-management-backend/docs"
	"hr-management-backend/handlers"
	"hr-management-backend/pkg/paseto"
	"hr-management-backend/repository"
)

// SetupRoutes wires repositories, handlers and routes onto the app.
func SetupRoutes(app *fiber.App, store *repository.Store, cfg *config.AppConfig) error {
	maker, err := paseto.NewMaker(cfg.PasetoSecret)
	if err != nil {
		return err
	}

	userRepo := repository.NewUserRepository(store)
	attendanceRepo := repository.NewAttendanceRepository(store)
	tripetRepo := repository.NewTripetRepository(store)
	meetingRepo := repository.NewMeetingRepository(store)
	timesheetRepo := repository.NewTimesheetRepository(store)
	trainingRepo := repository.NewTrainingRepository(store)
	leaveRepo := repository.NewLeaveRepository(store)
	salaryRepo := repository.NewSalaryRepository(store)
	feedbackRepo := repository.NewFeedbackRepository(store)
	announcementRepo := repository.NewAnnouncementRepository(store)

	authHandler := handlers.NewAuthHandler(userRepo, maker, cfg.UploadDir)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceRepo, userRepo)
	tripetHandler := handlers.NewTripetHandler(tripetRepo, userRepo)
	meetingHandler := handlers.NewMeetingHandler(meetingRepo, userRepo)
	timesheetHandler := handlers.NewTimesheetHandler(timesheetRepo, userRepo)
	trainingHandler := handlers.NewTrainingHandler(trainingRepo, userRepo)
	leaveHandler := handlers.NewLeaveHandler(leaveRepo, userRepo)
	salaryHandler := handlers.NewSalaryHandler(salaryRepo, userRepo)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackRepo)
	announcementHandler := handlers.NewAnnouncementHandler(announcementRepo, userRepo)
	chatHandler := handlers.NewChatHandler(chatbot.NewHRChatBot(attendanceRepo, leaveRepo, timesheetRepo))
	analysisHandler := handlers.NewAnalysisHandler()
	healthHandler := handlers.NewHealthHandler()

	auth := middleware.AuthMiddleware(userRepo, maker)
	requireHR := middleware.RequireHR()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "HR Management API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)
	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")

	api.Get("/health", healthHandler.Health)

	api.Post("/signup", authHandler.Signup)
	api.Post("/login", authHandler.Login)
	api.Put("/update_profile", auth, authHandler.UpdateProfile)

	api.Post("/checkin", auth, attendanceHandler.CheckIn)
	api.Post("/checkout", auth, attendanceHandler.CheckOut)
	api.Get("/attendance", auth, attendanceHandler.List)

	api.Get("/tripets", auth, tripetHandler.List)
	api.Post("/tripets", auth, tripetHandler.Create)
	api.Put("/tripets/:tripetId", auth, tripetHandler.Update)
	api.Delete("/tripets/:tripetId", auth, tripetHandler.Delete)

	api.Get("/meetings", auth, meetingHandler.List)
	api.Post("/meetings", auth, meetingHandler.Create)
	api.Put("/meetings/:meetingId", auth, meetingHandler.Update)
	api.Delete("/meetings/:meetingId", auth, meetingHandler.Delete)

	api.Get("/timesheets", auth, timesheetHandler.List)
	api.Post("/timesheets", auth, timesheetHandler.Create)
	api.Get("/timesheets/summary", auth, timesheetHandler.Summary)
	api.Get("/timesheets/export", auth, timesheetHandler.Export)
	api.Put("/timesheets/:timesheetId", auth, timesheetHandler.Update)
	api.Delete("/timesheets/:timesheetId", auth, timesheetHandler.Delete)

	api.Get("/trainings", auth, trainingHandler.List)
	api.Post("/trainings/enroll", auth, trainingHandler.Enroll)
	api.Get("/trainings/my", auth, trainingHandler.My)
	api.Post("/trainings/:trainingId/complete", auth, trainingHandler.Complete)
	api.Get("/trainings/:trainingId/certificate", auth, trainingHandler.Certificate)
	api.Post("/trainings/:trainingId/feedback", auth, trainingHandler.Feedback)
	api.Get("/certificates/verify/:code", trainingHandler.Verify)

	api.Get("/leaves", auth, leaveHandler.List)
	api.Post("/leaves", auth, leaveHandler.Create)
	api.Put("/leaves/:leaveId/status", auth, requireHR, leaveHandler.UpdateStatus)
	api.Delete("/leaves/:leaveId", auth, leaveHandler.Delete)
	api.Get("/holidays", auth, leaveHandler.Holidays)

	api.Get("/salaries", auth, salaryHandler.List)
	api.Post("/salaries", auth, requireHR, salaryHandler.Create)
	api.Put("/salaries/:salaryId", auth, requireHR, salaryHandler.Update)
	api.Delete("/salaries/:salaryId", auth, requireHR, salaryHandler.Delete)

	api.Get("/feedbacks", auth, feedbackHandler.List)
	api.Post("/feedbacks", auth, feedbackHandler.Create)
	api.Get("/feedbacks/stats", auth, feedbackHandler.Stats)
	api.Put("/feedbacks/:feedbackId/status", auth, feedbackHandler.UpdateStatus)

	api.Get("/announcements", auth, announcementHandler.List)
	api.Post("/announcements", auth, announcementHandler.Create)
	api.Put("/announcements/:announcementId", auth, announcementHandler.Update)
	api.Delete("/announcements/:announcementId", auth, announcementHandler.Delete)

	api.Post("/chat", auth, chatHandler.Chat)

	api.Post("/analyze_text", analysisHandler.AnalyzeText)
	api.Post("/analyze_file", analysisHandler.AnalyzeFile)

	log.Println("All routes registered")
	return nil
}
