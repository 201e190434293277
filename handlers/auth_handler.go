package handlers

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hr-management-backend/config/middleware"
	"hr-management-backend/models"
	"hr-management-backend/pkg/paseto"
	"hr-management-backend/pkg/password"
	"hr-management-backend/repository"
)

const tokenDuration = 24 * time.Hour

type AuthHandler struct {
	userRepo  repository.UserRepository
	maker     *paseto.Maker
	uploadDir string
}

func NewAuthHandler(userRepo repository.UserRepository, maker *paseto.Maker, uploadDir string) *AuthHandler {
	return &AuthHandler{
		userRepo:  userRepo,
		maker:     maker,
		uploadDir: uploadDir,
	}
}

// Signup godoc
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body models.SignupPayload true "Signup data"
// @Success 200 {object} object{message=string,user=models.PublicUser}
// @Failure 400 {object} object{error=string}
// @Router /api/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var payload models.SignupPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if payload.Email == "" || payload.Password == "" || payload.Role == "" || payload.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
	}

	if h.userRepo.EmailExists(payload.Email) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User already exists"})
	}

	hashed, err := password.HashPassword(payload.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := h.userRepo.Create(payload.Email, hashed, payload.Role, payload.Name, payload.Phone, payload.Qualification)

	return c.JSON(fiber.Map{
		"message": "User created successfully",
		"user":    user.Public(),
	})
}

// Login godoc
// @Summary Log in with email, password and role
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginPayload true "Login credentials"
// @Success 200 {object} object{message=string,user=models.PublicUser,token=string}
// @Failure 401 {object} object{error=string}
// @Router /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload models.LoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	user, ok := h.userRepo.FindByEmailAndRole(payload.Email, payload.Role)
	if !ok || !password.CheckPasswordHash(payload.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token, err := h.maker.GenerateToken(user, tokenDuration)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user.Public(),
		"token":   token,
	})
}

// UpdateProfile godoc
// @Summary Update the caller's profile
// @Tags Auth
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Display name"
// @Param phone formData string false "Phone number"
// @Param qualification formData string false "Qualification"
// @Param profilePic formData file false "Profile picture"
// @Success 200 {object} object{message=string,user=models.PublicUser}
// @Failure 400 {object} object{error=string}
// @Router /api/update_profile [put]
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
	}

	name := c.FormValue("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}
	phone := c.FormValue("phone")
	qualification := c.FormValue("qualification")

	profilePic := ""
	if file, err := c.FormFile("profilePic"); err == nil && file != nil {
		filename := fmt.Sprintf("profile_%d_%s%s", user.ID, uuid.NewString(), filepath.Ext(file.Filename))
		if err := c.SaveFile(file, filepath.Join(h.uploadDir, filename)); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save profile picture"})
		}
		profilePic = "/uploads/" + filename
	}

	updated, ok := h.userRepo.Update(user.ID, func(u *models.User) {
		u.Name = name
		u.Phone = phone
		u.Qualification = qualification
		if profilePic != "" {
			u.ProfilePic = profilePic
		}
	})
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"user":    updated.Public(),
	})
}
