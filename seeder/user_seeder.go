package seeder

import (
	"log"

	"hr-management-backend/pkg/password"
	"hr-management-backend/repository"
)

// SeedUsers creates the default HR account when the user store is empty,
// so a fresh install can be logged into straight away.
func SeedUsers(userRepo repository.UserRepository) {
	if len(userRepo.All()) > 0 {
		return
	}

	log.Println("Seeding default HR account...")

	hashed, err := password.HashPassword("admin123")
	if err != nil {
		log.Printf("Failed to hash seed password: %v", err)
		return
	}

	user := userRepo.Create("hr@company.com", hashed, "hr", "HR Admin", "", "")
	log.Printf("Seeded HR account %s (id=%d)", user.Email, user.ID)
}
