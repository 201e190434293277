package repository

import (
	"strings"

	"hr-management-backend/models"
)

type UserRepository interface {
	FindByEmailAndRole(email, role string) (models.User, bool)
	FindByEmail(email string) (models.User, bool)
	FindByID(id int) (models.User, bool)
	EmailExists(email string) bool
	Create(email, passwordHash, role, name, phone, qualification string) models.User
	Update(id int, mutate func(*models.User)) (models.User, bool)
	NameOf(id int) string
	All() []models.User
}

type userRepository struct {
	users *Collection[models.User]
}

func NewUserRepository(store *Store) UserRepository {
	return &userRepository{users: store.Users}
}

func (r *userRepository) FindByEmailAndRole(email, role string) (models.User, bool) {
	return r.users.Find(func(u models.User) bool {
		return strings.EqualFold(u.Email, email) && u.Role == role
	})
}

func (r *userRepository) FindByEmail(email string) (models.User, bool) {
	return r.users.Find(func(u models.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *userRepository) FindByID(id int) (models.User, bool) {
	return r.users.Get(id)
}

func (r *userRepository) EmailExists(email string) bool {
	_, ok := r.users.Find(func(u models.User) bool { return strings.EqualFold(u.Email, email) })
	return ok
}

func (r *userRepository) Create(email, passwordHash, role, name, phone, qualification string) models.User {
	return r.users.Insert(func(id int) models.User {
		return models.User{
			ID:            id,
			Email:         email,
			Password:      passwordHash,
			Role:          role,
			Name:          name,
			Phone:         phone,
			Qualification: qualification,
		}
	})
}

func (r *userRepository) Update(id int, mutate func(*models.User)) (models.User, bool) {
	return r.users.Update(id, mutate)
}

// NameOf resolves an employee id to a display name for list annotations.
func (r *userRepository) NameOf(id int) string {
	if u, ok := r.users.Get(id); ok {
		return u.Name
	}
	return "Unknown"
}

func (r *userRepository) All() []models.User {
	return r.users.All()
}
