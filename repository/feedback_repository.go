package repository

import "hr-management-backend/models"

type FeedbackRepository interface {
	All() []models.Feedback
	ForEmployee(employeeID int) []models.Feedback
	FindByID(id int) (models.Feedback, bool)
	Create(build func(id int) models.Feedback) models.Feedback
	Update(id int, mutate func(*models.Feedback)) (models.Feedback, bool)
}

type feedbackRepository struct {
	feedbacks *Collection[models.Feedback]
}

func NewFeedbackRepository(store *Store) FeedbackRepository {
	return &feedbackRepository{feedbacks: store.Feedbacks}
}

func (r *feedbackRepository) All() []models.Feedback { return r.feedbacks.All() }

func (r *feedbackRepository) ForEmployee(employeeID int) []models.Feedback {
	return r.feedbacks.Filter(func(f models.Feedback) bool { return f.EmployeeID == employeeID })
}

func (r *feedbackRepository) FindByID(id int) (models.Feedback, bool) { return r.feedbacks.Get(id) }

func (r *feedbackRepository) Create(build func(id int) models.Feedback) models.Feedback {
	return r.feedbacks.Insert(build)
}

func (r *feedbackRepository) Update(id int, mutate func(*models.Feedback)) (models.Feedback, bool) {
	return r.feedbacks.Update(id, mutate)
}
