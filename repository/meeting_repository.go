package repository

import (
	"slices"

	"hr-management-backend/models"
)

type MeetingRepository interface {
	All() []models.Meeting
	VisibleTo(userID int) []models.Meeting
	FindByID(id int) (models.Meeting, bool)
	Create(build func(id int) models.Meeting) models.Meeting
	Update(id int, mutate func(*models.Meeting)) (models.Meeting, bool)
	Delete(id int) bool
}

type meetingRepository struct {
	meetings *Collection[models.Meeting]
}

func NewMeetingRepository(store *Store) MeetingRepository {
	return &meetingRepository{meetings: store.Meetings}
}

func (r *meetingRepository) All() []models.Meeting { return r.meetings.All() }

// VisibleTo returns meetings the user organizes or is invited to.
func (r *meetingRepository) VisibleTo(userID int) []models.Meeting {
	return r.meetings.Filter(func(m models.Meeting) bool {
		return m.OrganizerID == userID || slices.Contains(m.Participants, userID)
	})
}

func (r *meetingRepository) FindByID(id int) (models.Meeting, bool) { return r.meetings.Get(id) }

func (r *meetingRepository) Create(build func(id int) models.Meeting) models.Meeting {
	return r.meetings.Insert(build)
}

func (r *meetingRepository) Update(id int, mutate func(*models.Meeting)) (models.Meeting, bool) {
	return r.meetings.Update(id, mutate)
}

func (r *meetingRepository) Delete(id int) bool { return r.meetings.Delete(id) }
