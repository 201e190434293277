package repository

import "hr-management-backend/models"

type AnnouncementRepository interface {
	All() []models.Announcement
	Active() []models.Announcement
	FindByID(id int) (models.Announcement, bool)
	Create(build func(id int) models.Announcement) models.Announcement
	Update(id int, mutate func(*models.Announcement)) (models.Announcement, bool)
	Delete(id int) bool
}

type announcementRepository struct {
	announcements *Collection[models.Announcement]
}

func NewAnnouncementRepository(store *Store) AnnouncementRepository {
	return &announcementRepository{announcements: store.Announcements}
}

func (r *announcementRepository) All() []models.Announcement { return r.announcements.All() }

func (r *announcementRepository) Active() []models.Announcement {
	return r.announcements.Filter(func(a models.Announcement) bool { return a.IsActive })
}

func (r *announcementRepository) FindByID(id int) (models.Announcement, bool) {
	return r.announcements.Get(id)
}

func (r *announcementRepository) Create(build func(id int) models.Announcement) models.Announcement {
	return r.announcements.Insert(build)
}

func (r *announcementRepository) Update(id int, mutate func(*models.Announcement)) (models.Announcement, bool) {
	return r.announcements.Update(id, mutate)
}

func (r *announcementRepository) Delete(id int) bool { return r.announcements.Delete(id) }
