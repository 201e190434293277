package repository

import "hr-management-backend/models"

type TripetRepository interface {
	All() []models.Tripet
	ForEmployee(employeeID int) []models.Tripet
	FindByID(id int) (models.Tripet, bool)
	Create(build func(id int) models.Tripet) models.Tripet
	Update(id int, mutate func(*models.Tripet)) (models.Tripet, bool)
	Delete(id int) bool
}

type tripetRepository struct {
	tripets *Collection[models.Tripet]
}

func NewTripetRepository(store *Store) TripetRepository {
	return &tripetRepository{tripets: store.Tripets}
}

func (r *tripetRepository) All() []models.Tripet { return r.tripets.All() }

func (r *tripetRepository) ForEmployee(employeeID int) []models.Tripet {
	return r.tripets.Filter(func(t models.Tripet) bool { return t.EmployeeID == employeeID })
}

func (r *tripetRepository) FindByID(id int) (models.Tripet, bool) { return r.tripets.Get(id) }

func (r *tripetRepository) Create(build func(id int) models.Tripet) models.Tripet {
	return r.tripets.Insert(build)
}

func (r *tripetRepository) Update(id int, mutate func(*models.Tripet)) (models.Tripet, bool) {
	return r.tripets.Update(id, mutate)
}

func (r *tripetRepository) Delete(id int) bool { return r.tripets.Delete(id) }
