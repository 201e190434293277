package repository

import "hr-management-backend/models"

type TimesheetRepository interface {
	All() []models.TimesheetEntry
	ForEmployee(employeeID int) []models.TimesheetEntry
	FindByID(id int) (models.TimesheetEntry, bool)
	Create(build func(id int) models.TimesheetEntry) models.TimesheetEntry
	Update(id int, mutate func(*models.TimesheetEntry)) (models.TimesheetEntry, bool)
	Delete(id int) bool
}

type timesheetRepository struct {
	entries *Collection[models.TimesheetEntry]
}

func NewTimesheetRepository(store *Store) TimesheetRepository {
	return &timesheetRepository{entries: store.Timesheets}
}

func (r *timesheetRepository) All() []models.TimesheetEntry { return r.entries.All() }

func (r *timesheetRepository) ForEmployee(employeeID int) []models.TimesheetEntry {
	return r.entries.Filter(func(t models.TimesheetEntry) bool { return t.EmployeeID == employeeID })
}

func (r *timesheetRepository) FindByID(id int) (models.TimesheetEntry, bool) {
	return r.entries.Get(id)
}

func (r *timesheetRepository) Create(build func(id int) models.TimesheetEntry) models.TimesheetEntry {
	return r.entries.Insert(build)
}

func (r *timesheetRepository) Update(id int, mutate func(*models.TimesheetEntry)) (models.TimesheetEntry, bool) {
	return r.entries.Update(id, mutate)
}

func (r *timesheetRepository) Delete(id int) bool { return r.entries.Delete(id) }
