package repository

import "hr-management-backend/models"

type LeaveRepository interface {
	All() []models.LeaveRequest
	ForEmployee(employeeID int) []models.LeaveRequest
	FindByID(id int) (models.LeaveRequest, bool)
	Create(build func(id int) models.LeaveRequest) models.LeaveRequest
	Update(id int, mutate func(*models.LeaveRequest)) (models.LeaveRequest, bool)
	Delete(id int) bool
}

type leaveRepository struct {
	leaves *Collection[models.LeaveRequest]
}

func NewLeaveRepository(store *Store) LeaveRepository {
	return &leaveRepository{leaves: store.Leaves}
}

func (r *leaveRepository) All() []models.LeaveRequest { return r.leaves.All() }

func (r *leaveRepository) ForEmployee(employeeID int) []models.LeaveRequest {
	return r.leaves.Filter(func(l models.LeaveRequest) bool { return l.EmployeeID == employeeID })
}

func (r *leaveRepository) FindByID(id int) (models.LeaveRequest, bool) { return r.leaves.Get(id) }

func (r *leaveRepository) Create(build func(id int) models.LeaveRequest) models.LeaveRequest {
	return r.leaves.Insert(build)
}

func (r *leaveRepository) Update(id int, mutate func(*models.LeaveRequest)) (models.LeaveRequest, bool) {
	return r.leaves.Update(id, mutate)
}

func (r *leaveRepository) Delete(id int) bool { return r.leaves.Delete(id) }
