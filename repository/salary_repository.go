package repository

import "hr-management-backend/models"

type SalaryRepository interface {
	All() []models.Salary
	ForEmployee(employeeID int) []models.Salary
	FindByID(id int) (models.Salary, bool)
	FindByEmployeeAndMonth(employeeID int, month string) (models.Salary, bool)
	Create(build func(id int) models.Salary) models.Salary
	Update(id int, mutate func(*models.Salary)) (models.Salary, bool)
	Delete(id int) bool
}

type salaryRepository struct {
	salaries *Collection[models.Salary]
}

func NewSalaryRepository(store *Store) SalaryRepository {
	return &salaryRepository{salaries: store.Salaries}
}

func (r *salaryRepository) All() []models.Salary { return r.salaries.All() }

func (r *salaryRepository) ForEmployee(employeeID int) []models.Salary {
	return r.salaries.Filter(func(s models.Salary) bool { return s.EmployeeID == employeeID })
}

func (r *salaryRepository) FindByID(id int) (models.Salary, bool) { return r.salaries.Get(id) }

func (r *salaryRepository) FindByEmployeeAndMonth(employeeID int, month string) (models.Salary, bool) {
	return r.salaries.Find(func(s models.Salary) bool {
		return s.EmployeeID == employeeID && s.Month == month
	})
}

func (r *salaryRepository) Create(build func(id int) models.Salary) models.Salary {
	return r.salaries.Insert(build)
}

func (r *salaryRepository) Update(id int, mutate func(*models.Salary)) (models.Salary, bool) {
	return r.salaries.Update(id, mutate)
}

func (r *salaryRepository) Delete(id int) bool { return r.salaries.Delete(id) }
