package repository

import "hr-management-backend/models"

type AttendanceRepository interface {
	FindByEmployeeAndDate(employeeID int, date string) (models.AttendanceRecord, bool)
	FindOpen(employeeID int, date string) (models.AttendanceRecord, bool)
	Create(employeeID int, date, checkIn, status string) models.AttendanceRecord
	Update(id int, mutate func(*models.AttendanceRecord)) (models.AttendanceRecord, bool)
	ForEmployee(employeeID int) []models.AttendanceRecord
	All() []models.AttendanceRecord
}

type attendanceRepository struct {
	records *Collection[models.AttendanceRecord]
}

func NewAttendanceRepository(store *Store) AttendanceRepository {
	return &attendanceRepository{records: store.Attendance}
}

func (r *attendanceRepository) FindByEmployeeAndDate(employeeID int, date string) (models.AttendanceRecord, bool) {
	return r.records.Find(func(rec models.AttendanceRecord) bool {
		return rec.EmployeeID == employeeID && rec.Date == date
	})
}

// FindOpen returns the record for the given day that has a check-in but no
// check-out yet.
func (r *attendanceRepository) FindOpen(employeeID int, date string) (models.AttendanceRecord, bool) {
	return r.records.Find(func(rec models.AttendanceRecord) bool {
		return rec.EmployeeID == employeeID && rec.Date == date && rec.CheckIn != "" && rec.CheckOut == ""
	})
}

func (r *attendanceRepository) Create(employeeID int, date, checkIn, status string) models.AttendanceRecord {
	return r.records.Insert(func(id int) models.AttendanceRecord {
		return models.AttendanceRecord{
			ID:         id,
			EmployeeID: employeeID,
			Date:       date,
			CheckIn:    checkIn,
			Status:     status,
		}
	})
}

func (r *attendanceRepository) Update(id int, mutate func(*models.AttendanceRecord)) (models.AttendanceRecord, bool) {
	return r.records.Update(id, mutate)
}

func (r *attendanceRepository) ForEmployee(employeeID int) []models.AttendanceRecord {
	return r.records.Filter(func(rec models.AttendanceRecord) bool {
		return rec.EmployeeID == employeeID
	})
}

func (r *attendanceRepository) All() []models.AttendanceRecord {
	return r.records.All()
}
