package models

type AttendanceRecord struct {
	ID         int     `json:"id"`
	EmployeeID int     `json:"employeeId"`
	Date       string  `json:"date"`
	CheckIn    string  `json:"checkIn"`
	CheckOut   string  `json:"checkOut"`
	Hours      float64 `json:"hours"`
	Status     string  `json:"status"`
}

func (a AttendanceRecord) Key() int { return a.ID }

// AttendanceWithName is an AttendanceRecord annotated with the employee's
// display name for list responses.
type AttendanceWithName struct {
	AttendanceRecord
	EmployeeName string `json:"employeeName"`
}
