package models

type Salary struct {
	ID          int     `json:"id"`
	EmployeeID  int     `json:"employeeId"`
	Month       string  `json:"month"`
	BasicSalary float64 `json:"basicSalary"`
	Allowances  float64 `json:"allowances"`
	Deductions  float64 `json:"deductions"`
	NetSalary   float64 `json:"netSalary"`
	Status      string  `json:"status"`
	Notes       string  `json:"notes,omitempty"`
	PaidAt      string  `json:"paidAt,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func (s Salary) Key() int { return s.ID }

type SalaryWithName struct {
	Salary
	EmployeeName string `json:"employeeName"`
}

type SalaryCreatePayload struct {
	EmployeeID  int     `json:"employeeId" validate:"required,min=1"`
	Month       string  `json:"month" validate:"required,datetime=2006-01"`
	BasicSalary float64 `json:"basicSalary" validate:"required,min=0"`
	Allowances  float64 `json:"allowances" validate:"min=0"`
	Deductions  float64 `json:"deductions" validate:"min=0"`
	Notes       string  `json:"notes"`
}

type SalaryUpdatePayload struct {
	BasicSalary *float64 `json:"basicSalary,omitempty" validate:"omitempty,min=0"`
	Allowances  *float64 `json:"allowances,omitempty" validate:"omitempty,min=0"`
	Deductions  *float64 `json:"deductions,omitempty" validate:"omitempty,min=0"`
	Status      string   `json:"status,omitempty" validate:"omitempty,oneof=Processing Paid"`
	Notes       string   `json:"notes,omitempty"`
}
