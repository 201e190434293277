package models

type LeaveRequest struct {
	ID          int    `json:"id"`
	EmployeeID  int    `json:"employeeId"`
	LeaveType   string `json:"leaveType"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Days        int    `json:"days"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
	AppliedDate string `json:"appliedDate"`
}

func (l LeaveRequest) Key() int { return l.ID }

type LeaveWithName struct {
	LeaveRequest
	EmployeeName string `json:"employeeName"`
}

type LeaveCreatePayload struct {
	LeaveType string `json:"leaveType" validate:"required,oneof='Annual Leave' 'Sick Leave' 'Casual Leave' 'Unpaid Leave'"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02,gtefield=StartDate"`
	Reason    string `json:"reason" validate:"required,min=3,max=500"`
}

type LeaveStatusPayload struct {
	Status string `json:"status" validate:"required,oneof=Pending Approved Rejected"`
}
