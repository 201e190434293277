package models

type TimesheetEntry struct {
	ID          int     `json:"id"`
	EmployeeID  int     `json:"employeeId"`
	Date        string  `json:"date"`
	Project     string  `json:"project"`
	Task        string  `json:"task"`
	Hours       float64 `json:"hours"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func (t TimesheetEntry) Key() int { return t.ID }

type TimesheetWithName struct {
	TimesheetEntry
	EmployeeName string `json:"employeeName"`
}

// TimesheetCreatePayload uses a pointer for Hours so a missing field can be
// told apart from an explicit zero.
type TimesheetCreatePayload struct {
	Date        string   `json:"date"`
	Project     string   `json:"project"`
	Task        string   `json:"task"`
	Hours       *float64 `json:"hours"`
	Description string   `json:"description"`
}

type TimesheetUpdatePayload struct {
	Date        string   `json:"date,omitempty"`
	Project     *string  `json:"project,omitempty"`
	Task        *string  `json:"task,omitempty"`
	Hours       *float64 `json:"hours,omitempty"`
	Description *string  `json:"description,omitempty"`
}

type PeriodTotals struct {
	Hours   float64 `json:"hours"`
	Entries int     `json:"entries"`
}

type SummaryPeriod struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Type      string `json:"type"`
}

type TimesheetSummary struct {
	Period          SummaryPeriod            `json:"period"`
	TotalHours      float64                  `json:"total_hours"`
	TotalEntries    int                      `json:"total_entries"`
	ProjectSummary  map[string]*PeriodTotals `json:"project_summary"`
	EmployeeSummary map[string]*PeriodTotals `json:"employee_summary"`
}
