package models

// Tripet is an employee business-trip request.
type Tripet struct {
	ID             int    `json:"id"`
	EmployeeID     int    `json:"employeeId"`
	Destination    string `json:"destination"`
	Purpose        string `json:"purpose"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	Accommodation  string `json:"accommodation"`
	Transportation string `json:"transportation"`
	Status         string `json:"status"`
	Date           string `json:"date"`
}

func (t Tripet) Key() int { return t.ID }

type TripetWithName struct {
	Tripet
	EmployeeName string `json:"employeeName"`
}

type TripetCreatePayload struct {
	Destination    string `json:"destination"`
	Purpose        string `json:"purpose"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	Accommodation  string `json:"accommodation"`
	Transportation string `json:"transportation"`
}

// TripetUpdatePayload carries a partial update; empty fields are left untouched.
type TripetUpdatePayload struct {
	Destination    string `json:"destination,omitempty"`
	Purpose        string `json:"purpose,omitempty"`
	StartDate      string `json:"startDate,omitempty"`
	EndDate        string `json:"endDate,omitempty"`
	Accommodation  string `json:"accommodation,omitempty"`
	Transportation string `json:"transportation,omitempty"`
	Status         string `json:"status,omitempty"`
}
