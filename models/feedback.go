package models

type Feedback struct {
	ID           int    `json:"id"`
	EmployeeID   int    `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Type         string `json:"type"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Rating       int    `json:"rating"`
	Category     string `json:"category"`
	Anonymous    bool   `json:"anonymous"`
	SubmittedAt  string `json:"submittedAt"`
	Status       string `json:"status"`
	ReviewedAt   string `json:"reviewedAt,omitempty"`
}

func (f Feedback) Key() int { return f.ID }

type FeedbackCreatePayload struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Rating      *int   `json:"rating"`
	Category    string `json:"category"`
	Anonymous   bool   `json:"anonymous"`
}

type FeedbackStatusPayload struct {
	Status string `json:"status"`
}

type FeedbackStats struct {
	Total         int            `json:"total"`
	Pending       int            `json:"pending"`
	Reviewed      int            `json:"reviewed"`
	Resolved      int            `json:"resolved"`
	AverageRating float64        `json:"averageRating"`
	Categories    map[string]int `json:"categories"`
}
