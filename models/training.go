package models

type Training struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Trainer        string `json:"trainer"`
	Date           string `json:"date"`
	Duration       string `json:"duration"`
	Category       string `json:"category"`
	SeatsAvailable int    `json:"seatsAvailable"`
}

func (t Training) Key() int { return t.ID }

// TrainingWithStatus annotates a Training with the caller's enrollment state.
type TrainingWithStatus struct {
	Training
	IsEnrolled bool `json:"isEnrolled"`
}

type TrainingWithEnrollment struct {
	Training
	Enrollment Enrollment `json:"enrollment"`
}

type Enrollment struct {
	ID                  int    `json:"id"`
	EmployeeID          int    `json:"employeeId"`
	TrainingID          int    `json:"trainingId"`
	EnrolledAt          string `json:"enrolledAt"`
	Status              string `json:"status"`
	Progress            int    `json:"progress"`
	CompletedAt         string `json:"completedAt,omitempty"`
	Rating              int    `json:"rating,omitempty"`
	Feedback            string `json:"feedback,omitempty"`
	FeedbackSubmittedAt string `json:"feedbackSubmittedAt,omitempty"`
}

func (e Enrollment) Key() int { return e.ID }

type Certificate struct {
	ID               int    `json:"id"`
	EmployeeID       int    `json:"employeeId"`
	TrainingID       int    `json:"trainingId"`
	TrainingTitle    string `json:"trainingTitle"`
	Trainer          string `json:"trainer"`
	CompletionDate   string `json:"completionDate"`
	CertificateURL   string `json:"certificateUrl"`
	VerificationCode string `json:"verificationCode"`
}

func (c Certificate) Key() int { return c.ID }

type EnrollPayload struct {
	TrainingID int `json:"trainingId"`
}

type TrainingFeedbackPayload struct {
	Rating   *int   `json:"rating"`
	Feedback string `json:"feedback"`
}
