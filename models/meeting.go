package models

type Meeting struct {
	ID           int    `json:"id"`
	OrganizerID  int    `json:"organizerId"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Location     string `json:"location"`
	Agenda       string `json:"agenda"`
	Participants []int  `json:"participants"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

func (m Meeting) Key() int { return m.ID }

type MeetingWithName struct {
	Meeting
	OrganizerName string `json:"organizerName"`
}

type MeetingCreatePayload struct {
	Title        string `json:"title"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Location     string `json:"location"`
	Agenda       string `json:"agenda"`
	Participants []int  `json:"participants"`
}

// MeetingUpdatePayload carries a partial update; nil/empty fields are left untouched.
type MeetingUpdatePayload struct {
	Title        string `json:"title,omitempty"`
	Date         string `json:"date,omitempty"`
	StartTime    string `json:"startTime,omitempty"`
	EndTime      string `json:"endTime,omitempty"`
	Location     string `json:"location,omitempty"`
	Agenda       string `json:"agenda,omitempty"`
	Participants *[]int `json:"participants,omitempty"`
	Status       string `json:"status,omitempty"`
}
