package models

type Announcement struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	Type           string `json:"type"`
	Priority       string `json:"priority"`
	CreatedBy      int    `json:"createdBy"`
	CreatedAt      string `json:"createdAt"`
	IsActive       bool   `json:"isActive"`
	TargetAudience string `json:"targetAudience"`
}

func (a Announcement) Key() int { return a.ID }

type AnnouncementWithName struct {
	Announcement
	CreatedByName string `json:"createdByName"`
}

type AnnouncementCreatePayload struct {
	Title          string `json:"title"`
	Content        string `json:"content"`
	Type           string `json:"type"`
	Priority       string `json:"priority"`
	TargetAudience string `json:"targetAudience"`
}

type AnnouncementUpdatePayload struct {
	Title          string `json:"title,omitempty"`
	Content        string `json:"content,omitempty"`
	Type           string `json:"type,omitempty"`
	Priority       string `json:"priority,omitempty"`
	IsActive       *bool  `json:"isActive,omitempty"`
	TargetAudience string `json:"targetAudience,omitempty"`
}
