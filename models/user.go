package models

type User struct {
	ID            int    `json:"id"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Role          string `json:"role"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Qualification string `json:"qualification"`
	ProfilePic    string `json:"profilePic,omitempty"`
}

func (u User) Key() int { return u.ID }

// PublicUser is the wire representation of a User with the password hash stripped.
type PublicUser struct {
	ID            int    `json:"id"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Qualification string `json:"qualification"`
	ProfilePic    string `json:"profilePic,omitempty"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:            u.ID,
		Email:         u.Email,
		Role:          u.Role,
		Name:          u.Name,
		Phone:         u.Phone,
		Qualification: u.Qualification,
		ProfilePic:    u.ProfilePic,
	}
}

type SignupPayload struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	Role          string `json:"role"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Qualification string `json:"qualification"`
}

type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
