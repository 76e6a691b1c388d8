package responses

import "time"

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	Age       int       `json:"age,omitempty"`
	Gender    string    `json:"gender,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type Auth struct {
	User  *User  `json:"user"`
	Token string `json:"token,omitempty"`
}

// Me is the current-user payload; doctors carry their profile inline.
type Me struct {
	User          *User   `json:"user"`
	DoctorProfile *Doctor `json:"doctorProfile,omitempty"`
}
