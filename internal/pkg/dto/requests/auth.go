package requests

type Signup struct {
	Name          string         `json:"name" validate:"required,max=100"`
	Email         string         `json:"email" validate:"required,email"`
	Password      string         `json:"password" validate:"required,min=6"`
	Phone         string         `json:"phone,omitempty" validate:"omitempty,max=20"`
	Age           int            `json:"age,omitempty" validate:"omitempty,gte=0,lte=120"`
	Gender        string         `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Role          string         `json:"role,omitempty" validate:"omitempty,role"`
	DoctorProfile *DoctorProfile `json:"doctorProfile,omitempty"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
