package requests

type UpdatePatientProfile struct {
	Phone  *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Age    *int    `json:"age,omitempty" validate:"omitempty,gte=0,lte=120"`
	Gender *string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
}

// AdminPatientListQuery filters the admin patient listing.
type AdminPatientListQuery struct {
	IsActive *bool
	Page     int
	Limit    int
}
