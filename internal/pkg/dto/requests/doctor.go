package requests

type TimeWindow struct {
	Start string `json:"start" validate:"required,len=5"`
	End   string `json:"end" validate:"required,len=5"`
}

type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state,omitempty"`
	Pincode string `json:"pincode,omitempty"`
	Country string `json:"country,omitempty"`
}

type DoctorProfile struct {
	Specialization  string       `json:"specialization" validate:"required,max=100"`
	ExperienceYears int          `json:"experienceYears" validate:"gte=0"`
	Qualification   []string     `json:"qualification" validate:"required,min=1,dive,required"`
	ClinicName      string       `json:"clinicName" validate:"required,max=150"`
	Address         *Address     `json:"address,omitempty"`
	ConsultationFee float64      `json:"consultationFee" validate:"gte=0"`
	AvailableDays   []string     `json:"availableDays,omitempty" validate:"omitempty,dive,weekday"`
	TimeSlots       []TimeWindow `json:"timeSlots,omitempty" validate:"omitempty,dive"`
	Bio             string       `json:"bio,omitempty" validate:"omitempty,max=500"`
}

// UpdateDoctorProfile carries the allow-listed self-service fields; nil slices
// and empty strings leave the stored value untouched.
type UpdateDoctorProfile struct {
	Specialization  *string      `json:"specialization,omitempty" validate:"omitempty,max=100"`
	ExperienceYears *int         `json:"experienceYears,omitempty" validate:"omitempty,gte=0"`
	Qualification   []string     `json:"qualification,omitempty" validate:"omitempty,min=1,dive,required"`
	ClinicName      *string      `json:"clinicName,omitempty" validate:"omitempty,max=150"`
	Address         *Address     `json:"address,omitempty"`
	ConsultationFee *float64     `json:"consultationFee,omitempty" validate:"omitempty,gte=0"`
	AvailableDays   []string     `json:"availableDays,omitempty" validate:"omitempty,dive,weekday"`
	TimeSlots       []TimeWindow `json:"timeSlots,omitempty" validate:"omitempty,dive"`
	Bio             *string      `json:"bio,omitempty" validate:"omitempty,max=500"`
}

// DoctorListQuery filters the public doctor directory.
type DoctorListQuery struct {
	Specialization string
	City           string
	MinExperience  int
	MaxFee         float64
	Page           int
	Limit          int
}

// AdminDoctorListQuery filters the admin doctor listing.
type AdminDoctorListQuery struct {
	IsVerified     *bool
	IsActive       *bool
	Specialization string
	Page           int
	Limit          int
}

type CreateDoctor struct {
	UserData      Signup        `json:"userData" validate:"required"`
	DoctorProfile DoctorProfile `json:"doctorProfile" validate:"required"`
}
