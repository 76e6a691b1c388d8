package models

import (
	"medibook-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Role      string             `bson:"role"`
	Phone     string             `bson:"phone,omitempty"`
	Age       int                `bson:"age,omitempty"`
	Gender    string             `bson:"gender,omitempty"`
	IsActive  bool               `bson:"isActive"`
	TimeModel `bson:",inline"`
}

func (u *User) IsPatient() bool {
	return u.Role == constvars.RolePatient
}

func (u *User) IsDoctor() bool {
	return u.Role == constvars.RoleDoctor
}

func (u *User) IsAdmin() bool {
	return u.Role == constvars.RoleAdmin
}
