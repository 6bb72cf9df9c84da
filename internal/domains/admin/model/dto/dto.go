package dto

import (
	"homestay/internal/domains/admin/model"
	"homestay/shared"
)

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,looseemail"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,looseemail"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is what login and register answer with.
type TokenResponse struct {
	Token string  `json:"token"`
	Admin *Record `json:"admin,omitempty"`
}

type Record struct {
	ID       string `json:"id"`
	MongoID  string `json:"_id"`
	Name     string `json:"name"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (r Record) ToModel() model.Admin {
	return model.Admin{
		ID:    shared.FirstNonEmpty(r.ID, r.MongoID),
		Name:  shared.FirstNonEmpty(r.Name, r.FullName),
		Email: r.Email,
		Role:  r.Role,
	}
}
