package dto

import (
	openapi_types "github.com/oapi-codegen/runtime/types"

	"user_backend/internal/feature/users/domain/entity"
)

// UserResponse is the wire representation of a user. BirthDate is a
// date-only value and marshals as YYYY-MM-DD.
type UserResponse struct {
	ID          uint               `json:"id"`
	Email       string             `json:"email"`
	FirstName   string             `json:"firstName"`
	LastName    string             `json:"lastName"`
	BirthDate   openapi_types.Date `json:"birthDate"`
	Address     string             `json:"address,omitempty"`
	PhoneNumber string             `json:"phoneNumber,omitempty"`
}

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewUserResponse maps a domain entity to its wire representation.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		BirthDate:   openapi_types.Date{Time: u.BirthDate},
		Address:     u.Address,
		PhoneNumber: u.PhoneNumber,
	}
}

// NewUserListResponse maps a slice of entities, returning an empty (not
// nil) slice so the JSON body is always an array.
func NewUserListResponse(users []entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
