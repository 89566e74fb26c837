// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

import (
	"time"

	"user_backend/internal/feature/users/domain/entity"
)

// birthDateLayout is the wire format for calendar dates.
const birthDateLayout = "2006-01-02"

// UserRequest represents the request body for creating (POST /users) and
// fully updating (PUT /users/:id) a user. Gin's binding tags perform the
// structural validation: email format, required names, and a birthdate
// that, when present, is well-formed and not in the future. A missing
// birthdate passes binding and is rejected by the usecase's age rule.
type UserRequest struct {
	Email       string `json:"email" binding:"required,email"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	BirthDate   string `json:"birthDate" binding:"omitempty,datetime=2006-01-02,pastdate"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
}

// ToEntity converts the request into a domain entity. The birthdate
// format is already enforced by binding, so a parse failure leaves the
// zero time, which the usecase treats as a missing birthdate.
func (r UserRequest) ToEntity() *entity.User {
	var birthDate time.Time
	if r.BirthDate != "" {
		birthDate, _ = time.Parse(birthDateLayout, r.BirthDate)
	}
	return &entity.User{
		Email:       r.Email,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		BirthDate:   birthDate,
		Address:     r.Address,
		PhoneNumber: r.PhoneNumber,
	}
}
