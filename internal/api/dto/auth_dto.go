package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/campushub/campus-events-gateway/internal/domain"
)

// LoginRequest payload for sign-in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the payload before any upstream call is made.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// RegisterRequest payload for new accounts. Elevated roles are granted
// through organizer requests, never self-assigned at sign-up.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Validate checks the payload before any upstream call is made.
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 0)),
		validation.Field(&r.Role, validation.Required,
			validation.In(string(domain.RoleStudent), string(domain.RoleOrganizer))),
	)
}

// OrganizerRequestPayload asks the upstream to elevate a user.
type OrganizerRequestPayload struct {
	UserID        string `json:"userId"`
	OrganizerID   string `json:"organizerId"`
	Justification string `json:"justification"`
}

// Validate checks the payload.
func (r OrganizerRequestPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID, validation.Required),
		validation.Field(&r.OrganizerID, validation.Required),
		validation.Field(&r.Justification, validation.Required),
	)
}
