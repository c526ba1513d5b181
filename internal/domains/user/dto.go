package user

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	shared "brashfox-backend/internal/shared/validation"
)

// RegisterRequest creates a new account. Email is optional but must be unique
// when supplied.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email,omitempty"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(shared.MinUsernameLength, shared.MaxUsernameLength),
			validation.Match(shared.UsernamePattern).
				Error("username can only contain letters, numbers, and @/./+/-/_ characters"),
		),
		validation.Field(&r.Email,
			validation.When(r.Email != "", is.Email.Error("invalid email format")),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be 8-128 characters"),
		),
		validation.Field(&r.FirstName, validation.Length(0, 150)),
		validation.Field(&r.LastName, validation.Length(0, 150)),
	)
}

// UpdateRequest changes profile fields. The username is immutable and has no
// place here; a password, when present, is re-hashed.
type UpdateRequest struct {
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.When(r.Email != nil && *r.Email != "", is.Email.Error("invalid email format")),
		),
		validation.Field(&r.Password,
			validation.When(r.Password != nil, validation.Length(8, 128).Error("password must be 8-128 characters")),
		),
	)
}

// LoginRequest backs the token-issuance endpoint.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

type TokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type VerifyRequest struct {
	Token string `json:"token" binding:"required"`
}

// DTO is the public user representation.
type DTO struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email,omitempty"`
	FirstName  string    `json:"first_name,omitempty"`
	LastName   string    `json:"last_name,omitempty"`
	IsStaff    bool      `json:"is_staff"`
	DateJoined time.Time `json:"date_joined"`
}

// ProfileDTO is DTO plus activity statistics, returned by /users/me/.
type ProfileDTO struct {
	DTO
	Statistics Statistics `json:"statistics"`
}

func (u *User) ToDTO() DTO {
	return DTO{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		IsStaff:    u.IsStaff,
		DateJoined: u.DateJoined,
	}
}
