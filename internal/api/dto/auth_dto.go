package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/spec-kit/locker-service/internal/domain"
	apperrors "github.com/spec-kit/locker-service/pkg/util"
)

// AuthenticateRequest payload for login. Presence is deliberately not
// validated here: blank credentials fall through to the uniform
// invalid-credentials response.
type AuthenticateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate runs presence checks on every field before the email syntax
// check, reporting the first violation in field order.
func (r RegisterRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Surname, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
	if err == nil {
		return nil
	}
	errs, ok := err.(validation.Errors)
	if !ok {
		return apperrors.NewInternalError(err)
	}
	for _, field := range []string{"name", "surname", "email", "password"} {
		if _, found := errs[field]; !found {
			continue
		}
		if field == "email" && r.Email != "" {
			return apperrors.NewInvalidEmail()
		}
		return apperrors.NewMissingField(field)
	}
	return apperrors.NewInternalError(err)
}

// AuthResponse is the payload returned by both registration and
// authentication.
type AuthResponse struct {
	ID      string      `json:"id"`
	Token   string      `json:"token"`
	Email   string      `json:"email"`
	Role    domain.Role `json:"role"`
	Name    string      `json:"name"`
	Surname string      `json:"surname"`
}

// NewAuthResponse builds the auth payload for a user and token.
func NewAuthResponse(user *domain.User, token string) AuthResponse {
	return AuthResponse{
		ID:      user.ID,
		Token:   token,
		Email:   user.Email,
		Role:    user.Role,
		Name:    user.Name,
		Surname: user.Surname,
	}
}
