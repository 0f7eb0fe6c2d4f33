package validation

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/nurpe/bizops-dashboard/internal/model"
)

const (
	minPasswordLength = 8
	// bcrypt rejects longer passwords.
	maxPasswordBytes = 72
)

type UserInput struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Role     model.Role `json:"role"`
	Password string     `json:"password"`
}

func (in *UserInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Role = model.Role(strings.ToUpper(strings.TrimSpace(string(in.Role))))
}

// Defaults fills what a new user may omit. Replacements must name the role.
func (in *UserInput) Defaults() {
	if in.Role == "" {
		in.Role = model.RoleCommercial
	}
}

// Validate checks a user being created; the password is mandatory.
func (in UserInput) Validate() error {
	return in.validate(true)
}

// ValidateUpdate checks a replacement; an empty password keeps the current one.
func (in UserInput) ValidateUpdate() error {
	return in.validate(false)
}

func (in UserInput) validate(passwordRequired bool) error {
	passwordRules := []validation.Rule{validation.Length(minPasswordLength, maxPasswordBytes), passwordBytes}
	if passwordRequired {
		passwordRules = append([]validation.Rule{validation.Required}, passwordRules...)
	}
	return wrap(validation.ValidateStruct(
		&in,
		validation.Field(&in.Name, validation.Required, notBlank, validation.Length(1, 255)),
		validation.Field(&in.Email, validation.Required, is.Email, validation.Length(1, 255)),
		validation.Field(&in.Role, validation.Required, validation.In(model.RoleAdmin, model.RoleCommercial)),
		validation.Field(&in.Password, passwordRules...),
	))
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in LoginInput) Validate() error {
	return wrap(validation.ValidateStruct(
		&in,
		validation.Field(&in.Email, validation.Required, is.Email),
		validation.Field(&in.Password, validation.Required),
	))
}

var passwordBytes = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if len(s) > maxPasswordBytes {
		return errors.New("must be at most 72 bytes")
	}
	return nil
})
