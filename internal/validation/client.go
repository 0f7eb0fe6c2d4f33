package validation

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/google/uuid"

	"github.com/nurpe/bizops-dashboard/internal/model"
)

type ClientInput struct {
	Name    string             `json:"name"`
	Email   string             `json:"email"`
	Phone   string             `json:"phone"`
	Company string             `json:"company"`
	Address string             `json:"address"`
	Status  model.ClientStatus `json:"status"`
	UserID  *uuid.UUID         `json:"userId"`
}

// Normalize trims text fields and applies the ACTIVE default status.
func (in *ClientInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Company = strings.TrimSpace(in.Company)
	in.Address = strings.TrimSpace(in.Address)
	in.Status = model.ClientStatus(strings.ToUpper(strings.TrimSpace(string(in.Status))))
	if in.Status == "" {
		in.Status = model.ClientStatusActive
	}
}

func (in ClientInput) Validate() error {
	return wrap(validation.ValidateStruct(
		&in,
		validation.Field(&in.Name, validation.Required, notBlank, validation.Length(1, 255)),
		validation.Field(&in.Email, is.Email, validation.Length(0, 255)),
		validation.Field(&in.Phone, validation.Length(0, 50)),
		validation.Field(&in.Company, validation.Length(0, 255)),
		validation.Field(&in.Address, validation.Length(0, 500)),
		validation.Field(&in.Status, validation.Required, validation.In(model.ClientStatusActive, model.ClientStatusInactive)),
	))
}

func (in ClientInput) Apply(c *model.Client) {
	c.Name = in.Name
	c.Email = in.Email
	c.Phone = in.Phone
	c.Company = in.Company
	c.Address = in.Address
	c.Status = in.Status
	c.UserID = in.UserID
}
