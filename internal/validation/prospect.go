package validation

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/google/uuid"

	"github.com/nurpe/bizops-dashboard/internal/model"
)

type ProspectInput struct {
	Name    string              `json:"name"`
	Email   string              `json:"email"`
	Phone   string              `json:"phone"`
	Company string              `json:"company"`
	Source  string              `json:"source"`
	Notes   string              `json:"notes"`
	Stage   model.ProspectStage `json:"stage"`
	UserID  *uuid.UUID          `json:"userId"`
}

func (in *ProspectInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Company = strings.TrimSpace(in.Company)
	in.Source = strings.TrimSpace(in.Source)
	in.Stage = model.ProspectStage(strings.ToUpper(strings.TrimSpace(string(in.Stage))))
	if in.Stage == "" {
		in.Stage = model.ProspectStageNew
	}
}

func (in ProspectInput) Validate() error {
	return wrap(validation.ValidateStruct(
		&in,
		validation.Field(&in.Name, validation.Required, notBlank, validation.Length(1, 255)),
		validation.Field(&in.Email, is.Email, validation.Length(0, 255)),
		validation.Field(&in.Phone, validation.Length(0, 50)),
		validation.Field(&in.Company, validation.Length(0, 255)),
		validation.Field(&in.Source, validation.Length(0, 100)),
		validation.Field(&in.Stage, validation.Required, validation.In(
			model.ProspectStageNew,
			model.ProspectStageContacted,
			model.ProspectStageQualified,
			model.ProspectStageWon,
			model.ProspectStageLost,
		)),
	))
}

func (in ProspectInput) Apply(p *model.Prospect) {
	p.Name = in.Name
	p.Email = in.Email
	p.Phone = in.Phone
	p.Company = in.Company
	p.Source = in.Source
	p.Notes = in.Notes
	p.Stage = in.Stage
	p.UserID = in.UserID
}
