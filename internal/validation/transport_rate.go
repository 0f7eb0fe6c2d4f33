package validation

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

type TransportRateInput struct {
	Destination   string  `json:"destination"`
	RateUSDPerCBM float64 `json:"rateUsdPerCbm"`
}

func (in *TransportRateInput) Normalize() {
	in.Destination = strings.TrimSpace(in.Destination)
}

func (in TransportRateInput) Validate() error {
	return wrap(validation.ValidateStruct(
		&in,
		validation.Field(&in.Destination, validation.Required, notBlank, validation.Length(1, 255)),
		validation.Field(&in.RateUSDPerCBM, validation.Required, validation.Min(0.0).Exclusive()),
	))
}
