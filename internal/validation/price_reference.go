package validation

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"

	"github.com/nurpe/bizops-dashboard/internal/model"
)

type LogisticsInput struct {
	WarehouseFee float64 `json:"warehouseFee"`
}

func (in LogisticsInput) Validate() error {
	return validation.ValidateStruct(
		&in,
		validation.Field(&in.WarehouseFee, nonNegative),
	)
}

type CommercialInput struct {
	ServiceFee    float64 `json:"serviceFee"`
	MarginPercent float64 `json:"marginPercent"`
}

func (in CommercialInput) Validate() error {
	return validation.ValidateStruct(
		&in,
		validation.Field(&in.ServiceFee, nonNegative),
		validation.Field(&in.MarginPercent, nonNegative, validation.Max(100.0)),
	)
}

// FiscalityInput carries the tax lines entered by the user. The totals are
// always computed.
type FiscalityInput struct {
	VAT             float64 `json:"vat"`
	CustomsDuty     float64 `json:"customsDuty"`
	ConsumptionDuty float64 `json:"consumptionDuty"`
	ImportVAT       float64 `json:"importVat"`
}

func (in FiscalityInput) Validate() error {
	return validation.ValidateStruct(
		&in,
		validation.Field(&in.VAT, nonNegative),
		validation.Field(&in.CustomsDuty, nonNegative),
		validation.Field(&in.ConsumptionDuty, nonNegative),
		validation.Field(&in.ImportVAT, nonNegative),
	)
}

type ParafiscalityInput struct {
	SecurityStockFund   float64 `json:"securityStockFund"`
	StrategicStockFund  float64 `json:"strategicStockFund"`
	MarkingFee          float64 `json:"markingFee"`
	RoadMaintenanceFund float64 `json:"roadMaintenanceFund"`
	InspectionFee       float64 `json:"inspectionFee"`
}

func (in ParafiscalityInput) Validate() error {
	return validation.ValidateStruct(
		&in,
		validation.Field(&in.SecurityStockFund, nonNegative),
		validation.Field(&in.StrategicStockFund, nonNegative),
		validation.Field(&in.MarkingFee, nonNegative),
		validation.Field(&in.RoadMaintenanceFund, nonNegative),
		validation.Field(&in.InspectionFee, nonNegative),
	)
}

// PriceReferenceInput is the full replacement body of a price reference.
// Sub-records are pointers so a missing one is reported instead of zeroed.
type PriceReferenceInput struct {
	Name             string                 `json:"name"`
	Product          string                 `json:"product"`
	UserID           *uuid.UUID             `json:"userId"`
	StructureSociety model.StructureSociety `json:"structureSociety"`
	CardinalZone     model.CardinalZone     `json:"cardinalZone"`
	Rate             float64                `json:"rate"`
	Logistics        *LogisticsInput        `json:"logistics"`
	Commercial       *CommercialInput       `json:"commercial"`
	Fiscality        *FiscalityInput        `json:"fiscality"`
	Parafiscality    *ParafiscalityInput    `json:"parafiscality"`
}

func (in *PriceReferenceInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Product = strings.TrimSpace(in.Product)
	in.StructureSociety = model.StructureSociety(strings.ToUpper(strings.TrimSpace(string(in.StructureSociety))))
	in.CardinalZone = model.CardinalZone(strings.ToUpper(strings.TrimSpace(string(in.CardinalZone))))
}

func (in PriceReferenceInput) Validate() error {
	return wrap(validation.ValidateStruct(
		&in,
		validation.Field(&in.Name, validation.Required, notBlank, validation.Length(1, 255)),
		validation.Field(&in.Product, validation.Length(0, 255)),
		validation.Field(&in.StructureSociety, validation.Required, validation.In(
			model.StructureSocietyMineOwned,
			model.StructureSocietyOther,
		)),
		validation.Field(&in.CardinalZone, validation.Required, validation.In(
			model.CardinalZoneNorth,
			model.CardinalZoneSouth,
			model.CardinalZoneEast,
			model.CardinalZoneWest,
		)),
		validation.Field(&in.Rate, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&in.Logistics, validation.NotNil),
		validation.Field(&in.Commercial, validation.NotNil),
		validation.Field(&in.Fiscality, validation.NotNil),
		validation.Field(&in.Parafiscality, validation.NotNil),
	))
}
