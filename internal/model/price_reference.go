package model

import "github.com/google/uuid"

type StructureSociety string

const (
	StructureSocietyMineOwned StructureSociety = "MINE_OWNED"
	StructureSocietyOther     StructureSociety = "OTHER"
)

type CardinalZone string

const (
	CardinalZoneNorth CardinalZone = "NORTH"
	CardinalZoneSouth CardinalZone = "SOUTH"
	CardinalZoneEast  CardinalZone = "EAST"
	CardinalZoneWest  CardinalZone = "WEST"
)

type Logistics struct {
	WarehouseFee float64 `gorm:"not null;default:0" json:"warehouseFee"`
}

type Commercial struct {
	ServiceFee    float64 `gorm:"not null;default:0" json:"serviceFee"`
	MarginPercent float64 `gorm:"not null;default:0" json:"marginPercent"`
}

// Fiscality holds the tax lines. Total1 and NetVAT are computed and may be negative.
type Fiscality struct {
	VAT             float64 `gorm:"column:vat;not null;default:0" json:"vat"`
	CustomsDuty     float64 `gorm:"not null;default:0" json:"customsDuty"`
	ConsumptionDuty float64 `gorm:"not null;default:0" json:"consumptionDuty"`
	ImportVAT       float64 `gorm:"column:import_vat;not null;default:0" json:"importVat"`
	Total1          float64 `gorm:"column:total1;not null;default:0" json:"total1"`
	NetVAT          float64 `gorm:"column:net_vat;not null;default:0" json:"netVat"`
}

// Parafiscality holds the non-tax mandatory levies.
type Parafiscality struct {
	SecurityStockFund   float64 `gorm:"not null;default:0" json:"securityStockFund"`
	StrategicStockFund  float64 `gorm:"not null;default:0" json:"strategicStockFund"`
	MarkingFee          float64 `gorm:"not null;default:0" json:"markingFee"`
	RoadMaintenanceFund float64 `gorm:"not null;default:0" json:"roadMaintenanceFund"`
	InspectionFee       float64 `gorm:"not null;default:0" json:"inspectionFee"`
	Total               float64 `gorm:"not null;default:0" json:"total"`
}

type PriceReference struct {
	Base
	Name               string           `gorm:"size:255;not null" json:"name"`
	Product            string           `gorm:"size:255" json:"product"`
	UserID             *uuid.UUID       `gorm:"type:uuid;index" json:"userId,omitempty"`
	StructureSociety   StructureSociety `gorm:"size:16;not null;index" json:"structureSociety"`
	CardinalZone       CardinalZone     `gorm:"size:8;not null" json:"cardinalZone"`
	Rate               float64          `gorm:"not null" json:"rate"`
	Logistics          Logistics        `gorm:"embedded;embeddedPrefix:logistics_" json:"logistics"`
	Commercial         Commercial       `gorm:"embedded;embeddedPrefix:commercial_" json:"commercial"`
	Fiscality          Fiscality        `gorm:"embedded;embeddedPrefix:fiscality_" json:"fiscality"`
	Parafiscality      Parafiscality    `gorm:"embedded;embeddedPrefix:parafiscality_" json:"parafiscality"`
	CommercialPriceUSD float64          `gorm:"column:commercial_price_usd;not null;default:0" json:"commercialPriceUsd"`
	CommercialPriceCDF float64          `gorm:"column:commercial_price_cdf;not null;default:0" json:"commercialPriceCdf"`
}

func (p *PriceReference) IsNonMining() bool {
	return p.StructureSociety == StructureSocietyOther
}
