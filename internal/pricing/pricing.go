// Package pricing computes the derived totals of a price reference.
//
// All component amounts are in local currency (CDF) per unit; the rate
// converts CDF to USD (CDF per 1 USD).
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/nurpe/bizops-dashboard/internal/model"
	"github.com/nurpe/bizops-dashboard/internal/validation"
)

const amountPlaces = 2

var ErrInvalidRate = errors.New("rate must be greater than zero")

var hundred = decimal.NewFromInt(100)

type Result struct {
	ParafiscalTotal    decimal.Decimal
	Total1             decimal.Decimal
	NetVAT             decimal.Decimal
	BaseCost           decimal.Decimal
	Margin             decimal.Decimal
	CommercialPriceCDF decimal.Decimal
	CommercialPriceUSD decimal.Decimal
}

// Compute derives the totals of a validated input. Sub-records must be present.
func Compute(in validation.PriceReferenceInput) (Result, error) {
	rate := decimal.NewFromFloat(in.Rate)
	if !rate.IsPositive() {
		return Result{}, ErrInvalidRate
	}

	p := in.Parafiscality
	parafiscal := sum(
		p.SecurityStockFund,
		p.StrategicStockFund,
		p.MarkingFee,
		p.RoadMaintenanceFund,
		p.InspectionFee,
	)

	f := in.Fiscality
	total1 := sum(f.CustomsDuty, f.ConsumptionDuty, f.ImportVAT)
	netVAT := decimal.NewFromFloat(f.VAT).Sub(decimal.NewFromFloat(f.ImportVAT))

	base := sum(in.Logistics.WarehouseFee, in.Commercial.ServiceFee).
		Add(total1).
		Add(netVAT).
		Add(parafiscal)
	margin := base.Mul(decimal.NewFromFloat(in.Commercial.MarginPercent)).Div(hundred)
	priceCDF := base.Add(margin)

	return Result{
		ParafiscalTotal:    parafiscal.Round(amountPlaces),
		Total1:             total1.Round(amountPlaces),
		NetVAT:             netVAT.Round(amountPlaces),
		BaseCost:           base.Round(amountPlaces),
		Margin:             margin.Round(amountPlaces),
		CommercialPriceCDF: priceCDF.Round(amountPlaces),
		CommercialPriceUSD: priceCDF.Div(rate).Round(amountPlaces),
	}, nil
}

// Apply writes the input and its computed totals onto a record, replacing
// every pricing field.
func Apply(in validation.PriceReferenceInput, ref *model.PriceReference) error {
	res, err := Compute(in)
	if err != nil {
		return err
	}

	ref.Name = in.Name
	ref.Product = in.Product
	ref.UserID = in.UserID
	ref.StructureSociety = in.StructureSociety
	ref.CardinalZone = in.CardinalZone
	ref.Rate = in.Rate
	ref.Logistics = model.Logistics{WarehouseFee: in.Logistics.WarehouseFee}
	ref.Commercial = model.Commercial{
		ServiceFee:    in.Commercial.ServiceFee,
		MarginPercent: in.Commercial.MarginPercent,
	}
	ref.Fiscality = model.Fiscality{
		VAT:             in.Fiscality.VAT,
		CustomsDuty:     in.Fiscality.CustomsDuty,
		ConsumptionDuty: in.Fiscality.ConsumptionDuty,
		ImportVAT:       in.Fiscality.ImportVAT,
		Total1:          res.Total1.InexactFloat64(),
		NetVAT:          res.NetVAT.InexactFloat64(),
	}
	ref.Parafiscality = model.Parafiscality{
		SecurityStockFund:   in.Parafiscality.SecurityStockFund,
		StrategicStockFund:  in.Parafiscality.StrategicStockFund,
		MarkingFee:          in.Parafiscality.MarkingFee,
		RoadMaintenanceFund: in.Parafiscality.RoadMaintenanceFund,
		InspectionFee:       in.Parafiscality.InspectionFee,
		Total:               res.ParafiscalTotal.InexactFloat64(),
	}
	ref.CommercialPriceCDF = res.CommercialPriceCDF.InexactFloat64()
	ref.CommercialPriceUSD = res.CommercialPriceUSD.InexactFloat64()
	return nil
}

func sum(values ...float64) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total
}
