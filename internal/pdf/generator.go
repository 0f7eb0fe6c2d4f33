package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/bizops-dashboard/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

// PriceReference renders the price structure of one reference on a single page.
func (g *Generator) PriceReference(ref model.PriceReference) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, tr("Price structure"), "", 1, "C", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, tr(ref.Name), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	info := [][2]string{
		{"Product", safeValue(ref.Product)},
		{"Structure", structureLabel(ref.StructureSociety)},
		{"Zone", string(ref.CardinalZone)},
		{"Rate (CDF per USD)", formatAmount(ref.Rate, 2)},
		{"Updated", formatDate(ref.UpdatedAt)},
	}
	for _, line := range info {
		pdf.SetFont(g.fontName, "B", 10)
		pdf.CellFormat(55, 6, tr(line[0]), "", 0, "L", false, 0, "")
		pdf.SetFont(g.fontName, "", 10)
		pdf.CellFormat(0, 6, tr(line[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	widths := []float64{120, 60}
	section := func(title string, rows [][2]string) {
		pdf.SetFont(g.fontName, "B", 12)
		pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
		for _, row := range rows {
			drawTableRow(pdf, g.fontName, tr, []string{row[0], row[1]}, widths, false)
		}
		pdf.Ln(2)
	}

	section("Logistics", [][2]string{
		{"Warehouse fee", formatAmount(ref.Logistics.WarehouseFee, 2)},
	})
	section("Commercial", [][2]string{
		{"Service fee", formatAmount(ref.Commercial.ServiceFee, 2)},
		{"Margin (%)", formatAmount(ref.Commercial.MarginPercent, 2)},
	})
	section("Fiscality", [][2]string{
		{"VAT", formatAmount(ref.Fiscality.VAT, 2)},
		{"Customs duty", formatAmount(ref.Fiscality.CustomsDuty, 2)},
		{"Consumption duty", formatAmount(ref.Fiscality.ConsumptionDuty, 2)},
		{"Import VAT", formatAmount(ref.Fiscality.ImportVAT, 2)},
		{"Total 1", formatAmount(ref.Fiscality.Total1, 2)},
		{"Net VAT", formatAmount(ref.Fiscality.NetVAT, 2)},
	})
	section("Parafiscality", [][2]string{
		{"Security stock fund", formatAmount(ref.Parafiscality.SecurityStockFund, 2)},
		{"Strategic stock fund", formatAmount(ref.Parafiscality.StrategicStockFund, 2)},
		{"Marking fee", formatAmount(ref.Parafiscality.MarkingFee, 2)},
		{"Road maintenance fund", formatAmount(ref.Parafiscality.RoadMaintenanceFund, 2)},
		{"Inspection fee", formatAmount(ref.Parafiscality.InspectionFee, 2)},
		{"Total", formatAmount(ref.Parafiscality.Total, 2)},
	})

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Commercial price: %s CDF", formatAmount(ref.CommercialPriceCDF, 2))), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Commercial price: %s USD", formatAmount(ref.CommercialPriceUSD, 2))), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, tr func(string) string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, tr(col), "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func structureLabel(s model.StructureSociety) string {
	switch s {
	case model.StructureSocietyMineOwned:
		return "Mine-owned company"
	case model.StructureSocietyOther:
		return "Non-mining company"
	default:
		return safeValue(string(s))
	}
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatAmount(value float64, precision int) string {
	format := fmt.Sprintf("%%.%df", precision)
	return fmt.Sprintf(format, value)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02.01.2006")
}
