package excel

import (
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/bizops-dashboard/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

type column struct {
	header string
	width  float64
}

func (g *Generator) Clients(clients []model.Client) ([]byte, error) {
	columns := []column{
		{"Name", 32}, {"Company", 28}, {"Email", 30}, {"Phone", 18},
		{"Address", 40}, {"Status", 12}, {"Created", 20},
	}
	rows := make([][]interface{}, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []interface{}{
			c.Name, c.Company, c.Email, c.Phone, c.Address, string(c.Status), formatDateTime(c.CreatedAt),
		})
	}
	return g.table("Clients", columns, rows)
}

func (g *Generator) Prospects(prospects []model.Prospect) ([]byte, error) {
	columns := []column{
		{"Name", 32}, {"Company", 28}, {"Email", 30}, {"Phone", 18},
		{"Source", 18}, {"Stage", 12}, {"Notes", 40}, {"Created", 20},
	}
	rows := make([][]interface{}, 0, len(prospects))
	for _, p := range prospects {
		rows = append(rows, []interface{}{
			p.Name, p.Company, p.Email, p.Phone, p.Source, string(p.Stage), p.Notes, formatDateTime(p.CreatedAt),
		})
	}
	return g.table("Prospects", columns, rows)
}

func (g *Generator) PriceReferences(refs []model.PriceReference) ([]byte, error) {
	columns := []column{
		{"Name", 30}, {"Product", 20}, {"Structure", 14}, {"Zone", 10}, {"Rate (CDF/USD)", 16},
		{"Warehouse fee", 16}, {"Service fee", 14}, {"Margin %", 10},
		{"VAT", 12}, {"Customs duty", 14}, {"Consumption duty", 18}, {"Import VAT", 12},
		{"Total 1", 12}, {"Net VAT", 12}, {"Parafiscal total", 16},
		{"Price CDF", 14}, {"Price USD", 12}, {"Created", 20},
	}
	rows := make([][]interface{}, 0, len(refs))
	for _, r := range refs {
		rows = append(rows, []interface{}{
			r.Name, r.Product, string(r.StructureSociety), string(r.CardinalZone), r.Rate,
			r.Logistics.WarehouseFee, r.Commercial.ServiceFee, r.Commercial.MarginPercent,
			r.Fiscality.VAT, r.Fiscality.CustomsDuty, r.Fiscality.ConsumptionDuty, r.Fiscality.ImportVAT,
			r.Fiscality.Total1, r.Fiscality.NetVAT, r.Parafiscality.Total,
			r.CommercialPriceCDF, r.CommercialPriceUSD, formatDateTime(r.CreatedAt),
		})
	}
	return g.table("Price references", columns, rows)
}

// table writes a single sheet with a bold header row followed by rows.
func (g *Generator) table(sheet string, columns []column, rows [][]interface{}) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	sheet = sanitizeSheetName(sheet)
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headerStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = file.SetCellValue(sheet, cell, col.header)
		name, _ := excelize.ColumnNumberToName(i + 1)
		_ = file.SetColWidth(sheet, name, name, col.width)
	}
	last, _ := excelize.CoordinatesToCellName(len(columns), 1)
	_ = file.SetCellStyle(sheet, "A1", last, headerStyle)

	for r, row := range rows {
		for c, value := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = file.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sanitizeSheetName(value string) string {
	if value == "" {
		return "Sheet"
	}
	runes := []rune(value)
	for i, r := range runes {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			runes[i] = '-'
		}
	}
	if len(runes) > 31 {
		runes = runes[:31]
	}
	return string(runes)
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}
