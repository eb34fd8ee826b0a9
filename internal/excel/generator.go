package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/agroexchange/internal/dashboard"
	"github.com/nurpe/agroexchange/internal/model"
)

const (
	summarySheet    = "Summary"
	trendSheet      = "Price Trend"
	comparisonSheet = "Residue Comparison"
	regionSheet     = "Regions"
	matchSheet      = "Matches"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(d *dashboard.Dashboard) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	file.SetSheetName("Sheet1", summarySheet)
	g.writeSummary(file, d)

	writers := []struct {
		sheet string
		write func(*excelize.File, string, *dashboard.Dashboard)
	}{
		{trendSheet, g.writeTrend},
		{comparisonSheet, g.writeComparison},
		{regionSheet, g.writeRegions},
		{matchSheet, g.writeMatches},
	}
	for _, w := range writers {
		if _, err := file.NewSheet(w.sheet); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", w.sheet, err)
		}
		w.write(file, w.sheet, d)
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, d *dashboard.Dashboard) {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(summarySheet, cell, value)
	}

	set("A1", d.Title)
	set("A2", d.Subtitle)

	rows := intentRows(d)
	for i, row := range rows {
		r := 4 + i
		set(fmt.Sprintf("A%d", r), row[0])
		set(fmt.Sprintf("B%d", r), row[1])
	}

	metricRow := 4 + len(rows) + 1
	set(fmt.Sprintf("A%d", metricRow), "Metric")
	set(fmt.Sprintf("B%d", metricRow), "Value")
	set(fmt.Sprintf("C%d", metricRow), "Change")
	for i, m := range d.Metrics {
		r := metricRow + 1 + i
		set(fmt.Sprintf("A%d", r), m.Label)
		set(fmt.Sprintf("B%d", r), strings.TrimSpace(m.Value+" "+m.Unit))
		set(fmt.Sprintf("C%d", r), firstNonEmpty(m.Change, m.Sub))
	}

	_ = file.SetColWidth(summarySheet, "A", "A", 28)
	_ = file.SetColWidth(summarySheet, "B", "B", 40)
	_ = file.SetColWidth(summarySheet, "C", "C", 14)
}

func (g *Generator) writeTrend(file *excelize.File, sheet string, d *dashboard.Dashboard) {
	writeTable(file, sheet, []string{"Month", "Price per MT", "Volume, MT"}, len(d.PriceTrend), func(i int) []interface{} {
		p := d.PriceTrend[i]
		return []interface{}{p.Month, p.Price, p.Volume}
	})
	_ = file.SetColWidth(sheet, "A", "C", 16)
}

func (g *Generator) writeComparison(file *excelize.File, sheet string, d *dashboard.Dashboard) {
	writeTable(file, sheet, []string{"Residue", "Supply, MT", "Demand, MT", "GCV, kcal/kg", "Your residue"}, len(d.Comparison), func(i int) []interface{} {
		s := d.Comparison[i]
		return []interface{}{s.Name, s.Supply, s.Demand, s.GCV, yesNo(s.Highlighted)}
	})
	_ = file.SetColWidth(sheet, "A", "A", 20)
	_ = file.SetColWidth(sheet, "B", "E", 14)
}

func (g *Generator) writeRegions(file *excelize.File, sheet string, d *dashboard.Dashboard) {
	type row struct {
		state, district string
		size            float64
	}
	var rows []row
	for _, region := range d.Regions {
		for _, district := range region.Districts {
			rows = append(rows, row{region.Name, district.Name, district.Size})
		}
	}
	writeTable(file, sheet, []string{"State", "District", "Available, MT"}, len(rows), func(i int) []interface{} {
		return []interface{}{rows[i].state, rows[i].district, rows[i].size}
	})
	_ = file.SetColWidth(sheet, "A", "B", 20)
	_ = file.SetColWidth(sheet, "C", "C", 16)
}

func (g *Generator) writeMatches(file *excelize.File, sheet string, d *dashboard.Dashboard) {
	writeTable(file, sheet, []string{"Partner", "Location", "Residue", "Quantity, MT", "Price", "Rating"}, len(d.Matches), func(i int) []interface{} {
		m := d.Matches[i]
		return []interface{}{m.Name, m.Location, string(m.Residue), m.QuantityMT, m.Price, m.Rating}
	})
	_ = file.SetColWidth(sheet, "A", "A", 24)
	_ = file.SetColWidth(sheet, "B", "F", 16)
}

func writeTable(file *excelize.File, sheet string, headers []string, n int, row func(int) []interface{}) {
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = file.SetCellValue(sheet, cell, header)
	}
	for r := 0; r < n; r++ {
		for c, value := range row(r) {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = file.SetCellValue(sheet, cell, value)
		}
	}
}

func intentRows(d *dashboard.Dashboard) [][2]string {
	switch {
	case d.Buyer != nil:
		b := d.Buyer
		return [][2]string{
			{"Role", "Buyer"},
			{"Residue type", string(b.ResidueType)},
			{"Location", b.Location},
			{"Quantity, MT", formatQuantity(b.Quantity)},
			{"Expected GCV", firstNonEmpty(string(b.ExpectedGCV), "-")},
			{"Peak months", firstNonEmpty(formatMonths(b.PeakMonths), "-")},
		}
	case d.Seller != nil:
		s := d.Seller
		return [][2]string{
			{"Role", "Seller"},
			{"Seller type", string(s.SellerType)},
			{"Crops", firstNonEmpty(formatCrops(s.CropTypes), "-")},
			{"Residue type", string(s.WasteType)},
			{"Capacity, MT/season", formatQuantity(s.ProcurementCapacity)},
			{"Storage location", s.Location},
		}
	default:
		return nil
	}
}

func formatQuantity(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func formatMonths(months []time.Month) string {
	names := make([]string, len(months))
	for i, m := range months {
		names[i] = m.String()
	}
	return strings.Join(names, ", ")
}

func formatCrops(crops []model.Crop) string {
	names := make([]string, len(crops))
	for i, c := range crops {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return ""
}
