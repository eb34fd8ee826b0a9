package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/wcharczuk/go-chart/v2/roboto"

	"github.com/nurpe/agroexchange/internal/dashboard"
	"github.com/nurpe/agroexchange/internal/model"
)

type Generator struct {
	fontName string
	now      func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Roboto", now: time.Now}
}

// Generate renders a one-page summary of the committed intent and the sample market snapshot.
func (g *Generator) Generate(d *dashboard.Dashboard) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetTitle("AgroExchange intent summary", true)
	pdf.AddUTF8FontFromBytes(g.fontName, "", roboto.Roboto)
	pdf.AddUTF8FontFromBytes(g.fontName, "B", roboto.Roboto)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 16)
	pdf.CellFormat(0, 10, d.Title, "", 1, "C", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, d.Subtitle, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s", g.now().Format("02.01.2006 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	addIntentBlock(pdf, g.fontName, d)
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Market snapshot", "", 1, "L", false, 0, "")
	for _, m := range d.Metrics {
		line := fmt.Sprintf("%s: %s", m.Label, strings.TrimSpace(m.Value+" "+m.Unit))
		if extra := strings.TrimSpace(m.Change + " " + m.Sub); extra != "" {
			line += " (" + extra + ")"
		}
		pdf.SetFont(g.fontName, "", 10)
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Top matches", "", 1, "L", false, 0, "")
	widths := []float64{50, 25, 35, 25, 30, 15}
	drawTableRow(pdf, g.fontName, []string{"Partner", "Location", "Residue", "Quantity", "Price", "Rating"}, widths, true)
	for _, m := range d.Matches {
		drawTableRow(pdf, g.fontName, []string{
			m.Name,
			m.Location,
			string(m.Residue),
			formatAmount(m.QuantityMT, 0) + " MT",
			m.Price,
			formatAmount(m.Rating, 1),
		}, widths, false)
	}

	pdf.Ln(4)
	pdf.SetFont(g.fontName, "", 8)
	pdf.MultiCell(0, 4, "Figures are indicative sample data and do not represent executed trades.", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addIntentBlock(pdf *gofpdf.Fpdf, fontName string, d *dashboard.Dashboard) {
	var title string
	var lines []string
	switch {
	case d.Buyer != nil:
		b := d.Buyer
		title = "Buyer requirement"
		lines = []string{
			fmt.Sprintf("Residue type: %s", b.ResidueType),
			fmt.Sprintf("Location: %s", b.Location),
			fmt.Sprintf("Quantity: %s MT", formatAmount(b.Quantity, 2)),
			fmt.Sprintf("Expected GCV: %s", safeValue(string(b.ExpectedGCV))),
			fmt.Sprintf("Peak months: %s", safeValue(joinMonths(b.PeakMonths))),
		}
	case d.Seller != nil:
		s := d.Seller
		title = "Seller listing"
		lines = []string{
			fmt.Sprintf("Seller type: %s", s.SellerType),
			fmt.Sprintf("Crops: %s", safeValue(joinCrops(s.CropTypes))),
			fmt.Sprintf("Residue type: %s", s.WasteType),
			fmt.Sprintf("Capacity: %s MT/season", formatAmount(s.ProcurementCapacity, 2)),
			fmt.Sprintf("Storage location: %s", s.Location),
		}
	default:
		return
	}

	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 10)
	for _, line := range lines {
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 9)
	for i, col := range cols {
		align := "L"
		if i > 2 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
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

func joinMonths(months []time.Month) string {
	names := make([]string, len(months))
	for i, m := range months {
		names[i] = m.String()
	}
	return strings.Join(names, ", ")
}

func joinCrops(crops []model.Crop) string {
	names := make([]string, len(crops))
	for i, c := range crops {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
