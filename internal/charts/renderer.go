package charts

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/nurpe/agroexchange/internal/dashboard"
)

var (
	forestGreen = drawing.ColorFromHex("2D5A27")
	sage        = drawing.ColorFromHex("A3B18A")
)

type Renderer struct {
	Width  int
	Height int
}

func NewRenderer() *Renderer {
	return &Renderer{Width: 960, Height: 420}
}

// PriceTrend draws the monthly price line with volume on the secondary axis as a PNG.
func (r *Renderer) PriceTrend(d *dashboard.Dashboard) ([]byte, error) {
	if len(d.PriceTrend) < 2 {
		return nil, fmt.Errorf("price trend needs at least two points, got %d", len(d.PriceTrend))
	}

	xs := make([]float64, len(d.PriceTrend))
	prices := make([]float64, len(d.PriceTrend))
	volumes := make([]float64, len(d.PriceTrend))
	ticks := make([]chart.Tick, len(d.PriceTrend))
	for i, p := range d.PriceTrend {
		xs[i] = float64(i)
		prices[i] = p.Price
		volumes[i] = p.Volume
		ticks[i] = chart.Tick{Value: float64(i), Label: p.Month}
	}

	priceName := "Price per MT"
	if d.Currency != "" {
		priceName = fmt.Sprintf("Price per MT (%s)", d.Currency)
	}

	ch := chart.Chart{
		Title:      "Market price trend",
		Width:      r.Width,
		Height:     r.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Ticks: ticks},
		YAxis:      chart.YAxis{Name: priceName},
		YAxisSecondary: chart.YAxis{
			Name: "Volume, MT",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    priceName,
				XValues: xs,
				YValues: prices,
				Style:   chart.Style{StrokeColor: forestGreen, StrokeWidth: 3},
			},
			chart.ContinuousSeries{
				Name:    "Volume, MT",
				YAxis:   chart.YAxisSecondary,
				XValues: xs,
				YValues: volumes,
				Style:   chart.Style{StrokeColor: sage, StrokeWidth: 2, StrokeDashArray: []float64{5, 5}},
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
