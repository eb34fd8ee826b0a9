// Package dashboard shapes the sample market-intelligence view for a committed intent.
package dashboard

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nurpe/agroexchange/internal/flow"
	"github.com/nurpe/agroexchange/internal/model"
)

var ErrNotReady = errors.New("dashboard is not available")

type Tab string

const (
	TabTrends     Tab = "trends"
	TabComparison Tab = "comparison"
)

type PricePoint struct {
	Month  string
	Price  float64
	Volume float64
}

type ResidueStat struct {
	Name        string
	Residue     model.ResidueType
	Supply      float64
	Demand      float64
	GCV         float64
	Highlighted bool
}

type District struct {
	Name string
	Size float64
}

type Region struct {
	Name      string
	Districts []District
}

func (r Region) Total() float64 {
	total := 0.0
	for _, d := range r.Districts {
		total += d.Size
	}
	return total
}

type QualityAxis struct {
	Subject   string
	Regional  float64
	Benchmark float64
	FullMark  float64
}

type Match struct {
	Name       string
	Location   string
	Residue    model.ResidueType
	QuantityMT float64
	PricePerMT int
	Price      string
	Rating     float64
}

type Metric struct {
	Label  string
	Value  string
	Unit   string
	Change string
	Sub    string
	Icon   string
}

type Dashboard struct {
	Role     model.Role
	Title    string
	Subtitle string
	Location string
	Currency string
	Buyer    *model.BuyerIntent
	Seller   *model.SellerIntent
	Tabs     []Tab

	Metrics    []Metric
	PriceTrend []PricePoint
	Comparison []ResidueStat
	Regions    []Region
	Quality    []QualityAxis
	Matches    []Match
}

// FocusResidue is the residue type of whichever intent the dashboard was built for.
func (d *Dashboard) FocusResidue() model.ResidueType {
	switch {
	case d.Buyer != nil:
		return d.Buyer.ResidueType
	case d.Seller != nil:
		return d.Seller.WasteType
	default:
		return ""
	}
}

// Build returns the dashboard for a screen that is showing the dashboard view.
func Build(screen flow.Screen, currency string) (*Dashboard, error) {
	if screen.View != model.ViewDashboard || !screen.Intent.IsSet() {
		return nil, fmt.Errorf("%w: current view is %s", ErrNotReady, screen.View)
	}

	location := screen.Intent.Location()
	subjectLocation := location
	if subjectLocation == "" {
		subjectLocation = "your region"
	}

	d := &Dashboard{
		Role:     screen.Role,
		Title:    "Market Intelligence",
		Subtitle: "Real-time supply and demand insights for " + subjectLocation,
		Location: location,
		Currency: currency,
		Buyer:    screen.Intent.Buyer,
		Seller:   screen.Intent.Seller,
		Tabs:     []Tab{TabTrends, TabComparison},

		PriceTrend: append([]PricePoint(nil), samplePriceTrend...),
		Quality:    append([]QualityAxis(nil), sampleQuality...),
		Regions:    copyRegions(sampleRegions),
	}

	focus := d.FocusResidue()
	d.Comparison = make([]ResidueStat, len(sampleResidueComparison))
	for i, stat := range sampleResidueComparison {
		stat.Highlighted = stat.Residue == focus
		d.Comparison[i] = stat
	}

	d.Matches = make([]Match, len(sampleMatches))
	for i, m := range sampleMatches {
		m.Price = FormatMoney(currency, m.PricePerMT) + "/MT"
		d.Matches[i] = m
	}

	d.Metrics = []Metric{
		{Label: "Market Matches", Value: "24", Change: "+12%", Icon: "🔥"},
		{Label: "Avg Price/MT", Value: FormatMoney(currency, sampleAvgPricePerMT), Change: "-2.4%", Icon: "📈"},
		{Label: "Total Supply", Value: "14.2k", Unit: "MT", Change: "+5%", Icon: "🌾"},
		{Label: "Your Rank", Value: "#4", Sub: "in region", Icon: "🏆"},
	}
	return d, nil
}

// FormatMoney renders an amount with thousands separators, e.g. "INR 1,900".
func FormatMoney(currency string, amount int) string {
	p := message.NewPrinter(language.English)
	if currency == "" {
		return p.Sprintf("%d", amount)
	}
	return p.Sprintf("%s %d", currency, amount)
}

func copyRegions(in []Region) []Region {
	out := make([]Region, len(in))
	for i, r := range in {
		out[i] = Region{Name: r.Name, Districts: append([]District(nil), r.Districts...)}
	}
	return out
}
