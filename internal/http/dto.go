package http

import (
	"strconv"
	"strings"
	"time"

	"github.com/nurpe/agroexchange/internal/dashboard"
	"github.com/nurpe/agroexchange/internal/flow"
	"github.com/nurpe/agroexchange/internal/model"
	"github.com/nurpe/agroexchange/internal/service"
)

type roleRequest struct {
	Role string `json:"role" binding:"required"`
}

type sellerTypeRequest struct {
	SellerType string `json:"seller_type" binding:"required"`
}

type navigateRequest struct {
	View string `json:"view" binding:"required"`
}

// Form fields are not marked required: the controller reports missing fields in a fixed order.
type buyerIntentRequest struct {
	ResidueType string   `json:"residue_type"`
	Location    string   `json:"location"`
	Quantity    float64  `json:"quantity"`
	ExpectedGCV string   `json:"expected_gcv"`
	PeakMonths  []string `json:"peak_months"`
}

type sellerIntentRequest struct {
	CropTypes           []string `json:"crop_types"`
	WasteType           string   `json:"waste_type"`
	ProcurementCapacity float64  `json:"procurement_capacity"`
	Location            string   `json:"location"`
}

// toForm maps labels onto enums. Unrecognised values are passed through unchanged so the
// controller rejects them with a field-level validation error.
func (r buyerIntentRequest) toForm() flow.BuyerForm {
	form := flow.BuyerForm{
		Location: r.Location,
		Quantity: r.Quantity,
	}
	if residue, ok := model.ParseResidueType(r.ResidueType); ok {
		form.ResidueType = residue
	} else {
		form.ResidueType = model.ResidueType(strings.TrimSpace(r.ResidueType))
	}
	if strings.TrimSpace(r.ExpectedGCV) != "" {
		if band, ok := model.ParseGCVBand(r.ExpectedGCV); ok {
			form.ExpectedGCV = band
		} else {
			form.ExpectedGCV = model.GCVBand(strings.TrimSpace(r.ExpectedGCV))
		}
	}
	for _, raw := range r.PeakMonths {
		m, _ := model.ParseMonth(raw)
		form.PeakMonths = append(form.PeakMonths, m)
	}
	return form
}

func (r sellerIntentRequest) toForm() flow.SellerForm {
	form := flow.SellerForm{
		ProcurementCapacity: r.ProcurementCapacity,
		Location:            r.Location,
	}
	if residue, ok := model.ParseResidueType(r.WasteType); ok {
		form.WasteType = residue
	} else {
		form.WasteType = model.ResidueType(strings.TrimSpace(r.WasteType))
	}
	for _, raw := range r.CropTypes {
		if crop, ok := model.ParseCrop(raw); ok {
			form.CropTypes = append(form.CropTypes, crop)
		} else {
			form.CropTypes = append(form.CropTypes, model.Crop(strings.TrimSpace(raw)))
		}
	}
	return form
}

type buyerIntentResponse struct {
	ResidueType string   `json:"residue_type"`
	Location    string   `json:"location"`
	Quantity    float64  `json:"quantity"`
	ExpectedGCV string   `json:"expected_gcv,omitempty"`
	PeakMonths  []string `json:"peak_months"`
}

type sellerIntentResponse struct {
	SellerType          string   `json:"seller_type"`
	CropTypes           []string `json:"crop_types"`
	WasteType           string   `json:"waste_type"`
	ProcurementCapacity float64  `json:"procurement_capacity"`
	Location            string   `json:"location"`
}

type screenResponse struct {
	SessionID    string                `json:"session_id"`
	View         model.View            `json:"view"`
	Role         model.Role            `json:"role,omitempty"`
	BuyerIntent  *buyerIntentResponse  `json:"buyer_intent,omitempty"`
	SellerIntent *sellerIntentResponse `json:"seller_intent,omitempty"`
	ViewChanged  bool                  `json:"view_changed"`
}

func newScreenResponse(snap service.Snapshot) screenResponse {
	resp := screenResponse{
		SessionID:   snap.SessionID.String(),
		View:        snap.Screen.View,
		Role:        snap.Screen.Role,
		ViewChanged: snap.ViewChanged,
	}
	if b := snap.Screen.Intent.Buyer; b != nil {
		resp.BuyerIntent = newBuyerIntentResponse(b)
	}
	if s := snap.Screen.Intent.Seller; s != nil {
		resp.SellerIntent = newSellerIntentResponse(s)
	}
	return resp
}

func newBuyerIntentResponse(b *model.BuyerIntent) *buyerIntentResponse {
	return &buyerIntentResponse{
		ResidueType: string(b.ResidueType),
		Location:    b.Location,
		Quantity:    b.Quantity,
		ExpectedGCV: string(b.ExpectedGCV),
		PeakMonths:  monthNames(b.PeakMonths),
	}
}

func newSellerIntentResponse(s *model.SellerIntent) *sellerIntentResponse {
	crops := make([]string, len(s.CropTypes))
	for i, c := range s.CropTypes {
		crops[i] = string(c)
	}
	return &sellerIntentResponse{
		SellerType:          string(s.SellerType),
		CropTypes:           crops,
		WasteType:           string(s.WasteType),
		ProcurementCapacity: s.ProcurementCapacity,
		Location:            s.Location,
	}
}

func monthNames(months []time.Month) []string {
	names := make([]string, len(months))
	for i, m := range months {
		names[i] = m.String()
	}
	return names
}

type catalogResponse struct {
	ResidueTypes []model.ResidueType `json:"residue_types"`
	GCVBands     []model.GCVBand     `json:"gcv_bands"`
	SellerTypes  []model.SellerType  `json:"seller_types"`
	Crops        []model.Crop        `json:"crops"`
	Months       []string            `json:"months"`
}

func newCatalogResponse() catalogResponse {
	months := make([]time.Month, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, m)
	}
	return catalogResponse{
		ResidueTypes: model.ResidueTypes,
		GCVBands:     model.GCVBands,
		SellerTypes:  model.SellerTypes,
		Crops:        model.Crops,
		Months:       monthNames(months),
	}
}

type metricResponse struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Unit   string `json:"unit,omitempty"`
	Change string `json:"change,omitempty"`
	Sub    string `json:"sub,omitempty"`
	Icon   string `json:"icon"`
}

type pricePointResponse struct {
	Month  string  `json:"month"`
	Price  float64 `json:"price"`
	Volume float64 `json:"volume"`
}

type residueStatResponse struct {
	Name        string  `json:"name"`
	Supply      float64 `json:"supply"`
	Demand      float64 `json:"demand"`
	GCV         float64 `json:"gcv"`
	Highlighted bool    `json:"highlighted"`
}

type districtResponse struct {
	Name string  `json:"name"`
	Size float64 `json:"size"`
}

type regionResponse struct {
	Name     string             `json:"name"`
	Total    float64            `json:"total"`
	Children []districtResponse `json:"children"`
}

type qualityResponse struct {
	Subject   string  `json:"subject"`
	Regional  float64 `json:"regional"`
	Benchmark float64 `json:"benchmark"`
	FullMark  float64 `json:"full_mark"`
}

type matchResponse struct {
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Residue  string  `json:"residue"`
	Quantity string  `json:"qty"`
	Price    string  `json:"price"`
	Rating   float64 `json:"rating"`
}

type dashboardResponse struct {
	Role         model.Role            `json:"role"`
	Title        string                `json:"title"`
	Subtitle     string                `json:"subtitle"`
	Location     string                `json:"location,omitempty"`
	Tabs         []dashboard.Tab       `json:"tabs"`
	BuyerIntent  *buyerIntentResponse  `json:"buyer_intent,omitempty"`
	SellerIntent *sellerIntentResponse `json:"seller_intent,omitempty"`
	Metrics      []metricResponse      `json:"metrics"`
	PriceTrend   []pricePointResponse  `json:"price_trend"`
	Comparison   []residueStatResponse `json:"residue_comparison"`
	Regions      []regionResponse      `json:"regional_distribution"`
	Quality      []qualityResponse     `json:"quality_profile"`
	Matches      []matchResponse       `json:"matches"`
}

func newDashboardResponse(d *dashboard.Dashboard) dashboardResponse {
	resp := dashboardResponse{
		Role:     d.Role,
		Title:    d.Title,
		Subtitle: d.Subtitle,
		Location: d.Location,
		Tabs:     d.Tabs,
	}
	if d.Buyer != nil {
		resp.BuyerIntent = newBuyerIntentResponse(d.Buyer)
	}
	if d.Seller != nil {
		resp.SellerIntent = newSellerIntentResponse(d.Seller)
	}
	for _, m := range d.Metrics {
		resp.Metrics = append(resp.Metrics, metricResponse(m))
	}
	for _, p := range d.PriceTrend {
		resp.PriceTrend = append(resp.PriceTrend, pricePointResponse(p))
	}
	for _, s := range d.Comparison {
		resp.Comparison = append(resp.Comparison, residueStatResponse{
			Name:        s.Name,
			Supply:      s.Supply,
			Demand:      s.Demand,
			GCV:         s.GCV,
			Highlighted: s.Highlighted,
		})
	}
	for _, r := range d.Regions {
		region := regionResponse{Name: r.Name, Total: r.Total()}
		for _, district := range r.Districts {
			region.Children = append(region.Children, districtResponse(district))
		}
		resp.Regions = append(resp.Regions, region)
	}
	for _, q := range d.Quality {
		resp.Quality = append(resp.Quality, qualityResponse(q))
	}
	for _, m := range d.Matches {
		resp.Matches = append(resp.Matches, matchResponse{
			Name:     m.Name,
			Location: m.Location,
			Residue:  string(m.Residue),
			Quantity: formatMT(m.QuantityMT),
			Price:    m.Price,
			Rating:   m.Rating,
		})
	}
	return resp
}

func formatMT(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " MT"
}
