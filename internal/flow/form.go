package flow

import (
	"math"
	"strings"
	"time"

	"github.com/nurpe/agroexchange/internal/model"
)

// BuyerForm is the raw buyer form as collected by the presentation layer.
type BuyerForm struct {
	ResidueType model.ResidueType
	Location    string
	Quantity    float64
	ExpectedGCV model.GCVBand
	PeakMonths  []time.Month
}

// SellerForm is the raw second seller step. The seller type comes from the first step.
type SellerForm struct {
	CropTypes           []model.Crop
	WasteType           model.ResidueType
	ProcurementCapacity float64
	Location            string
}

// validate checks residueType, location, quantity in that order, then the optional fields.
func (f BuyerForm) validate() (model.BuyerIntent, error) {
	switch {
	case f.ResidueType == "":
		return model.BuyerIntent{}, invalid("residueType", "is required")
	case !f.ResidueType.Valid():
		return model.BuyerIntent{}, invalid("residueType", "is not a known residue type")
	}
	location := strings.TrimSpace(f.Location)
	if location == "" {
		return model.BuyerIntent{}, invalid("location", "is required")
	}
	if !positive(f.Quantity) {
		return model.BuyerIntent{}, invalid("quantity", "must be greater than zero")
	}
	if f.ExpectedGCV != "" && !f.ExpectedGCV.Valid() {
		return model.BuyerIntent{}, invalid("expectedGCV", "is not a known GCV range")
	}
	for _, m := range f.PeakMonths {
		if !model.ValidMonth(m) {
			return model.BuyerIntent{}, invalid("peakMonths", "contains an unknown month")
		}
	}

	return model.BuyerIntent{
		ResidueType: f.ResidueType,
		Location:    location,
		Quantity:    f.Quantity,
		ExpectedGCV: f.ExpectedGCV,
		PeakMonths:  model.SortedMonths(f.PeakMonths),
	}, nil
}

// validate checks wasteType, procurementCapacity, location in that order, then crop types.
func (f SellerForm) validate(sellerType model.SellerType) (model.SellerIntent, error) {
	switch {
	case f.WasteType == "":
		return model.SellerIntent{}, invalid("wasteType", "is required")
	case !f.WasteType.Valid():
		return model.SellerIntent{}, invalid("wasteType", "is not a known residue type")
	}
	if !positive(f.ProcurementCapacity) {
		return model.SellerIntent{}, invalid("procurementCapacity", "must be greater than zero")
	}
	location := strings.TrimSpace(f.Location)
	if location == "" {
		return model.SellerIntent{}, invalid("location", "is required")
	}
	for _, crop := range f.CropTypes {
		if !crop.Valid() {
			return model.SellerIntent{}, invalid("cropTypes", "contains an unknown crop")
		}
	}

	return model.SellerIntent{
		SellerType:          sellerType,
		CropTypes:           model.SortedCrops(f.CropTypes),
		WasteType:           f.WasteType,
		ProcurementCapacity: f.ProcurementCapacity,
		Location:            location,
	}, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
