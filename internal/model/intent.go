package model

import "time"

// BuyerIntent is a buyer's validated requirement. Values are only produced by the flow controller.
type BuyerIntent struct {
	ResidueType ResidueType
	Location    string
	Quantity    float64 // metric tons
	ExpectedGCV GCVBand // optional
	PeakMonths  []time.Month
}

// SellerIntent is a seller's validated supply listing.
type SellerIntent struct {
	SellerType          SellerType
	CropTypes           []Crop
	WasteType           ResidueType
	ProcurementCapacity float64 // MT per season
	Location            string
}

func (b BuyerIntent) Clone() BuyerIntent {
	if b.PeakMonths != nil {
		b.PeakMonths = append([]time.Month(nil), b.PeakMonths...)
	}
	return b
}

func (s SellerIntent) Clone() SellerIntent {
	if s.CropTypes != nil {
		s.CropTypes = append([]Crop(nil), s.CropTypes...)
	}
	return s
}
