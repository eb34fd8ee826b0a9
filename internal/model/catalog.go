package model

import (
	"sort"
	"strings"
	"time"
)

type ResidueType string

const (
	ResidueRiceStraw      ResidueType = "Rice Straw"
	ResidueWheatStraw     ResidueType = "Wheat Straw"
	ResidueMustardHusk    ResidueType = "Mustard Husk"
	ResidueCottonStalks   ResidueType = "Cotton Stalks"
	ResidueSugarcaneTrash ResidueType = "Sugarcane Trash"
	ResidueSoybeanTrash   ResidueType = "Soybean Trash"
)

var ResidueTypes = []ResidueType{
	ResidueRiceStraw,
	ResidueWheatStraw,
	ResidueMustardHusk,
	ResidueCottonStalks,
	ResidueSugarcaneTrash,
	ResidueSoybeanTrash,
}

func (r ResidueType) Valid() bool {
	switch r {
	case ResidueRiceStraw, ResidueWheatStraw, ResidueMustardHusk,
		ResidueCottonStalks, ResidueSugarcaneTrash, ResidueSoybeanTrash:
		return true
	default:
		return false
	}
}

func ParseResidueType(raw string) (ResidueType, bool) {
	key := normalizeKey(raw)
	for _, r := range ResidueTypes {
		if normalizeKey(string(r)) == key {
			return r, true
		}
	}
	return "", false
}

// GCVBand is a gross calorific value bracket for biomass.
type GCVBand string

const (
	GCVVeryLow GCVBand = "3000 - 3500 kcal/kg"
	GCVLow     GCVBand = "3500 - 4000 kcal/kg"
	GCVMedium  GCVBand = "4000 - 4500 kcal/kg"
	GCVHigh    GCVBand = "Above 4500 kcal/kg"
	GCVUnknown GCVBand = "Don't Know"
)

var GCVBands = []GCVBand{GCVVeryLow, GCVLow, GCVMedium, GCVHigh, GCVUnknown}

var gcvCodes = map[string]GCVBand{
	"very_low": GCVVeryLow,
	"low":      GCVLow,
	"medium":   GCVMedium,
	"high":     GCVHigh,
	"unknown":  GCVUnknown,
}

func (g GCVBand) Valid() bool {
	switch g {
	case GCVVeryLow, GCVLow, GCVMedium, GCVHigh, GCVUnknown:
		return true
	default:
		return false
	}
}

// ParseGCVBand accepts either the display label or a short code such as "medium".
func ParseGCVBand(raw string) (GCVBand, bool) {
	key := normalizeKey(raw)
	if band, ok := gcvCodes[key]; ok {
		return band, true
	}
	for _, g := range GCVBands {
		if normalizeKey(string(g)) == key {
			return g, true
		}
	}
	return "", false
}

type SellerType string

const (
	SellerIndividual   SellerType = "Individual Farmer"
	SellerOrganization SellerType = "Organization (FPO/Trader)"
)

var SellerTypes = []SellerType{SellerIndividual, SellerOrganization}

func (s SellerType) Valid() bool {
	switch s {
	case SellerIndividual, SellerOrganization:
		return true
	default:
		return false
	}
}

func ParseSellerType(raw string) (SellerType, bool) {
	switch normalizeKey(raw) {
	case "individual", normalizeKey(string(SellerIndividual)):
		return SellerIndividual, true
	case "organization", "fpo", normalizeKey(string(SellerOrganization)):
		return SellerOrganization, true
	default:
		return "", false
	}
}

type Crop string

const (
	CropPaddy     Crop = "Paddy"
	CropWheat     Crop = "Wheat"
	CropMustard   Crop = "Mustard"
	CropCotton    Crop = "Cotton"
	CropSugarcane Crop = "Sugarcane"
	CropSoybean   Crop = "Soybean"
	CropMaize     Crop = "Maize"
	CropBajra     Crop = "Bajra"
)

var Crops = []Crop{
	CropPaddy,
	CropWheat,
	CropMustard,
	CropCotton,
	CropSugarcane,
	CropSoybean,
	CropMaize,
	CropBajra,
}

func (c Crop) Valid() bool {
	return cropIndex(c) >= 0
}

func ParseCrop(raw string) (Crop, bool) {
	key := normalizeKey(raw)
	for _, c := range Crops {
		if normalizeKey(string(c)) == key {
			return c, true
		}
	}
	return "", false
}

func cropIndex(c Crop) int {
	for i, candidate := range Crops {
		if candidate == c {
			return i
		}
	}
	return -1
}

// ParseMonth accepts full English month names and three letter abbreviations.
func ParseMonth(raw string) (time.Month, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if len(key) < 3 {
		return 0, false
	}
	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		if key == name || key == name[:3] {
			return m, true
		}
	}
	return 0, false
}

func ValidMonth(m time.Month) bool {
	return m >= time.January && m <= time.December
}

// SortedMonths returns a de-duplicated copy in calendar order. Invalid months are kept
// at the end so callers can still report them.
func SortedMonths(in []time.Month) []time.Month {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[time.Month]struct{}, len(in))
	out := make([]time.Month, 0, len(in))
	for _, m := range in {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		vi, vj := ValidMonth(out[i]), ValidMonth(out[j])
		if vi != vj {
			return vi
		}
		return out[i] < out[j]
	})
	return out
}

// SortedCrops returns a de-duplicated copy in catalogue order.
func SortedCrops(in []Crop) []Crop {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[Crop]struct{}, len(in))
	out := make([]Crop, 0, len(in))
	for _, c := range in {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		ii, ij := cropIndex(out[i]), cropIndex(out[j])
		if ii < 0 || ij < 0 {
			return ij < 0 && ii >= 0
		}
		return ii < ij
	})
	return out
}
