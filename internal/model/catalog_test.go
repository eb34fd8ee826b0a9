package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseResidueType(t *testing.T) {
	for _, raw := range []string{"Rice Straw", "rice straw", "rice_straw", " RICE-STRAW "} {
		got, ok := ParseResidueType(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, ResidueRiceStraw, got, raw)
	}
	_, ok := ParseResidueType("corn cobs")
	assert.False(t, ok)
}

func TestParseGCVBand(t *testing.T) {
	got, ok := ParseGCVBand("medium")
	assert.True(t, ok)
	assert.Equal(t, GCVMedium, got)

	got, ok = ParseGCVBand("Above 4500 kcal/kg")
	assert.True(t, ok)
	assert.Equal(t, GCVHigh, got)

	got, ok = ParseGCVBand("Don't Know")
	assert.True(t, ok)
	assert.Equal(t, GCVUnknown, got)
}

func TestParseSellerType(t *testing.T) {
	got, ok := ParseSellerType("organization")
	assert.True(t, ok)
	assert.Equal(t, SellerOrganization, got)

	got, ok = ParseSellerType("Individual Farmer")
	assert.True(t, ok)
	assert.Equal(t, SellerIndividual, got)

	_, ok = ParseSellerType("")
	assert.False(t, ok)
}

func TestParseViewAndRole(t *testing.T) {
	v, ok := ParseView("How It Works")
	assert.True(t, ok)
	assert.Equal(t, ViewHowItWorks, v)

	_, ok = ParseView("checkout")
	assert.False(t, ok)

	r, ok := ParseRole("Seller")
	assert.True(t, ok)
	assert.Equal(t, RoleSeller, r)
}

func TestParseMonth(t *testing.T) {
	m, ok := ParseMonth("sep")
	assert.True(t, ok)
	assert.Equal(t, time.September, m)

	m, ok = ParseMonth("December")
	assert.True(t, ok)
	assert.Equal(t, time.December, m)

	_, ok = ParseMonth("de")
	assert.False(t, ok)
}

func TestSortedMonths(t *testing.T) {
	got := SortedMonths([]time.Month{time.December, 0, time.March, time.December})
	assert.Equal(t, []time.Month{time.March, time.December, 0}, got)
	assert.Nil(t, SortedMonths(nil))
}

func TestSortedCrops(t *testing.T) {
	got := SortedCrops([]Crop{"Rye", CropMaize, CropPaddy, CropMaize})
	assert.Equal(t, []Crop{CropPaddy, CropMaize, "Rye"}, got)
}
