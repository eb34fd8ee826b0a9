package charts

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/agroexchange/internal/dashboard"
)

func TestPriceTrendRendersPNG(t *testing.T) {
	r := NewRenderer()
	content, err := r.PriceTrend(&dashboard.Dashboard{
		Currency: "INR",
		PriceTrend: []dashboard.PricePoint{
			{Month: "Jan", Price: 1800, Volume: 1200},
			{Month: "Feb", Price: 1850, Volume: 1100},
			{Month: "Mar", Price: 1950, Volume: 1500},
		},
	})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, r.Width, img.Bounds().Dx())
	assert.Equal(t, r.Height, img.Bounds().Dy())
}

func TestPriceTrendNeedsTwoPoints(t *testing.T) {
	_, err := NewRenderer().PriceTrend(&dashboard.Dashboard{
		PriceTrend: []dashboard.PricePoint{{Month: "Jan", Price: 1800}},
	})
	assert.Error(t, err)
}
