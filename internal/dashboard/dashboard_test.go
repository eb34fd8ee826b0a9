package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/agroexchange/internal/flow"
	"github.com/nurpe/agroexchange/internal/model"
)

func buyerScreen() flow.Screen {
	return flow.Screen{
		View: model.ViewDashboard,
		Role: model.RoleBuyer,
		Intent: flow.ActiveIntent{Buyer: &model.BuyerIntent{
			ResidueType: model.ResidueWheatStraw,
			Location:    "Ludhiana, Punjab",
			Quantity:    500,
		}},
	}
}

func TestBuildForBuyer(t *testing.T) {
	d, err := Build(buyerScreen(), "INR")
	require.NoError(t, err)

	assert.Equal(t, model.RoleBuyer, d.Role)
	assert.Equal(t, "Real-time supply and demand insights for Ludhiana, Punjab", d.Subtitle)
	assert.Equal(t, model.ResidueWheatStraw, d.FocusResidue())
	assert.Len(t, d.PriceTrend, 6)
	assert.Len(t, d.Regions, 4)
	assert.Len(t, d.Matches, 3)
	assert.Equal(t, "INR 1,900/MT", d.Matches[0].Price)
	assert.Equal(t, "INR 1,950", d.Metrics[1].Value)

	highlighted := 0
	for _, stat := range d.Comparison {
		if stat.Highlighted {
			highlighted++
			assert.Equal(t, model.ResidueWheatStraw, stat.Residue)
		}
	}
	assert.Equal(t, 1, highlighted)
}

func TestBuildForSeller(t *testing.T) {
	d, err := Build(flow.Screen{
		View: model.ViewDashboard,
		Role: model.RoleSeller,
		Intent: flow.ActiveIntent{Seller: &model.SellerIntent{
			SellerType:          model.SellerOrganization,
			WasteType:           model.ResidueSugarcaneTrash,
			ProcurementCapacity: 200,
			Location:            "Karnal, Haryana",
		}},
	}, "")
	require.NoError(t, err)
	assert.Equal(t, model.ResidueSugarcaneTrash, d.FocusResidue())
	assert.Equal(t, "1,750/MT", d.Matches[2].Price)
	assert.True(t, d.Comparison[4].Highlighted)
}

func TestBuildRequiresDashboardView(t *testing.T) {
	screen := buyerScreen()
	screen.View = model.ViewMarketplace
	_, err := Build(screen, "INR")
	assert.ErrorIs(t, err, ErrNotReady)

	_, err = Build(flow.Screen{View: model.ViewDashboard}, "INR")
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestBuildDoesNotShareSampleData(t *testing.T) {
	d, err := Build(buyerScreen(), "INR")
	require.NoError(t, err)
	d.Regions[0].Districts[0].Size = 0
	d.PriceTrend[0].Price = 0

	again, err := Build(buyerScreen(), "INR")
	require.NoError(t, err)
	assert.Equal(t, 1200.0, again.Regions[0].Districts[0].Size)
	assert.Equal(t, 1800.0, again.PriceTrend[0].Price)
	assert.Equal(t, 2600.0, again.Regions[0].Total())
}
