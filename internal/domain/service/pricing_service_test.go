package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velodata/internal/domain/entity"
	"velodata/pkg/errors"
)

func TestComputeSalePriceEbayScenario(t *testing.T) {
	// ¥10,000 at the static rate, $30 shipping folded in, 25% net margin.
	cost := 10000 * DefaultJpyToUsd

	result, err := ComputeSalePrice(cost, 30, 25, EbayFeeSchedule)
	require.NoError(t, err)

	expected := (cost + 30 + cost*0.25 + 0.30) / (1 - 0.1725)
	assert.InDelta(t, expected, result.SalePrice, 1e-9)
	assert.InDelta(t, 137.82, result.SalePrice, 0.01)
}

func TestComputeSalePriceShopifyScenario(t *testing.T) {
	cost := 10000 * DefaultJpyToUsd

	result, err := ComputeSalePrice(cost, 0, 25, ShopifyFeeSchedule)
	require.NoError(t, err)

	assert.InDelta(t, 86.56, result.SalePrice, 0.01)
}

func TestComputeSalePriceMarginRoundTrip(t *testing.T) {
	schedules := []FeeSchedule{EbayFeeSchedule, ShopifyFeeSchedule}
	margins := []float64{0, 10, 25, 100, 500}

	for _, schedule := range schedules {
		for _, margin := range margins {
			result, err := ComputeSalePrice(67, 15, margin, schedule)
			require.NoError(t, err)

			// The realized margin must reproduce the request within
			// floating-point tolerance; it is never re-derived from
			// rounded display values.
			assert.InDelta(t, margin, result.ActualMargin, 0.1)
		}
	}
}

func TestComputeSalePriceFeeConservation(t *testing.T) {
	for _, schedule := range []FeeSchedule{EbayFeeSchedule, ShopifyFeeSchedule} {
		result, err := ComputeSalePrice(120.50, 30, 35, schedule)
		require.NoError(t, err)

		// salePrice == cost + shipping + netProfit + totalFees
		sum := 120.50 + 30 + result.NetProfit + result.TotalFees
		assert.InDelta(t, result.SalePrice, sum, 1e-9)
	}
}

func TestComputeSalePriceMonotonicInMargin(t *testing.T) {
	prev := -1.0
	for margin := 0.0; margin <= 500; margin += 25 {
		result, err := ComputeSalePrice(67, 30, margin, EbayFeeSchedule)
		require.NoError(t, err)
		assert.Greater(t, result.SalePrice, prev)
		prev = result.SalePrice
	}
}

func TestComputeSalePriceFeeBreakdown(t *testing.T) {
	result, err := ComputeSalePrice(100, 0, 0, ShopifyFeeSchedule)
	require.NoError(t, err)

	require.Len(t, result.Fees, 1)
	assert.Equal(t, "Payment Processing", result.Fees[0].Name)
	assert.InDelta(t, result.SalePrice*0.029+0.30, result.Fees[0].Amount, 1e-9)
	assert.InDelta(t, result.Fees[0].Amount, result.TotalFees, 1e-9)
}

func TestComputeSalePriceGrossMargin(t *testing.T) {
	result, err := ComputeSalePrice(67, 0, 25, ShopifyFeeSchedule)
	require.NoError(t, err)

	expected := (result.SalePrice - 67) / result.SalePrice * 100
	assert.InDelta(t, expected, result.GrossMarginPercent, 1e-9)
}

func TestComputeSalePriceRejectsDegenerateSchedule(t *testing.T) {
	broken := FeeSchedule{
		Platform: PlatformEbay,
		Components: []FeeComponent{
			{Name: "Everything", Rate: 1.0},
		},
	}

	result, err := ComputeSalePrice(67, 0, 25, broken)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "INTERNAL_ERROR"))
}

func TestShippingCostPerNiche(t *testing.T) {
	assert.Equal(t, 5.00, EbayFeeSchedule.ShippingCost(entity.NicheTCG))
	assert.Equal(t, 15.00, EbayFeeSchedule.ShippingCost(entity.NicheWatch))
	assert.Equal(t, 30.00, EbayFeeSchedule.ShippingCost(entity.NicheCameraGear))

	// Shopify bills shipping separately; nothing enters the cost base.
	for _, niche := range entity.AllNiches {
		assert.Equal(t, 0.0, ShopifyFeeSchedule.ShippingCost(niche))
	}
}

func TestScheduleFor(t *testing.T) {
	ebay, ok := ScheduleFor(PlatformEbay)
	assert.True(t, ok)
	assert.Equal(t, PlatformEbay, ebay.Platform)

	_, ok = ScheduleFor(Platform("amazon"))
	assert.False(t, ok)
}
