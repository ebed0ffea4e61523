package service

import (
	"velodata/internal/domain/entity"
	"velodata/pkg/errors"
)

// Platform identifies a destination marketplace export format.
type Platform string

const (
	PlatformEbay    Platform = "ebay"
	PlatformShopify Platform = "shopify"
)

// MinMarginPercent and MaxMarginPercent bound the caller-supplied net margin.
// Validation happens at the usecase boundary; the engine itself does not
// clamp.
const (
	MinMarginPercent = 0
	MaxMarginPercent = 500
)

// DefaultJpyToUsd is the static JPY to USD conversion applied to listing
// prices before pricing. Exported prices drift from real-time rates.
const DefaultJpyToUsd = 0.0067

// FeeComponent is one named charge a marketplace deducts from a sale.
// Percentage rates are fractions of the final sale price; a flat component is
// an absolute USD amount.
type FeeComponent struct {
	Name string
	Rate float64
	Flat float64
}

// FeeSchedule is the fixed set of charges for one destination marketplace.
// ShippingInBase marks schedules where shipping is folded into the priced
// cost base (the buyer sees free shipping baked into item price).
type FeeSchedule struct {
	Platform       Platform
	Components     []FeeComponent
	ShippingInBase bool
}

func (s FeeSchedule) totalRate() float64 {
	total := 0.0
	for _, c := range s.Components {
		total += c.Rate
	}
	return total
}

func (s FeeSchedule) totalFlat() float64 {
	total := 0.0
	for _, c := range s.Components {
		total += c.Flat
	}
	return total
}

// EbayFeeSchedule reflects a standard-tier eBay seller: final value fee,
// payment processing, and the cross-border surcharge for JP-sourced stock.
var EbayFeeSchedule = FeeSchedule{
	Platform: PlatformEbay,
	Components: []FeeComponent{
		{Name: "Final Value Fee", Rate: 0.1325},
		{Name: "Payment Processing", Rate: 0.0235, Flat: 0.30},
		{Name: "International Fee", Rate: 0.0165},
	},
	ShippingInBase: true,
}

// ShopifyFeeSchedule covers Shopify Payments only; shipping is billed to the
// buyer separately and never enters the cost base.
var ShopifyFeeSchedule = FeeSchedule{
	Platform: PlatformShopify,
	Components: []FeeComponent{
		{Name: "Payment Processing", Rate: 0.029, Flat: 0.30},
	},
	ShippingInBase: false,
}

// ebayShippingUSD is the per-niche shipping cost folded into eBay prices.
// Bulkier niches carry the larger EMS-tier value.
var ebayShippingUSD = map[entity.NicheType]float64{
	entity.NicheTCG:               5.00,
	entity.NicheWatch:             15.00,
	entity.NicheStationary:        15.00,
	entity.NicheCameraGear:        30.00,
	entity.NicheLuxuryItem:        30.00,
	entity.NicheVideogame:         30.00,
	entity.NicheCollectionFigures: 30.00,
}

// ShippingCost returns the shipping amount a schedule folds into the priced
// cost base for the given niche. Zero for schedules that bill shipping
// separately.
func (s FeeSchedule) ShippingCost(niche entity.NicheType) float64 {
	if !s.ShippingInBase {
		return 0
	}
	return ebayShippingUSD[niche]
}

// FeeAmount is the resolved USD amount of one fee component.
type FeeAmount struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// PricingResult is fully derived from its inputs; recomputing with the same
// request and schedule must reproduce it exactly.
type PricingResult struct {
	SalePrice          float64     `json:"sale_price"`
	Fees               []FeeAmount `json:"fees"`
	TotalFees          float64     `json:"total_fees"`
	ShippingCost       float64     `json:"shipping_cost"`
	NetProfit          float64     `json:"net_profit"`
	ActualMargin       float64     `json:"actual_margin"`
	GrossMarginPercent float64     `json:"gross_margin_percent"`
}

// ComputeSalePrice solves for the sale price that yields the desired net
// profit (marginPercent of cost) after all schedule fees. Fee percentages
// apply to the unknown sale price itself, so the fee equation is linear in
// salePrice and solved by isolating it:
//
//	salePrice = (cost + shipping + desiredProfit + flatFees) / (1 - totalRate)
//
// The engine trusts the caller to have validated marginPercent; it only
// guards the schedule invariant totalRate < 1, which would otherwise divide
// by zero or go negative.
func ComputeSalePrice(cost, shippingCost, marginPercent float64, schedule FeeSchedule) (*PricingResult, error) {
	totalRate := schedule.totalRate()
	if totalRate >= 1 {
		return nil, errors.Internal("Fee schedule percentage total exceeds 100%", nil)
	}

	desiredProfit := cost * (marginPercent / 100)
	salePrice := (cost + shippingCost + desiredProfit + schedule.totalFlat()) / (1 - totalRate)

	fees := make([]FeeAmount, len(schedule.Components))
	totalFees := 0.0
	for i, c := range schedule.Components {
		amount := salePrice*c.Rate + c.Flat
		fees[i] = FeeAmount{Name: c.Name, Amount: amount}
		totalFees += amount
	}

	netProfit := salePrice - cost - shippingCost - totalFees

	actualMargin := 0.0
	if cost > 0 {
		actualMargin = netProfit / cost * 100
	}

	grossMargin := 0.0
	if salePrice > 0 {
		grossMargin = (salePrice - cost) / salePrice * 100
	}

	return &PricingResult{
		SalePrice:          salePrice,
		Fees:               fees,
		TotalFees:          totalFees,
		ShippingCost:       shippingCost,
		NetProfit:          netProfit,
		ActualMargin:       actualMargin,
		GrossMarginPercent: grossMargin,
	}, nil
}

// ScheduleFor returns the fee schedule for a platform.
func ScheduleFor(platform Platform) (FeeSchedule, bool) {
	switch platform {
	case PlatformEbay:
		return EbayFeeSchedule, true
	case PlatformShopify:
		return ShopifyFeeSchedule, true
	}
	return FeeSchedule{}, false
}
