package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velodata/internal/domain/entity"
)

func testListing(niche entity.NicheType, attrs map[string]interface{}) *entity.Listing {
	return &entity.Listing{
		ID:        "HARDOFF_10123456",
		NicheType: niche,
		Source: entity.MarketSource{
			SourceID:    "HARDOFF",
			DisplayName: "Hard-Off",
			BaseURL:     "https://netmall.hardoff.co.jp",
		},
		Title:      "Test listing",
		PriceJPY:   10000,
		URL:        "https://netmall.hardoff.co.jp/product/10123456",
		ImageURLs:  []string{"https://img.example/1.jpg", "https://img.example/2.jpg"},
		Attributes: attrs,
	}
}

func testPricing(t *testing.T, niche entity.NicheType) *PricingResult {
	t.Helper()
	cost := 10000 * DefaultJpyToUsd
	pricing, err := ComputeSalePrice(cost, EbayFeeSchedule.ShippingCost(niche), 25, EbayFeeSchedule)
	require.NoError(t, err)
	return pricing
}

func TestMapEbayRowCommonFields(t *testing.T) {
	l := testListing(entity.NicheWatch, map[string]interface{}{
		"brand":          "Seiko",
		"model":          "SKX007",
		"condition_rank": "A",
	})

	row := MapEbayRow(l, testPricing(t, entity.NicheWatch))

	assert.Equal(t, "Add", row["*Action(SiteID=US|Country=US|Currency=USD|Version=1193)"])
	assert.Equal(t, "31387", row["*Category"])
	assert.Equal(t, "FixedPrice", row["*Format"])
	assert.Equal(t, "GTC", row["*Duration"])
	assert.Equal(t, "1", row["*Quantity"])
	assert.Equal(t, "Japan", row["*Location"])
	assert.Equal(t, "Japan", row["C:Country/Region of Manufacture"])
	assert.Equal(t, "3000", row["*ConditionID"])
	assert.Equal(t, "https://img.example/1.jpg|https://img.example/2.jpg", row["PicURL"])
}

func TestMapEbayRowTitleTruncationBoundary(t *testing.T) {
	exact := strings.Repeat("a", ebayTitleLimit)
	l := testListing(entity.NicheWatch, nil)
	l.Title = exact

	row := MapEbayRow(l, testPricing(t, entity.NicheWatch))
	assert.Equal(t, exact, row["*Title"])

	l.Title = exact + "b"
	row = MapEbayRow(l, testPricing(t, entity.NicheWatch))
	assert.Equal(t, exact, row["*Title"])
	assert.Len(t, row["*Title"], ebayTitleLimit)
}

func TestMapEbayRowPicURLCap(t *testing.T) {
	l := testListing(entity.NicheWatch, nil)
	l.ImageURLs = nil
	for i := 0; i < 15; i++ {
		l.ImageURLs = append(l.ImageURLs, "https://img.example/x.jpg")
	}

	row := MapEbayRow(l, testPricing(t, entity.NicheWatch))
	assert.Len(t, strings.Split(row["PicURL"], "|"), ebayMaxImages)
}

func TestMapEbayRowTCG(t *testing.T) {
	l := testListing(entity.NicheTCG, map[string]interface{}{
		"game":        "POKEMON",
		"card_name":   "Pikachu ex",
		"card_number": "165/165",
		"set_code":    "sv2a",
		"rarity":      "SAR",
	})

	row := MapEbayRow(l, testPricing(t, entity.NicheTCG))

	assert.Equal(t, "183454", row["*Category"])
	assert.Equal(t, "Pokémon TCG", row["C:Game"])
	assert.Equal(t, "Pikachu ex", row["C:Card Name"])
	assert.Equal(t, "165/165", row["C:Card Number"])
	assert.Equal(t, "sv2a", row["C:Set"])
	assert.Equal(t, "SAR", row["C:Rarity"])
	assert.Equal(t, "Japanese", row["C:Language"], "language defaults to Japanese")
	assert.Equal(t, "No", row["C:Graded"])
}

func TestMapEbayRowTCGGraded(t *testing.T) {
	l := testListing(entity.NicheTCG, map[string]interface{}{
		"game":            "YUGIOH",
		"grading_company": "PSA",
		"grade":           "10",
	})

	row := MapEbayRow(l, testPricing(t, entity.NicheTCG))

	assert.Equal(t, "183455", row["*Category"])
	assert.Equal(t, "Yes", row["C:Graded"])
	assert.Equal(t, "PSA", row["C:Professional Grader"])
	assert.Equal(t, "10", row["C:Grade"])
}

func TestMapEbayRowTCGUnknownGameFallsBackToDefaultCategory(t *testing.T) {
	l := testListing(entity.NicheTCG, map[string]interface{}{
		"game": "RUMMIKUB",
	})

	row := MapEbayRow(l, testPricing(t, entity.NicheTCG))
	assert.Equal(t, "183454", row["*Category"])
}

func TestMapEbayRowWatchDefaults(t *testing.T) {
	l := testListing(entity.NicheWatch, map[string]interface{}{
		"brand": "Grand Seiko",
		"model": "SBGA211",
	})
	l.Title = "Grand Seiko SBGA211 Snowflake Spring Drive White Dial"

	row := MapEbayRow(l, testPricing(t, entity.NicheWatch))

	assert.Equal(t, "Grand Seiko", row["C:Brand"])
	assert.Equal(t, "Stainless Steel", row["C:Band Material"])
	assert.Equal(t, "Stainless Steel", row["C:Case Material"])
	assert.Equal(t, "Spring Drive", row["C:Movement"])
	assert.Equal(t, "White", row["C:Dial Color"])
}

func TestMapEbayRowCameraSeries(t *testing.T) {
	l := testListing(entity.NicheCameraGear, map[string]interface{}{
		"brand":        "Canon",
		"model_number": "EOS R5",
	})

	row := MapEbayRow(l, testPricing(t, entity.NicheCameraGear))

	assert.Equal(t, "EOS R5", row["C:Model"])
	assert.Equal(t, "EOS", row["C:Series"])
}

func TestMapEbayRowLuxuryFieldSplit(t *testing.T) {
	bag := testListing(entity.NicheLuxuryItem, map[string]interface{}{
		"brand":       "Louis Vuitton",
		"subcategory": "BAG",
	})
	bag.Title = "Louis Vuitton Monogram Speedy 30 handbag brown"

	row := MapEbayRow(bag, testPricing(t, entity.NicheLuxuryItem))
	assert.Equal(t, "169291", row["*Category"])
	assert.Equal(t, "Brown", row["C:Exterior Color"])
	assert.Equal(t, "Coated Canvas", row["C:Exterior Material"])
	assert.Equal(t, "Women", row["C:Department"])
	assert.NotEmpty(t, row["C:Style"])
	assert.Empty(t, row["C:Color"], "bags must not populate the bare Color field")

	wallet := testListing(entity.NicheLuxuryItem, map[string]interface{}{
		"brand":       "Louis Vuitton",
		"subcategory": "WALLET",
	})
	wallet.Title = "Louis Vuitton Epi long wallet black"

	row = MapEbayRow(wallet, testPricing(t, entity.NicheLuxuryItem))
	assert.Equal(t, "45258", row["*Category"])
	assert.Equal(t, "Black", row["C:Color"])
	assert.Empty(t, row["C:Exterior Color"], "wallets must not populate Exterior Color")
	assert.Empty(t, row["C:Exterior Material"], "wallets must not populate Exterior Material")
}

func TestMapEbayRowLuxuryUnknownSubcategoryFallsBack(t *testing.T) {
	l := testListing(entity.NicheLuxuryItem, map[string]interface{}{
		"subcategory": "HAT",
	})

	row := MapEbayRow(l, testPricing(t, entity.NicheLuxuryItem))
	assert.Equal(t, "169291", row["*Category"], "unknown subcategory falls back to niche default")
}

func TestMapEbayRowVideogamePlatform(t *testing.T) {
	cases := []struct {
		brand    string
		model    string
		title    string
		expected string
	}{
		{"Nintendo", "HAC-001", "Nintendo Switch console with dock", "Nintendo Switch"},
		{"Nintendo", "", "Nintendo Switch Lite turquoise", "Nintendo Switch Lite"},
		{"Nintendo", "", "Nintendo Wii U premium set", "Nintendo Wii U"},
		{"Nintendo", "", "Nintendo Wii white", "Nintendo Wii"},
		{"Sony", "CFI-1100", "PlayStation 5 disc edition", "Sony PlayStation 5"},
		{"Sony", "", "PSP-3000 piano black", "Sony PSP"},
		{"Microsoft", "", "Xbox Series X 1TB", "Microsoft Xbox Series X"},
		{"Sega", "", "Sega Dreamcast HKT-3000", "Sega Dreamcast"},
	}

	for _, tc := range cases {
		l := testListing(entity.NicheVideogame, map[string]interface{}{
			"brand": tc.brand,
			"model": tc.model,
		})
		l.Title = tc.title

		row := MapEbayRow(l, testPricing(t, entity.NicheVideogame))
		assert.Equal(t, tc.expected, row["C:Platform"], tc.title)
	}
}

func TestMapEbayRowStationaryPenFields(t *testing.T) {
	pen := testListing(entity.NicheStationary, map[string]interface{}{
		"brand":       "Pilot",
		"model":       "Custom 823",
		"subcategory": "FOUNTAIN_PEN",
	})
	pen.Title = "Pilot Custom 823 fountain pen medium nib amber"

	row := MapEbayRow(pen, testPricing(t, entity.NicheStationary))
	assert.Equal(t, "7110", row["*Category"])
	assert.Equal(t, "Medium", row["C:Point Size"])

	notebook := testListing(entity.NicheStationary, map[string]interface{}{
		"brand":       "Midori",
		"subcategory": "NOTEBOOK",
	})

	row = MapEbayRow(notebook, testPricing(t, entity.NicheStationary))
	assert.Equal(t, "102952", row["*Category"])
	assert.Empty(t, row["C:Ink Color"])
	assert.Empty(t, row["C:Point Size"])
}

func TestMapEbayRowFigures(t *testing.T) {
	l := testListing(entity.NicheCollectionFigures, map[string]interface{}{
		"brand":       "Good Smile Company",
		"subcategory": "NENDOROID",
		"character":   "Hatsune Miku",
	})
	l.Title = "Nendoroid Hatsune Miku 2.0"

	row := MapEbayRow(l, testPricing(t, entity.NicheCollectionFigures))

	assert.Equal(t, "246464", row["*Category"])
	assert.Equal(t, "Hatsune Miku", row["C:Character"])
	assert.Equal(t, "Hatsune Miku", row["C:Franchise"])
	assert.Equal(t, "Non-Scale", row["C:Scale"])
	assert.Equal(t, "PVC", row["C:Material"])
}

func TestEbayConditionFallbackNeverOverstates(t *testing.T) {
	for _, niche := range entity.AllNiches {
		for _, rank := range []entity.ConditionRank{"", "Z", "UNKNOWN"} {
			code := ebayConditionID(niche, rank)
			assert.Equal(t, ebayCondUsed, code, "niche %s rank %q", niche, rank)
		}
	}
}

func TestEbayConditionStrategies(t *testing.T) {
	// Luxury categories have no for-parts code; junk still maps to used.
	assert.Equal(t, ebayCondUsed, ebayConditionID(entity.NicheLuxuryItem, entity.RankJunk))
	assert.Equal(t, ebayCondUsed, ebayConditionID(entity.NicheLuxuryItem, entity.RankS))

	// Electronics categories allow open-box and for-parts.
	assert.Equal(t, ebayCondOpenBox, ebayConditionID(entity.NicheVideogame, entity.RankS))
	assert.Equal(t, ebayCondForParts, ebayConditionID(entity.NicheVideogame, entity.RankJunk))
	assert.Equal(t, ebayCondForParts, ebayConditionID(entity.NicheVideogame, entity.RankD))

	// Standard keeps the full range.
	assert.Equal(t, ebayCondNew, ebayConditionID(entity.NicheWatch, entity.RankN))
	assert.Equal(t, ebayCondLikeNew, ebayConditionID(entity.NicheWatch, entity.RankS))
	assert.Equal(t, ebayCondForParts, ebayConditionID(entity.NicheTCG, entity.RankJunk))
}

func TestColorOrderNavyBeforeBlue(t *testing.T) {
	assert.Equal(t, "Navy", inferColor("Seiko navy blue dial diver", ""))
	assert.Equal(t, "Blue", inferColor("Seiko blue dial diver", ""))
}

func TestEbayHeadersStable(t *testing.T) {
	require.NotEmpty(t, EbayHeaders)
	assert.Equal(t, "*Action(SiteID=US|Country=US|Currency=USD|Version=1193)", EbayHeaders[0])
	assert.Contains(t, EbayHeaders, "C:Exterior Color")
	assert.Contains(t, EbayHeaders, "ShippingService-1:Option")
}
