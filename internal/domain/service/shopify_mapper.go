package service

import (
	"strconv"
	"strings"

	"velodata/internal/domain/entity"
)

const (
	shopifyTitleLimit = 255
	shopifyMaxImages  = 10
)

// ShopifyHeaders is the product import header row, order authoritative.
var ShopifyHeaders = []string{
	"Handle",
	"Title",
	"Body (HTML)",
	"Vendor",
	"Type",
	"Tags",
	"Published",
	"Option1 Name",
	"Option1 Value",
	"Variant SKU",
	"Variant Grams",
	"Variant Inventory Tracker",
	"Variant Inventory Qty",
	"Variant Inventory Policy",
	"Variant Fulfillment Service",
	"Variant Price",
	"Variant Compare At Price",
	"Variant Requires Shipping",
	"Variant Taxable",
	"Variant Barcode",
	"Image Src",
	"Image Position",
	"Image Alt Text",
	"Gift Card",
	"SEO Title",
	"SEO Description",
	"Google Shopping / Condition",
	"Variant Weight Unit",
	"Status",
}

// MapShopifyRows flattens one listing into a primary row plus one
// continuation row per extra image. Continuation rows carry only the Handle
// and image fields; everything else stays empty. Images are capped at
// shopifyMaxImages even when the listing has more.
func MapShopifyRows(l *entity.Listing, pricing *PricingResult) []map[string]string {
	handle := shopifyHandle(l.ID)
	title := truncateTitle(l.Title, shopifyTitleLimit)

	primary := map[string]string{
		"Handle":                      handle,
		"Title":                       title,
		"Body (HTML)":                 shopifyBody(l),
		"Vendor":                      shopifyVendor(l),
		"Type":                        shopifyProductType(l),
		"Tags":                        shopifyTags(l),
		"Published":                   "TRUE",
		"Option1 Name":                "Title",
		"Option1 Value":               "Default Title",
		"Variant SKU":                 l.ID,
		"Variant Inventory Tracker":   "shopify",
		"Variant Inventory Qty":       "1",
		"Variant Inventory Policy":    "deny",
		"Variant Fulfillment Service": "manual",
		"Variant Price":               formatPrice(pricing.SalePrice),
		"Variant Requires Shipping":   "TRUE",
		"Variant Taxable":             "TRUE",
		"Gift Card":                   "FALSE",
		"SEO Title":                   title,
		"Google Shopping / Condition": shopifyCondition(l.Condition()),
		"Status":                      "active",
	}

	urls := l.ImageURLs
	if len(urls) > shopifyMaxImages {
		urls = urls[:shopifyMaxImages]
	}

	if len(urls) > 0 {
		primary["Image Src"] = urls[0]
		primary["Image Position"] = "1"
		primary["Image Alt Text"] = title
	}

	rows := []map[string]string{primary}
	for i, url := range urls {
		if i == 0 {
			continue
		}
		rows = append(rows, map[string]string{
			"Handle":         handle,
			"Image Src":      url,
			"Image Position": strconv.Itoa(i + 1),
		})
	}

	return rows
}

// shopifyHandle derives a URL-safe handle from the listing ID
// ("HARDOFF_10123456" -> "hardoff-10123456").
func shopifyHandle(id string) string {
	return strings.ToLower(strings.ReplaceAll(id, "_", "-"))
}

func shopifyVendor(l *entity.Listing) string {
	if brand := l.Attr("brand"); brand != "" {
		return brand
	}
	return l.Source.DisplayName
}

func shopifyBody(l *entity.Listing) string {
	var sb strings.Builder
	sb.WriteString("<p>" + l.Title + "</p>")
	if rank := l.Condition(); rank != "" {
		sb.WriteString("<p>Condition rank: " + string(rank) + " (Japanese grading scale)</p>")
	}
	sb.WriteString("<p>Sourced from " + l.Source.DisplayName + ", Japan.</p>")
	return sb.String()
}

func shopifyTags(l *entity.Listing) string {
	tags := []string{string(l.NicheType)}
	if sub := l.Attr("subcategory"); sub != "" {
		tags = append(tags, sub)
	}
	if game := l.Attr("game"); game != "" {
		tags = append(tags, game)
	}
	if rank := l.Condition(); rank != "" {
		tags = append(tags, "rank-"+string(rank))
	}
	return strings.Join(tags, ", ")
}
