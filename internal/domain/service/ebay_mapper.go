package service

import (
	"fmt"
	"strconv"
	"strings"

	"velodata/internal/domain/entity"
)

const (
	ebayTitleLimit = 80
	ebayMaxImages  = 12
)

// EbayHeaders is the File Exchange header row, in the exact order and with
// the exact punctuation the importer expects. The leading-asterisk and
// "C:"-prefixed names are literal required header text.
var EbayHeaders = []string{
	"*Action(SiteID=US|Country=US|Currency=USD|Version=1193)",
	"*Category",
	"*Title",
	"*Description",
	"*ConditionID",
	"*Format",
	"*Duration",
	"*StartPrice",
	"*Quantity",
	"*Location",
	"*DispatchTimeMax",
	"*ReturnsAcceptedOption",
	"ReturnsWithinOption",
	"ShippingType",
	"ShippingService-1:Option",
	"ShippingService-1:Cost",
	"PicURL",
	"C:Brand",
	"C:Model",
	"C:Type",
	"C:Country/Region of Manufacture",
	"C:Game",
	"C:Card Name",
	"C:Card Number",
	"C:Set",
	"C:Rarity",
	"C:Language",
	"C:Graded",
	"C:Professional Grader",
	"C:Grade",
	"C:Band Material",
	"C:Case Material",
	"C:Movement",
	"C:Dial Color",
	"C:Series",
	"C:Exterior Color",
	"C:Exterior Material",
	"C:Department",
	"C:Style",
	"C:Color",
	"C:Platform",
	"C:Ink Color",
	"C:Point Size",
	"C:Features",
	"C:Character",
	"C:Franchise",
	"C:Scale",
	"C:Material",
}

// tcgGameNames maps the game discriminator to the value eBay expects in the
// C:Game specific.
var tcgGameNames = map[string]string{
	gamePokemon:      "Pokémon TCG",
	gameYugioh:       "Yu-Gi-Oh! TCG",
	gameOnePiece:     "One Piece Card Game",
	gameMagic:        "Magic: The Gathering",
	gameWeissSchwarz: "Weiss Schwarz",
	gameDragonBall:   "Dragon Ball Super CG",
	gameDigimon:      "Digimon Card Game",
	gameVanguard:     "Cardfight!! Vanguard",
	gameUnionArena:   "Union Arena",
	gameDuelMasters:  "Duel Masters",
}

// MapEbayRow flattens one listing and its resolved pricing into a File
// Exchange row. Fields not meaningful for the listing's niche stay unset and
// serialize as empty strings.
func MapEbayRow(l *entity.Listing, pricing *PricingResult) map[string]string {
	row := map[string]string{
		"*Action(SiteID=US|Country=US|Currency=USD|Version=1193)": "Add",
		"*Category":                       ebayCategoryID(l),
		"*Title":                          truncateTitle(l.Title, ebayTitleLimit),
		"*Description":                    ebayDescription(l),
		"*ConditionID":                    ebayConditionID(l.NicheType, l.Condition()),
		"*Format":                         "FixedPrice",
		"*Duration":                       "GTC",
		"*StartPrice":                     formatPrice(pricing.SalePrice),
		"*Quantity":                       "1",
		"*Location":                       "Japan",
		"*DispatchTimeMax":                "3",
		"*ReturnsAcceptedOption":          "ReturnsNotAccepted",
		"ShippingType":                    "Flat",
		"ShippingService-1:Option":        "StandardInternational",
		"ShippingService-1:Cost":          "0.00",
		"PicURL":                          ebayPicURL(l.ImageURLs),
		"C:Country/Region of Manufacture": "Japan",
	}

	switch l.NicheType {
	case entity.NicheTCG:
		mapEbayTCG(l, row)
	case entity.NicheWatch:
		mapEbayWatch(l, row)
	case entity.NicheCameraGear:
		mapEbayCameraGear(l, row)
	case entity.NicheLuxuryItem:
		mapEbayLuxury(l, row)
	case entity.NicheVideogame:
		mapEbayVideogame(l, row)
	case entity.NicheStationary:
		mapEbayStationary(l, row)
	case entity.NicheCollectionFigures:
		mapEbayFigures(l, row)
	}

	return row
}

func mapEbayTCG(l *entity.Listing, row map[string]string) {
	game := strings.ToUpper(l.Attr("game"))
	if name, ok := tcgGameNames[game]; ok {
		row["C:Game"] = name
	}

	cardName := l.Attr("card_name")
	if cardName == "" {
		cardName = l.Attr("name_jp")
	}
	row["C:Card Name"] = cardName
	row["C:Card Number"] = l.Attr("card_number")
	row["C:Set"] = l.Attr("set_code")
	row["C:Rarity"] = l.Attr("rarity")

	language := l.Attr("language")
	if language == "" {
		language = "Japanese"
	}
	row["C:Language"] = language

	if grader := l.Attr("grading_company"); grader != "" {
		row["C:Graded"] = "Yes"
		row["C:Professional Grader"] = grader
		row["C:Grade"] = l.Attr("grade")
	} else {
		row["C:Graded"] = "No"
	}
}

func mapEbayWatch(l *entity.Listing, row map[string]string) {
	row["C:Brand"] = l.Attr("brand")
	row["C:Model"] = l.Attr("model")

	band := l.Attr("band_material")
	if band == "" {
		band = defaultWatchMaterial
	}
	row["C:Band Material"] = band

	caseMaterial := l.Attr("case_material")
	if caseMaterial == "" {
		caseMaterial = defaultWatchMaterial
	}
	row["C:Case Material"] = caseMaterial

	movement := l.Attr("movement")
	if movement == "" {
		movement = inferMovement(l.Title)
	}
	row["C:Movement"] = movement

	dial := l.Attr("dial_color")
	if dial == "" {
		dial = inferColor(l.Title+" "+l.Attr("brand"), "")
	}
	row["C:Dial Color"] = dial
}

func mapEbayCameraGear(l *entity.Listing, row map[string]string) {
	row["C:Brand"] = l.Attr("brand")
	row["C:Model"] = l.Attr("model_number")
	row["C:Series"] = cameraSeries(l.Attr("model_number"))
	row["C:Type"] = l.Attr("subcategory_raw")
}

func mapEbayLuxury(l *entity.Listing, row map[string]string) {
	row["C:Brand"] = l.Attr("brand")
	color := l.Attr("color")
	if color == "" {
		color = inferColor(l.Title, "")
	}

	// Bags use the Exterior Color / Exterior Material pair; wallets and
	// accessories use the bare Color specific instead. The field names
	// differ per category, not just the values.
	switch strings.ToUpper(l.Attr("subcategory")) {
	case "WALLET", "ACCESSORY":
		row["C:Color"] = color
	default:
		row["C:Exterior Color"] = color
		row["C:Exterior Material"] = inferExteriorMaterial(l.Title, l.Attr("brand"))
		row["C:Department"] = "Women"
		row["C:Style"] = inferBagStyle(l.Title)
	}
}

func mapEbayVideogame(l *entity.Listing, row map[string]string) {
	row["C:Brand"] = l.Attr("brand")
	row["C:Model"] = l.Attr("model")
	row["C:Platform"] = inferPlatform(l.Attr("brand"), l.Attr("model"), l.Title)
}

func mapEbayStationary(l *entity.Listing, row map[string]string) {
	row["C:Brand"] = l.Attr("brand")
	row["C:Model"] = l.Attr("model")

	if !penLike(strings.ToUpper(l.Attr("subcategory"))) {
		return
	}

	ink := l.Attr("ink_color")
	if ink == "" {
		ink = inferColor(l.Title, "")
	}
	row["C:Ink Color"] = ink
	row["C:Point Size"] = inferPointSize(strings.ToLower(l.Title))
	row["C:Features"] = inferPenFeatures(l.Title)
}

func mapEbayFigures(l *entity.Listing, row map[string]string) {
	row["C:Brand"] = l.Attr("brand")
	if character := l.Attr("character"); character != "" {
		row["C:Character"] = character
	}
	row["C:Franchise"] = inferFranchise(l.Title, l.Attr("brand"))
	row["C:Scale"] = figureScale[strings.ToUpper(l.Attr("subcategory"))]
	row["C:Material"] = "PVC"
}

func ebayDescription(l *entity.Listing) string {
	var sb strings.Builder
	sb.WriteString(l.Title)
	if rank := l.Condition(); rank != "" {
		sb.WriteString(fmt.Sprintf("<br><br>Condition rank: %s (Japanese grading scale)", rank))
	}
	sb.WriteString(fmt.Sprintf("<br>Sourced from %s, Japan. Carefully inspected and shipped with tracking.", l.Source.DisplayName))
	return sb.String()
}

// ebayPicURL pipe-joins up to 12 image URLs into the single PicURL field.
func ebayPicURL(urls []string) string {
	if len(urls) > ebayMaxImages {
		urls = urls[:ebayMaxImages]
	}
	return strings.Join(urls, "|")
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
