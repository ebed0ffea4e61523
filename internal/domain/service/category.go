package service

import (
	"strings"

	"velodata/internal/domain/entity"
)

// categoryTable is a two-level lookup: a per-niche default, overridden by a
// subcategory-specific entry when the discriminating attribute is present and
// recognized. Unrecognized values fall back to the default, never to an
// error.
type categoryTable struct {
	// attrKey is the listing attribute consulted for the override (the
	// "game" attribute for TCG, "subcategory" elsewhere). Empty means the
	// niche only has a default.
	attrKey  string
	def      string
	override map[string]string
}

func (t categoryTable) resolve(l *entity.Listing) string {
	if t.attrKey == "" {
		return t.def
	}
	key := strings.ToUpper(l.Attr(t.attrKey))
	if v, ok := t.override[key]; ok {
		return v
	}
	return t.def
}

// TCG game discriminator values, as written by the scraper pipeline.
const (
	gamePokemon      = "POKEMON"
	gameYugioh       = "YUGIOH"
	gameOnePiece     = "ONE_PIECE"
	gameMagic        = "MTG"
	gameWeissSchwarz = "WEISS_SCHWARZ"
	gameDragonBall   = "DRAGON_BALL"
	gameDigimon      = "DIGIMON"
	gameVanguard     = "VANGUARD"
	gameUnionArena   = "UNION_ARENA"
	gameDuelMasters  = "DUEL_MASTERS"
)

// eBay leaf category IDs per niche. These are authoritative for the File
// Exchange importer; a wrong leaf gets the row rejected.
var ebayCategories = map[entity.NicheType]categoryTable{
	entity.NicheTCG: {
		attrKey: "game",
		def:     "183454",
		override: map[string]string{
			gamePokemon:      "183454",
			gameYugioh:       "183455",
			gameOnePiece:     "183466",
			gameMagic:        "38292",
			gameWeissSchwarz: "183464",
			gameDragonBall:   "183458",
			gameDigimon:      "183461",
			gameVanguard:     "183457",
			gameUnionArena:   "183467",
			gameDuelMasters:  "183460",
		},
	},
	entity.NicheWatch: {
		def: "31387",
	},
	entity.NicheCameraGear: {
		def: "31388",
	},
	entity.NicheLuxuryItem: {
		attrKey: "subcategory",
		def:     "169291",
		override: map[string]string{
			"BAG":       "169291",
			"WALLET":    "45258",
			"ACCESSORY": "45237",
		},
	},
	entity.NicheVideogame: {
		attrKey: "subcategory",
		def:     "139971",
		override: map[string]string{
			"HOME_CONSOLE":     "139971",
			"HANDHELD_CONSOLE": "171833",
			"GAME":             "139973",
			"ACCESSORY":        "54968",
		},
	},
	entity.NicheStationary: {
		attrKey: "subcategory",
		def:     "966",
		override: map[string]string{
			"FOUNTAIN_PEN":      "7110",
			"BALLPOINT_PEN":     "7112",
			"MECHANICAL_PENCIL": "7126",
			"MARKER":            "66807",
			"INK":               "10123",
			"NOTEBOOK":          "102952",
		},
	},
	entity.NicheCollectionFigures: {
		attrKey: "subcategory",
		def:     "158671",
		override: map[string]string{
			"SCALE_FIGURE": "158671",
			"NENDOROID":    "246464",
			"FIGMA":        "246465",
		},
	},
}

// Shopify product Type strings per niche, same two-level shape.
var shopifyCategories = map[entity.NicheType]categoryTable{
	entity.NicheTCG: {
		attrKey: "game",
		def:     "Trading Cards",
		override: map[string]string{
			gamePokemon:      "Pokémon Cards",
			gameYugioh:       "Yu-Gi-Oh! Cards",
			gameOnePiece:     "One Piece Card Game",
			gameMagic:        "Magic: The Gathering Cards",
			gameWeissSchwarz: "Weiss Schwarz Cards",
			gameDragonBall:   "Dragon Ball Super Cards",
			gameDigimon:      "Digimon Cards",
			gameVanguard:     "Cardfight!! Vanguard Cards",
			gameUnionArena:   "Union Arena Cards",
			gameDuelMasters:  "Duel Masters Cards",
		},
	},
	entity.NicheWatch: {
		def: "Watches",
	},
	entity.NicheCameraGear: {
		def: "Cameras & Optics",
	},
	entity.NicheLuxuryItem: {
		attrKey: "subcategory",
		def:     "Handbags",
		override: map[string]string{
			"BAG":       "Handbags",
			"WALLET":    "Wallets",
			"ACCESSORY": "Fashion Accessories",
		},
	},
	entity.NicheVideogame: {
		attrKey: "subcategory",
		def:     "Video Game Consoles",
		override: map[string]string{
			"HOME_CONSOLE":     "Video Game Consoles",
			"HANDHELD_CONSOLE": "Handheld Consoles",
			"GAME":             "Video Games",
			"ACCESSORY":        "Video Game Accessories",
		},
	},
	entity.NicheStationary: {
		attrKey: "subcategory",
		def:     "Writing Instruments",
		override: map[string]string{
			"FOUNTAIN_PEN":      "Fountain Pens",
			"BALLPOINT_PEN":     "Ballpoint Pens",
			"MECHANICAL_PENCIL": "Mechanical Pencils",
			"MARKER":            "Markers",
			"INK":               "Ink",
			"NOTEBOOK":          "Notebooks",
		},
	},
	entity.NicheCollectionFigures: {
		attrKey: "subcategory",
		def:     "Collectible Figures",
		override: map[string]string{
			"SCALE_FIGURE": "Scale Figures",
			"NENDOROID":    "Nendoroid",
			"FIGMA":        "Figma",
		},
	},
}

func ebayCategoryID(l *entity.Listing) string {
	return ebayCategories[l.NicheType].resolve(l)
}

func shopifyProductType(l *entity.Listing) string {
	return shopifyCategories[l.NicheType].resolve(l)
}
