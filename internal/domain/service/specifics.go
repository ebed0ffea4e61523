package service

import (
	"strings"
)

// keywordRule maps any of its keywords, matched as a substring of the
// lowercased search text, to a value. Rules are evaluated in slice order and
// the first hit wins, so more specific patterns must come first: "navy" is
// listed before "blue" because a navy item is Navy, not Blue.
type keywordRule struct {
	keywords []string
	value    string
}

func matchKeywords(rules []keywordRule, text string) string {
	text = strings.ToLower(text)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.value
			}
		}
	}
	return ""
}

// colorRules covers dial colors, exterior colors, and ink colors. Order is
// significant.
var colorRules = []keywordRule{
	{[]string{"navy", "ネイビー"}, "Navy"},
	{[]string{"light blue", "sky blue"}, "Light Blue"},
	{[]string{"black", "ブラック", "黒"}, "Black"},
	{[]string{"white", "ホワイト", "白"}, "White"},
	{[]string{"silver", "シルバー"}, "Silver"},
	{[]string{"gold", "ゴールド", "金"}, "Gold"},
	{[]string{"brown", "ブラウン", "茶"}, "Brown"},
	{[]string{"beige", "ベージュ"}, "Beige"},
	{[]string{"red", "レッド", "赤"}, "Red"},
	{[]string{"pink", "ピンク"}, "Pink"},
	{[]string{"green", "グリーン", "緑"}, "Green"},
	{[]string{"blue", "ブルー", "青"}, "Blue"},
	{[]string{"purple", "パープル", "紫"}, "Purple"},
	{[]string{"gray", "grey", "グレー"}, "Gray"},
	{[]string{"orange", "オレンジ"}, "Orange"},
	{[]string{"yellow", "イエロー", "黄"}, "Yellow"},
}

func inferColor(text, fallback string) string {
	if v := matchKeywords(colorRules, text); v != "" {
		return v
	}
	return fallback
}

// Exterior material resolution for luxury goods: title keywords first,
// then a per-brand house-material default, then plain leather.
var materialRules = []keywordRule{
	{[]string{"saffiano", "サフィアーノ"}, "Saffiano Leather"},
	{[]string{"monogram", "モノグラム", "damier", "ダミエ"}, "Coated Canvas"},
	{[]string{"epi", "エピ"}, "Epi Leather"},
	{[]string{"caviar", "キャビアスキン"}, "Caviar Leather"},
	{[]string{"lambskin", "ラムスキン"}, "Lambskin Leather"},
	{[]string{"suede", "スエード"}, "Suede"},
	{[]string{"canvas", "キャンバス"}, "Canvas"},
	{[]string{"nylon", "ナイロン"}, "Nylon"},
	{[]string{"denim", "デニム"}, "Denim"},
	{[]string{"leather", "レザー", "革"}, "Leather"},
}

var brandDefaultMaterial = map[string]string{
	"louis vuitton":  "Coated Canvas",
	"chanel":         "Lambskin Leather",
	"hermes":         "Leather",
	"prada":          "Saffiano Leather",
	"gucci":          "Canvas",
	"coach":          "Leather",
	"bottega veneta": "Leather",
}

const genericMaterial = "Leather"

// Bag style from title keywords; no reliable brand default exists, so an
// unmatched title leaves the field at the generic shoulder-bag bucket.
var bagStyleRules = []keywordRule{
	{[]string{"crossbody", "ショルダーバッグ"}, "Crossbody"},
	{[]string{"shoulder", "ショルダー"}, "Shoulder Bag"},
	{[]string{"tote", "トート"}, "Tote"},
	{[]string{"backpack", "リュック", "バックパック"}, "Backpack"},
	{[]string{"clutch", "クラッチ"}, "Clutch"},
	{[]string{"boston", "ボストン"}, "Satchel"},
	{[]string{"handbag", "ハンドバッグ"}, "Handbag"},
}

const genericBagStyle = "Shoulder Bag"

func inferBagStyle(title string) string {
	if v := matchKeywords(bagStyleRules, title); v != "" {
		return v
	}
	return genericBagStyle
}

func inferExteriorMaterial(title, brand string) string {
	if v := matchKeywords(materialRules, title); v != "" {
		return v
	}
	if v, ok := brandDefaultMaterial[strings.ToLower(brand)]; ok {
		return v
	}
	return genericMaterial
}

// Watch movement: keyword over title, else Automatic. Japanese secondhand
// titles usually carry the movement when it is quartz or solar.
var movementRules = []keywordRule{
	{[]string{"spring drive", "スプリングドライブ"}, "Spring Drive"},
	{[]string{"solar", "ソーラー"}, "Solar"},
	{[]string{"kinetic", "キネティック"}, "Kinetic"},
	{[]string{"quartz", "クォーツ", "クオーツ"}, "Quartz"},
	{[]string{"hand wind", "hand-wind", "manual", "手巻き"}, "Mechanical (Hand-winding)"},
	{[]string{"automatic", "自動巻き", "オートマチック"}, "Automatic"},
}

const defaultMovement = "Automatic"
const defaultWatchMaterial = "Stainless Steel"

func inferMovement(title string) string {
	if v := matchKeywords(movementRules, title); v != "" {
		return v
	}
	return defaultMovement
}

// Point sizes for pen-like stationary.
var pointSizeRules = []keywordRule{
	{[]string{"extra fine", "(ef)", " ef ", "極細"}, "Extra Fine"},
	{[]string{"fine", "(f)", " f ", "細字"}, "Fine"},
	{[]string{"medium", "(m)", " m ", "中字"}, "Medium"},
	{[]string{"broad", "(b)", " b ", "太字"}, "Broad"},
	{[]string{"0.3mm", "0.3 mm"}, "0.3 mm"},
	{[]string{"0.5mm", "0.5 mm"}, "0.5 mm"},
	{[]string{"0.7mm", "0.7 mm"}, "0.7 mm"},
}

func inferPointSize(text string) string {
	return matchKeywords(pointSizeRules, text)
}

var penFeatureRules = []keywordRule{
	{[]string{"limited edition", "限定"}, "Limited Edition"},
	{[]string{"converter", "コンバーター"}, "Converter Included"},
	{[]string{"demonstrator", "スケルトン"}, "Demonstrator"},
}

func inferPenFeatures(text string) string {
	return matchKeywords(penFeatureRules, text)
}

// platformBranch is one maker's sub-branch table for console platform
// inference. Model keywords are checked in order; the overall maker branch is
// selected by brand or title keywords first.
type platformBranch struct {
	makerKeywords []string
	models        []keywordRule
}

// videogamePlatforms resolves the platform-mandated "Platform" specific from
// brand and model text. Within each maker the more specific model strings
// come first ("wii u" before "wii", "switch lite" before "switch").
var videogamePlatforms = []platformBranch{
	{
		makerKeywords: []string{"nintendo", "任天堂"},
		models: []keywordRule{
			{[]string{"switch lite"}, "Nintendo Switch Lite"},
			{[]string{"switch oled", "switch 有機el"}, "Nintendo Switch OLED"},
			{[]string{"switch"}, "Nintendo Switch"},
			{[]string{"new 3ds", "new ニンテンドー3ds"}, "New Nintendo 3DS"},
			{[]string{"3ds"}, "Nintendo 3DS"},
			{[]string{"dsi"}, "Nintendo DSi"},
			{[]string{"ds lite"}, "Nintendo DS Lite"},
			{[]string{"ds"}, "Nintendo DS"},
			{[]string{"wii u"}, "Nintendo Wii U"},
			{[]string{"wii"}, "Nintendo Wii"},
			{[]string{"gamecube", "ゲームキューブ"}, "Nintendo GameCube"},
			{[]string{"nintendo 64", "ニンテンドー64"}, "Nintendo 64"},
			{[]string{"game boy advance", "ゲームボーイアドバンス"}, "Nintendo Game Boy Advance"},
			{[]string{"game boy color", "ゲームボーイカラー"}, "Nintendo Game Boy Color"},
			{[]string{"game boy", "ゲームボーイ"}, "Nintendo Game Boy"},
			{[]string{"super famicom", "スーパーファミコン"}, "Super Nintendo Entertainment System"},
			{[]string{"famicom", "ファミコン"}, "Nintendo Entertainment System"},
		},
	},
	{
		makerKeywords: []string{"sony", "ソニー", "playstation", "プレイステーション"},
		models: []keywordRule{
			{[]string{"ps5", "playstation 5", "プレイステーション5"}, "Sony PlayStation 5"},
			{[]string{"ps4", "playstation 4"}, "Sony PlayStation 4"},
			{[]string{"ps3", "playstation 3"}, "Sony PlayStation 3"},
			{[]string{"ps2", "playstation 2"}, "Sony PlayStation 2"},
			{[]string{"psp"}, "Sony PSP"},
			{[]string{"vita"}, "Sony PlayStation Vita"},
			{[]string{"playstation", "ps1", "プレイステーション"}, "Sony PlayStation 1"},
		},
	},
	{
		makerKeywords: []string{"microsoft", "xbox"},
		models: []keywordRule{
			{[]string{"series x"}, "Microsoft Xbox Series X"},
			{[]string{"series s"}, "Microsoft Xbox Series S"},
			{[]string{"xbox one"}, "Microsoft Xbox One"},
			{[]string{"xbox 360"}, "Microsoft Xbox 360"},
			{[]string{"xbox"}, "Microsoft Xbox"},
		},
	},
	{
		makerKeywords: []string{"sega", "セガ"},
		models: []keywordRule{
			{[]string{"dreamcast", "ドリームキャスト"}, "Sega Dreamcast"},
			{[]string{"saturn", "サターン"}, "Sega Saturn"},
			{[]string{"mega drive", "genesis", "メガドライブ"}, "Sega Genesis"},
			{[]string{"game gear", "ゲームギア"}, "Sega Game Gear"},
		},
	},
}

// inferPlatform walks the maker branches against brand first, then falls
// back to scanning the combined text. No match leaves the field empty rather
// than guessing a console.
func inferPlatform(brand, model, title string) string {
	brandLower := strings.ToLower(brand)
	combined := strings.ToLower(model + " " + title)

	for _, branch := range videogamePlatforms {
		matched := false
		for _, kw := range branch.makerKeywords {
			if strings.Contains(brandLower, kw) || strings.Contains(combined, kw) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		if v := matchKeywords(branch.models, combined); v != "" {
			return v
		}
	}
	return ""
}

// Figure franchise: title keywords first, then a manufacturer house-line
// default, then the generic anime/manga bucket.
var franchiseRules = []keywordRule{
	{[]string{"one piece", "ワンピース"}, "One Piece"},
	{[]string{"dragon ball", "ドラゴンボール"}, "Dragon Ball"},
	{[]string{"naruto", "ナルト"}, "Naruto"},
	{[]string{"evangelion", "エヴァンゲリオン"}, "Neon Genesis Evangelion"},
	{[]string{"gundam", "ガンダム"}, "Gundam"},
	{[]string{"pokemon", "ポケモン"}, "Pokémon"},
	{[]string{"hatsune miku", "初音ミク"}, "Hatsune Miku"},
	{[]string{"fate/", "fate "}, "Fate"},
	{[]string{"demon slayer", "鬼滅の刃"}, "Demon Slayer"},
	{[]string{"jujutsu kaisen", "呪術廻戦"}, "Jujutsu Kaisen"},
}

var brandDefaultFranchise = map[string]string{
	"medicom toy":      "Bearbrick",
	"tamashii nations": "Dragon Ball",
	"megahouse":        "One Piece",
}

const genericFranchise = "Anime & Manga"

func inferFranchise(title, brand string) string {
	if v := matchKeywords(franchiseRules, title); v != "" {
		return v
	}
	if v, ok := brandDefaultFranchise[strings.ToLower(brand)]; ok {
		return v
	}
	return genericFranchise
}

// figureScale is fixed per figure subcategory: boxed scale figures are sold
// as 1:7 unless the listing says otherwise; Nendoroid and Figma lines are
// non-scale by definition.
var figureScale = map[string]string{
	"SCALE_FIGURE": "1:7",
	"NENDOROID":    "Non-Scale",
	"FIGMA":        "Non-Scale",
}

// cameraSeries is the first whitespace token of the model number
// ("EOS R5" -> "EOS").
func cameraSeries(model string) string {
	fields := strings.Fields(model)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// truncateTitle hard-truncates to the platform's title limit. Marketplaces
// reject over-length titles outright, so truncation is the lesser evil.
func truncateTitle(title string, limit int) string {
	runes := []rune(title)
	if len(runes) <= limit {
		return title
	}
	return string(runes[:limit])
}

// penLike reports whether a stationary subcategory takes ink/point-size
// specifics.
func penLike(subcategory string) bool {
	switch subcategory {
	case "FOUNTAIN_PEN", "BALLPOINT_PEN", "MARKER":
		return true
	}
	return false
}
