package entity

import (
	"time"
)

// NicheType discriminates which attribute keys on a listing are meaningful.
// It is immutable once a listing is scraped.
type NicheType string

const (
	NicheTCG               NicheType = "TCG"
	NicheWatch             NicheType = "WATCH"
	NicheCameraGear        NicheType = "CAMERA_GEAR"
	NicheLuxuryItem        NicheType = "LUXURY_ITEM"
	NicheVideogame         NicheType = "VIDEOGAME"
	NicheStationary        NicheType = "STATIONARY"
	NicheCollectionFigures NicheType = "COLLECTION_FIGURES"
)

// AllNiches lists every supported niche, in display order.
var AllNiches = []NicheType{
	NicheTCG,
	NicheWatch,
	NicheCameraGear,
	NicheLuxuryItem,
	NicheVideogame,
	NicheStationary,
	NicheCollectionFigures,
}

func (n NicheType) Valid() bool {
	for _, niche := range AllNiches {
		if n == niche {
			return true
		}
	}
	return false
}

// ConditionRank is the Japanese marketplace grading scale, best to worst:
// N (new), S (unused), A (excellent), B (good), C (fair), D (poor), JUNK.
type ConditionRank string

const (
	RankN    ConditionRank = "N"
	RankS    ConditionRank = "S"
	RankA    ConditionRank = "A"
	RankB    ConditionRank = "B"
	RankC    ConditionRank = "C"
	RankD    ConditionRank = "D"
	RankJunk ConditionRank = "JUNK"
)

type MarketSource struct {
	SourceID    string `json:"source_id" firestore:"sourceId"`
	DisplayName string `json:"display_name" firestore:"displayName"`
	BaseURL     string `json:"base_url" firestore:"baseUrl"`
}

// Listing is a raw scraped marketplace listing. Core fields are common to
// every niche; niche-specific data lives in the polymorphic Attributes map.
// Attribute keys not relevant to the niche are ignored downstream, never
// rejected.
type Listing struct {
	ID         string                 `json:"id" firestore:"id"`
	NicheType  NicheType              `json:"niche_type" firestore:"nicheType"`
	Source     MarketSource           `json:"source" firestore:"source"`
	Title      string                 `json:"title" firestore:"title"`
	PriceJPY   int64                  `json:"price_jpy" firestore:"priceJpy"`
	URL        string                 `json:"url" firestore:"url"`
	ImageURLs  []string               `json:"image_urls" firestore:"imageUrls"`
	Attributes map[string]interface{} `json:"attributes" firestore:"attributes"`

	IsProcessed bool       `json:"is_processed" firestore:"isProcessed"`
	ListedAt    *time.Time `json:"listed_at,omitempty" firestore:"listedAt,omitempty"`
	CreatedAt   time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time  `json:"updated_at" firestore:"updatedAt"`
}

// Attr returns the string form of an attribute, or "" when the key is absent
// or not a string. Scrapers occasionally store numbers; those are ignored
// here rather than coerced.
func (l *Listing) Attr(key string) string {
	if l.Attributes == nil {
		return ""
	}
	if v, ok := l.Attributes[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Condition returns the listing's condition rank, or "" when the scraper
// could not determine one.
func (l *Listing) Condition() ConditionRank {
	return ConditionRank(l.Attr("condition_rank"))
}
