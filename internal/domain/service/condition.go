package service

import (
	"velodata/internal/domain/entity"
)

// conditionStrategy names a remapping from the source condition rank scale to
// the condition codes a destination category actually accepts. eBay rejects
// rows whose ConditionID is not legal for the category, so each niche is
// pinned to the strategy matching its category tree.
type conditionStrategy int

const (
	// conditionStandard covers categories with the full code range.
	conditionStandard conditionStrategy = iota
	// conditionLuxury covers luxury categories, which only accept
	// New / Pre-owned and have no "for parts" code.
	conditionLuxury
	// conditionElectronics covers electronics-style categories where
	// open-box and for-parts codes are legal.
	conditionElectronics
)

// eBay ConditionID values.
const (
	ebayCondNew      = "1000"
	ebayCondOpenBox  = "1500"
	ebayCondLikeNew  = "2750"
	ebayCondUsed     = "3000"
	ebayCondForParts = "7000"
)

var nicheConditionStrategy = map[entity.NicheType]conditionStrategy{
	entity.NicheTCG:               conditionStandard,
	entity.NicheWatch:             conditionStandard,
	entity.NicheCameraGear:        conditionStandard,
	entity.NicheLuxuryItem:        conditionLuxury,
	entity.NicheVideogame:         conditionElectronics,
	entity.NicheStationary:        conditionElectronics,
	entity.NicheCollectionFigures: conditionElectronics,
}

var standardConditionMap = map[entity.ConditionRank]string{
	entity.RankN:    ebayCondNew,
	entity.RankS:    ebayCondLikeNew,
	entity.RankA:    ebayCondUsed,
	entity.RankB:    ebayCondUsed,
	entity.RankC:    ebayCondUsed,
	entity.RankD:    ebayCondUsed,
	entity.RankJunk: ebayCondForParts,
}

var luxuryConditionMap = map[entity.ConditionRank]string{
	entity.RankN:    ebayCondNew,
	entity.RankS:    ebayCondUsed,
	entity.RankA:    ebayCondUsed,
	entity.RankB:    ebayCondUsed,
	entity.RankC:    ebayCondUsed,
	entity.RankD:    ebayCondUsed,
	entity.RankJunk: ebayCondUsed,
}

var electronicsConditionMap = map[entity.ConditionRank]string{
	entity.RankN:    ebayCondNew,
	entity.RankS:    ebayCondOpenBox,
	entity.RankA:    ebayCondUsed,
	entity.RankB:    ebayCondUsed,
	entity.RankC:    ebayCondUsed,
	entity.RankD:    ebayCondForParts,
	entity.RankJunk: ebayCondForParts,
}

// ebayConditionID maps a source rank to the eBay condition code for the
// niche's strategy. Unrecognized or missing ranks fall back to "used" so a
// listing's condition is never overstated.
func ebayConditionID(niche entity.NicheType, rank entity.ConditionRank) string {
	var m map[entity.ConditionRank]string
	switch nicheConditionStrategy[niche] {
	case conditionLuxury:
		m = luxuryConditionMap
	case conditionElectronics:
		m = electronicsConditionMap
	default:
		m = standardConditionMap
	}
	if code, ok := m[rank]; ok {
		return code
	}
	return ebayCondUsed
}

// shopifyCondition maps a source rank onto the Google Shopping condition
// vocabulary used in Shopify product CSVs. Only N counts as new; everything
// else, including unknown ranks, is "used".
func shopifyCondition(rank entity.ConditionRank) string {
	if rank == entity.RankN {
		return "new"
	}
	return "used"
}
