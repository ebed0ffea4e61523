package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNicheTypeValid(t *testing.T) {
	for _, niche := range AllNiches {
		assert.True(t, niche.Valid())
	}
	assert.False(t, NicheType("SNEAKERS").Valid())
	assert.False(t, NicheType("").Valid())
}

func TestListingAttr(t *testing.T) {
	l := &Listing{
		Attributes: map[string]interface{}{
			"brand":  "Seiko",
			"number": 42,
		},
	}

	assert.Equal(t, "Seiko", l.Attr("brand"))
	assert.Equal(t, "", l.Attr("missing"))
	assert.Equal(t, "", l.Attr("number"), "non-string attributes are ignored")

	var empty Listing
	assert.Equal(t, "", empty.Attr("brand"))
}

func TestListingCondition(t *testing.T) {
	l := &Listing{
		Attributes: map[string]interface{}{"condition_rank": "A"},
	}
	assert.Equal(t, RankA, l.Condition())

	assert.Equal(t, ConditionRank(""), (&Listing{}).Condition())
}
