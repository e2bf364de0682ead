package pharmacist

import (
	"testing"

	"pharmacist/feature/pharmacist/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func req(tpl string, count float64) *models.BarterRequirement {
	r := &models.BarterRequirement{Tpl: tpl}
	r.SetCount(count)
	return r
}

func traderWithScheme(scheme models.BarterScheme) map[string]*models.Trader {
	return map[string]*models.Trader{
		"trader-1": {
			Base: &models.TraderBase{Nickname: "Therapist"},
			Assort: &models.Assort{
				Items: []*models.AssortItem{
					{ID: "offer-1", Tpl: "salewa"},
					{ID: "offer-2", Tpl: "bandage"},
				},
				BarterScheme: scheme,
			},
		},
	}
}

func TestBuildBarterIndex_NestedGroups(t *testing.T) {
	traders := traderWithScheme(models.BarterScheme{
		"offer-1": {Elems: []models.BarterElem{
			{Group: []*models.BarterRequirement{req("rouble", 5), req("dollar", 2)}},
			{Group: []*models.BarterRequirement{req("bandage", 1)}},
		}},
	})

	index := BuildBarterIndex(traders, NewNicknameCache())

	require.Contains(t, index, "salewa")
	refs := index["salewa"]["offer-1"]
	require.Len(t, refs, 3)
	assert.Equal(t, "Therapist", refs[0].TraderNickname)
	assert.Equal(t, "[offer-1][0][0]", refs[0].Path)
	assert.Equal(t, "[offer-1][1][0]", refs[2].Path)
	for _, ref := range refs {
		assert.True(t, ref.Live())
		assert.Equal(t, "salewa", ref.OfferTpl)
	}
}

func TestBuildBarterIndex_FlatList(t *testing.T) {
	traders := traderWithScheme(models.BarterScheme{
		"offer-2": {Elems: []models.BarterElem{
			{Single: req("rouble", 3)},
			{Single: req("salewa", 1)},
		}},
	})

	index := BuildBarterIndex(traders, NewNicknameCache())

	refs := index["bandage"]["offer-2"]
	require.Len(t, refs, 2)
	assert.Equal(t, "[offer-2][0]", refs[0].Path)
	assert.True(t, refs[1].Live())
}

func TestBuildBarterIndex_KeyedMap(t *testing.T) {
	traders := traderWithScheme(models.BarterScheme{
		"offer-1": {Keyed: map[string]*models.BarterRequirement{
			"a": req("rouble", 10),
			"b": req("dollar", 4),
		}},
	})

	index := BuildBarterIndex(traders, NewNicknameCache())

	refs := index["salewa"]["offer-1"]
	require.Len(t, refs, 2)
	assert.Equal(t, "[offer-1].a", refs[0].Path)
	assert.Equal(t, "[offer-1].b", refs[1].Path)
	assert.True(t, refs[0].Live())
}

func TestBuildBarterIndex_SkipsUnmatchedAndCountless(t *testing.T) {
	traders := traderWithScheme(models.BarterScheme{
		// No assort item maps this offer id
		"offer-unknown": {Elems: []models.BarterElem{{Single: req("rouble", 1)}}},
		// Requirement without a numeric count
		"offer-1": {Elems: []models.BarterElem{
			{Single: &models.BarterRequirement{Tpl: "rouble"}},
		}},
	})

	index := BuildBarterIndex(traders, NewNicknameCache())
	assert.Empty(t, index)
}

func TestReqRef_StaleDetection(t *testing.T) {
	scheme := models.BarterScheme{
		"offer-1": {Keyed: map[string]*models.BarterRequirement{
			"a": req("rouble", 10),
		}},
	}
	traders := traderWithScheme(scheme)

	index := BuildBarterIndex(traders, NewNicknameCache())
	ref := index["salewa"]["offer-1"][0]
	assert.True(t, ref.Live())

	// Replacing the stored value makes the reference stale
	scheme["offer-1"].Keyed["a"] = req("rouble", 99)
	assert.False(t, ref.Live())
}

func TestBuildBarterIndex_NilTraderData(t *testing.T) {
	traders := map[string]*models.Trader{
		"t1": nil,
		"t2": {},
		"t3": {Assort: &models.Assort{}},
	}
	assert.Empty(t, BuildBarterIndex(traders, NewNicknameCache()))
}
