package checks

import (
	"testing"

	"pharmacist/feature/pharmacist/models"

	"github.com/stretchr/testify/assert"
)

const stimParent = "5448f3a64bdc2d60728b456a"

func consumable(id string) *models.ItemDefinition {
	return &models.ItemDefinition{ID: id, Parent: stimParent, Props: models.ItemProps{}}
}

func TestCheckHandbookCoverage(t *testing.T) {
	db := &models.Database{
		Items: map[string]*models.ItemDefinition{
			"stim-covered": consumable("stim-covered"),
			"stim-bare":    consumable("stim-bare"),
			"weapon-1":     {ID: "weapon-1", Parent: "weapon-parent"},
		},
		Handbook: &models.Handbook{Items: []*models.HandbookEntry{
			{ID: "stim-covered", Price: 100},
		}},
	}

	assert.Equal(t, []string{"stim-bare"}, CheckHandbookCoverage(db),
		"non-consumables are out of scope")
}

func TestCheckHandbookCoverage_NoHandbook(t *testing.T) {
	db := &models.Database{
		Items: map[string]*models.ItemDefinition{"stim-1": consumable("stim-1")},
	}
	assert.Equal(t, []string{"stim-1"}, CheckHandbookCoverage(db))
}

func TestCheckAssortReferences(t *testing.T) {
	db := &models.Database{
		Items: map[string]*models.ItemDefinition{"stim-1": consumable("stim-1")},
		Traders: map[string]*models.Trader{
			"trader-1": {
				Assort: &models.Assort{
					Items: []*models.AssortItem{
						{ID: "offer-good", Tpl: "stim-1"},
						{ID: "offer-ghost-tpl", Tpl: "no-such-item"},
					},
					BarterScheme: models.BarterScheme{
						"offer-good":   {},
						"offer-orphan": {},
					},
				},
			},
		},
	}

	findings := CheckAssortReferences(db)
	assert.Equal(t, []string{
		"trader trader-1 offer offer-ghost-tpl references unknown template no-such-item",
		"trader trader-1 barter scheme entry offer-orphan has no matching offer",
	}, findings)
}

func TestCheckRecipeProducts(t *testing.T) {
	itemReq := &models.RecipeRequirement{Type: "Item", Tpl: "no-such-part"}
	areaReq := &models.RecipeRequirement{Type: "Area", Tpl: "no-such-area"}

	db := &models.Database{
		Items: map[string]*models.ItemDefinition{"stim-1": consumable("stim-1")},
		Production: &models.Production{Recipes: []*models.Recipe{
			{ID: "recipe-ok", EndProduct: "stim-1"},
			{ID: "recipe-bad", EndProduct: "no-such-item", Requirements: []*models.RecipeRequirement{itemReq, areaReq}},
		}},
	}

	findings := CheckRecipeProducts(db)
	assert.Equal(t, []string{
		"recipe recipe-bad produces unknown template no-such-item",
		"recipe recipe-bad requires unknown template no-such-part",
	}, findings, "non-item requirement types are ignored")
}

func TestCheckRecipeProducts_NoProduction(t *testing.T) {
	assert.Nil(t, CheckRecipeProducts(&models.Database{}))
}
