package pharmacist

import (
	"testing"

	"pharmacist/feature/pharmacist/models"

	"github.com/stretchr/testify/assert"
)

func TestClassify_ParentMapping(t *testing.T) {
	tests := []struct {
		name   string
		parent string
		want   []Category
	}{
		{"Stimulator", parentStimulator, []Category{CategoryStim}},
		{"Medkit", parentMedkit, []Category{CategoryMedkit}},
		{"Medical", parentMedical, []Category{CategoryMedical}},
		{"Drugs", parentDrugs, []Category{CategoryDrug}},
		{"Unrecognized", "5448e8d04bdc2ddf718b4569", nil},
		{"Empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &models.ItemDefinition{ID: "item-1", Parent: tt.parent}
			assert.Equal(t, tt.want, Classify(item))
		})
	}
}

func TestClassify_MorphineIsDualNatured(t *testing.T) {
	// The parent would say Drugs, but the hardcoded template wins and the
	// preferred category is stim with medical as fallback.
	item := &models.ItemDefinition{ID: morphineTpl, Parent: parentDrugs}
	assert.Equal(t, []Category{CategoryStim, CategoryMedical}, Classify(item))
}

func TestClassify_NilItem(t *testing.T) {
	assert.Nil(t, Classify(nil))
}
