package pharmacist

import "pharmacist/feature/pharmacist/models"

// Parent base-class IDs of the consumable categories.
const (
	parentStimulator = "5448f3a64bdc2d60728b456a"
	parentMedkit     = "5448f39d4bdc2d0a728b4568"
	parentMedical    = "5448f3ac4bdc2dce718b4569"
	parentDrugs      = "5448f3a14bdc2d27728b4569"
)

// morphineTpl is dual-natured: preferred as a stimulant, usable as general
// medical when stimulants are disabled or the template is blacklisted there.
const morphineTpl = "544fb3f34bdc2d03748b456a"

// Classify returns the candidate categories for an item, most preferred
// first. An empty result means the item is out of scope for the pass.
func Classify(item *models.ItemDefinition) []Category {
	if item == nil {
		return nil
	}
	if item.ID == morphineTpl {
		return []Category{CategoryStim, CategoryMedical}
	}
	switch item.Parent {
	case parentStimulator:
		return []Category{CategoryStim}
	case parentMedkit:
		return []Category{CategoryMedkit}
	case parentMedical:
		return []Category{CategoryMedical}
	case parentDrugs:
		return []Category{CategoryDrug}
	}
	return nil
}
