package checks

import (
	"fmt"
	"sort"

	"pharmacist/feature/pharmacist"
	"pharmacist/feature/pharmacist/models"
)

// CheckHandbookCoverage returns the consumable templates without a handbook
// entry. Price synchronization logs an error for each of these at run time,
// so surfacing them up front lets the operator fix the database instead.
func CheckHandbookCoverage(db *models.Database) []string {
	known := make(map[string]struct{})
	if db.Handbook != nil {
		for _, entry := range db.Handbook.Items {
			if entry != nil {
				known[entry.ID] = struct{}{}
			}
		}
	}

	var missing []string
	for id, item := range db.Items {
		if item == nil || len(pharmacist.Classify(item)) == 0 {
			continue
		}
		if _, ok := known[id]; !ok {
			missing = append(missing, id)
		}
	}
	sort.Strings(missing)
	return missing
}

// CheckAssortReferences returns a finding for every barter scheme entry
// keyed by an offer that does not exist in the trader's assort, and for
// every assort item whose template is not in the item table. Both are
// silently skipped by the requirement scaler, which makes them easy to miss.
func CheckAssortReferences(db *models.Database) []string {
	var findings []string

	traderIDs := make([]string, 0, len(db.Traders))
	for id := range db.Traders {
		traderIDs = append(traderIDs, id)
	}
	sort.Strings(traderIDs)

	for _, traderID := range traderIDs {
		trader := db.Traders[traderID]
		if trader == nil || trader.Assort == nil {
			continue
		}

		offers := make(map[string]struct{}, len(trader.Assort.Items))
		for _, item := range trader.Assort.Items {
			if item == nil {
				continue
			}
			offers[item.ID] = struct{}{}
			if _, ok := db.Items[item.Tpl]; !ok {
				findings = append(findings,
					fmt.Sprintf("trader %s offer %s references unknown template %s", traderID, item.ID, item.Tpl))
			}
		}

		schemeIDs := make([]string, 0, len(trader.Assort.BarterScheme))
		for offerID := range trader.Assort.BarterScheme {
			schemeIDs = append(schemeIDs, offerID)
		}
		sort.Strings(schemeIDs)
		for _, offerID := range schemeIDs {
			if _, ok := offers[offerID]; !ok {
				findings = append(findings,
					fmt.Sprintf("trader %s barter scheme entry %s has no matching offer", traderID, offerID))
			}
		}
	}

	return findings
}

// CheckRecipeProducts returns a finding for every hideout recipe whose end
// product or item requirement references a template that does not exist.
func CheckRecipeProducts(db *models.Database) []string {
	if db.Production == nil {
		return nil
	}

	var findings []string
	for _, recipe := range db.Production.Recipes {
		if recipe == nil {
			continue
		}
		if recipe.EndProduct != "" {
			if _, ok := db.Items[recipe.EndProduct]; !ok {
				findings = append(findings,
					fmt.Sprintf("recipe %s produces unknown template %s", recipe.ID, recipe.EndProduct))
			}
		}
		for _, req := range recipe.Requirements {
			if req == nil || req.Tpl == "" {
				continue
			}
			if req.Type != "" && req.Type != "Item" && req.Type != "Tool" {
				continue
			}
			if _, ok := db.Items[req.Tpl]; !ok {
				findings = append(findings,
					fmt.Sprintf("recipe %s requires unknown template %s", recipe.ID, req.Tpl))
			}
		}
	}
	return findings
}
