package pharmacist

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"
)

// scaleRequirements rewrites every barter requirement and hideout recipe
// referencing a rescaled template, using the same multiplier the template's
// uses were scaled by.
func (p *pass) scaleRequirements(index BarterIndex) {
	if len(p.changedOrder) == 0 || !ModeKnown(p.cfg.EffectiveMode()) {
		p.report.ScalingSkipped = true
		p.log.Warn("trader prices have not been updated")
		return
	}
	mode := p.cfg.EffectiveMode()

	for _, tpl := range p.changedOrder {
		r := p.rules[p.changed[tpl]]
		multiplier := r.Multiplier
		if multiplier == 0 {
			multiplier = 1
		}
		if multiplier == 1 {
			continue
		}

		p.scaleOffers(index, tpl, multiplier, mode)

		if p.cfg.ChangeCrafts {
			if err := p.scaleRecipes(tpl, multiplier); err != nil {
				p.log.Error("error updating hideout recipes",
					zap.String("tpl", tpl), zap.Error(err))
				continue
			}
			if p.cfg.LogItemsWithModifiedUses {
				p.report.RecipeLines = append(p.report.RecipeLines,
					fmt.Sprintf("hideout recipes for %s updated to require x%d items",
						p.shortName(tpl), multiplier))
			}
		}
	}
}

// scaleOffers rescales every live barter requirement under one template.
func (p *pass) scaleOffers(index BarterIndex, tpl string, multiplier int, mode string) {
	perOffer := index[tpl]
	if perOffer == nil {
		return
	}

	offerIDs := make([]string, 0, len(perOffer))
	for offerID := range perOffer {
		offerIDs = append(offerIDs, offerID)
	}
	sort.Strings(offerIDs)

	for _, offerID := range offerIDs {
		for _, ref := range perOffer[offerID] {
			if ref.Req == nil || !ref.Live() {
				continue
			}
			if !p.shouldScale(mode, ref.Req.Tpl) {
				continue
			}
			if !ref.Req.HasCount || math.IsNaN(ref.Req.Count) || math.IsInf(ref.Req.Count, 0) {
				continue
			}

			old := ref.Req.Count
			updated := scaleCount(old, multiplier)
			if updated == old {
				continue
			}
			ref.Req.SetCount(updated)
			p.report.RequirementUpdates++

			if p.cfg.LogItemsWithModifiedUses {
				nick := ref.TraderNickname
				if nick == "" {
					nick = ref.TraderID
				}
				p.report.TraderLines = append(p.report.TraderLines,
					fmt.Sprintf("%s updated %s requirement from %s to %s",
						nick, p.shortName(ref.OfferTpl), fmtNum(old), fmtNum(updated)))
			}
		}
	}
}

// scaleRecipes rescales the item requirements of every recipe producing the
// template. Errors are per-template; the caller logs and moves on.
func (p *pass) scaleRecipes(tpl string, multiplier int) error {
	if p.db.Production == nil {
		return nil
	}

	for _, recipe := range p.db.Production.Recipes {
		if recipe == nil || recipe.EndProduct != tpl {
			continue
		}
		for _, req := range recipe.Requirements {
			if req == nil || !req.HasCount || math.IsNaN(req.Count) || math.IsInf(req.Count, 0) {
				continue
			}
			if req.Type != "" && req.Type != "Item" {
				continue
			}

			updated := scaleCount(req.Count, multiplier)
			if updated == req.Count {
				continue
			}
			req.SetCount(updated)
			p.report.RecipeUpdates++
		}
	}
	return nil
}

// shouldScale applies the scope filter to a requirement's target template.
// An absent allow-list means "no restriction" for its side of the filter.
func (p *pass) shouldScale(mode, reqTpl string) bool {
	isCurrency := reqTpl != "" && contains(p.currencySet, reqTpl)
	isItem := false
	if reqTpl != "" {
		if len(p.itemSet) > 0 {
			isItem = contains(p.itemSet, reqTpl)
		} else {
			isItem = !isCurrency
		}
	}

	switch mode {
	case ScaleBoth:
		if len(p.currencySet) == 0 && len(p.itemSet) == 0 {
			return true
		}
		return isCurrency || isItem
	case ScaleCurrency:
		if len(p.currencySet) == 0 {
			return true
		}
		return isCurrency
	case ScaleItems:
		if len(p.itemSet) == 0 {
			return !isCurrency
		}
		return isItem
	}
	return false
}

// scaleCount applies the rounding policy: integer counts stay integers with
// a floor of 1, fractional counts round to two decimals with a floor of
// 0.01.
func scaleCount(old float64, multiplier int) float64 {
	scaled := old * float64(multiplier)
	if math.Floor(old) == old {
		updated := math.Round(scaled)
		if updated < 1 {
			updated = 1
		}
		return updated
	}
	updated := math.Round(scaled*100) / 100
	if updated < 0.01 {
		updated = 0.01
	}
	return updated
}

func contains(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
