package pharmacist

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"pharmacist/feature/pharmacist/models"
)

// mutateItems runs the classifier, mutator and price synchronizer over every
// item definition in one pass, in sorted template order.
func (p *pass) mutateItems() {
	ids := make([]string, 0, len(p.db.Items))
	for id := range p.db.Items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		item := p.db.Items[id]
		if item == nil {
			continue
		}

		cat, ok := p.choose(item)
		if !ok {
			continue
		}
		p.mutateItem(item, cat)
	}
}

// choose evaluates the candidate categories in priority order and picks the
// first one that is enabled and not blacklisted for this template.
//
// Two distinct diagnostics exist: a candidate skipped by blacklist while a
// later candidate is chosen gets a debug-level fall-through note; a template
// whose every viable candidate was blacklisted gets a single warning and is
// left completely untouched. When nothing was viable for other reasons
// (unrecognized parent, category disabled) the item is skipped silently.
func (p *pass) choose(item *models.ItemDefinition) (Category, bool) {
	candidates := Classify(item)
	if len(candidates) == 0 {
		return "", false
	}

	var blacklisted []Category
	for _, cat := range candidates {
		r := p.rules[cat]
		if !r.Enabled {
			continue
		}
		if r.Blacklisted(item.ID) {
			blacklisted = append(blacklisted, cat)
			continue
		}

		for _, skipped := range blacklisted {
			p.log.Debug("blacklisted for category, falling through to next candidate",
				zap.String("item", p.shortName(item.ID)),
				zap.String("category", string(skipped)),
				zap.String("chosen", string(cat)))
		}
		return cat, true
	}

	if len(blacklisted) > 0 && p.cfg.LogItemsWithModifiedUses {
		p.log.Warn("item is blacklisted and will not be modified",
			zap.String("item", p.shortName(item.ID)),
			zap.String("category", string(blacklisted[0])))
	}
	return "", false
}

// mutateItem applies the category's rule to the item and, on the multiplier
// path, records the template for downstream propagation and synchronizes its
// handbook price.
func (p *pass) mutateItem(item *models.ItemDefinition, cat Category) {
	r := p.rules[cat]

	if item.Props == nil {
		return
	}

	if r.Infinite {
		// No multiplier to propagate: the template keeps its original price
		// and requirement counts.
		item.Props.SetMaxHpResource(r.Sentinel)
		return
	}

	old, ok := item.Props.MaxHpResource()
	if !ok {
		return
	}
	base := old
	if base == 0 {
		base = 1
	}
	updated := base * float64(r.Multiplier)
	item.Props.SetMaxHpResource(updated)

	p.changed[item.ID] = cat
	p.changedOrder = append(p.changedOrder, item.ID)
	p.report.ItemCounts[cat]++

	if p.cfg.LogItemsWithModifiedUses {
		p.report.ItemLines[cat] = append(p.report.ItemLines[cat],
			fmt.Sprintf("%s from %s %s to %s %s",
				p.shortName(item.ID), fmtNum(old), r.Unit, fmtNum(updated), r.Unit))
	}

	p.syncPrice(item.ID, cat, r)
}

// syncPrice rescales the handbook price by the same multiplier applied to
// the item's uses.
//
// The gating and lookup strategy differ between stims and the other three
// categories: stims sync whenever a barter scale mode is configured at all
// and use the prebuilt ID map, while medkits/medical/drugs require the
// effective mode to cover currency and locate their entry by linear scan.
// The asymmetry is long-standing observed behavior and is kept.
func (p *pass) syncPrice(tpl string, cat Category, r rule) {
	var hb *models.HandbookEntry

	if cat == CategoryStim {
		if p.cfg.BarterScaleMode == "" {
			return
		}
		hb = p.handbookByID[tpl]
	} else {
		mode := p.cfg.EffectiveMode()
		if mode != ScaleBoth && mode != ScaleCurrency {
			return
		}
		if p.db.Handbook != nil {
			for _, entry := range p.db.Handbook.Items {
				if entry != nil && entry.ID == tpl {
					hb = entry
					break
				}
			}
		}
	}

	if hb == nil {
		p.log.Error("could not find item in handbook",
			zap.String("item", p.shortName(tpl)))
		return
	}

	oldPrice := hb.Price
	hb.Price = oldPrice * float64(r.Multiplier)

	if p.cfg.LogItemsWithModifiedUses {
		p.report.HandbookLines = append(p.report.HandbookLines,
			fmt.Sprintf("changing the price of %s from %s to %s",
				p.shortName(tpl), fmtNum(oldPrice), fmtNum(hb.Price)))
	}
}
