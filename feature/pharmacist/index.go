package pharmacist

import (
	"fmt"
	"sort"

	"pharmacist/feature/pharmacist/models"
)

// ReqRef is a handle to one live barter requirement: enough to display it,
// to re-locate it inside its owning container, and to verify at scaling time
// that it is still the value stored there.
type ReqRef struct {
	TraderID       string
	OfferID        string
	OfferTpl       string
	TraderNickname string
	// Path is a human-readable locator for diagnostics,
	// e.g. "[offer][1][0]" or "[offer].key".
	Path string
	Req  *models.BarterRequirement

	container reqContainer
}

// Live reports whether the owning container still holds this exact
// requirement at its recorded position.
func (r *ReqRef) Live() bool {
	return r.container.get() == r.Req
}

// reqContainer is an owned (container, key) pair pointing into a barter
// entry. Exactly one of group, elems or keyed is set.
type reqContainer struct {
	group []*models.BarterRequirement
	elems []models.BarterElem
	keyed map[string]*models.BarterRequirement
	idx   int
	key   string
}

func (c reqContainer) get() *models.BarterRequirement {
	switch {
	case c.group != nil:
		if c.idx >= 0 && c.idx < len(c.group) {
			return c.group[c.idx]
		}
	case c.elems != nil:
		if c.idx >= 0 && c.idx < len(c.elems) {
			return c.elems[c.idx].Single
		}
	case c.keyed != nil:
		return c.keyed[c.key]
	}
	return nil
}

// BarterIndex maps required template -> offer ID -> requirement references.
type BarterIndex map[string]map[string][]*ReqRef

// BuildBarterIndex scans every trader's assort once and produces the reverse
// index from sold template to every requirement priced against it. Offers
// without a matching assort item and requirements without a numeric count
// are skipped. Trader and offer iteration is sorted so reference order is
// deterministic.
func BuildBarterIndex(traders map[string]*models.Trader, nick *NicknameCache) BarterIndex {
	index := make(BarterIndex)

	traderIDs := make([]string, 0, len(traders))
	for id := range traders {
		traderIDs = append(traderIDs, id)
	}
	sort.Strings(traderIDs)

	for _, traderID := range traderIDs {
		trader := traders[traderID]
		if trader == nil || trader.Assort == nil {
			continue
		}

		offerToTpl := make(map[string]string, len(trader.Assort.Items))
		for _, oi := range trader.Assort.Items {
			if oi != nil && oi.ID != "" && oi.Tpl != "" {
				offerToTpl[oi.ID] = oi.Tpl
			}
		}

		offerIDs := make([]string, 0, len(trader.Assort.BarterScheme))
		for offerID := range trader.Assort.BarterScheme {
			offerIDs = append(offerIDs, offerID)
		}
		sort.Strings(offerIDs)

		for _, offerID := range offerIDs {
			offerTpl := offerToTpl[offerID]
			if offerTpl == "" {
				continue
			}
			entry := trader.Assort.BarterScheme[offerID]
			if entry == nil {
				continue
			}

			nickname := nick.Resolve(traderID, traders)
			refs := collectRefs(traderID, offerID, offerTpl, nickname, entry)
			if len(refs) == 0 {
				continue
			}

			perOffer := index[offerTpl]
			if perOffer == nil {
				perOffer = make(map[string][]*ReqRef)
				index[offerTpl] = perOffer
			}
			perOffer[offerID] = append(perOffer[offerID], refs...)
		}
	}

	return index
}

// collectRefs flattens one barter entry into requirement references,
// regardless of which of the three layouts it uses.
func collectRefs(traderID, offerID, offerTpl, nickname string, entry *models.BarterEntry) []*ReqRef {
	var refs []*ReqRef

	add := func(req *models.BarterRequirement, c reqContainer, path string) {
		if req == nil || !req.HasCount {
			return
		}
		refs = append(refs, &ReqRef{
			TraderID:       traderID,
			OfferID:        offerID,
			OfferTpl:       offerTpl,
			TraderNickname: nickname,
			Path:           path,
			Req:            req,
			container:      c,
		})
	}

	if entry.Keyed != nil {
		keys := make([]string, 0, len(entry.Keyed))
		for k := range entry.Keyed {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			add(entry.Keyed[k], reqContainer{keyed: entry.Keyed, key: k},
				fmt.Sprintf("[%s].%s", offerID, k))
		}
		return refs
	}

	for i, el := range entry.Elems {
		if el.Group != nil {
			for j, req := range el.Group {
				add(req, reqContainer{group: el.Group, idx: j},
					fmt.Sprintf("[%s][%d][%d]", offerID, i, j))
			}
			continue
		}
		add(el.Single, reqContainer{elems: entry.Elems, idx: i},
			fmt.Sprintf("[%s][%d]", offerID, i))
	}
	return refs
}
