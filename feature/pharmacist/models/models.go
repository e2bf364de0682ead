package models

import (
	"encoding/json"

	"pharmacist/core/utils"
)

// Database is the in-memory game database the rebalancing pass operates on.
// All collections are mutated in place; the loader owns reading and writing
// them.
type Database struct {
	// Items maps template ID to item definition.
	Items map[string]*ItemDefinition
	// Handbook is the price list.
	Handbook *Handbook
	// Traders maps trader ID to trader.
	Traders map[string]*Trader
	// Production holds the hideout crafting recipes.
	Production *Production
	// Locales maps language code to its flat string table.
	Locales map[string]LocaleTable
}

// LocaleTable is a flat locale string table keyed by entries such as
// "<tpl> Name" and "<tpl> ShortName".
type LocaleTable map[string]string

// ShortName returns the display short name for a template, if present.
func (t LocaleTable) ShortName(tpl string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t[tpl+" ShortName"]
	return v, ok
}

// ItemDefinition is one item template. Only the identity fields are typed;
// the property bag is kept generic so that untouched properties survive a
// load/save round-trip byte-for-value.
type ItemDefinition struct {
	ID     string    `json:"_id"`
	Name   string    `json:"_name,omitempty"`
	Parent string    `json:"_parent,omitempty"`
	Proto  string    `json:"_proto,omitempty"`
	Type   string    `json:"_type,omitempty"`
	Props  ItemProps `json:"_props,omitempty"`
}

// ItemProps is the raw property bag of an item definition.
type ItemProps map[string]any

// MaxHpResource reads the usage/capacity attribute. The second return value
// is false when the property is absent or not numeric.
func (p ItemProps) MaxHpResource() (float64, bool) {
	if p == nil {
		return 0, false
	}
	return utils.ToFloat(p["MaxHpResource"])
}

// SetMaxHpResource writes the usage/capacity attribute.
func (p ItemProps) SetMaxHpResource(v float64) {
	p["MaxHpResource"] = v
}

// Handbook is the price list. Categories are carried opaquely; the pass only
// touches entry prices.
type Handbook struct {
	Categories json.RawMessage  `json:"Categories,omitempty"`
	Items      []*HandbookEntry `json:"Items"`
}

// HandbookEntry is one priced template.
type HandbookEntry struct {
	ID       string  `json:"Id"`
	ParentID string  `json:"ParentId,omitempty"`
	Price    float64 `json:"Price"`
}

// Trader is one trader with its assort. Base comes from a separate file; the
// top-level name fields exist because some data sets carry them directly on
// the trader object and the nickname resolver honors both.
type Trader struct {
	ID       string      `json:"_id,omitempty"`
	Base     *TraderBase `json:"base,omitempty"`
	Nickname string      `json:"nickname,omitempty"`
	Name     string      `json:"name,omitempty"`
	Surname  string      `json:"surname,omitempty"`
	Assort   *Assort     `json:"assort,omitempty"`
}

// TraderBase holds the identity fields of a trader's base record.
type TraderBase struct {
	ID       string `json:"_id,omitempty"`
	Nickname string `json:"nickname,omitempty"`
	Name     string `json:"name,omitempty"`
	Surname  string `json:"surname,omitempty"`
	Location string `json:"location,omitempty"`
}

// Assort is a trader's offer list plus the barter scheme pricing each offer.
type Assort struct {
	NextResupply    json.RawMessage `json:"nextResupply,omitempty"`
	Items           []*AssortItem   `json:"items"`
	BarterScheme    BarterScheme    `json:"barter_scheme"`
	LoyalLevelItems json.RawMessage `json:"loyal_level_items,omitempty"`
}

// AssortItem is one offer record mapping an offer ID to the sold template.
type AssortItem struct {
	ID       string          `json:"_id"`
	Tpl      string          `json:"_tpl"`
	ParentID string          `json:"parentId,omitempty"`
	SlotID   string          `json:"slotId,omitempty"`
	Upd      json.RawMessage `json:"upd,omitempty"`
}
