package pharmacist

import (
	"fmt"
	"math"

	"github.com/spf13/viper"
)

// Category is one of the consumable classes the pass can rebalance.
type Category string

const (
	CategoryStim    Category = "stim"
	CategoryMedkit  Category = "medkit"
	CategoryMedical Category = "medical"
	CategoryDrug    Category = "drug"
)

// categoryOrder is the fixed emission order for reports.
var categoryOrder = []Category{CategoryStim, CategoryMedkit, CategoryMedical, CategoryDrug}

// Barter scale modes.
const (
	ScaleBoth     = "both"
	ScaleCurrency = "currency"
	ScaleItems    = "items"
)

// Usage sentinels written in infinite mode.
const (
	infiniteUses     = 999
	infiniteMedkitHP = 9999
)

// Tuning mirrors the tuning file consumed by the original mod. Key names are
// kept verbatim so existing config.json files keep working unchanged.
type Tuning struct {
	LogItemsWithModifiedUses bool     `mapstructure:"logItemsWithModifiedUses"`
	ChangeCrafts             bool     `mapstructure:"changeCrafts"`
	BarterScaleMode          string   `mapstructure:"barterScaleMode"`
	CurrencyTpls             []string `mapstructure:"currencyTpls"`
	ItemTpls                 []string `mapstructure:"itemTpls"`

	ChangeStims        bool     `mapstructure:"changeStims"`
	BlacklistedStims   []string `mapstructure:"blacklisted_stims"`
	InfStims           bool     `mapstructure:"infStims"`
	StimUsesMultiplier float64  `mapstructure:"stimUsesMultiplier"`

	ChangeMedkits      bool     `mapstructure:"changeMedkits"`
	BlacklistedMedkits []string `mapstructure:"blacklisted_medkits"`
	InfMedkits         bool     `mapstructure:"infMedkits"`
	MedkitHpMultiplier float64  `mapstructure:"medkitHpMultiplier"`

	ChangeMedical         bool     `mapstructure:"changeMedical"`
	BlacklistedMedical    []string `mapstructure:"blacklisted_medical"`
	InfMedical            bool     `mapstructure:"infMedical"`
	MedicalUsesMultiplier float64  `mapstructure:"medicalUsesMultiplier"`

	ChangeDrugs        bool     `mapstructure:"changeDrugs"`
	BlacklistedDrugs   []string `mapstructure:"blacklisted_drugs"`
	InfDrugs           bool     `mapstructure:"infDrugs"`
	DrugUsesMultiplier float64  `mapstructure:"drugUsesMultiplier"`
}

// LoadTuning reads a tuning file. Viper resolves the format from the file
// extension, so JSON, YAML and TOML all work.
func LoadTuning(path string) (*Tuning, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read tuning file: %w", err)
	}

	var t Tuning
	if err := v.Unmarshal(&t); err != nil {
		return nil, fmt.Errorf("parse tuning file: %w", err)
	}
	return &t, nil
}

// EffectiveMode returns the configured barter scale mode, defaulting to
// ScaleBoth when the field is unset. An unknown non-empty value is returned
// as-is; callers that need a known mode check with ModeKnown.
func (t *Tuning) EffectiveMode() string {
	if t.BarterScaleMode == "" {
		return ScaleBoth
	}
	return t.BarterScaleMode
}

// ModeKnown reports whether mode is one of the three recognized scopes.
func ModeKnown(mode string) bool {
	switch mode {
	case ScaleBoth, ScaleCurrency, ScaleItems:
		return true
	}
	return false
}

// rule is the evaluated tuning for a single category.
type rule struct {
	Label      string
	Unit       string
	Enabled    bool
	Infinite   bool
	Multiplier int
	Sentinel   float64

	blacklist map[string]struct{}
}

// Blacklisted reports whether the template is excluded for this category.
func (r rule) Blacklisted(tpl string) bool {
	_, ok := r.blacklist[tpl]
	return ok
}

// Rules builds the per-category rule table. Multipliers are rounded to
// integers up front so that item uses, handbook prices and requirement
// counts all scale by the exact same factor.
func (t *Tuning) Rules() map[Category]rule {
	return map[Category]rule{
		CategoryStim: {
			Label:      "Stims",
			Unit:       "uses",
			Enabled:    t.ChangeStims,
			Infinite:   t.InfStims,
			Multiplier: int(math.Round(t.StimUsesMultiplier)),
			Sentinel:   infiniteUses,
			blacklist:  toSet(t.BlacklistedStims),
		},
		CategoryMedkit: {
			Label:      "Medkits",
			Unit:       "hp",
			Enabled:    t.ChangeMedkits,
			Infinite:   t.InfMedkits,
			Multiplier: int(math.Round(t.MedkitHpMultiplier)),
			Sentinel:   infiniteMedkitHP,
			blacklist:  toSet(t.BlacklistedMedkits),
		},
		CategoryMedical: {
			Label:      "Medical",
			Unit:       "uses",
			Enabled:    t.ChangeMedical,
			Infinite:   t.InfMedical,
			Multiplier: int(math.Round(t.MedicalUsesMultiplier)),
			Sentinel:   infiniteUses,
			blacklist:  toSet(t.BlacklistedMedical),
		},
		CategoryDrug: {
			Label:      "Drugs",
			Unit:       "uses",
			Enabled:    t.ChangeDrugs,
			Infinite:   t.InfDrugs,
			Multiplier: int(math.Round(t.DrugUsesMultiplier)),
			Sentinel:   infiniteUses,
			blacklist:  toSet(t.BlacklistedDrugs),
		},
	}
}

func toSet(tpls []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tpls))
	for _, tpl := range tpls {
		set[tpl] = struct{}{}
	}
	return set
}
