package pharmacist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTuning(t *testing.T) {
	t.Run("ReadsVerbatimKeys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"logItemsWithModifiedUses": true,
			"changeCrafts": true,
			"barterScaleMode": "currency",
			"currencyTpls": ["rouble", "dollar"],
			"changeStims": true,
			"blacklisted_stims": ["stim-a"],
			"stimUsesMultiplier": 2.6,
			"changeMedkits": true,
			"medkitHpMultiplier": 2
		}`), 0o644))

		cfg, err := LoadTuning(path)
		require.NoError(t, err)

		assert.True(t, cfg.LogItemsWithModifiedUses)
		assert.True(t, cfg.ChangeCrafts)
		assert.Equal(t, ScaleCurrency, cfg.BarterScaleMode)
		assert.Equal(t, []string{"rouble", "dollar"}, cfg.CurrencyTpls)
		assert.Equal(t, []string{"stim-a"}, cfg.BlacklistedStims)
		assert.Equal(t, 2.6, cfg.StimUsesMultiplier)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadTuning(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})
}

func TestEffectiveMode(t *testing.T) {
	assert.Equal(t, ScaleBoth, (&Tuning{}).EffectiveMode(), "unset defaults to both")
	assert.Equal(t, ScaleItems, (&Tuning{BarterScaleMode: ScaleItems}).EffectiveMode())
	assert.Equal(t, "garbage", (&Tuning{BarterScaleMode: "garbage"}).EffectiveMode(),
		"unknown values pass through for the caller to reject")
}

func TestModeKnown(t *testing.T) {
	assert.True(t, ModeKnown(ScaleBoth))
	assert.True(t, ModeKnown(ScaleCurrency))
	assert.True(t, ModeKnown(ScaleItems))
	assert.False(t, ModeKnown(""))
	assert.False(t, ModeKnown("none"))
}

func TestRules(t *testing.T) {
	cfg := &Tuning{
		ChangeStims:           true,
		StimUsesMultiplier:    2.5,
		BlacklistedStims:      []string{"stim-a"},
		InfMedkits:            true,
		MedkitHpMultiplier:    3,
		MedicalUsesMultiplier: 0.4,
	}
	rules := cfg.Rules()

	stim := rules[CategoryStim]
	assert.True(t, stim.Enabled)
	assert.Equal(t, 3, stim.Multiplier, "2.5 rounds half away from zero")
	assert.True(t, stim.Blacklisted("stim-a"))
	assert.False(t, stim.Blacklisted("stim-b"))
	assert.Equal(t, float64(infiniteUses), stim.Sentinel)

	medkit := rules[CategoryMedkit]
	assert.False(t, medkit.Enabled)
	assert.True(t, medkit.Infinite)
	assert.Equal(t, float64(infiniteMedkitHP), medkit.Sentinel)

	assert.Equal(t, 0, rules[CategoryMedical].Multiplier, "0.4 rounds to zero")
	assert.Equal(t, "hp", medkit.Unit)
	assert.Equal(t, "uses", rules[CategoryDrug].Unit)
}
