package pharmacist

import (
	"strconv"

	"go.uber.org/zap"
)

// Report aggregates what one run changed. It is purely observational: the
// pass mutates the database regardless of what the report records.
type Report struct {
	// ItemCounts is the number of items rescaled per category (infinite-mode
	// items are not counted; they carry no multiplier).
	ItemCounts map[Category]int
	// Multipliers is the integer multiplier applied per category.
	Multipliers map[Category]int
	// RequirementUpdates is the number of barter requirement counts changed.
	RequirementUpdates int
	// RecipeUpdates is the number of recipe requirement counts changed.
	RecipeUpdates int
	// ScalingSkipped is set when no requirement scaling ran at all (nothing
	// changed, or the configured mode was not recognized).
	ScalingSkipped bool

	// Buffered detail lines, grouped the way they are emitted.
	ItemLines     map[Category][]string
	HandbookLines []string
	TraderLines   []string
	RecipeLines   []string
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{
		ItemCounts:  make(map[Category]int),
		Multipliers: make(map[Category]int),
		ItemLines:   make(map[Category][]string),
	}
}

// Emit writes the buffered detail lines and the summary through the logger.
// Detail lines are only collected when verbose logging is enabled, so a
// non-verbose run emits nothing here.
func (r *Report) Emit(log *zap.Logger, labels map[Category]string) {
	for _, cat := range categoryOrder {
		for _, line := range r.ItemLines[cat] {
			log.Info(line, zap.String("section", labels[cat]))
		}
	}
	for _, line := range r.HandbookLines {
		log.Info(line, zap.String("section", "Handbook"))
	}
	for _, line := range r.TraderLines {
		log.Info(line, zap.String("section", "Traders"))
	}
	for _, line := range r.RecipeLines {
		log.Info(line, zap.String("section", "Recipes"))
	}

	for _, cat := range categoryOrder {
		log.Info("category rescaled",
			zap.String("category", labels[cat]),
			zap.Int("items", r.ItemCounts[cat]),
			zap.Int("multiplier", r.Multipliers[cat]))
	}
	log.Info("scaled barter requirement counts", zap.Int("updates", r.RequirementUpdates))
	log.Info("changed hideout recipes", zap.Int("updates", r.RecipeUpdates))
}

// fmtNum renders a count or price the way it appears in the data: integers
// without a decimal point, fractions with their natural precision.
func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
