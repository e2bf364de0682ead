package integrity

import (
	"context"

	"pharmacist/core/loader"
	"pharmacist/feature/integrity/checks"
	"pharmacist/feature/pharmacist/models"

	"go.uber.org/zap"
)

// Service handles integrity checks against a database source and its
// loaded contents.
type Service struct {
	src    loader.Source
	logger *zap.Logger
}

// NewService creates a new integrity service.
func NewService(src loader.Source, logger *zap.Logger) *Service {
	return &Service{
		src:    src,
		logger: logger,
	}
}

// CheckFiles returns the required database files missing from the source.
func (s *Service) CheckFiles(ctx context.Context) ([]string, error) {
	return checks.CheckFiles(ctx, s.src)
}

// CheckDatabase runs every in-memory consistency check and returns the
// combined findings, logging each group as it goes.
func (s *Service) CheckDatabase(db *models.Database) []string {
	var findings []string

	if missing := checks.CheckHandbookCoverage(db); len(missing) > 0 {
		s.logger.Warn("consumables without handbook entries",
			zap.Int("count", len(missing)), zap.Strings("templates", missing))
		for _, tpl := range missing {
			findings = append(findings, "no handbook entry for "+tpl)
		}
	}

	if refs := checks.CheckAssortReferences(db); len(refs) > 0 {
		s.logger.Warn("dangling trader assort references", zap.Int("count", len(refs)))
		findings = append(findings, refs...)
	}

	if refs := checks.CheckRecipeProducts(db); len(refs) > 0 {
		s.logger.Warn("dangling recipe references", zap.Int("count", len(refs)))
		findings = append(findings, refs...)
	}

	return findings
}
