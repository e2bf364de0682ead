package pharmacist

import (
	"go.uber.org/zap"

	"pharmacist/feature/pharmacist/models"
)

// Service runs the consumable rebalancing pass against a loaded database.
type Service struct {
	db  *models.Database
	cfg *Tuning
	log *zap.Logger
}

// NewService creates a new rebalancing service.
func NewService(db *models.Database, cfg *Tuning, log *zap.Logger) *Service {
	return &Service{db: db, cfg: cfg, log: log}
}

// Apply executes the whole pass: classify and rescale items, synchronize
// handbook prices, then scale every barter and recipe requirement that
// references a rescaled template. All mutation is in place; the returned
// report is observational. No failure aborts the run.
func (s *Service) Apply() *Report {
	p := newPass(s.db, s.cfg, s.log)

	p.log.Info("rebalancing consumable usage counts")

	p.mutateItems()

	index := BuildBarterIndex(s.db.Traders, p.nick)
	p.scaleRequirements(index)

	p.report.Emit(p.log, p.labels())
	return p.report
}

// pass carries the per-run state: rule table, caches, and the set of changed
// templates. Caches live exactly as long as the pass.
type pass struct {
	db     *models.Database
	cfg    *Tuning
	log    *zap.Logger
	rules  map[Category]rule
	nick   *NicknameCache
	report *Report

	handbookByID map[string]*models.HandbookEntry
	shortNames   map[string]string
	currencySet  map[string]struct{}
	itemSet      map[string]struct{}

	// changed maps each rescaled template to its selected category; the
	// slice preserves mutation order for deterministic scaling and logs.
	changed      map[string]Category
	changedOrder []string
}

func newPass(db *models.Database, cfg *Tuning, log *zap.Logger) *pass {
	p := &pass{
		db:           db,
		cfg:          cfg,
		log:          log,
		rules:        cfg.Rules(),
		nick:         NewNicknameCache(),
		report:       NewReport(),
		handbookByID: make(map[string]*models.HandbookEntry),
		shortNames:   make(map[string]string),
		currencySet:  toSet(cfg.CurrencyTpls),
		itemSet:      toSet(cfg.ItemTpls),
		changed:      make(map[string]Category),
	}

	if db.Handbook != nil {
		for _, h := range db.Handbook.Items {
			if h != nil && h.ID != "" {
				p.handbookByID[h.ID] = h
			}
		}
	}

	for cat, r := range p.rules {
		p.report.Multipliers[cat] = r.Multiplier
	}
	return p
}

// labels maps categories to their display labels.
func (p *pass) labels() map[Category]string {
	labels := make(map[Category]string, len(p.rules))
	for cat, r := range p.rules {
		labels[cat] = r.Label
	}
	return labels
}

// shortName resolves a template's display short name from the English
// locale table, memoized for the run. Falls back to the template ID.
func (p *pass) shortName(tpl string) string {
	if tpl == "" {
		return tpl
	}
	if name, ok := p.shortNames[tpl]; ok {
		return name
	}
	name := tpl
	if locale, ok := p.db.Locales["en"]; ok {
		if sn, ok := locale.ShortName(tpl); ok && sn != "" {
			name = sn
		}
	}
	p.shortNames[tpl] = name
	return name
}
