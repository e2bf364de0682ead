package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"pharmacist/feature/pharmacist/models"
)

// Database file locations relative to the database root.
const (
	itemsFile      = "templates/items.json"
	handbookFile   = "templates/handbook.json"
	productionFile = "hideout/production.json"
	tradersDir     = "traders"
	assortFile     = "assort.json"
	traderBaseFile = "base.json"
)

func localeFile(lang string) string {
	return "locales/global/" + lang + ".json"
}

// Load reads the game database from a source. Item templates are mandatory;
// the handbook, traders, production recipes and locale table are each
// optional and simply absent from the result when their files don't exist.
func Load(ctx context.Context, src Source, locale string) (*models.Database, error) {
	db := &models.Database{
		Items:   make(map[string]*models.ItemDefinition),
		Traders: make(map[string]*models.Trader),
		Locales: make(map[string]models.LocaleTable),
	}

	data, err := src.Read(ctx, itemsFile)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	if err := json.Unmarshal(data, &db.Items); err != nil {
		return nil, fmt.Errorf("parse items: %w", err)
	}

	if data, err := src.Read(ctx, handbookFile); err == nil {
		db.Handbook = &models.Handbook{}
		if err := json.Unmarshal(data, db.Handbook); err != nil {
			return nil, fmt.Errorf("parse handbook: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load handbook: %w", err)
	}

	if data, err := src.Read(ctx, productionFile); err == nil {
		db.Production = &models.Production{}
		if err := json.Unmarshal(data, db.Production); err != nil {
			return nil, fmt.Errorf("parse production: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load production: %w", err)
	}

	if locale != "" {
		if data, err := src.Read(ctx, localeFile(locale)); err == nil {
			table := make(models.LocaleTable)
			if err := json.Unmarshal(data, &table); err != nil {
				return nil, fmt.Errorf("parse locale %s: %w", locale, err)
			}
			db.Locales[locale] = table
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load locale %s: %w", locale, err)
		}
	}

	if err := loadTraders(ctx, src, db); err != nil {
		return nil, err
	}

	return db, nil
}

func loadTraders(ctx context.Context, src Source, db *models.Database) error {
	ids, err := src.List(ctx, tradersDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("list traders: %w", err)
	}
	sort.Strings(ids)

	for _, id := range ids {
		trader := &models.Trader{ID: id}

		if data, err := src.Read(ctx, tradersDir+"/"+id+"/"+traderBaseFile); err == nil {
			trader.Base = &models.TraderBase{}
			if err := json.Unmarshal(data, trader.Base); err != nil {
				return fmt.Errorf("parse trader %s base: %w", id, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load trader %s base: %w", id, err)
		}

		if data, err := src.Read(ctx, tradersDir+"/"+id+"/"+assortFile); err == nil {
			trader.Assort = &models.Assort{}
			if err := json.Unmarshal(data, trader.Assort); err != nil {
				return fmt.Errorf("parse trader %s assort: %w", id, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load trader %s assort: %w", id, err)
		}

		if trader.Base == nil && trader.Assort == nil {
			continue
		}
		db.Traders[id] = trader
	}
	return nil
}

// Save writes back the collections the rebalancing pass mutates: item
// templates, the handbook, trader assorts and production recipes. Trader
// bases and locale tables are read-only and never rewritten.
func Save(ctx context.Context, src Source, db *models.Database) error {
	if err := writeJSON(ctx, src, itemsFile, db.Items); err != nil {
		return err
	}

	if db.Handbook != nil {
		if err := writeJSON(ctx, src, handbookFile, db.Handbook); err != nil {
			return err
		}
	}

	if db.Production != nil {
		if err := writeJSON(ctx, src, productionFile, db.Production); err != nil {
			return err
		}
	}

	ids := make([]string, 0, len(db.Traders))
	for id := range db.Traders {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		trader := db.Traders[id]
		if trader == nil || trader.Assort == nil {
			continue
		}
		if err := writeJSON(ctx, src, tradersDir+"/"+id+"/"+assortFile, trader.Assort); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(ctx context.Context, src Source, name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	if err := src.Write(ctx, name, data); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}
