package checks

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"pharmacist/core/loader"
)

// RequiredFiles lists the database files the rebalancing pass needs to do
// anything useful. Only the item templates are strictly mandatory for a run;
// the rest degrade individual features when absent.
var RequiredFiles = []string{
	"templates/items.json",
	"templates/handbook.json",
	"hideout/production.json",
	"locales/global/en.json",
}

// CheckFiles returns the required database files missing from the source.
func CheckFiles(ctx context.Context, src loader.Source) ([]string, error) {
	var missing []string

	for _, name := range RequiredFiles {
		if _, err := src.Read(ctx, name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				missing = append(missing, name)
				continue
			}
			return nil, fmt.Errorf("failed to check %s: %w", name, err)
		}
	}

	return missing, nil
}
