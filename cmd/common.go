package cmd

import (
	"fmt"
	"os"

	"pharmacist/core/config"
	"pharmacist/core/loader"
	"pharmacist/core/logger"
	"pharmacist/core/storage"

	"go.uber.org/zap"
)

// bootstrap loads the application config, builds the logger and resolves the
// database source. A storage client is only created when the source is a
// bucket.
func bootstrap() (*config.Config, *zap.Logger, loader.Source) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	var client storage.Client
	if cfg.Data.Bucket != "" {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
	}

	src, err := loader.NewSource(cfg.Data, client)
	if err != nil {
		logg.Fatal("Failed to resolve database source", zap.Error(err))
	}

	return cfg, logg, src
}
