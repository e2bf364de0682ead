// Package config handles application configuration loading.
//
// Configuration is sourced from environment variables with optional .env file
// support. Defaults are declared as struct tags on the partial config structs
// owned by each subsystem (data source, storage, logging) and bound into
// Viper via reflection, so every key is overridable through the environment
// (e.g. DATA_PATH, STORAGE_ENDPOINT, LOG_LEVEL).
//
// The rebalancing tuning file itself (multipliers, blacklists, barter scale
// mode) is not part of this package; see feature/pharmacist.LoadTuning.
package config
