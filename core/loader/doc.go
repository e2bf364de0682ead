// Package loader reads and writes the game database the rebalancing pass
// operates on.
//
// The database is a directory tree of JSON files (item templates, handbook,
// trader assorts, hideout production, locale tables). The Source interface
// abstracts where that tree lives: a local directory (DirSource) or an
// S3/MinIO bucket (BucketSource).
//
// Load produces one in-memory models.Database; Save writes back only the
// files the pass mutates. Missing optional files (handbook, traders,
// production, locales) degrade gracefully to an absent collection instead of
// failing the load.
package loader
