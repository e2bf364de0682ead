// Package integrity provides consistency checks for the game database.
//
// Unlike the 'pharmacist' package which mutates the database, this package
// only inspects it and reports what a rebalancing run would trip over.
//
// # Checks Provided
//
//   - Files: Verifies the presence of the database files the pass reads
//     (templates/items.json, templates/handbook.json, and so on).
//   - HandbookCoverage: Finds consumable templates without a handbook entry,
//     which would otherwise surface as errors during price synchronization.
//   - AssortReferences: Finds barter scheme entries keyed by offers that do
//     not exist and offers selling templates missing from the item table.
//   - RecipeProducts: Finds hideout recipes whose end product or item
//     requirements reference unknown templates.
package integrity
