// Package pharmacist implements the consumable rebalancing pass.
//
// The pass runs once against a loaded game database and mutates it in place:
//
//   - Items whose parent base class marks them as stimulants, medkits,
//     general medical items or drugs get their usage/capacity attribute
//     (MaxHpResource) multiplied by a configurable per-category factor, or
//     pinned to a large sentinel in "infinite" mode.
//   - Handbook prices of rescaled items are multiplied by the exact same
//     factor.
//   - Every trader barter requirement and hideout crafting recipe that
//     requires a rescaled item has its required count multiplied by that
//     same factor, so the cost per use stays constant.
//
// # Consistency
//
// A template is assigned to at most one category per run, and its uses,
// price and requirement counts all scale by one shared integer multiplier.
// The heavy lifting is a reverse index built in a single scan over all
// traders (see BuildBarterIndex) that maps each template to every barter
// requirement referencing it, with container handles that are re-verified
// before writing.
//
// # Non-idempotence
//
// Running the pass twice compounds the multipliers. That is by design: the
// pass is meant to run exactly once per freshly loaded database.
package pharmacist
