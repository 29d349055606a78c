// Package fpr implements the full-page recommender core: given a pool of
// scored item collections, it assembles a ranked page of rows, where each
// row renders one collection as an ordered list of its top items.
//
// # Reading Guide
//
// Start with these files to understand the core:
//   - types.go: Collection, PositionMask, Row/Page — the shared data model
//   - topk.go: the top-K selector shared by both variants
//   - rowscore.go: position-weighted row value used to rank collections
//   - page_builder.go: Recommend, the basic greedy page builder (hard exclusion)
//   - ease_scorer.go + ease_page_builder.go: EaseFPR, the EASE-driven
//     variant (soft decaying penalty instead of hard exclusion)
//
// # Architecture
//
// Both variants share the same per-row shape: score every remaining
// collection under the current diversity state, pick the best by
// position-weighted value, emit its top-K items, fold those items into the
// diversity state, move to the next row. They differ only in what "score"
// and "diversity state" mean — a boolean seen-set for the basic variant, a
// continuous, cooling penalty vector for EaseFPR.
//
// # Concurrency
//
// Recommend is a pure function of its arguments. EaseFPR holds immutable
// state after construction (the EASE matrix, the per-collection item
// index sets, the configuration) and its Recommend method allocates all
// per-call scratch state fresh, so a single EaseFPR may be shared by many
// concurrent callers.
package fpr
