// Package reconcile provides a generic engine that reconciles a batch of
// incoming items against the set of already persisted entities.
//
// The engine is built for full-refresh pipelines: the complete persisted set is
// loaded once and indexed in memory by identity key, then every incoming item is
// matched against that index instead of issuing one lookup per item.
//
// # Architecture
//
//  1. Adapter: model-specific logic that extracts identity keys, applies
//     incoming values to an existing entity and creates new entities.
//
//  2. Index: builds the map of persisted entities by key.
//
//  3. Reconcile: produces a Plan of inserts and updates. Existing entities are
//     updated in place so the caller can persist the very same values.
//
// # Semantics
//
//   - Every item with a non-empty key yields exactly one insert or update.
//   - Items repeating a key inside the batch are applied on top of the earlier
//     decision: later items win and the plan holds one write per key.
//   - Items without a key are counted as skipped.
//
// # Usage Example
//
//	adapter := countries.NewAdapter(idGenerator)
//	existing := reconcile.Index(adapter, persisted)
//	plan := reconcile.Reconcile(adapter, existing, merged, startedAt)
//
//	tx.Create(plan.Inserts)
//	for _, c := range plan.Updates { tx.Save(c) }
package reconcile
