package reconcile

import "time"

// Index builds the in-memory lookup of persisted entities by identity key.
// Entities with an empty key are left out. When two entities share a key the
// first one wins, which keeps the result stable for a store that already
// enforces uniqueness.
func Index[E any, I any](adapter Adapter[E, I], entities []E) map[string]*E {
	index := make(map[string]*E, len(entities))
	for i := range entities {
		e := &entities[i]
		key := adapter.EntityKey(e)
		if key == "" {
			continue
		}
		if _, exists := index[key]; exists {
			continue
		}
		index[key] = e
	}
	return index
}

// Reconcile decides, for every incoming item, whether it updates an entity
// of the existing index or creates a new one.
//
// Existing entities are mutated in place through the adapter. Items repeating
// a key already seen in the batch are applied on top of the earlier decision
// (later items win), so the plan never holds two writes for one key.
func Reconcile[E any, I any](adapter Adapter[E, I], existing map[string]*E, incoming []I, now time.Time) *Plan[E] {
	plan := &Plan[E]{}
	plan.Summary.Incoming = len(incoming)

	seen := make(map[string]*E, len(incoming))

	for _, item := range incoming {
		key := adapter.ItemKey(item)
		if key == "" {
			plan.Summary.Skipped++
			continue
		}

		if entity, ok := seen[key]; ok {
			adapter.Apply(entity, item, now)
			plan.Summary.Duplicates++
			continue
		}

		if entity, ok := existing[key]; ok {
			adapter.Apply(entity, item, now)
			seen[key] = entity
			plan.Updates = append(plan.Updates, entity)
			plan.Actions = append(plan.Actions, Action{Type: ActionUpdate, Key: key})
			continue
		}

		entity := adapter.Create(item, now)
		seen[key] = entity
		plan.Inserts = append(plan.Inserts, entity)
		plan.Actions = append(plan.Actions, Action{Type: ActionInsert, Key: key})
	}

	plan.Summary.Inserted = len(plan.Inserts)
	plan.Summary.Updated = len(plan.Updates)
	return plan
}
