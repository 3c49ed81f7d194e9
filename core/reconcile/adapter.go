package reconcile

import "time"

// Adapter defines the model-specific part of a reconciliation.
// E is the persisted entity type, I the incoming item type.
type Adapter[E any, I any] interface {
	// Name returns the unique name of this adapter (e.g., "countries").
	Name() string

	// EntityKey returns the identity key of a persisted entity.
	EntityKey(entity *E) string

	// ItemKey returns the identity key of an incoming item.
	// An empty key means the item cannot be reconciled and is skipped.
	ItemKey(item I) string

	// Apply copies the item's mutable fields onto the entity.
	// Identity fields must be left untouched.
	Apply(entity *E, item I, now time.Time)

	// Create builds a new entity from the item, assigning a fresh identity.
	Create(item I, now time.Time) *E
}
