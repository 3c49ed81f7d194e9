package reconcile

// ActionType represents the type of planned write.
type ActionType string

const (
	// ActionInsert creates a new persisted entity.
	ActionInsert ActionType = "insert"
	// ActionUpdate mutates an existing persisted entity in place.
	ActionUpdate ActionType = "update"
)

// Action represents a planned write for one entity key.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the entity identity key.
	Key string `json:"key"`
}

// Plan contains the reconciliation decisions for one batch of incoming items.
// Inserts and Updates point at the entities to persist; updated entities are
// the same pointers held by the existing index, already mutated.
type Plan[E any] struct {
	// Inserts are new entities, in first-seen order.
	Inserts []*E `json:"-"`

	// Updates are existing entities touched by the batch, in first-seen order.
	Updates []*E `json:"-"`

	// Actions lists one action per distinct key, in first-seen order.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a reconcile plan.
type PlanSummary struct {
	// Incoming is the number of items handed to the engine.
	Incoming int `json:"incoming"`

	// Inserted counts planned inserts.
	Inserted int `json:"inserted"`

	// Updated counts planned updates.
	Updated int `json:"updated"`

	// Duplicates counts incoming items whose key was already seen in the batch.
	// The later item's values win.
	Duplicates int `json:"duplicates"`

	// Skipped counts incoming items without a usable key.
	Skipped int `json:"skipped"`
}
