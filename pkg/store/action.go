package store

const (
	// ActionInit is dispatched once by New before the store is returned.
	ActionInit = "@@INIT"
	// ActionRename renames the store instead of reaching the reducer.
	ActionRename = "@@RENAME_STORE"
	// RenameField is the payload field carrying the new store name.
	RenameField = "name"
)

// Action describes an intended state change.
type Action struct {
	// Type is the discriminator tag.
	Type string
	// Payload carries auxiliary fields. It may be nil.
	Payload map[string]any
}

// RenameAction returns a well-formed rename action.
func RenameAction(name string) Action {
	return Action{Type: ActionRename, Payload: map[string]any{RenameField: name}}
}

// With returns a copy of the action with key set to value.
// The receiver's payload is not modified.
func (a Action) With(key string, value any) Action {
	payload := make(map[string]any, len(a.Payload)+1)
	for k, v := range a.Payload {
		payload[k] = v
	}
	payload[key] = value
	return Action{Type: a.Type, Payload: payload}
}

// Field returns a payload field.
func (a Action) Field(key string) (any, bool) {
	v, ok := a.Payload[key]
	return v, ok
}

// String returns a payload field when it holds a string.
func (a Action) String(key string) (string, bool) {
	v, ok := a.Payload[key].(string)
	return v, ok
}

// renameTarget reports the new name carried by a well-formed rename action.
func (a Action) renameTarget() (string, bool) {
	if a.Type != ActionRename {
		return "", false
	}
	return a.String(RenameField)
}
