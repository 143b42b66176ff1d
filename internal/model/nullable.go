package model

import "encoding/json"

// Nullable is a patch field for a value that may be cleared. Set records
// that the key was present at all, so an explicit null (Set with a nil Value)
// is distinct from leaving the field out.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// Some returns a Nullable that sets the field to v.
func Some[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

// Null returns a Nullable that clears the field.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// UnmarshalJSON implements json.Unmarshaler. It is only called for keys that
// are present in the document.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// Get returns the value and whether one is present.
func (n Nullable[T]) Get() (T, bool) {
	if n.Value == nil {
		var zero T
		return zero, false
	}
	return *n.Value, true
}
