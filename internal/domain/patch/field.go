// Package patch implements sparse-patch inputs with per-field presence
// tracking. A plain struct with pointer fields cannot tell "field omitted"
// from "field sent as null", and that distinction drives the partial-update
// semantics: omitted means leave unchanged, null means clear.
package patch

import "encoding/json"

// Field is a tri-state JSON value: absent, explicit null, or a value.
// The zero Field is absent. Presence is recorded during unmarshalling and
// survives through the validation and persistence layers.
type Field[T any] struct {
	present bool
	null    bool
	value   T
}

// Of returns a present Field holding v.
func Of[T any](v T) Field[T] {
	return Field[T]{present: true, value: v}
}

// Null returns a present Field carrying an explicit null.
func Null[T any]() Field[T] {
	return Field[T]{present: true, null: true}
}

// Present reports whether the caller supplied the field at all.
func (f Field[T]) Present() bool {
	return f.present
}

// IsNull reports whether the caller explicitly sent null.
func (f Field[T]) IsNull() bool {
	return f.present && f.null
}

// Value returns the carried value and whether a non-null value is present.
func (f Field[T]) Value() (T, bool) {
	if !f.present || f.null {
		var zero T

		return zero, false
	}

	return f.value, true
}

// Get returns the carried value, or the zero value when absent or null.
func (f Field[T]) Get() T {
	return f.value
}

// Set replaces the carried value, keeping the field present and non-null.
// Used by normalization (trimming, lowercasing, scheme insertion).
func (f *Field[T]) Set(v T) {
	f.present = true
	f.null = false
	f.value = v
}

// SetNull marks the field as an explicit null.
func (f *Field[T]) SetNull() {
	f.present = true
	f.null = true
	var zero T
	f.value = zero
}

// UnmarshalJSON records presence: this method only runs when the key exists
// in the payload, so a decoded Field is always present.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.present = true

	if string(data) == "null" {
		f.null = true

		return nil
	}

	return json.Unmarshal(data, &f.value)
}

// MarshalJSON renders null for absent or null fields and the value otherwise.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.present || f.null {
		return []byte("null"), nil
	}

	return json.Marshal(f.value)
}
