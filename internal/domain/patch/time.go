package patch

import (
	"encoding/json"
	"strings"
	"time"
)

// timeLayouts are the accepted date encodings, tried in order.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// Time is a tri-state timestamp field with lenient parsing: an empty or
// unparseable string coerces to an explicit null instead of failing the
// operation. Operations that require the field reject the null afterwards.
type Time struct {
	present bool
	null    bool
	value   time.Time
}

// TimeOf returns a present Time holding v.
func TimeOf(v time.Time) Time {
	return Time{present: true, value: v}
}

// NullTime returns a present Time carrying an explicit null.
func NullTime() Time {
	return Time{present: true, null: true}
}

// Present reports whether the caller supplied the field at all.
func (t Time) Present() bool {
	return t.present
}

// IsNull reports whether the field resolved to null, either explicitly or
// through coercion of an invalid value.
func (t Time) IsNull() bool {
	return t.present && t.null
}

// Value returns the carried timestamp and whether a non-null value is present.
func (t Time) Value() (time.Time, bool) {
	if !t.present || t.null {
		return time.Time{}, false
	}

	return t.value, true
}

// UnmarshalJSON accepts RFC 3339 timestamps and bare dates. Invalid or empty
// input becomes null rather than an error.
func (t *Time) UnmarshalJSON(data []byte) error {
	t.present = true

	raw := string(data)
	if raw == "null" {
		t.null = true

		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Non-string date input coerces to null.
		t.null = true

		return nil
	}

	s = strings.TrimSpace(s)
	if s == "" {
		t.null = true

		return nil
	}

	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.value = parsed.UTC()

			return nil
		}
	}

	t.null = true

	return nil
}

// MarshalJSON renders null for absent or null fields and RFC 3339 otherwise.
func (t Time) MarshalJSON() ([]byte, error) {
	if !t.present || t.null {
		return []byte("null"), nil
	}

	return json.Marshal(t.value.Format(time.RFC3339Nano))
}
