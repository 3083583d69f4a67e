package patch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  Field[string]   `json:"name"`
	Tags  Field[[]string] `json:"tags"`
	Count Field[int]      `json:"count"`
}

func TestField_AbsentNullValue(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantPresent bool
		wantNull    bool
		wantValue   string
	}{
		{"absent", `{}`, false, false, ""},
		{"explicit null", `{"name": null}`, true, true, ""},
		{"value", `{"name": "Ada"}`, true, false, "Ada"},
		{"empty string is a value", `{"name": ""}`, true, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))

			assert.Equal(t, tt.wantPresent, p.Name.Present())
			assert.Equal(t, tt.wantNull, p.Name.IsNull())

			v, ok := p.Name.Value()
			assert.Equal(t, tt.wantPresent && !tt.wantNull, ok)
			assert.Equal(t, tt.wantValue, v)
		})
	}
}

func TestField_SliceAndScalarTypes(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"tags": ["a", "b"], "count": 3}`), &p))

	tags, ok := p.Tags.Value()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, tags)

	count, ok := p.Count.Value()
	require.True(t, ok)
	assert.Equal(t, 3, count)
}

func TestField_InvalidValueErrors(t *testing.T) {
	var p payload
	err := json.Unmarshal([]byte(`{"count": "not-a-number"}`), &p)
	assert.Error(t, err)
}

func TestField_SetAndSetNull(t *testing.T) {
	var f Field[string]
	assert.False(t, f.Present())

	f.Set("value")
	assert.True(t, f.Present())
	assert.False(t, f.IsNull())

	f.SetNull()
	assert.True(t, f.Present())
	assert.True(t, f.IsNull())
	assert.Empty(t, f.Get())
}

func TestField_Constructors(t *testing.T) {
	of := Of("x")
	v, ok := of.Value()
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	null := Null[string]()
	assert.True(t, null.Present())
	assert.True(t, null.IsNull())
}

func TestField_MarshalRoundTrip(t *testing.T) {
	p := payload{Name: Of("Ada"), Tags: Null[[]string]()}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "Ada", "tags": null, "count": null}`, string(data))
}
