package impl

import (
	"testing"

	"rolodex/internal/domain/patch"
	"rolodex/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildContactPatch_WebsiteNormalization(t *testing.T) {
	tests := []struct {
		name     string
		website  string
		expected string
	}{
		{"bare domain", "example.com", "https://example.com"},
		{"http kept", "http://example.com", "http://example.com"},
		{"https kept", "https://example.com", "https://example.com"},
		{"other scheme kept", "ftp://example.com", "ftp://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := &usecase.SaveContactInput{
				FullName: patch.Of("Ada"),
				Website:  patch.Of(tt.website),
			}

			p, err := buildContactPatch(input, true)
			require.NoError(t, err)

			website, ok := p.Website.Value()
			require.True(t, ok)
			assert.Equal(t, tt.expected, website)
		})
	}
}

func TestBuildContactPatch_SliceNormalization(t *testing.T) {
	input := &usecase.SaveContactInput{
		FullName: patch.Of("Ada"),
		Tags:     patch.Of([]string{" lead ", "", "vip"}),
	}

	p, err := buildContactPatch(input, true)
	require.NoError(t, err)

	tags, ok := p.Tags.Value()
	require.True(t, ok)
	assert.Equal(t, []string{"lead", "vip"}, tags)
}

func TestBuildContactPatch_AbsentFieldsStayAbsent(t *testing.T) {
	input := &usecase.SaveContactInput{
		FullName: patch.Of("Ada"),
	}

	p, err := buildContactPatch(input, true)
	require.NoError(t, err)

	assert.False(t, p.Email.Present())
	assert.False(t, p.Tags.Present())
	assert.False(t, p.Notes.Present())
}

func TestBuildContactPatch_UpdateCannotClearFullName(t *testing.T) {
	input := &usecase.SaveContactInput{
		FullName: patch.Null[string](),
	}

	_, err := buildContactPatch(input, false)
	require.Error(t, err)
}

func TestBuildContactPatch_CollectsAllFieldErrors(t *testing.T) {
	input := &usecase.SaveContactInput{
		Email: patch.Of("not-an-email"),
	}

	_, err := buildContactPatch(input, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Input validation failed")
}
