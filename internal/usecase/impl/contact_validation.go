package impl

import (
	"fmt"
	"regexp"
	"strings"

	"rolodex/internal/domain/entity"
	domainerrors "rolodex/internal/domain/errors"
	"rolodex/internal/domain/patch"
	"rolodex/internal/usecase"
)

// emailPattern is a light format check; the definitive uniqueness rule lives
// in the store.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// fieldErrors collects field path + reason pairs, so a rejected save names
// everything wrong with the request at once.
type fieldErrors []string

func (fe *fieldErrors) add(field, reason string) {
	*fe = append(*fe, fmt.Sprintf("%s: %s", field, reason))
}

func (fe fieldErrors) toError() error {
	if len(fe) == 0 {
		return nil
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(fe, "; "))
}

// buildContactPatch validates and normalizes the sparse input into a write
// patch. forCreate tightens the required-field rules. No store access happens
// before this returns nil error.
func buildContactPatch(input *usecase.SaveContactInput, forCreate bool) (*entity.ContactPatch, error) {
	var fe fieldErrors

	p := &entity.ContactPatch{
		FullName:         normalizeString(input.FullName),
		Email:            normalizeString(input.Email),
		Phone:            normalizeString(input.Phone),
		Company:          normalizeString(input.Company),
		JobTitle:         normalizeString(input.JobTitle),
		Street:           normalizeString(input.Street),
		City:             normalizeString(input.City),
		PostalCode:       normalizeString(input.PostalCode),
		Country:          normalizeString(input.Country),
		Website:          normalizeString(input.Website),
		ProfileImage:     normalizeString(input.ProfileImage),
		Notes:            normalizeString(input.Notes),
		Tags:             normalizeSlice(input.Tags),
		SocialHandles:    normalizeSlice(input.SocialHandles),
		Source:           normalizeString(input.Source),
		LastContactedAt:  input.LastContactedAt,
		EnrichmentStatus: normalizeString(input.EnrichmentStatus),
		EnrichmentData:   input.EnrichmentData,
	}

	// full_name is the only required contact field: a create must carry it
	// and an update may not clear it.
	if forCreate && !p.FullName.Present() {
		fe.add("full_name", "is required")
	}
	if p.FullName.Present() {
		if _, ok := p.FullName.Value(); !ok {
			fe.add("full_name", "must not be empty")
		}
	}

	if v, ok := p.Email.Value(); ok {
		lowered := strings.ToLower(v)
		if !emailPattern.MatchString(lowered) {
			fe.add("email", "is not a valid email address")
		} else {
			p.Email.Set(lowered)
		}
	}

	if v, ok := p.Website.Value(); ok {
		p.Website.Set(normalizeWebsite(v))
	}

	if err := fe.toError(); err != nil {
		return nil, err
	}

	return p, nil
}

// normalizeString trims a present value and folds the empty result into an
// explicit null. Absent fields pass through unchanged.
func normalizeString(f patch.Field[string]) patch.Field[string] {
	v, ok := f.Value()
	if !ok {
		return f
	}

	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		f.SetNull()
	} else {
		f.Set(trimmed)
	}

	return f
}

// normalizeSlice trims entries and drops the ones that end up empty. A
// present null stays null; the gateway stores it as the empty list.
func normalizeSlice(f patch.Field[[]string]) patch.Field[[]string] {
	v, ok := f.Value()
	if !ok {
		return f
	}

	cleaned := make([]string, 0, len(v))
	for _, item := range v {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	f.Set(cleaned)

	return f
}

// normalizeWebsite prepends https:// when the value carries no scheme, so
// stored websites are always openable links.
func normalizeWebsite(website string) string {
	if strings.Contains(website, "://") {
		return website
	}

	return "https://" + website
}
