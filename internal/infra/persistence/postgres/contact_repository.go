package postgres

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"rolodex/internal/domain/entity"
	domainerrors "rolodex/internal/domain/errors"
	"rolodex/internal/domain/patch"
	"rolodex/internal/domain/repository"
	"rolodex/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// contactRepository implements the domain.ContactRepository interface using GORM.
//
// Writes go through presence-aware column maps rather than whole-struct saves:
// a column only appears in the write set when the caller's patch carried the
// field, which is what keeps "omitted" and "sent as null" distinct all the way
// to the UPDATE statement.
type contactRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB, logger *slog.Logger) repository.ContactRepository {
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new contact built from the patch. Identifier and
// timestamps are assigned here so the insert stays a single statement even on
// the map-based write path.
func (repo *contactRepository) Create(ctx context.Context, ownerID uuid.UUID, p *entity.ContactPatch) (*entity.Contact, error) {
	now := time.Now().UTC()

	set := defaultContactColumns()
	applyContactPatch(set, p)
	set["id"] = uuid.New()
	set["owner_id"] = ownerID
	set["created_at"] = now
	set["updated_at"] = now

	err := repo.execWithColumnFallback(ctx, "create", set, func(cols map[string]any) error {
		return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return tx.Model(&model.ContactModel{}).Create(cols).Error
		})
	})
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.ErrEmailConflict.WrapMessage("duplicate contact email for owner")
		}
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("missing required contact information")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create contact")
	}

	return contactFromColumns(set), nil
}

// FindByID retrieves a contact scoped by owner. A missing id and a foreign
// owner are the same not-found outcome.
func (repo *contactRepository) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.Contact, error) {
	var contactM model.ContactModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&contactM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact by id")
	}

	return toContactDomain(&contactM), nil
}

// List returns the owner's contacts matching the filter, newest-created first.
func (repo *contactRepository) List(ctx context.Context, ownerID uuid.UUID, filter entity.ContactFilter) ([]*entity.Contact, error) {
	// An empty candidate set short-circuits: the group has no members.
	if filter.ContactIDs != nil && len(filter.ContactIDs) == 0 {
		return []*entity.Contact{}, nil
	}

	query := repo.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Where("owner_id = ?", ownerID)

	if search := strings.TrimSpace(filter.Search); search != "" {
		needle := "%" + escapeLike(strings.ToLower(search)) + "%"
		query = query.Where("(LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?)", needle, needle)
	}

	if filter.ContactIDs != nil {
		query = query.Where("id IN ?", filter.ContactIDs)
	}

	var contactModels []*model.ContactModel
	if err := query.Order("created_at DESC").Find(&contactModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}

	contacts := make([]*entity.Contact, 0, len(contactModels))
	for _, contactM := range contactModels {
		contacts = append(contacts, toContactDomain(contactM))
	}

	return contacts, nil
}

// Update applies the sparse patch to one owned contact and returns the stored
// record. Concurrent updates race at the row and resolve last-writer-wins; the
// single UPDATE ... RETURNING statement is both the atomicity boundary and the
// read-back, so the operation is one store round trip.
func (repo *contactRepository) Update(ctx context.Context, id, ownerID uuid.UUID, p *entity.ContactPatch) (*entity.Contact, error) {
	set := make(map[string]any)
	applyContactPatch(set, p)
	set["updated_at"] = time.Now().UTC()

	var contactM model.ContactModel
	var rowsAffected int64
	err := repo.execWithColumnFallback(ctx, "update", set, func(cols map[string]any) error {
		return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			contactM = model.ContactModel{}
			result := updateContactStatement(tx, &contactM, id, ownerID, cols)
			rowsAffected = result.RowsAffected

			return result.Error
		})
	})
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.ErrEmailConflict.WrapMessage("duplicate contact email for owner")
		}
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("missing required contact information")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update contact")
	}

	if rowsAffected == 0 {
		return nil, repository.ErrContactNotFound
	}

	return toContactDomain(&contactM), nil
}

// updateContactStatement is the single UPDATE ... RETURNING statement behind
// Update: the RETURNING clause scans the stored row into dest, so no
// follow-up SELECT is needed.
func updateContactStatement(tx *gorm.DB, dest *model.ContactModel, id, ownerID uuid.UUID, cols map[string]any) *gorm.DB {
	return tx.Model(dest).
		Clauses(clause.Returning{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(cols)
}

// Delete hard-deletes one owned contact.
func (repo *contactRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.ContactModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete contact")
	}

	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

// CountByOwner returns the owner's total contact count.
func (repo *contactRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count contacts")
	}

	return count, nil
}

// ExistsByOwnerAndEmail reports whether another contact of the owner already
// uses the email. Emails are compared case-insensitively.
func (repo *contactRepository) ExistsByOwnerAndEmail(ctx context.Context, ownerID uuid.UUID, email string, excludeID *uuid.UUID) (bool, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Where("owner_id = ? AND LOWER(email) = LOWER(?)", ownerID, email)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check contact email uniqueness")
	}

	return count > 0, nil
}

// execWithColumnFallback runs the write, and on an undefined-column failure
// removes exactly that column from the write set and retries. The loop is
// bounded by the write-set size, so it always terminates. Every dropped field
// is logged: this trades one field for the rest of the write, it must never
// be silent.
//
// Each exec must isolate its own statement, a nested gorm Transaction does
// that via SAVEPOINT when a caller transaction is already open. Without it
// the first rejected statement aborts the enclosing transaction and Postgres
// answers every retry with 25P02 instead of 42703.
//
// TODO: remove once contacts schema migrations are guaranteed to run before
// deploys; a fully migrated store never takes this path.
func (repo *contactRepository) execWithColumnFallback(ctx context.Context, operation string, set map[string]any, exec func(map[string]any) error) error {
	for remaining := len(set); ; remaining-- {
		err := exec(set)
		if err == nil || remaining <= 0 {
			return err
		}

		column, ok := undefinedColumn(err)
		if !ok {
			return err
		}
		if _, present := set[column]; !present {
			return err
		}

		delete(set, column)
		repo.logger.WarnContext(ctx, "dropping field missing from store schema",
			slog.String("operation", operation),
			slog.String("column", column),
		)
	}
}

// escapeLike escapes LIKE wildcards in user-supplied search text.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return replacer.Replace(s)
}

// --- Write-set construction ---

// defaultContactColumns is the create-time baseline: optional scalars null,
// collections the empty JSON array.
func defaultContactColumns() map[string]any {
	return map[string]any{
		"email":             nil,
		"phone":             nil,
		"company":           nil,
		"job_title":         nil,
		"street":            nil,
		"city":              nil,
		"postal_code":       nil,
		"country":           nil,
		"website":           nil,
		"profile_image":     nil,
		"notes":             nil,
		"tags":              emptyJSONArray,
		"social_handles":    emptyJSONArray,
		"source":            nil,
		"last_contacted_at": nil,
		"enrichment_status": nil,
		"enrichment_data":   nil,
	}
}

const emptyJSONArray = "[]"

// applyContactPatch folds the patch into the column map. Only present fields
// land in the map; explicit nulls become NULL for scalars and the empty array
// for collections.
func applyContactPatch(set map[string]any, p *entity.ContactPatch) {
	applyStringColumn(set, "full_name", p.FullName)
	applyStringColumn(set, "email", p.Email)
	applyStringColumn(set, "phone", p.Phone)
	applyStringColumn(set, "company", p.Company)
	applyStringColumn(set, "job_title", p.JobTitle)
	applyStringColumn(set, "street", p.Street)
	applyStringColumn(set, "city", p.City)
	applyStringColumn(set, "postal_code", p.PostalCode)
	applyStringColumn(set, "country", p.Country)
	applyStringColumn(set, "website", p.Website)
	applyStringColumn(set, "profile_image", p.ProfileImage)
	applyStringColumn(set, "notes", p.Notes)
	applyStringColumn(set, "source", p.Source)
	applyStringColumn(set, "enrichment_status", p.EnrichmentStatus)
	applySliceColumn(set, "tags", p.Tags)
	applySliceColumn(set, "social_handles", p.SocialHandles)

	if p.LastContactedAt.Present() {
		if v, ok := p.LastContactedAt.Value(); ok {
			set["last_contacted_at"] = v
		} else {
			set["last_contacted_at"] = nil
		}
	}

	if p.EnrichmentData.Present() {
		if v, ok := p.EnrichmentData.Value(); ok {
			set["enrichment_data"] = string(v)
		} else {
			set["enrichment_data"] = nil
		}
	}
}

func applyStringColumn(set map[string]any, column string, f patch.Field[string]) {
	if !f.Present() {
		return
	}

	if v, ok := f.Value(); ok {
		set[column] = v
	} else {
		set[column] = nil
	}
}

// applySliceColumn writes collections, which never store NULL: an explicit
// null clears to the empty array.
func applySliceColumn(set map[string]any, column string, f patch.Field[[]string]) {
	if !f.Present() {
		return
	}

	v, _ := f.Value()
	set[column] = encodeStringSlice(v)
}

func encodeStringSlice(values []string) string {
	if values == nil {
		values = []string{}
	}

	encoded, err := json.Marshal(values)
	if err != nil {
		return emptyJSONArray
	}

	return string(encoded)
}

func decodeStringSlice(encoded string) []string {
	if encoded == "" {
		return []string{}
	}

	var values []string
	if err := json.Unmarshal([]byte(encoded), &values); err != nil || values == nil {
		return []string{}
	}

	return values
}

// --- Mapper functions ---

// toContactDomain converts a GORM ContactModel to a domain Contact entity.
func toContactDomain(data *model.ContactModel) *entity.Contact {
	if data == nil {
		return nil
	}

	contact := &entity.Contact{
		ID:               data.ID,
		OwnerID:          data.OwnerID,
		FullName:         data.FullName,
		Email:            data.Email,
		Phone:            data.Phone,
		Company:          data.Company,
		JobTitle:         data.JobTitle,
		Street:           data.Street,
		City:             data.City,
		PostalCode:       data.PostalCode,
		Country:          data.Country,
		Website:          data.Website,
		ProfileImage:     data.ProfileImage,
		Notes:            data.Notes,
		Tags:             decodeStringSlice(data.Tags),
		SocialHandles:    decodeStringSlice(data.SocialHandles),
		Source:           data.Source,
		LastContactedAt:  data.LastContactedAt,
		EnrichmentStatus: data.EnrichmentStatus,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}

	if data.EnrichmentData != nil {
		contact.EnrichmentData = json.RawMessage(*data.EnrichmentData)
	}

	return contact
}

// contactFromColumns rebuilds the created entity from the final write set, so
// create stays a single round trip and columns dropped by the schema fallback
// come back as absent rather than phantom values.
func contactFromColumns(set map[string]any) *entity.Contact {
	contact := &entity.Contact{
		Tags:          []string{},
		SocialHandles: []string{},
	}

	if id, ok := set["id"].(uuid.UUID); ok {
		contact.ID = id
	}
	if ownerID, ok := set["owner_id"].(uuid.UUID); ok {
		contact.OwnerID = ownerID
	}
	if fullName := columnString(set, "full_name"); fullName != nil {
		contact.FullName = *fullName
	}

	contact.Email = columnString(set, "email")
	contact.Phone = columnString(set, "phone")
	contact.Company = columnString(set, "company")
	contact.JobTitle = columnString(set, "job_title")
	contact.Street = columnString(set, "street")
	contact.City = columnString(set, "city")
	contact.PostalCode = columnString(set, "postal_code")
	contact.Country = columnString(set, "country")
	contact.Website = columnString(set, "website")
	contact.ProfileImage = columnString(set, "profile_image")
	contact.Notes = columnString(set, "notes")
	contact.Source = columnString(set, "source")
	contact.EnrichmentStatus = columnString(set, "enrichment_status")

	if tags := columnString(set, "tags"); tags != nil {
		contact.Tags = decodeStringSlice(*tags)
	}
	if handles := columnString(set, "social_handles"); handles != nil {
		contact.SocialHandles = decodeStringSlice(*handles)
	}
	if enrichment := columnString(set, "enrichment_data"); enrichment != nil {
		contact.EnrichmentData = json.RawMessage(*enrichment)
	}

	if v, ok := set["last_contacted_at"].(time.Time); ok {
		contact.LastContactedAt = &v
	}
	if v, ok := set["created_at"].(time.Time); ok {
		contact.CreatedAt = v
	}
	if v, ok := set["updated_at"].(time.Time); ok {
		contact.UpdatedAt = v
	}

	return contact
}

func columnString(set map[string]any, column string) *string {
	v, ok := set[column]
	if !ok || v == nil {
		return nil
	}

	s, ok := v.(string)
	if !ok {
		return nil
	}

	return &s
}
