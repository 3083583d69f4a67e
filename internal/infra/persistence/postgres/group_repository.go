package postgres

import (
	"context"
	"time"

	"rolodex/internal/domain/entity"
	domainerrors "rolodex/internal/domain/errors"
	"rolodex/internal/domain/repository"
	"rolodex/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// groupRepository implements the domain.GroupRepository interface using GORM.
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository is the constructor for groupRepository.
func NewGroupRepository(db *gorm.DB) repository.GroupRepository {
	return &groupRepository{db: db}
}

// Create persists a new group for the owner.
func (repo *groupRepository) Create(ctx context.Context, group *entity.Group) error {
	now := time.Now().UTC()
	groupM := &model.GroupModel{
		ID:        uuid.New(),
		OwnerID:   group.OwnerID,
		Name:      group.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.db.WithContext(ctx).Create(groupM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create group")
	}

	group.ID = groupM.ID
	group.CreatedAt = groupM.CreatedAt
	group.UpdatedAt = groupM.UpdatedAt

	return nil
}

// FindByID retrieves a group scoped by owner.
func (repo *groupRepository) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.Group, error) {
	var groupM model.GroupModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&groupM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find group by id")
	}

	return toGroupDomain(&groupM), nil
}

// ListByOwner returns all of the owner's groups, newest-created first.
func (repo *groupRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Group, error) {
	var groupModels []*model.GroupModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&groupModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list groups")
	}

	groups := make([]*entity.Group, 0, len(groupModels))
	for _, groupM := range groupModels {
		groups = append(groups, toGroupDomain(groupM))
	}

	return groups, nil
}

// Delete removes a group; membership rows cascade.
func (repo *groupRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.GroupModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete group")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGroupNotFound
	}

	return nil
}

// AddMember links a contact to a group.
func (repo *groupRepository) AddMember(ctx context.Context, groupID, contactID uuid.UUID) error {
	memberM := &model.GroupMemberModel{
		GroupID:   groupID,
		ContactID: contactID,
		CreatedAt: time.Now().UTC(),
	}

	if err := repo.db.WithContext(ctx).Create(memberM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrMemberExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrGroupNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add group member")
	}

	return nil
}

// RemoveMember unlinks a contact from a group.
func (repo *groupRepository) RemoveMember(ctx context.Context, groupID, contactID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("group_id = ? AND contact_id = ?", groupID, contactID).
		Delete(&model.GroupMemberModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove group member")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

// MemberContactIDs returns the contact ids in the group; an empty group
// yields an empty slice.
func (repo *groupRepository) MemberContactIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	contactIDs := []uuid.UUID{}
	err := repo.db.WithContext(ctx).
		Model(&model.GroupMemberModel{}).
		Where("group_id = ?", groupID).
		Pluck("contact_id", &contactIDs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve group members")
	}

	return contactIDs, nil
}

// toGroupDomain converts a GORM GroupModel to a domain Group entity.
func toGroupDomain(data *model.GroupModel) *entity.Group {
	if data == nil {
		return nil
	}

	return &entity.Group{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
