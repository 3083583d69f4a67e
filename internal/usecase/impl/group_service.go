package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "rolodex/internal/delivery/context"
	"rolodex/internal/domain/entity"
	domainerrors "rolodex/internal/domain/errors"
	"rolodex/internal/domain/repository"
	"rolodex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// groupService implements the GroupUsecase interface.
type groupService struct {
	contactRepo repository.ContactRepository
	groupRepo   repository.GroupRepository
	logger      *slog.Logger
}

// GroupServiceParams holds dependencies for GroupService, injected by Fx.
type GroupServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	GroupRepo   repository.GroupRepository
	Logger      *slog.Logger
}

// NewGroupService is the constructor for groupService.
func NewGroupService(params GroupServiceParams) usecase.GroupUsecase {
	return &groupService{
		contactRepo: params.ContactRepo,
		groupRepo:   params.GroupRepo,
		logger:      params.Logger,
	}
}

func (srv *groupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create makes a new, empty group for the owner.
func (srv *groupService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateGroupInput) (*entity.Group, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name: must not be empty")
	}

	group := &entity.Group{
		OwnerID: ownerID,
		Name:    name,
	}

	if err := srv.groupRepo.Create(ctx, group); err != nil {
		return nil, errors.Wrap(err, "failed to create group")
	}

	srv.log(ctx).Debug("Group created", slog.String("group_id", group.ID.String()))

	return group, nil
}

// List returns the owner's groups, newest first.
func (srv *groupService) List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Group, error) {
	groups, err := srv.groupRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list groups")
	}

	return groups, nil
}

// Delete removes a group and its memberships. Member contacts survive.
func (srv *groupService) Delete(ctx context.Context, ownerID, groupID uuid.UUID) error {
	if err := srv.groupRepo.Delete(ctx, groupID, ownerID); err != nil {
		return mapGroupError(err, "failed to delete group")
	}

	return nil
}

// AddContact places an owner's contact into an owner's group. Both sides are
// ownership-checked; a foreign group or contact reads as missing.
func (srv *groupService) AddContact(ctx context.Context, ownerID, groupID, contactID uuid.UUID) error {
	if _, err := srv.groupRepo.FindByID(ctx, groupID, ownerID); err != nil {
		return mapGroupError(err, "failed to resolve group")
	}
	if _, err := srv.contactRepo.FindByID(ctx, contactID, ownerID); err != nil {
		return mapContactError(err, "failed to resolve contact")
	}

	err := srv.groupRepo.AddMember(ctx, groupID, contactID)
	if err != nil {
		// Adding an existing member is idempotent.
		if errors.Is(err, repository.ErrMemberExists) {
			return nil
		}

		return mapGroupError(err, "failed to add contact to group")
	}

	return nil
}

// RemoveContact removes a contact from a group.
func (srv *groupService) RemoveContact(ctx context.Context, ownerID, groupID, contactID uuid.UUID) error {
	if _, err := srv.groupRepo.FindByID(ctx, groupID, ownerID); err != nil {
		return mapGroupError(err, "failed to resolve group")
	}

	err := srv.groupRepo.RemoveMember(ctx, groupID, contactID)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("contact is not a member of the group")
		}

		return mapGroupError(err, "failed to remove contact from group")
	}

	return nil
}
