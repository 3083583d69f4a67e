package impl

import (
	"context"
	"testing"

	"rolodex/internal/domain/entity"
	domainerrors "rolodex/internal/domain/errors"
	"rolodex/internal/domain/repository"
	mockRepo "rolodex/internal/mocks/repository"
	"rolodex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type groupServiceFixtures struct {
	service     usecase.GroupUsecase
	contactRepo *mockRepo.MockContactRepository
	groupRepo   *mockRepo.MockGroupRepository
}

func createTestGroupService(t *testing.T) groupServiceFixtures {
	t.Helper()

	contactRepo := &mockRepo.MockContactRepository{}
	groupRepo := &mockRepo.MockGroupRepository{}

	service := NewGroupService(GroupServiceParams{
		ContactRepo: contactRepo,
		GroupRepo:   groupRepo,
		Logger:      newDiscardLogger(),
	})

	return groupServiceFixtures{
		service:     service,
		contactRepo: contactRepo,
		groupRepo:   groupRepo,
	}
}

func TestGroupService_Create(t *testing.T) {
	fixtures := createTestGroupService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fixtures.groupRepo.On("Create", ctx, mock.MatchedBy(func(g *entity.Group) bool {
		return g.OwnerID == ownerID && g.Name == "Clients"
	})).Return(nil)

	group, err := fixtures.service.Create(ctx, ownerID, &usecase.CreateGroupInput{Name: "Clients"})

	require.NoError(t, err)
	assert.Equal(t, "Clients", group.Name)
}

func TestGroupService_AddContact(t *testing.T) {
	fixtures := createTestGroupService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	groupID := uuid.New()
	contactID := uuid.New()

	fixtures.groupRepo.On("FindByID", ctx, groupID, ownerID).
		Return(&entity.Group{ID: groupID, OwnerID: ownerID}, nil)
	fixtures.contactRepo.On("FindByID", ctx, contactID, ownerID).
		Return(&entity.Contact{ID: contactID, OwnerID: ownerID}, nil)
	fixtures.groupRepo.On("AddMember", ctx, groupID, contactID).Return(nil)

	require.NoError(t, fixtures.service.AddContact(ctx, ownerID, groupID, contactID))
	fixtures.groupRepo.AssertExpectations(t)
}

func TestGroupService_AddContact_Idempotent(t *testing.T) {
	fixtures := createTestGroupService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	groupID := uuid.New()
	contactID := uuid.New()

	fixtures.groupRepo.On("FindByID", ctx, groupID, ownerID).
		Return(&entity.Group{ID: groupID, OwnerID: ownerID}, nil)
	fixtures.contactRepo.On("FindByID", ctx, contactID, ownerID).
		Return(&entity.Contact{ID: contactID, OwnerID: ownerID}, nil)
	fixtures.groupRepo.On("AddMember", ctx, groupID, contactID).
		Return(repository.ErrMemberExists)

	require.NoError(t, fixtures.service.AddContact(ctx, ownerID, groupID, contactID))
}

func TestGroupService_AddContact_ForeignContactReadsAsMissing(t *testing.T) {
	fixtures := createTestGroupService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	groupID := uuid.New()
	contactID := uuid.New()

	fixtures.groupRepo.On("FindByID", ctx, groupID, ownerID).
		Return(&entity.Group{ID: groupID, OwnerID: ownerID}, nil)
	fixtures.contactRepo.On("FindByID", ctx, contactID, ownerID).
		Return(nil, repository.ErrContactNotFound)

	err := fixtures.service.AddContact(ctx, ownerID, groupID, contactID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	fixtures.groupRepo.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything, mock.Anything)
}

func TestGroupService_RemoveContact_NotMember(t *testing.T) {
	fixtures := createTestGroupService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	groupID := uuid.New()
	contactID := uuid.New()

	fixtures.groupRepo.On("FindByID", ctx, groupID, ownerID).
		Return(&entity.Group{ID: groupID, OwnerID: ownerID}, nil)
	fixtures.groupRepo.On("RemoveMember", ctx, groupID, contactID).
		Return(repository.ErrMemberNotFound)

	err := fixtures.service.RemoveContact(ctx, ownerID, groupID, contactID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestGroupService_Delete_NotFound(t *testing.T) {
	fixtures := createTestGroupService(t)
	ctx := context.Background()

	fixtures.groupRepo.On("Delete", ctx, mock.Anything, mock.Anything).
		Return(repository.ErrGroupNotFound)

	err := fixtures.service.Delete(ctx, uuid.New(), uuid.New())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
