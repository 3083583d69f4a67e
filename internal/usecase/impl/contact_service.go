// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "rolodex/internal/delivery/context"
	"rolodex/internal/domain/entity"
	domainerrors "rolodex/internal/domain/errors"
	"rolodex/internal/domain/repository"
	"rolodex/internal/domain/service"
	"rolodex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	txManager     repository.TransactionManager
	contactRepo   repository.ContactRepository
	groupRepo     repository.GroupRepository
	publisher     service.EventPublisher
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ContactRepo   repository.ContactRepository
	GroupRepo     repository.GroupRepository
	Publisher     service.EventPublisher
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewContactService is the constructor for contactService. It receives all dependencies as interfaces.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		txManager:     params.TxManager,
		contactRepo:   params.ContactRepo,
		groupRepo:     params.GroupRepo,
		publisher:     params.Publisher,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the owner's contacts, newest first. A group filter resolves
// through an ownership-checked group lookup first; a foreign group id behaves
// like a missing one.
func (srv *contactService) List(ctx context.Context, ownerID uuid.UUID, input *usecase.ListContactsInput) ([]*entity.Contact, error) {
	filter := entity.ContactFilter{Search: input.Search}

	if input.GroupID != nil {
		if _, err := srv.groupRepo.FindByID(ctx, *input.GroupID, ownerID); err != nil {
			return nil, mapGroupError(err, "failed to resolve group filter")
		}

		memberIDs, err := srv.groupRepo.MemberContactIDs(ctx, *input.GroupID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load group members")
		}

		// Non-nil even when empty: an empty group lists no contacts.
		if memberIDs == nil {
			memberIDs = []uuid.UUID{}
		}
		filter.ContactIDs = memberIDs
	}

	contacts, err := srv.contactRepo.List(ctx, ownerID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}

	return contacts, nil
}

// GetByID returns a single owned contact.
func (srv *contactService) GetByID(ctx context.Context, ownerID, contactID uuid.UUID) (*entity.Contact, error) {
	contact, err := srv.contactRepo.FindByID(ctx, contactID, ownerID)
	if err != nil {
		return nil, mapContactError(err, "failed to get contact")
	}

	return contact, nil
}

// Save creates or updates a contact from a sparse write set. The email
// uniqueness pre-check and the write share one transaction; the store's
// unique index closes the remaining race.
func (srv *contactService) Save(ctx context.Context, ownerID uuid.UUID, input *usecase.SaveContactInput) (*entity.Contact, error) {
	forCreate := input.ID == nil

	p, err := buildContactPatch(input, forCreate)
	if err != nil {
		return nil, err
	}

	var saved *entity.Contact
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		contactRepo := repoFactory.ContactRepo()

		if email, ok := p.Email.Value(); ok {
			exists, err := contactRepo.ExistsByOwnerAndEmail(ctx, ownerID, email, input.ID)
			if err != nil {
				return errors.Wrap(err, "failed to check contact email uniqueness")
			}
			if exists {
				return domainerrors.ErrEmailConflict
			}
		}

		if forCreate {
			saved, err = contactRepo.Create(ctx, ownerID, p)
		} else {
			saved, err = contactRepo.Update(ctx, *input.ID, ownerID, p)
		}
		if err != nil {
			return mapContactError(err, "failed to save contact")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	eventType := service.ContactEventUpdated
	if forCreate {
		eventType = service.ContactEventCreated
	}
	srv.publishEvent(ctx, eventType, saved.ID, ownerID)

	return saved, nil
}

// Delete removes a contact.
func (srv *contactService) Delete(ctx context.Context, ownerID, contactID uuid.UUID) error {
	if err := srv.contactRepo.Delete(ctx, contactID, ownerID); err != nil {
		return mapContactError(err, "failed to delete contact")
	}

	srv.publishEvent(ctx, service.ContactEventDeleted, contactID, ownerID)

	return nil
}

// UpdateNotes replaces only the notes field of a contact. Null clears it.
func (srv *contactService) UpdateNotes(ctx context.Context, ownerID, contactID uuid.UUID, input *usecase.UpdateNotesInput) (*entity.Contact, error) {
	if !input.Notes.Present() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("notes: is required")
	}

	p := &entity.ContactPatch{Notes: normalizeString(input.Notes)}

	contact, err := srv.contactRepo.Update(ctx, contactID, ownerID, p)
	if err != nil {
		return nil, mapContactError(err, "failed to update contact notes")
	}

	srv.publishEvent(ctx, service.ContactEventUpdated, contactID, ownerID)

	return contact, nil
}

// Count returns the owner's total number of contacts.
func (srv *contactService) Count(ctx context.Context, ownerID uuid.UUID) (*usecase.ContactCountOutput, error) {
	count, err := srv.contactRepo.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count contacts")
	}

	return &usecase.ContactCountOutput{Count: count}, nil
}

// GenerateQRCode renders an owned contact as a vCard QR code PNG.
func (srv *contactService) GenerateQRCode(ctx context.Context, ownerID, contactID uuid.UUID) ([]byte, error) {
	contact, err := srv.contactRepo.FindByID(ctx, contactID, ownerID)
	if err != nil {
		return nil, mapContactError(err, "failed to load contact for QR code")
	}

	png, err := srv.qrcodeService.GenerateContactCard(contact)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate contact QR code")
	}

	return png, nil
}

// publishEvent emits a contact mutation event. Publishing is best-effort: a
// failure is logged and never fails the mutation that triggered it.
func (srv *contactService) publishEvent(ctx context.Context, eventType string, contactID, ownerID uuid.UUID) {
	event := &service.ContactEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventType:  eventType,
		ContactID:  contactID,
		OwnerID:    ownerID,
		OccurredAt: time.Now().UTC(),
	}

	if err := srv.publisher.PublishContactEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish contact event",
			slog.String("event_type", eventType),
			slog.String("contact_id", contactID.String()),
			slog.Any("error", err),
		)
	}
}

// mapContactError folds repository sentinels into the caller-facing taxonomy.
// AppErrors pass through untouched.
func mapContactError(err error, msg string) error {
	if errors.Is(err, repository.ErrContactNotFound) {
		return domainerrors.ErrNotFound.WrapMessage("contact not found")
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Wrap(err, msg)
}

// mapGroupError is the group-repository counterpart of mapContactError.
func mapGroupError(err error, msg string) error {
	if errors.Is(err, repository.ErrGroupNotFound) {
		return domainerrors.ErrNotFound.WrapMessage("group not found")
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Wrap(err, msg)
}
