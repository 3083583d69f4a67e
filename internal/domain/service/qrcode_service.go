package service

import "rolodex/internal/domain/entity"

// QRCodeService renders a contact as a scannable share card.
type QRCodeService interface {
	// GenerateContactCard encodes the contact as a vCard QR code PNG.
	GenerateContactCard(contact *entity.Contact) ([]byte, error)
}
