// Package qrcode renders contacts as scannable vCard QR codes.
package qrcode

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"

	"rolodex/internal/domain/entity"
	"rolodex/internal/domain/service"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateContactCard renders the contact as a vCard 3.0 QR code PNG.
func (s *qrcodeService) GenerateContactCard(contact *entity.Contact) ([]byte, error) {
	vcard := buildVCard(contact)

	qrCode, err := qrcode.New(vcard, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// buildVCard assembles a vCard 3.0 document. Optional fields are skipped
// when absent rather than emitted empty.
func buildVCard(contact *entity.Contact) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCARD\r\n")
	b.WriteString("VERSION:3.0\r\n")
	writeVCardLine(&b, "FN", contact.FullName)

	if contact.Email != nil {
		writeVCardLine(&b, "EMAIL;TYPE=INTERNET", *contact.Email)
	}
	if contact.Phone != nil {
		writeVCardLine(&b, "TEL;TYPE=CELL", *contact.Phone)
	}
	if contact.Company != nil {
		writeVCardLine(&b, "ORG", *contact.Company)
	}
	if contact.JobTitle != nil {
		writeVCardLine(&b, "TITLE", *contact.JobTitle)
	}
	if contact.Website != nil {
		writeVCardLine(&b, "URL", *contact.Website)
	}
	if adr := buildVCardAddress(contact); adr != "" {
		b.WriteString("ADR;TYPE=WORK:")
		b.WriteString(adr)
		b.WriteString("\r\n")
	}
	if contact.Notes != nil {
		writeVCardLine(&b, "NOTE", *contact.Notes)
	}

	b.WriteString("END:VCARD\r\n")

	return b.String()
}

// buildVCardAddress fills the structured ADR value, leaving unused
// components empty: PO box, extended, street, city, region, postal, country.
func buildVCardAddress(contact *entity.Contact) string {
	street, city, postal, country := "", "", "", ""
	if contact.Street != nil {
		street = escapeVCard(*contact.Street)
	}
	if contact.City != nil {
		city = escapeVCard(*contact.City)
	}
	if contact.PostalCode != nil {
		postal = escapeVCard(*contact.PostalCode)
	}
	if contact.Country != nil {
		country = escapeVCard(*contact.Country)
	}
	if street == "" && city == "" && postal == "" && country == "" {
		return ""
	}

	return fmt.Sprintf(";;%s;%s;;%s;%s", street, city, postal, country)
}

func writeVCardLine(b *strings.Builder, name, value string) {
	b.WriteString(name)
	b.WriteString(":")
	b.WriteString(escapeVCard(value))
	b.WriteString("\r\n")
}

// escapeVCard escapes the characters RFC 2426 reserves in text values.
func escapeVCard(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")

	return s
}
