package identity

import (
	"regexp"
	"strings"

	"tradenet/models"
)

var (
	gstPattern   = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	panPattern   = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

// NormalizeTaxID trims and uppercases raw GST/PAN material.
func NormalizeTaxID(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// NormalizePhone trims raw phone material, keeping a leading "+".
func NormalizePhone(raw string) string {
	return strings.TrimSpace(raw)
}

// IsValidGST reports whether the normalized value matches the 15-character
// GST pattern.
func IsValidGST(gst string) bool {
	return gstPattern.MatchString(gst)
}

// IsValidPAN reports whether the normalized value matches the 10-character
// PAN pattern.
func IsValidPAN(pan string) bool {
	return panPattern.MatchString(pan)
}

// IsValidPhone reports whether the normalized value is 10-15 digits with an
// optional leading "+".
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// CanonicalPAN derives the canonical organization identifier for a PAN.
func CanonicalPAN(pan string) string {
	return "PAN:" + pan
}

// CanonicalPhone derives the canonical organization identifier for a phone.
func CanonicalPhone(phone string) string {
	return "phone:" + phone
}

// ResolveIdentifier normalizes raw identity material and classifies it as
// GST, PAN or phone, returning the canonical organization identifier. GST
// identifiers are canonical as-is; PAN and phone get a kind prefix.
func ResolveIdentifier(raw string) (models.IdentifierKind, string, error) {
	taxID := NormalizeTaxID(raw)
	if IsValidGST(taxID) {
		return models.IdentifierGST, taxID, nil
	}
	if IsValidPAN(taxID) {
		return models.IdentifierPAN, CanonicalPAN(taxID), nil
	}
	phone := NormalizePhone(raw)
	if IsValidPhone(phone) {
		return models.IdentifierPhone, CanonicalPhone(phone), nil
	}
	return "", "", ValidationError{Msg: "identifier is not a valid GST, PAN or phone number"}
}
