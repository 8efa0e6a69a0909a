// Package rules holds the validation rules shared by both client record kinds.
//
// Each rule accepts an untyped value because construction input may carry
// non-string JSON values or positional arguments; a rule rejects anything that
// is not a string, or is blank after trimming, with a validation_failed error.
// On success the canonical (NFC, trimmed) string is returned.
//
// Domain Purity: rules perform no I/O and keep no state.
package rules

import (
	s "clientrec/pkg/string"
	"clientrec/pkg/validation"
)

// Field names as they appear in delimited and JSON input.
const (
	FieldClientID   = "client_id"
	FieldLastName   = "last_name"
	FieldFirstName  = "first_name"
	FieldMiddleName = "middle_name"
	FieldInitials   = "initials"
	FieldAddress    = "address"
	FieldPhone      = "phone"
)

// ValidateIdentifier checks a client identifier.
func ValidateIdentifier(v any) (string, error) {
	return notBlank(FieldClientID, v)
}

// ValidateName checks a personal name. The same rule serves surname, given
// name and patronymic, so the caller names the field being checked.
func ValidateName(field string, v any) (string, error) {
	return notBlank(field, v)
}

// ValidateInitials checks stored initials on a short record.
func ValidateInitials(v any) (string, error) {
	return notBlank(FieldInitials, v)
}

// ValidateAddress checks a postal address.
func ValidateAddress(v any) (string, error) {
	return notBlank(FieldAddress, v)
}

// ValidatePhone checks a phone number. Only presence is enforced; the format is free text.
func ValidatePhone(v any) (string, error) {
	return notBlank(FieldPhone, v)
}

// Initials derives "G.P." from a given name and a patronymic.
// A missing name yields an empty letter, never an error.
func Initials(given, patronymic string) string {
	return s.FirstLetter(given) + "." + s.FirstLetter(patronymic) + "."
}

func notBlank(field string, v any) (string, error) {
	str, err := validation.String(field, v, validation.TagNotBlank)
	if err != nil {
		return "", err
	}
	return s.Canonical(str), nil
}
