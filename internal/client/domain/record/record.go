// Package record defines the two client record kinds and the operations
// between them.
//
// ShortRecord stores identifier, surname, initials and phone. FullRecord stores
// identifier, surname, given name, patronymic, address and phone, and derives
// its initials from the two names. FullRecord does not embed ShortRecord: it
// computes a ShortRecord projection on demand, so a FullRecord can never be
// passed where a ShortRecord is expected.
//
// Records are created only through NewShort/NewFull (or their Parse variants),
// which resolve an input.Input, validate every field in order and either
// return a complete record or an error. Mutators validate before committing.
//
// Domain Purity: apart from input.File resolution, nothing here performs I/O,
// logs or reads the clock.
package record

import (
	"fmt"

	"clientrec/internal/client/domain/rules"
	"clientrec/internal/client/input"
	dErrors "clientrec/pkg/domain-errors"
)

// Kind distinguishes record kinds.
type Kind string

const (
	KindShort Kind = "short"
	KindFull  Kind = "full"
)

// Sentinels for errors.Is; they match any error carrying the same code.
var (
	ErrValidation = dErrors.Sentinel(dErrors.CodeValidation)
	ErrFormat     = dErrors.Sentinel(dErrors.CodeFormat)
	ErrFile       = dErrors.Sentinel(dErrors.CodeFile)
	ErrContract   = dErrors.Sentinel(dErrors.CodeContract)
)

// Field layouts in positional and delimited order.
var (
	ShortLayout = input.Layout{
		rules.FieldClientID,
		rules.FieldLastName,
		rules.FieldInitials,
		rules.FieldPhone,
	}
	FullLayout = input.Layout{
		rules.FieldClientID,
		rules.FieldLastName,
		rules.FieldFirstName,
		rules.FieldMiddleName,
		rules.FieldAddress,
		rules.FieldPhone,
	}
)

// Record is implemented by *ShortRecord and *FullRecord only.
type Record interface {
	Kind() Kind
	ID() string
	LastName() string
	Initials() string
	Phone() string
	// String renders every stored field, in layout order.
	String() string
	// Display renders the short human-facing form.
	Display() string
	// Delimited serializes the record as a ";"-separated line.
	Delimited() string
	record()
}

// New constructs a record of the given kind from in.
func New(kind Kind, in input.Input) (Record, error) {
	switch kind {
	case KindShort:
		r, err := NewShort(in)
		if err != nil {
			return nil, err
		}
		return r, nil
	case KindFull:
		r, err := NewFull(in)
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, dErrors.New(dErrors.CodeFormat, fmt.Sprintf("unknown record kind %q", kind))
	}
}

// Layout returns the field layout of kind, or nil for an unknown kind.
func Layout(kind Kind) input.Layout {
	switch kind {
	case KindShort:
		return ShortLayout
	case KindFull:
		return FullLayout
	default:
		return nil
	}
}

func contractError(op string, a, b Record) error {
	return dErrors.New(dErrors.CodeContract,
		fmt.Sprintf("%s is undefined between %s and %s records", op, kindOf(a), kindOf(b)))
}

func kindOf(r Record) string {
	if r == nil {
		return "nil"
	}
	return string(r.Kind())
}
