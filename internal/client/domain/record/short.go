package record

import (
	"encoding/json"
	"fmt"
	"strings"

	"clientrec/internal/client/domain/rules"
	"clientrec/internal/client/input"
)

// ShortRecord is the compact client form.
//
// Invariants:
//   - every field is trimmed, NFC-composed and non-empty
type ShortRecord struct {
	id       string
	lastName string
	initials string
	phone    string
}

// NewShort constructs a ShortRecord from any input variant.
func NewShort(in input.Input) (*ShortRecord, error) {
	values, err := input.Fields(in, ShortLayout)
	if err != nil {
		return nil, err
	}
	return shortFromValues(values)
}

// ParseShort accepts a loose argument list: one string (JSON object or
// delimited line), one mapping, or four positional values.
func ParseShort(args ...any) (*ShortRecord, error) {
	in, err := input.FromArgs(len(ShortLayout), args...)
	if err != nil {
		return nil, err
	}
	return NewShort(in)
}

func shortFromValues(values []any) (*ShortRecord, error) {
	id, err := rules.ValidateIdentifier(values[0])
	if err != nil {
		return nil, err
	}
	lastName, err := rules.ValidateName(rules.FieldLastName, values[1])
	if err != nil {
		return nil, err
	}
	initials, err := rules.ValidateInitials(values[2])
	if err != nil {
		return nil, err
	}
	phone, err := rules.ValidatePhone(values[3])
	if err != nil {
		return nil, err
	}
	return &ShortRecord{id: id, lastName: lastName, initials: initials, phone: phone}, nil
}

func (r *ShortRecord) Kind() Kind       { return KindShort }
func (r *ShortRecord) ID() string       { return r.id }
func (r *ShortRecord) LastName() string { return r.lastName }
func (r *ShortRecord) Initials() string { return r.initials }
func (r *ShortRecord) Phone() string    { return r.phone }
func (r *ShortRecord) record()          {}

// SetID validates and stores a new identifier.
func (r *ShortRecord) SetID(v string) error {
	id, err := rules.ValidateIdentifier(v)
	if err != nil {
		return err
	}
	r.id = id
	return nil
}

// SetLastName validates and stores a new surname.
func (r *ShortRecord) SetLastName(v string) error {
	name, err := rules.ValidateName(rules.FieldLastName, v)
	if err != nil {
		return err
	}
	r.lastName = name
	return nil
}

// SetInitials validates and stores new initials.
func (r *ShortRecord) SetInitials(v string) error {
	initials, err := rules.ValidateInitials(v)
	if err != nil {
		return err
	}
	r.initials = initials
	return nil
}

// SetPhone validates and stores a new phone.
func (r *ShortRecord) SetPhone(v string) error {
	phone, err := rules.ValidatePhone(v)
	if err != nil {
		return err
	}
	r.phone = phone
	return nil
}

// Equal reports whether every stored field matches.
func (r *ShortRecord) Equal(o *ShortRecord) bool {
	if r == nil || o == nil {
		return r == o
	}
	return *r == *o
}

// Compare orders by identifier using plain string comparison, so "10" sorts before "2".
func (r *ShortRecord) Compare(o *ShortRecord) int {
	return strings.Compare(r.id, o.id)
}

func (r *ShortRecord) String() string {
	return fmt.Sprintf("ShortRecord(client_id=%s, last_name=%s, initials=%s, phone=%s)",
		r.id, r.lastName, r.initials, r.phone)
}

func (r *ShortRecord) Display() string {
	return fmt.Sprintf("%s %s Тел: %s", r.lastName, r.initials, r.phone)
}

func (r *ShortRecord) Delimited() string {
	return strings.Join([]string{r.id, r.lastName, r.initials, r.phone}, input.Separator)
}

type shortJSON struct {
	ClientID string `json:"client_id"`
	LastName string `json:"last_name"`
	Initials string `json:"initials"`
	Phone    string `json:"phone"`
}

func (r *ShortRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(shortJSON{
		ClientID: r.id,
		LastName: r.lastName,
		Initials: r.initials,
		Phone:    r.phone,
	})
}

// UnmarshalJSON constructs the record from a JSON object. On error r is left untouched.
func (r *ShortRecord) UnmarshalJSON(data []byte) error {
	parsed, err := NewShort(input.JSONText{Value: string(data)})
	if err != nil {
		return err
	}
	*r = *parsed
	return nil
}
