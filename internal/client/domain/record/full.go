package record

import (
	"encoding/json"
	"fmt"
	"strings"

	"clientrec/internal/client/domain/rules"
	"clientrec/internal/client/input"
)

// Merge separators.
const (
	lastNameJoin = "-"
	nameJoin     = " "
	addressJoin  = "; "
	phoneJoin    = " / "
)

// FullRecord is the detailed client form.
//
// Invariants:
//   - every stored field is trimmed, NFC-composed and non-empty
//   - initials always equal rules.Initials(firstName, middleName)
type FullRecord struct {
	id         string
	lastName   string
	firstName  string
	middleName string
	address    string
	phone      string
	initials   string
}

// NewFull constructs a FullRecord from any input variant.
func NewFull(in input.Input) (*FullRecord, error) {
	values, err := input.Fields(in, FullLayout)
	if err != nil {
		return nil, err
	}
	return fullFromValues(values)
}

// ParseFull accepts a loose argument list: one string (JSON object or
// delimited line), one mapping, or six positional values.
func ParseFull(args ...any) (*FullRecord, error) {
	in, err := input.FromArgs(len(FullLayout), args...)
	if err != nil {
		return nil, err
	}
	return NewFull(in)
}

func fullFromValues(values []any) (*FullRecord, error) {
	id, err := rules.ValidateIdentifier(values[0])
	if err != nil {
		return nil, err
	}
	lastName, err := rules.ValidateName(rules.FieldLastName, values[1])
	if err != nil {
		return nil, err
	}
	firstName, err := rules.ValidateName(rules.FieldFirstName, values[2])
	if err != nil {
		return nil, err
	}
	middleName, err := rules.ValidateName(rules.FieldMiddleName, values[3])
	if err != nil {
		return nil, err
	}
	initials := rules.Initials(firstName, middleName)
	address, err := rules.ValidateAddress(values[4])
	if err != nil {
		return nil, err
	}
	phone, err := rules.ValidatePhone(values[5])
	if err != nil {
		return nil, err
	}
	return &FullRecord{
		id:         id,
		lastName:   lastName,
		firstName:  firstName,
		middleName: middleName,
		address:    address,
		phone:      phone,
		initials:   initials,
	}, nil
}

func (r *FullRecord) Kind() Kind         { return KindFull }
func (r *FullRecord) ID() string         { return r.id }
func (r *FullRecord) LastName() string   { return r.lastName }
func (r *FullRecord) FirstName() string  { return r.firstName }
func (r *FullRecord) MiddleName() string { return r.middleName }
func (r *FullRecord) Address() string    { return r.address }
func (r *FullRecord) Phone() string      { return r.phone }
func (r *FullRecord) record()            {}

// Initials returns the initials derived from the given name and patronymic.
func (r *FullRecord) Initials() string { return r.initials }

// Short returns the ShortRecord projection: identifier, surname, derived
// initials and phone. The projection is a copy; changing it does not affect r.
func (r *FullRecord) Short() *ShortRecord {
	return &ShortRecord{id: r.id, lastName: r.lastName, initials: r.initials, phone: r.phone}
}

func (r *FullRecord) SetID(v string) error {
	id, err := rules.ValidateIdentifier(v)
	if err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *FullRecord) SetLastName(v string) error {
	name, err := rules.ValidateName(rules.FieldLastName, v)
	if err != nil {
		return err
	}
	r.lastName = name
	return nil
}

// SetFirstName validates the given name and re-derives initials.
func (r *FullRecord) SetFirstName(v string) error {
	name, err := rules.ValidateName(rules.FieldFirstName, v)
	if err != nil {
		return err
	}
	r.firstName = name
	r.initials = rules.Initials(r.firstName, r.middleName)
	return nil
}

// SetMiddleName validates the patronymic and re-derives initials.
func (r *FullRecord) SetMiddleName(v string) error {
	name, err := rules.ValidateName(rules.FieldMiddleName, v)
	if err != nil {
		return err
	}
	r.middleName = name
	r.initials = rules.Initials(r.firstName, r.middleName)
	return nil
}

func (r *FullRecord) SetAddress(v string) error {
	address, err := rules.ValidateAddress(v)
	if err != nil {
		return err
	}
	r.address = address
	return nil
}

func (r *FullRecord) SetPhone(v string) error {
	phone, err := rules.ValidatePhone(v)
	if err != nil {
		return err
	}
	r.phone = phone
	return nil
}

// Equal requires the ShortRecord projections to match and, on top of that,
// the given name, patronymic and address.
func (r *FullRecord) Equal(o *FullRecord) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.Short().Equal(o.Short()) &&
		r.firstName == o.firstName &&
		r.middleName == o.middleName &&
		r.address == o.address
}

// Compare orders by identifier using plain string comparison.
func (r *FullRecord) Compare(o *FullRecord) int {
	return strings.Compare(r.id, o.id)
}

// Merge combines r and o into a new record that keeps r's identifier.
// Neither operand is modified. The result goes through normal construction.
func (r *FullRecord) Merge(o *FullRecord) (*FullRecord, error) {
	if r == nil || o == nil {
		return nil, contractError("merge", nilSafe(r), nilSafe(o))
	}
	return NewFull(input.Positional{Values: []any{
		r.id,
		r.lastName + lastNameJoin + o.lastName,
		r.firstName + nameJoin + o.firstName,
		r.middleName + nameJoin + o.middleName,
		r.address + addressJoin + o.address,
		r.phone + phoneJoin + o.phone,
	}})
}

func (r *FullRecord) String() string {
	return fmt.Sprintf("FullRecord(client_id=%s, last_name=%s, first_name=%s, middle_name=%s, address=%s, phone=%s, initials=%s)",
		r.id, r.lastName, r.firstName, r.middleName, r.address, r.phone, r.initials)
}

func (r *FullRecord) Display() string {
	return r.lastName + " " + r.initials
}

func (r *FullRecord) Delimited() string {
	return strings.Join([]string{r.id, r.lastName, r.firstName, r.middleName, r.address, r.phone}, input.Separator)
}

type fullJSON struct {
	ClientID   string `json:"client_id"`
	LastName   string `json:"last_name"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
}

// MarshalJSON writes the stored fields; initials are derived and not written.
func (r *FullRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(fullJSON{
		ClientID:   r.id,
		LastName:   r.lastName,
		FirstName:  r.firstName,
		MiddleName: r.middleName,
		Address:    r.address,
		Phone:      r.phone,
	})
}

// UnmarshalJSON constructs the record from a JSON object. On error r is left untouched.
func (r *FullRecord) UnmarshalJSON(data []byte) error {
	parsed, err := NewFull(input.JSONText{Value: string(data)})
	if err != nil {
		return err
	}
	*r = *parsed
	return nil
}

// nilSafe keeps a typed nil pointer from turning into a non-nil interface.
func nilSafe(r *FullRecord) Record {
	if r == nil {
		return nil
	}
	return r
}
