// Package testutil holds fixture builders for client record tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"clientrec/internal/client/domain/record"
	"clientrec/internal/client/domain/rules"
	"clientrec/internal/client/input"
)

// FullBuilder provides a fluent interface for building full record inputs.
type FullBuilder struct {
	fields map[string]string
}

// NewFullBuilder creates a FullBuilder with the Иванов Иван Петрович defaults.
func NewFullBuilder() *FullBuilder {
	return &FullBuilder{fields: map[string]string{
		rules.FieldClientID:   "1",
		rules.FieldLastName:   "Иванов",
		rules.FieldFirstName:  "Иван",
		rules.FieldMiddleName: "Петрович",
		rules.FieldAddress:    "Москва",
		rules.FieldPhone:      "+7-1",
	}}
}

// FakeFull creates a FullBuilder filled from f, so a seeded faker gives
// repeatable data.
func FakeFull(f *gofakeit.Faker) *FullBuilder {
	return NewFullBuilder().
		WithID(f.UUID()).
		WithName(f.LastName(), f.FirstName(), f.FirstName()).
		WithAddress(f.Street() + ", " + f.City()).
		WithPhone(f.Phone())
}

func (b *FullBuilder) WithID(clientID string) *FullBuilder {
	b.fields[rules.FieldClientID] = clientID
	return b
}

func (b *FullBuilder) WithName(lastName, firstName, middleName string) *FullBuilder {
	b.fields[rules.FieldLastName] = lastName
	b.fields[rules.FieldFirstName] = firstName
	b.fields[rules.FieldMiddleName] = middleName
	return b
}

func (b *FullBuilder) WithAddress(address string) *FullBuilder {
	b.fields[rules.FieldAddress] = address
	return b
}

func (b *FullBuilder) WithPhone(phone string) *FullBuilder {
	b.fields[rules.FieldPhone] = phone
	return b
}

// Without drops a field, as if the JSON key were absent.
func (b *FullBuilder) Without(field string) *FullBuilder {
	delete(b.fields, field)
	return b
}

func (b *FullBuilder) Positional() input.Positional {
	return positional(b.fields, record.FullLayout)
}

func (b *FullBuilder) Mapping() input.Mapping {
	return mapping(b.fields)
}

func (b *FullBuilder) Delimited() string {
	return delimited(b.fields, record.FullLayout)
}

func (b *FullBuilder) JSON() string {
	return encode(b.fields)
}

// WriteFile stores the JSON form as name under dir and returns its path.
func (b *FullBuilder) WriteFile(dir, name string) (string, error) {
	return writeFile(dir, name, b.JSON())
}

// Build constructs the record or panics. For tests only.
func (b *FullBuilder) Build() *record.FullRecord {
	r, err := record.NewFull(b.Mapping())
	if err != nil {
		panic(err)
	}
	return r
}

// ShortBuilder provides a fluent interface for building short record inputs.
type ShortBuilder struct {
	fields map[string]string
}

// NewShortBuilder creates a ShortBuilder with the Иванов И.И. defaults.
func NewShortBuilder() *ShortBuilder {
	return &ShortBuilder{fields: map[string]string{
		rules.FieldClientID: "123",
		rules.FieldLastName: "Иванов",
		rules.FieldInitials: "И.И.",
		rules.FieldPhone:    "+7-123",
	}}
}

func (b *ShortBuilder) WithID(clientID string) *ShortBuilder {
	b.fields[rules.FieldClientID] = clientID
	return b
}

func (b *ShortBuilder) WithLastName(lastName string) *ShortBuilder {
	b.fields[rules.FieldLastName] = lastName
	return b
}

func (b *ShortBuilder) WithInitials(initials string) *ShortBuilder {
	b.fields[rules.FieldInitials] = initials
	return b
}

func (b *ShortBuilder) WithPhone(phone string) *ShortBuilder {
	b.fields[rules.FieldPhone] = phone
	return b
}

func (b *ShortBuilder) Positional() input.Positional {
	return positional(b.fields, record.ShortLayout)
}

func (b *ShortBuilder) Mapping() input.Mapping {
	return mapping(b.fields)
}

func (b *ShortBuilder) Delimited() string {
	return delimited(b.fields, record.ShortLayout)
}

func (b *ShortBuilder) JSON() string {
	return encode(b.fields)
}

// Build constructs the record or panics. For tests only.
func (b *ShortBuilder) Build() *record.ShortRecord {
	r, err := record.NewShort(b.Mapping())
	if err != nil {
		panic(err)
	}
	return r
}

func positional(fields map[string]string, layout input.Layout) input.Positional {
	values := make([]any, len(layout))
	for i, key := range layout {
		values[i] = fields[key]
	}
	return input.Positional{Values: values}
}

func mapping(fields map[string]string) input.Mapping {
	values := make(map[string]any, len(fields))
	for k, v := range fields {
		values[k] = v
	}
	return input.Mapping{Values: values}
}

func delimited(fields map[string]string, layout input.Layout) string {
	parts := make([]string, len(layout))
	for i, key := range layout {
		parts[i] = fields[key]
	}
	return strings.Join(parts, input.Separator)
}

func encode(fields map[string]string) string {
	data, err := json.Marshal(fields)
	if err != nil {
		panic(err)
	}
	return string(data)
}

func writeFile(dir, name, content string) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", err
	}
	return path, nil
}
