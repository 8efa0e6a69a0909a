package string

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonical(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"trims spaces", "  Иванов  ", "Иванов"},
		{"trims tabs and newlines", "\tA\n", "A"},
		{"blank becomes empty", "   ", ""},
		{"composes decomposed letters", "\u0418\u0306", "\u0419"},
		{"leaves inner spaces", " X Z ", "X Z"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Canonical(tc.in))
		})
	}
}

func TestCanonicalSlice(t *testing.T) {
	ss := []string{" 1 ", "A", "  "}
	CanonicalSlice(ss)
	assert.Equal(t, []string{"1", "A", ""}, ss)
}

func TestFirstLetter(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"latin", "Ivan", "I"},
		{"cyrillic", "Иван", "И"},
		{"empty", "", ""},
		{"blank", "  ", ""},
		{"leading space ignored", " Petr", "P"},
		{"decomposed first letter", "\u0418\u0306ван", "\u0419"},
		{"keeps combining mark with no precomposed form", "e\u0331x", "e\u0331"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FirstLetter(tc.in))
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "client_id", ToSnakeCase("ClientID"))
	assert.Equal(t, "last_name", ToSnakeCase("LastName"))
	assert.Equal(t, "phone", ToSnakeCase("Phone"))
}
