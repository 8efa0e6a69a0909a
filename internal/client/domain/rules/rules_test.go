package rules_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"clientrec/internal/client/domain/rules"
	dErrors "clientrec/pkg/domain-errors"
)

type RulesSuite struct {
	suite.Suite
}

func TestRulesSuite(t *testing.T) {
	suite.Run(t, new(RulesSuite))
}

type rule struct {
	field string
	check func(any) (string, error)
}

func (s *RulesSuite) allRules() []rule {
	return []rule{
		{rules.FieldClientID, rules.ValidateIdentifier},
		{rules.FieldLastName, func(v any) (string, error) { return rules.ValidateName(rules.FieldLastName, v) }},
		{rules.FieldFirstName, func(v any) (string, error) { return rules.ValidateName(rules.FieldFirstName, v) }},
		{rules.FieldMiddleName, func(v any) (string, error) { return rules.ValidateName(rules.FieldMiddleName, v) }},
		{rules.FieldInitials, rules.ValidateInitials},
		{rules.FieldAddress, rules.ValidateAddress},
		{rules.FieldPhone, rules.ValidatePhone},
	}
}

func (s *RulesSuite) TestRejectsBlankAndNonString() {
	bad := []any{"", "   ", "\t", nil, 123, 1.5, false, map[string]any{}}
	for _, r := range s.allRules() {
		s.Run(r.field, func() {
			for _, v := range bad {
				_, err := r.check(v)
				s.Require().Error(err, "value %#v", v)
				s.True(dErrors.HasCode(err, dErrors.CodeValidation))
				s.Equal(r.field, dErrors.FieldOf(err))
			}
		})
	}
}

func (s *RulesSuite) TestAcceptsAndCanonicalizes() {
	for _, r := range s.allRules() {
		s.Run(r.field, func() {
			got, err := r.check("  x ")
			s.Require().NoError(err)
			s.Equal("x", got)

			got, err = r.check("Иванов")
			s.Require().NoError(err)
			s.Equal("Иванов", got)
		})
	}
}

func (s *RulesSuite) TestInitials() {
	cases := []struct {
		name       string
		given      string
		patronymic string
		want       string
	}{
		{"latin", "Ivan", "Petr", "I.P."},
		{"cyrillic", "Иван", "Иванович", "И.И."},
		{"missing given name", "", "Petr", ".P."},
		{"missing patronymic", "Ivan", "", "I.."},
		{"both missing", "", "", ".."},
		{"lower case kept as is", "ivan", "petr", "i.p."},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, rules.Initials(tc.given, tc.patronymic))
		})
	}
}
