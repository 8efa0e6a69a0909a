package validation

import (
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "clientrec/pkg/domain-errors"
)

type ValidationSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationSuite))
}

func (s *ValidationSuite) TestString() {
	s.Run("accepts non-blank string", func() {
		got, err := String("phone", " +7-123 ", TagNotBlank)
		s.Require().NoError(err)
		s.Equal(" +7-123 ", got)
	})

	for _, blank := range []string{"", "   ", "\t\n"} {
		s.Run("rejects blank "+`"`+blank+`"`, func() {
			_, err := String("phone", blank, TagNotBlank)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeValidation))
			s.Equal("phone", dErrors.FieldOf(err))
			s.Equal("phone must not be blank", err.Error())
		})
	}

	s.Run("rejects non-string values", func() {
		for _, v := range []any{nil, 42, 3.5, true, []string{"a"}} {
			_, err := String("client_id", v, TagNotBlank)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeValidation))
			s.Contains(err.Error(), "client_id must be a string")
		}
	})
}

type settings struct {
	LogLevel string `validate:"oneof=debug info"`
	MaxBytes int64  `validate:"gt=0"`
	Address  string `validate:"notblank"`
}

func (s *ValidationSuite) TestValidate() {
	s.Run("valid struct passes", func() {
		s.NoError(Validate(settings{LogLevel: "info", MaxBytes: 1, Address: "X"}))
	})

	s.Run("reports first failing field in snake case", func() {
		err := Validate(settings{LogLevel: "trace", MaxBytes: 1, Address: "X"})
		s.Require().Error(err)
		s.Equal("log_level", dErrors.FieldOf(err))
		s.Equal("log_level must be one of [debug info]", err.Error())
	})

	s.Run("gt message", func() {
		err := Validate(settings{LogLevel: "debug", MaxBytes: 0, Address: "X"})
		s.Require().Error(err)
		s.Equal("max_bytes must be greater than 0", err.Error())
	})

	s.Run("notblank on struct field", func() {
		err := Validate(settings{LogLevel: "debug", MaxBytes: 1, Address: "  "})
		s.Require().Error(err)
		s.Equal("address must not be blank", err.Error())
	})
}
