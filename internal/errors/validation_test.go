package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-levelgen/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestFieldsAreSorted() {
	err := errors.NewValidationBuilder().
		Field("Window", "must be positive").
		RequiredField("Client").
		Build()

	s.Require().Error(err)
	s.Assert().Equal("INVALID_ARGUMENT: validation failed: Client: is required; Window: must be positive", err.Error())

	fields, ok := errors.GetMeta(err)[errors.MetaFields].(map[string][]string)
	s.Require().True(ok)
	s.Assert().Equal([]string{"is required"}, fields["Client"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("Backend").
		PositiveField("Capacity", 0).
		PositiveField("MaxRequests", 5).
		Fieldf("Window", "must be at least %d", 1)

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "Capacity: must be positive")
	s.Assert().NotContains(err.Error(), "MaxRequests")
}

func (s *ValidationTestSuite) TestMultipleProblemsOnOneField() {
	err := errors.NewValidationBuilder().
		Field("Temperature", "must not be negative").
		Field("Temperature", "must be at most 2").
		Build()

	s.Assert().Contains(err.Error(), "Temperature: must not be negative, must be at most 2")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.Assert().NoError(errors.NewValidationBuilder().Build())
}
