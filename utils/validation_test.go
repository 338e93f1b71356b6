package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidateDtoSuite struct {
	suite.Suite
}

func TestValidateDtoSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ValidateDtoSuite))
}

type validatedDto struct {
	Name  string `validate:"notblank"`
	Key   string `validate:"settingkey"`
	Color string `validate:"omitempty,hexcolor"`
}

func (s *ValidateDtoSuite) TestValidDto() {
	// act
	err := ValidateDto(validatedDto{Name: "Spring Listing", Key: "ai_provider", Color: "#f5d5d5"})

	// assert
	s.NoError(err)
}

func (s *ValidateDtoSuite) TestBlankNameIsBadRequest() {
	// act
	err := ValidateDto(validatedDto{Name: "   ", Key: "ai_provider"})

	// assert
	s.Require().Error(err)
	s.True(errors.Is(err, ErrHttpBadRequest))
	s.Contains(err.Error(), "Name")
}

func (s *ValidateDtoSuite) TestInvalidSettingKey() {
	// act
	err := ValidateDto(validatedDto{Name: "name", Key: "AI Provider"})

	// assert
	s.Require().Error(err)
	s.Contains(err.Error(), "settingkey")
}

func (s *ValidateDtoSuite) TestInvalidColor() {
	// act
	err := ValidateDto(validatedDto{Name: "name", Key: "ai_provider", Color: "pink"})

	// assert
	s.Require().Error(err)
	s.Contains(err.Error(), "hexcolor")
}
