package utils

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type MapPtrSuite struct {
	suite.Suite
}

func TestMapPtrSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(MapPtrSuite))
}

func (s *MapPtrSuite) TestMapsNilToNil() {
	// arrange
	var v *string = nil

	// act
	result := MapPtr(v, func(x string) bool {
		return true
	})

	// assert
	s.Nil(result)
}

func (s *MapPtrSuite) TestMapsIfNotNil() {
	// arrange
	var v = "not nil"

	// act
	result := MapPtr(&v, func(x string) bool {
		return true
	})

	// assert
	s.Require().NotNil(result)
	s.True(*result)
}

type NilIfBlankSuite struct {
	suite.Suite
}

func TestNilIfBlankSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(NilIfBlankSuite))
}

func (s *NilIfBlankSuite) TestBlankBecomesNil() {
	// act
	result := NilIfBlank(Ptr("   "))

	// assert
	s.Nil(result)
}

func (s *NilIfBlankSuite) TestKeepsValue() {
	// act
	result := NilIfBlank(Ptr("A description"))

	// assert
	s.Require().NotNil(result)
	s.Equal("A description", *result)
}
