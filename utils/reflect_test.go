package utils

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ZeroSuite struct {
	suite.Suite
}

func TestZeroSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ZeroSuite))
}

func (s *ZeroSuite) TestPrimitive() {
	// act
	zero := Zero[int]()

	// assert
	s.Equal(0, zero)
}

func (s *ZeroSuite) TestPointerIsNil() {
	// act
	zero := Zero[*string]()

	// assert
	s.Nil(zero)
}

func (s *ZeroSuite) TestZeroIfNil() {
	// arrange
	value := "value"

	// act
	fromNil := ZeroIfNil[string](nil)
	fromValue := ZeroIfNil(&value)

	// assert
	s.Empty(fromNil)
	s.Equal("value", fromValue)
}

type TypeOfSuite struct {
	suite.Suite
}

func TestTypeOfSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(TypeOfSuite))
}

func (s *TypeOfSuite) TestStruct() {
	// arrange
	type request struct {
		Name string
	}

	// act
	result := TypeOf[request]()

	// assert
	s.Equal(reflect.TypeOf(request{}), result)
}

func (s *TypeOfSuite) TestInterface() {
	// act
	result := TypeOf[context.Context]()

	// assert
	s.Equal(reflect.Interface, result.Kind())
	s.True(reflect.TypeOf(context.Background()).Implements(result))
}

func (s *TypeOfSuite) TestSlice() {
	// act
	result := TypeOf[[]string]()

	// assert
	s.Equal(reflect.TypeOf([]string{}), result)
}
