package jsonTypes

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type JsonTypesSuite struct {
	suite.Suite
}

func TestJsonTypesSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(JsonTypesSuite))
}

func (s *JsonTypesSuite) TestFieldValuesScanFromBytes() {
	// arrange
	var values FieldValues

	// act
	err := values.Scan([]byte(`{"agent_name":"Jane"}`))

	// assert
	s.Require().NoError(err)
	s.Equal("Jane", values.Get("agent_name"))
	s.Equal("", values.Get("missing"))
}

func (s *JsonTypesSuite) TestFieldValuesScanNull() {
	// arrange
	var values FieldValues

	// act
	err := values.Scan(nil)

	// assert
	s.Require().NoError(err)
	s.NotNil(values)
	s.Empty(values)
}

func (s *JsonTypesSuite) TestNilFieldValuesStoreEmptyObject() {
	// act
	value, err := FieldValues(nil).Value()

	// assert
	s.Require().NoError(err)
	s.Equal([]byte("{}"), value)
}

func (s *JsonTypesSuite) TestJsonDocumentRoundTripsThroughDecode() {
	// arrange
	doc, err := NewJsonDocument(AiSettings{Provider: "openai"})
	s.Require().NoError(err)

	// act
	var settings AiSettings
	err = doc.Decode(&settings)

	// assert
	s.Require().NoError(err)
	s.Equal("openai", settings.Provider)
	s.True(doc.IsObject())
}

func (s *JsonTypesSuite) TestJsonDocumentIsObject() {
	s.False(JsonDocument(`[1,2]`).IsObject())
	s.False(JsonDocument(`"text"`).IsObject())
	s.False(JsonDocument(`null`).IsObject())
	s.True(JsonDocument(`{}`).IsObject())
}

func (s *JsonTypesSuite) TestJsonDocumentScanCopiesBytes() {
	// arrange
	src := []byte(`{"a":1}`)
	var doc JsonDocument

	// act
	err := doc.Scan(src)
	src[2] = 'b'

	// assert
	s.Require().NoError(err)
	s.Equal(`{"a":1}`, string(doc))
}
