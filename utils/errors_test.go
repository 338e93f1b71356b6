package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
)

type UnwrapSuite struct {
	suite.Suite
}

func TestUnwrapSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(UnwrapSuite))
}

func (s *UnwrapSuite) TestNoErrorReturnsValue() {
	// arrange
	t := "asd"
	var err error = nil

	// act
	unwrapped := Unwrap(t, err)

	// assert
	s.Equal(t, unwrapped)
}

func (s *UnwrapSuite) TestPanicsOnError() {
	// arrange
	t := ""
	var err error = errors.New("error")

	// act
	s.Panics(func() {
		_ = Unwrap(t, err)
	})
}

type HandleHttpErrorSuite struct {
	suite.Suite
}

func TestHandleHttpErrorSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(HandleHttpErrorSuite))
}

func (s *HandleHttpErrorSuite) handle(err error) (int, ErrorResponseDto) {
	recorder := httptest.NewRecorder()
	HandleHttpError(recorder, err)

	var body ErrorResponseDto
	s.Require().NoError(json.NewDecoder(recorder.Body).Decode(&body))
	return recorder.Code, body
}

func (s *HandleHttpErrorSuite) TestBadRequestKeepsMessage() {
	// act
	status, body := s.handle(fmt.Errorf("name is required: %w", ErrHttpBadRequest))

	// assert
	s.Equal(http.StatusBadRequest, status)
	s.Equal("name is required: bad request", body.Error)
}

func (s *HandleHttpErrorSuite) TestWrappedNotFound() {
	// act
	status, body := s.handle(fmt.Errorf("getting template: %w", ErrTemplateNotFound))

	// assert
	s.Equal(http.StatusNotFound, status)
	s.Contains(body.Error, "template")
}

func (s *HandleHttpErrorSuite) TestUnauthorizedHidesDetails() {
	// act
	status, body := s.handle(fmt.Errorf("token expired: %w", ErrHttpUnauthorized))

	// assert
	s.Equal(http.StatusUnauthorized, status)
	s.Equal("unauthorized", body.Error)
}

func (s *HandleHttpErrorSuite) TestForbidden() {
	// act
	status, _ := s.handle(fmt.Errorf("request not allowed: %w", ErrHttpForbidden))

	// assert
	s.Equal(http.StatusForbidden, status)
}

func (s *HandleHttpErrorSuite) TestConflict() {
	// act
	status, _ := s.handle(fmt.Errorf("version mismatch: %w", ErrHttpConflict))

	// assert
	s.Equal(http.StatusConflict, status)
}

func (s *HandleHttpErrorSuite) TestPayloadTooLarge() {
	// act
	status, body := s.handle(fmt.Errorf("Image must be less than 10MB: %w", ErrHttpPayloadTooLarge))

	// assert
	s.Equal(http.StatusRequestEntityTooLarge, status)
	s.Contains(body.Error, "10MB")
}

func (s *HandleHttpErrorSuite) TestPublicErrorMessageIsShownVerbatim() {
	// act
	status, body := s.handle(fmt.Errorf("creating customization: %w", ErrTemplateNotAvailable))

	// assert
	s.Equal(http.StatusBadRequest, status)
	s.Equal("This template is not available", body.Error)
}

func (s *HandleHttpErrorSuite) TestPublicPayloadTooLarge() {
	// act
	status, body := s.handle(NewPublicError(ErrHttpPayloadTooLarge, "Image must be less than 10MB"))

	// assert
	s.Equal(http.StatusRequestEntityTooLarge, status)
	s.Equal("Image must be less than 10MB", body.Error)
}
