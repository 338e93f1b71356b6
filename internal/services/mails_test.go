package services

import (
	"Listline/internal/config"
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/suite"
)

type fakeSesClient struct {
	inputs []*ses.SendEmailInput
	err    error
}

func (f *fakeSesClient) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{}, nil
}

type MailServiceSuite struct {
	suite.Suite
}

func TestMailServiceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(MailServiceSuite))
}

func (s *MailServiceSuite) TestPlainTextStripsMarkup() {
	// arrange
	m := Mail{HtmlBody: "<p>Hello there</p>"}

	// act
	plain := m.PlainText()

	// assert
	s.Contains(plain, "Hello there")
	s.NotContains(plain, "<p>")
}

func (s *MailServiceSuite) TestSesSendsOneRequestPerMail() {
	// arrange
	client := &fakeSesClient{}
	service := NewSesMailServiceWithClient(config.MailConfig{
		From:     "noreply@listline.test",
		FromName: "Listline",
	}, client)

	// act
	err := service.Send(s.T().Context(),
		Mail{To: "a@example.com", Subject: "first", HtmlBody: "<p>a</p>"},
		Mail{To: "b@example.com", DisplayName: "Bee", Subject: "second", HtmlBody: "<p>b</p>"},
	)

	// assert
	s.Require().NoError(err)
	s.Require().Len(client.inputs, 2)
	s.Equal("Listline <noreply@listline.test>", *client.inputs[0].Source)
	s.Equal([]string{"a@example.com"}, client.inputs[0].Destination.ToAddresses)
	s.Equal([]string{"Bee <b@example.com>"}, client.inputs[1].Destination.ToAddresses)
	s.Equal("second", *client.inputs[1].Message.Subject.Data)
	s.Equal("<p>b</p>", *client.inputs[1].Message.Body.Html.Data)
}

func (s *MailServiceSuite) TestSesFailureIsReturned() {
	// arrange
	client := &fakeSesClient{err: errors.New("throttled")}
	service := NewSesMailServiceWithClient(config.MailConfig{From: "noreply@listline.test"}, client)

	// act
	err := service.Send(s.T().Context(), Mail{To: "a@example.com", Subject: "x", HtmlBody: "y"})

	// assert
	s.ErrorContains(err, "throttled")
}

func (s *MailServiceSuite) TestLogServiceDropsMails() {
	// arrange
	service := NewLogMailService()

	// act
	err := service.Send(s.T().Context(), Mail{To: "a@example.com"})

	// assert
	s.NoError(err)
}

func (s *MailServiceSuite) TestUnknownModeFails() {
	// act
	_, err := NewMailService(config.MailConfig{Mode: "pigeon"})

	// assert
	s.Error(err)
}
