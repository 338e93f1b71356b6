package services

import (
	"Listline/internal/config"
	"Listline/internal/logging"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/jaytaylor/html2text"
	gomail "gopkg.in/mail.v2"
)

type Mail struct {
	To          string
	DisplayName string
	Subject     string
	HtmlBody    string
}

// PlainText derives the text/plain alternative of the html body.
func (m Mail) PlainText() string {
	plain, err := html2text.FromString(m.HtmlBody, html2text.Options{PrettyTables: true})
	if err != nil {
		return m.HtmlBody
	}
	return strings.TrimSpace(plain)
}

//go:generate mockgen -destination=./mocks/mail_service.go -package=mocks Listline/internal/services MailService
type MailService interface {
	Send(ctx context.Context, mails ...Mail) error
}

func NewMailService(c config.MailConfig) (MailService, error) {
	switch c.Mode {
	case config.MailModeNone:
		return NewLogMailService(), nil

	case config.MailModeSmtp:
		return NewSmtpMailService(c), nil

	case config.MailModeSes:
		return NewSesMailService(context.Background(), c)

	default:
		return nil, fmt.Errorf("unsupported mail mode: %s", c.Mode)
	}
}

type logMailService struct{}

func NewLogMailService() MailService {
	return &logMailService{}
}

func (s *logMailService) Send(_ context.Context, mails ...Mail) error {
	for _, m := range mails {
		logging.Logger.Infow("mail delivery disabled, dropping mail",
			"to", m.To,
			"subject", m.Subject)
	}
	return nil
}

type smtpMailService struct {
	config config.MailConfig
}

func NewSmtpMailService(c config.MailConfig) MailService {
	return &smtpMailService{
		config: c,
	}
}

func (s *smtpMailService) Send(_ context.Context, mails ...Mail) error {
	messages := make([]*gomail.Message, 0, len(mails))
	for _, m := range mails {
		message := gomail.NewMessage()
		message.SetAddressHeader("To", m.To, m.DisplayName)
		message.SetAddressHeader("From", s.config.From, s.config.FromName)
		message.SetHeader("Subject", m.Subject)
		message.SetBody("text/plain", m.PlainText())
		message.AddAlternative("text/html", m.HtmlBody)
		messages = append(messages, message)
	}

	dialer := gomail.NewDialer(
		s.config.Smtp.Host,
		s.config.Smtp.Port,
		s.config.Smtp.Username,
		s.config.Smtp.Password,
	)

	if err := dialer.DialAndSend(messages...); err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}

	return nil
}

// SesClient is the part of the SES api used for sending.
type SesClient interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type sesMailService struct {
	config config.MailConfig
	client SesClient
}

func NewSesMailService(ctx context.Context, c config.MailConfig) (MailService, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(c.Ses.Region),
	}
	if c.Ses.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(c.Ses.Profile))
	}

	awsConfig, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := ses.NewFromConfig(awsConfig, func(o *ses.Options) {
		o.RetryMaxAttempts = 3
	})

	return NewSesMailServiceWithClient(c, client), nil
}

func NewSesMailServiceWithClient(c config.MailConfig, client SesClient) MailService {
	return &sesMailService{
		config: c,
		client: client,
	}
}

func (s *sesMailService) Send(ctx context.Context, mails ...Mail) error {
	source := s.config.From
	if s.config.FromName != "" {
		source = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.From)
	}

	for _, m := range mails {
		to := m.To
		if m.DisplayName != "" {
			to = fmt.Sprintf("%s <%s>", m.DisplayName, m.To)
		}

		_, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
			Destination: &types.Destination{
				ToAddresses: []string{to},
			},
			Source: aws.String(source),
			Message: &types.Message{
				Subject: &types.Content{Data: aws.String(m.Subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(m.PlainText())},
					Html: &types.Content{Data: aws.String(m.HtmlBody)},
				},
			},
		})
		if err != nil {
			return fmt.Errorf("sending mail via ses: %w", err)
		}
	}

	return nil
}
