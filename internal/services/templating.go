package services

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed mailtemplates/*.html
var mailTemplateFiles embed.FS

type MailTemplate string

const (
	CustomizationPublishedMailTemplate MailTemplate = "customization_published"
)

type CustomizationPublishedMailData struct {
	DisplayName       string
	CustomizationName string
	PublishedUrl      string
}

//go:generate mockgen -destination=./mocks/template_service.go -package=mocks Listline/internal/services TemplateService
type TemplateService interface {
	Template(templateType MailTemplate, data any) (string, error)
}

type templateService struct {
	templates *template.Template
}

func NewTemplateService() (TemplateService, error) {
	t, err := template.ParseFS(mailTemplateFiles, "mailtemplates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing mail templates: %w", err)
	}

	return &templateService{
		templates: t,
	}, nil
}

func (s *templateService) Template(templateType MailTemplate, data any) (string, error) {
	t := s.templates.Lookup(string(templateType) + ".html")
	if t == nil {
		return "", fmt.Errorf("mail template %s not found", templateType)
	}

	var buf bytes.Buffer
	err := t.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}
