package fields

import (
	"Listline/internal/repositories"
	"Listline/utils"
	"fmt"
	"html"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	colorPattern       = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	phonePattern       = regexp.MustCompile(`^\+?[0-9 ().\-]+$`)
	placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_\-]+)\s*\}\}`)
	filenamePattern    = regexp.MustCompile(`[^a-z0-9]`)
)

var validate = validator.New()

// ValidateFieldValue checks a single value against the field declaration. It returns an
// empty string when the value is acceptable.
func ValidateFieldValue(field *repositories.TemplateField, value string) string {
	if strings.TrimSpace(value) == "" {
		if field.IsRequired() {
			return fmt.Sprintf("%s is required", field.Label())
		}
		return ""
	}

	switch field.FieldType() {
	case repositories.TemplateFieldTypeEmail:
		if validate.Var(value, "email") != nil {
			return "must be a valid email address"
		}

	case repositories.TemplateFieldTypeUrl, repositories.TemplateFieldTypeImage:
		if validate.Var(value, "http_url") != nil {
			return "must be an absolute http(s) url"
		}

	case repositories.TemplateFieldTypePhone:
		digits := 0
		for _, r := range value {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if !phonePattern.MatchString(value) || digits < 7 || digits > 15 {
			return "must be a valid phone number"
		}

	case repositories.TemplateFieldTypeColor:
		if !colorPattern.MatchString(value) {
			return "must be a hex color like #rrggbb"
		}

	case repositories.TemplateFieldTypeNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return "must be a number"
		}

	case repositories.TemplateFieldTypeDate:
		if validate.Var(value, "datetime=2006-01-02") != nil {
			return "must be a date formatted YYYY-MM-DD"
		}
	}

	return ""
}

// ValidateValues checks values against every field of a template and reports all problems at once.
func ValidateValues(templateFields []*repositories.TemplateField, values map[string]string) error {
	known := make(map[string]bool, len(templateFields))
	var problems []string

	for _, field := range templateFields {
		known[field.FieldKey()] = true
		if msg := ValidateFieldValue(field, values[field.FieldKey()]); msg != "" {
			problems = append(problems, fmt.Sprintf("%s: %s", field.FieldKey(), msg))
		}
	}

	var unknown []string
	for key := range values {
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		problems = append(problems, fmt.Sprintf("%s: unknown field", key))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid values: %s: %w", strings.Join(problems, "; "), utils.ErrHttpBadRequest)
	}

	return nil
}

// RenderPlaceholders substitutes {{field_key}} placeholders with escaped values, falling back
// to the field default. Placeholders without a field stay as they are.
func RenderPlaceholders(document string, templateFields []*repositories.TemplateField, values map[string]string) string {
	byKey := make(map[string]*repositories.TemplateField, len(templateFields))
	for _, field := range templateFields {
		byKey[field.FieldKey()] = field
	}

	return placeholderPattern.ReplaceAllStringFunc(document, func(match string) string {
		key := placeholderPattern.FindStringSubmatch(match)[1]
		field, ok := byKey[key]
		if !ok {
			return match
		}

		value := values[key]
		if value == "" && field.DefaultValue() != nil {
			value = *field.DefaultValue()
		}

		return html.EscapeString(value)
	})
}

// SanitizeFilename lowercases name and replaces every character outside [a-z0-9] with an underscore.
func SanitizeFilename(name string) string {
	sanitized := filenamePattern.ReplaceAllString(strings.ToLower(name), "_")
	if sanitized == "" {
		return "document"
	}
	return sanitized
}
