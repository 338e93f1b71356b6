package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var settingKeyPattern = regexp.MustCompile(`^[a-z0-9_]{1,64}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	PanicOnError(func() error {
		return v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	}, "registering notblank validation")

	PanicOnError(func() error {
		return v.RegisterValidation("settingkey", func(fl validator.FieldLevel) bool {
			return settingKeyPattern.MatchString(fl.Field().String())
		})
	}, "registering settingkey validation")

	return v
}

func ValidateDto(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, fmt.Sprintf("%s failed on '%s'", fieldError.Field(), fieldError.Tag()))
		}
		return fmt.Errorf("invalid request: %s: %w", strings.Join(messages, ", "), ErrHttpBadRequest)
	}

	return fmt.Errorf("invalid request: %s: %w", err.Error(), ErrHttpBadRequest)
}
