package commands

import (
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"Listline/utils"
	"context"
	"fmt"
	"strings"

	"github.com/The127/ioc"
	"github.com/google/uuid"
)

type TemplateFieldInput struct {
	FieldKey     string
	Label        string
	FieldType    repositories.TemplateFieldType
	DefaultValue *string
	Placeholder  *string
	HelpText     *string
	IsRequired   bool
	SortOrder    *int
}

func validateTemplateFields(fields []TemplateFieldInput) error {
	for _, field := range fields {
		if strings.TrimSpace(field.FieldKey) == "" {
			return fmt.Errorf("template field key is required: %w", utils.ErrHttpBadRequest)
		}
		if strings.TrimSpace(field.Label) == "" {
			return fmt.Errorf("template field %s needs a label: %w", field.FieldKey, utils.ErrHttpBadRequest)
		}
		if !field.FieldType.IsValid() {
			return fmt.Errorf("template field %s has unknown type %q: %w", field.FieldKey, field.FieldType, utils.ErrHttpBadRequest)
		}
	}

	duplicate, ok := utils.FirstDuplicate(fields, func(f TemplateFieldInput) string {
		return f.FieldKey
	})
	if ok {
		return fmt.Errorf("duplicate template field key %s: %w", duplicate, utils.ErrHttpBadRequest)
	}

	return nil
}

// replaceTemplateFields swaps the complete field set of the template. It runs
// inside the request transaction so readers never see a partial set.
func replaceTemplateFields(ctx context.Context, templateId uuid.UUID, fields []TemplateFieldInput) error {
	scope := middlewares.GetScope(ctx)
	templateFieldRepository := ioc.GetDependency[repositories.TemplateFieldRepository](scope)

	err := templateFieldRepository.DeleteByTemplate(ctx, templateId)
	if err != nil {
		return fmt.Errorf("deleting template fields: %w", err)
	}

	for i, input := range fields {
		field := repositories.NewTemplateField(templateId, input.FieldKey, input.Label, input.FieldType)
		field.SetDefaultValue(input.DefaultValue)
		field.SetPlaceholder(input.Placeholder)
		field.SetHelpText(input.HelpText)
		field.SetIsRequired(input.IsRequired)
		if input.SortOrder != nil {
			field.SetSortOrder(*input.SortOrder)
		} else {
			field.SetSortOrder(i)
		}

		err = templateFieldRepository.Insert(ctx, field)
		if err != nil {
			return fmt.Errorf("inserting template field %s: %w", input.FieldKey, err)
		}
	}

	return nil
}

func ensureCampaignExists(ctx context.Context, campaignId *uuid.UUID) error {
	if campaignId == nil {
		return nil
	}

	scope := middlewares.GetScope(ctx)
	campaignRepository := ioc.GetDependency[repositories.CampaignRepository](scope)
	campaign, err := campaignRepository.First(ctx, repositories.NewCampaignFilter().Id(*campaignId))
	if err != nil {
		return fmt.Errorf("getting campaign: %w", err)
	}

	if campaign == nil {
		return fmt.Errorf("campaign %s does not exist: %w", campaignId, utils.ErrHttpBadRequest)
	}

	return nil
}
