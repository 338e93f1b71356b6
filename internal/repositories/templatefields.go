package repositories

import (
	"Listline/utils"
	"context"

	"github.com/google/uuid"
)

type TemplateFieldType string

const (
	TemplateFieldTypeText     TemplateFieldType = "text"
	TemplateFieldTypeTextarea TemplateFieldType = "textarea"
	TemplateFieldTypeEmail    TemplateFieldType = "email"
	TemplateFieldTypePhone    TemplateFieldType = "phone"
	TemplateFieldTypeUrl      TemplateFieldType = "url"
	TemplateFieldTypeImage    TemplateFieldType = "image"
	TemplateFieldTypeColor    TemplateFieldType = "color"
	TemplateFieldTypeNumber   TemplateFieldType = "number"
	TemplateFieldTypeDate     TemplateFieldType = "date"
)

var AllTemplateFieldTypes = []TemplateFieldType{
	TemplateFieldTypeText,
	TemplateFieldTypeTextarea,
	TemplateFieldTypeEmail,
	TemplateFieldTypePhone,
	TemplateFieldTypeUrl,
	TemplateFieldTypeImage,
	TemplateFieldTypeColor,
	TemplateFieldTypeNumber,
	TemplateFieldTypeDate,
}

func (t TemplateFieldType) IsValid() bool {
	for _, known := range AllTemplateFieldTypes {
		if t == known {
			return true
		}
	}
	return false
}

type TemplateField struct {
	ModelBase

	templateId   uuid.UUID
	fieldKey     string
	label        string
	fieldType    TemplateFieldType
	defaultValue *string
	placeholder  *string
	helpText     *string
	isRequired   bool
	sortOrder    int
}

func NewTemplateField(templateId uuid.UUID, fieldKey string, label string, fieldType TemplateFieldType) *TemplateField {
	return &TemplateField{
		ModelBase:  NewModelBase(),
		templateId: templateId,
		fieldKey:   fieldKey,
		label:      label,
		fieldType:  fieldType,
	}
}

func (f *TemplateField) GetScanPointers() []any {
	return []any{
		&f.id,
		&f.auditCreatedAt,
		&f.auditUpdatedAt,
		&f.version,
		&f.templateId,
		&f.fieldKey,
		&f.label,
		&f.fieldType,
		&f.defaultValue,
		&f.placeholder,
		&f.helpText,
		&f.isRequired,
		&f.sortOrder,
	}
}

func (f *TemplateField) TemplateId() uuid.UUID {
	return f.templateId
}

func (f *TemplateField) FieldKey() string {
	return f.fieldKey
}

func (f *TemplateField) Label() string {
	return f.label
}

func (f *TemplateField) FieldType() TemplateFieldType {
	return f.fieldType
}

func (f *TemplateField) DefaultValue() *string {
	return f.defaultValue
}

func (f *TemplateField) SetDefaultValue(defaultValue *string) {
	f.TrackChange("default_value", defaultValue)
	f.defaultValue = defaultValue
}

func (f *TemplateField) Placeholder() *string {
	return f.placeholder
}

func (f *TemplateField) SetPlaceholder(placeholder *string) {
	f.TrackChange("placeholder", placeholder)
	f.placeholder = placeholder
}

func (f *TemplateField) HelpText() *string {
	return f.helpText
}

func (f *TemplateField) SetHelpText(helpText *string) {
	f.TrackChange("help_text", helpText)
	f.helpText = helpText
}

func (f *TemplateField) IsRequired() bool {
	return f.isRequired
}

func (f *TemplateField) SetIsRequired(isRequired bool) {
	f.TrackChange("is_required", isRequired)
	f.isRequired = isRequired
}

func (f *TemplateField) SortOrder() int {
	return f.sortOrder
}

func (f *TemplateField) SetSortOrder(sortOrder int) {
	f.TrackChange("sort_order", sortOrder)
	f.sortOrder = sortOrder
}

type TemplateFieldFilter struct {
	templateId *uuid.UUID
}

func NewTemplateFieldFilter() TemplateFieldFilter {
	return TemplateFieldFilter{}
}

func (f TemplateFieldFilter) Clone() TemplateFieldFilter {
	return f
}

func (f TemplateFieldFilter) TemplateId(templateId uuid.UUID) TemplateFieldFilter {
	filter := f.Clone()
	filter.templateId = &templateId
	return filter
}

func (f TemplateFieldFilter) HasTemplateId() bool {
	return f.templateId != nil
}

func (f TemplateFieldFilter) GetTemplateId() uuid.UUID {
	return utils.ZeroIfNil(f.templateId)
}

//go:generate mockgen -destination=./mocks/templatefield_repository.go -package=mocks Listline/internal/repositories TemplateFieldRepository
type TemplateFieldRepository interface {
	List(ctx context.Context, filter TemplateFieldFilter) ([]*TemplateField, int, error)
	Insert(ctx context.Context, templateField *TemplateField) error
	DeleteByTemplate(ctx context.Context, templateId uuid.UUID) error
}
