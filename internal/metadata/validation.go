package metadata

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/rhofkens/AI-presenter/internal/catalog"
)

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
	MaxTags              = 5
)

// Field names used as FieldErrors keys
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldTemplate    = "template"
	FieldTags        = "tags"
)

// FieldErrors maps a form field to the single message shown next to it
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, field := range []string{FieldTitle, FieldDescription, FieldTemplate, FieldTags} {
		if msg, ok := fe[field]; ok {
			parts = append(parts, field+": "+msg)
		}
	}
	return strings.Join(parts, "; ")
}

type recordSchema struct {
	Title       string   `validate:"required,max=100"`
	Description string   `validate:"max=500"`
	Template    string   `validate:"required,template"`
	Tags        []string `validate:"max=5,unique,dive,tag"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails on an empty tag or a nil func.
	_ = v.RegisterValidation("template", func(fl validator.FieldLevel) bool {
		return catalog.IsTemplate(fl.Field().String())
	})
	_ = v.RegisterValidation("tag", func(fl validator.FieldLevel) bool {
		return catalog.IsTag(fl.Field().String())
	})
	return v
}

var messages = map[string]map[string]string{
	"Title": {
		"required": "Title is required",
		"max":      "Title must be less than 100 characters",
	},
	"Description": {
		"max": "Description must be less than 500 characters",
	},
	"Template": {
		"required": "Please select a template",
		"template": "Please select a valid template",
	},
	"Tags": {
		"max":    "Maximum 5 tags allowed",
		"unique": "Tags must be unique",
		"tag":    "Please select valid tags",
	},
}

// Validate checks every rule at once and returns either the record or one
// message per failing field.
func Validate(in Input) (Record, FieldErrors) {
	schema := recordSchema{
		Title:       in.Title,
		Description: in.Description,
		Template:    in.Template,
		Tags:        in.Tags,
	}

	err := validate.Struct(schema)
	if err == nil {
		return Record{
			title:       in.Title,
			description: in.Description,
			template:    catalog.TemplateType(in.Template),
			tags: lo.Map(in.Tags, func(t string, _ int) catalog.TagType {
				return catalog.TagType(t)
			}),
		}, nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		// InvalidValidationError only happens for non-struct input
		panic(err)
	}

	fieldErrs := FieldErrors{}
	for _, fe := range validationErrs {
		name, _, _ := strings.Cut(fe.StructField(), "[")
		field := strings.ToLower(name)
		if _, seen := fieldErrs[field]; seen {
			continue
		}
		fieldErrs[field] = messages[name][fe.Tag()]
	}
	return Record{}, fieldErrs
}
