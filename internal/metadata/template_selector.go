package metadata

import (
	"github.com/rhofkens/AI-presenter/internal/catalog"
)

// TemplateOption is one control of the selector
type TemplateOption struct {
	Template catalog.TemplateType `json:"template"`
	Icon     string               `json:"icon"`
	Selected bool                 `json:"selected"`
}

// TemplateSelector offers one option per fixed template with at most one selected
type TemplateSelector struct {
	selected catalog.TemplateType
	disabled bool
	onChange func(catalog.TemplateType)
}

func NewTemplateSelector(onChange func(catalog.TemplateType)) *TemplateSelector {
	return &TemplateSelector{onChange: onChange}
}

// Select marks t as selected and invokes the change callback, also when t is
// already selected. Unknown templates have no control and are ignored.
func (ts *TemplateSelector) Select(t catalog.TemplateType) bool {
	if ts.disabled || !catalog.IsTemplate(string(t)) {
		return false
	}
	ts.selected = t
	if ts.onChange != nil {
		ts.onChange(t)
	}
	return true
}

// Selected returns the selected template, or "" when none is
func (ts *TemplateSelector) Selected() catalog.TemplateType {
	return ts.selected
}

func (ts *TemplateSelector) Options() []TemplateOption {
	templates := catalog.Templates()
	options := make([]TemplateOption, 0, len(templates))
	for _, t := range templates {
		options = append(options, TemplateOption{
			Template: t,
			Icon:     catalog.TemplateIcon(t),
			Selected: t == ts.selected,
		})
	}
	return options
}

func (ts *TemplateSelector) SetDisabled(disabled bool) {
	ts.disabled = disabled
}
