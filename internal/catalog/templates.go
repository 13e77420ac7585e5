package catalog

// TemplateType is one of the fixed presentation style categories
type TemplateType string

const (
	TemplateBusiness    TemplateType = "Business"
	TemplateEducational TemplateType = "Educational"
	TemplateMarketing   TemplateType = "Marketing"
	TemplateTechnical   TemplateType = "Technical"
	TemplateCustom      TemplateType = "Custom"
)

// templateOrder is the display order of the selector
var templateOrder = [...]TemplateType{
	TemplateBusiness,
	TemplateEducational,
	TemplateMarketing,
	TemplateTechnical,
	TemplateCustom,
}

var templateIcons = map[TemplateType]string{
	TemplateBusiness:    "briefcase",
	TemplateEducational: "book-open",
	TemplateMarketing:   "trending-up",
	TemplateTechnical:   "code",
	TemplateCustom:      "layout",
}

// String returns the display name of the template
func (t TemplateType) String() string {
	return string(t)
}

// Templates returns every template in display order.
func Templates() []TemplateType {
	out := make([]TemplateType, len(templateOrder))
	copy(out, templateOrder[:])
	return out
}

// IsTemplate reports whether s names one of the fixed templates
func IsTemplate(s string) bool {
	_, ok := templateIcons[TemplateType(s)]
	return ok
}

// TemplateIcon returns the icon identifier for t, or "" for unknown templates
func TemplateIcon(t TemplateType) string {
	return templateIcons[t]
}
