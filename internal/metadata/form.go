package metadata

import (
	"slices"

	"github.com/samber/lo"

	"github.com/rhofkens/AI-presenter/internal/catalog"
)

const (
	SubmitLabelEnabled  = "Continue"
	SubmitLabelDisabled = "Upload a presentation first"
)

// Form composes the title, description, template and tag fields. Rules are
// evaluated together on Submit, never per keystroke.
type Form struct {
	title       string
	description string
	template    catalog.TemplateType
	tags        []catalog.TagType
	disabled    bool

	templates *TemplateSelector
	tagInput  *TagInput
}

func NewForm() *Form {
	f := &Form{tags: []catalog.TagType{}}
	f.templates = NewTemplateSelector(func(t catalog.TemplateType) {
		f.template = t
	})
	f.tagInput = NewTagInput(MaxTags, func(tags []catalog.TagType) {
		f.tags = tags
	})
	return f
}

func (f *Form) SetTitle(title string) {
	if !f.disabled {
		f.title = title
	}
}

func (f *Form) SetDescription(description string) {
	if !f.disabled {
		f.description = description
	}
}

func (f *Form) Templates() *TemplateSelector { return f.templates }
func (f *Form) TagInput() *TagInput          { return f.tagInput }

// SetDisabled gates every input. It is a presentation switch, not a rule:
// values already entered are kept.
func (f *Form) SetDisabled(disabled bool) {
	f.disabled = disabled
	f.templates.SetDisabled(disabled)
	f.tagInput.SetDisabled(disabled)
}

func (f *Form) Disabled() bool { return f.disabled }

// SubmitLabel is the text of the submit button
func (f *Form) SubmitLabel() string {
	return SubmitLabel(f.disabled)
}

// SubmitLabel returns the submit button text for the given disabled flag
func SubmitLabel(disabled bool) string {
	if disabled {
		return SubmitLabelDisabled
	}
	return SubmitLabelEnabled
}

// Fill replaces every field with the raw values of in. Unlike the
// individual controls it keeps unknown templates and tags, so a following
// Submit reports them.
func (f *Form) Fill(in Input) {
	if f.disabled {
		return
	}
	f.title = in.Title
	f.description = in.Description
	f.template = catalog.TemplateType(in.Template)
	f.templates.selected = f.template
	f.tags = lo.Map(in.Tags, func(t string, _ int) catalog.TagType {
		return catalog.TagType(t)
	})
	f.tagInput.tags = slices.Clone(f.tags)
}

// Input returns the current field values
func (f *Form) Input() Input {
	return Input{
		Title:       f.title,
		Description: f.description,
		Template:    string(f.template),
		Tags: lo.Map(f.tags, func(t catalog.TagType, _ int) string {
			return string(t)
		}),
	}
}

// Submit validates every field. On failure it returns one message per failing
// field and onComplete is not called. On success onComplete is called exactly
// once with the record and Submit returns nil. A disabled form cannot be
// submitted: nothing is validated and nothing is called.
func (f *Form) Submit(onComplete func(Record)) FieldErrors {
	if f.disabled {
		return nil
	}
	record, errs := Validate(f.Input())
	if errs != nil {
		return errs
	}
	if onComplete != nil {
		onComplete(record)
	}
	return nil
}
