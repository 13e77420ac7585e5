package metadata

import (
	"encoding/json"
	"slices"

	"github.com/rhofkens/AI-presenter/internal/catalog"
)

// Input is the raw, unvalidated content of the metadata form
type Input struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Template    string   `json:"template"`
	Tags        []string `json:"tags"`
}

// Record is a validated set of project metadata. It can only be obtained from
// Validate or Form.Submit and is immutable afterwards.
type Record struct {
	title       string
	description string
	template    catalog.TemplateType
	tags        []catalog.TagType
}

func (r Record) Title() string                  { return r.title }
func (r Record) Description() string            { return r.description }
func (r Record) Template() catalog.TemplateType { return r.template }

// Tags returns a copy of the record's tags; never nil.
func (r Record) Tags() []catalog.TagType {
	out := make([]catalog.TagType, len(r.tags))
	copy(out, r.tags)
	return out
}

// Equal reports whether two records hold the same values
func (r Record) Equal(other Record) bool {
	return r.title == other.title &&
		r.description == other.description &&
		r.template == other.template &&
		slices.Equal(r.tags, other.tags)
}

type recordJSON struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Template    catalog.TemplateType `json:"template"`
	Tags        []catalog.TagType    `json:"tags"`
}

func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		Title:       r.title,
		Description: r.description,
		Template:    r.template,
		Tags:        r.Tags(),
	})
}
