package metadata

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/rhofkens/AI-presenter/internal/catalog"
)

// TagInput collects tags typed one at a time. Rejected entries are dropped
// silently; the form-level validation never sees them.
type TagInput struct {
	tags     []catalog.TagType
	max      int
	disabled bool
	onChange func([]catalog.TagType)
}

// NewTagInput creates a tag input holding at most maxTags entries
// (MaxTags when maxTags <= 0). onChange may be nil.
func NewTagInput(maxTags int, onChange func([]catalog.TagType)) *TagInput {
	if maxTags <= 0 {
		maxTags = MaxTags
	}
	return &TagInput{
		tags:     []catalog.TagType{},
		max:      maxTags,
		onChange: onChange,
	}
}

// Commit normalizes raw and appends it. It reports whether the list changed.
func (ti *TagInput) Commit(raw string) bool {
	if ti.disabled {
		return false
	}

	tag := strings.ToLower(strings.TrimSpace(raw))
	if tag == "" ||
		lo.Contains(ti.tags, catalog.TagType(tag)) ||
		len(ti.tags) >= ti.max ||
		!catalog.IsTag(tag) {
		return false
	}

	ti.tags = append(slices.Clone(ti.tags), catalog.TagType(tag))
	ti.notify()
	return true
}

// Remove drops tag from the list; removing an absent tag is a no-op.
func (ti *TagInput) Remove(tag catalog.TagType) {
	if ti.disabled {
		return
	}
	ti.tags = lo.Filter(ti.tags, func(t catalog.TagType, _ int) bool {
		return t != tag
	})
	ti.notify()
}

// Tags returns a copy of the current list
func (ti *TagInput) Tags() []catalog.TagType {
	return slices.Clone(ti.tags)
}

// InputVisible is false once the list is full; the text field is hidden,
// not merely disabled.
func (ti *TagInput) InputVisible() bool {
	return len(ti.tags) < ti.max
}

func (ti *TagInput) SetDisabled(disabled bool) {
	ti.disabled = disabled
}

func (ti *TagInput) notify() {
	if ti.onChange != nil {
		ti.onChange(ti.Tags())
	}
}
