package catalog

// TagType is a fixed-vocabulary label attached to a project
type TagType string

const (
	TagCamera    TagType = "camera"
	TagLight     TagType = "light"
	TagStreaming TagType = "streaming"
	TagEditing   TagType = "editing"
	TagAudio     TagType = "audio"
	TagBusiness  TagType = "business"
	TagEducation TagType = "education"
	TagMarketing TagType = "marketing"
	TagTechnical TagType = "technical"
)

var tagOrder = [...]TagType{
	TagCamera,
	TagLight,
	TagStreaming,
	TagEditing,
	TagAudio,
	TagBusiness,
	TagEducation,
	TagMarketing,
	TagTechnical,
}

var tagColors = map[TagType]string{
	TagCamera:    "bg-blue-100 text-blue-800",
	TagLight:     "bg-yellow-100 text-yellow-800",
	TagStreaming: "bg-purple-100 text-purple-800",
	TagEditing:   "bg-green-100 text-green-800",
	TagAudio:     "bg-red-100 text-red-800",
	TagBusiness:  "bg-gray-100 text-gray-800",
	TagEducation: "bg-indigo-100 text-indigo-800",
	TagMarketing: "bg-pink-100 text-pink-800",
	TagTechnical: "bg-cyan-100 text-cyan-800",
}

// Tags returns the whole tag vocabulary in display order.
func Tags() []TagType {
	out := make([]TagType, len(tagOrder))
	copy(out, tagOrder[:])
	return out
}

// IsTag reports whether s is part of the tag vocabulary. The check is exact:
// callers normalize input first.
func IsTag(s string) bool {
	_, ok := tagColors[TagType(s)]
	return ok
}

// TagColor returns the display color classes for t, or "" for unknown tags
func TagColor(t TagType) string {
	return tagColors[t]
}
