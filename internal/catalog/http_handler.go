package catalog

import (
	"net/http"

	"github.com/rhofkens/AI-presenter/internal/httputil"
)

type TemplateEntry struct {
	Name TemplateType `json:"name"`
	Icon string       `json:"icon"`
}

type TagEntry struct {
	Name  TagType `json:"name"`
	Color string  `json:"color"`
}

// Response is the body of GET /api/catalog
type Response struct {
	Templates []TemplateEntry `json:"templates"`
	Tags      []TagEntry      `json:"tags"`
}

// Snapshot builds the catalog response in display order
func Snapshot() Response {
	resp := Response{
		Templates: make([]TemplateEntry, 0, len(templateOrder)),
		Tags:      make([]TagEntry, 0, len(tagOrder)),
	}
	for _, t := range templateOrder {
		resp.Templates = append(resp.Templates, TemplateEntry{Name: t, Icon: templateIcons[t]})
	}
	for _, t := range tagOrder {
		resp.Tags = append(resp.Tags, TagEntry{Name: t, Color: tagColors[t]})
	}
	return resp
}

// HandleGetCatalog handles GET /api/catalog requests
func HandleGetCatalog(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, Snapshot())
}
