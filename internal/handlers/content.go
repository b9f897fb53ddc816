package handlers

import (
	"context"
	"net/http"

	"bpo-website/internal/content"
)

type contentSource interface {
	TrainingPrograms(ctx context.Context) content.List[content.TrainingProgram]
	InsightList(ctx context.Context, insightType string) content.List[content.Insight]
	ImpactStory(ctx context.Context) content.Resolved[content.ImpactStory]
	SiteSettings(ctx context.Context) content.Resolved[content.SiteSettings]
}

// ContentHandler serves resolved content as JSON. Responses always succeed;
// source reports where the data came from.
type ContentHandler struct {
	content contentSource
}

func NewContentHandler(src contentSource) *ContentHandler {
	return &ContentHandler{content: src}
}

type contentResponse struct {
	Data   interface{} `json:"data"`
	Source string      `json:"source"`
}

func listResponse[T any](l content.List[T]) contentResponse {
	items := l.Items
	if items == nil {
		items = []T{}
	}
	return contentResponse{Data: items, Source: l.State.String()}
}

func singleResponse[T any](res content.Resolved[T]) contentResponse {
	source := "fallback"
	if res.Live {
		source = "cms"
	}
	return contentResponse{Data: res.Value, Source: source}
}

func (h *ContentHandler) TrainingPrograms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, listResponse(h.content.TrainingPrograms(r.Context())))
}

func (h *ContentHandler) Insights(w http.ResponseWriter, r *http.Request) {
	t := r.URL.Query().Get("type")
	if !content.ValidInsightType(t) {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Unknown insight type",
			map[string]string{"type": "type must be blog, whitepaper or news"}, r))
		return
	}
	writeJSON(w, http.StatusOK, listResponse(h.content.InsightList(r.Context(), t)))
}

func (h *ContentHandler) ImpactStory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, singleResponse(h.content.ImpactStory(r.Context())))
}

func (h *ContentHandler) SiteSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, singleResponse(h.content.SiteSettings(r.Context())))
}
