package handlers

import (
	"context"
	"net/http"

	"bpo-website/internal/models"
	"bpo-website/internal/services"
)

type leadSubmitter interface {
	Submit(ctx context.Context, req models.LeadRequest) (*models.Lead, error)
}

type LeadHandler struct {
	leads leadSubmitter
}

func NewLeadHandler(leads leadSubmitter) *LeadHandler {
	return &LeadHandler{leads: leads}
}

func (h *LeadHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.LeadRequest
	if isFormPost(r) {
		if !parseFormBody(w, r) {
			return
		}
		req = models.LeadRequest{
			Name:    r.PostFormValue("name"),
			Email:   r.PostFormValue("email"),
			Company: r.PostFormValue("company"),
			Phone:   r.PostFormValue("phone"),
			Service: r.PostFormValue("service"),
			Message: r.PostFormValue("message"),
		}
	} else if !decodeJSON(w, r, &req) {
		return
	}

	lead, err := h.leads.Submit(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err, "Failed to submit your message. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, models.SubmissionResponse{
		Success: true,
		Message: services.LeadAcknowledgement,
		Data:    map[string]interface{}{"id": lead.ID},
	})
}
