package handlers

import (
	"context"
	"net/http"
	"strconv"

	"bpo-website/internal/models"
)

type enrollmentService interface {
	Enroll(ctx context.Context, req models.EnrollmentRequest) (*models.EnrollmentReceipt, error)
	List(ctx context.Context, f models.EnrollmentFilter) ([]*models.Enrollment, error)
}

type EnrollmentHandler struct {
	svc enrollmentService
}

func NewEnrollmentHandler(svc enrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{svc: svc}
}

func (h *EnrollmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.EnrollmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	receipt, err := h.svc.Enroll(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err, "Failed to submit enrollment. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, models.SubmissionResponse{
		Success: true,
		Message: "Enrollment received. Our training team will contact you with next steps.",
		Data:    receipt,
	})
}

func (h *EnrollmentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))

	items, err := h.svc.List(r.Context(), models.EnrollmentFilter{
		Status: q.Get("status"),
		Email:  q.Get("email"),
		Limit:  limit,
	})
	if err != nil {
		handleServiceError(w, r, err, "Failed to load enrollments")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":  items,
		"count": len(items),
	})
}
