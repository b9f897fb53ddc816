package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"bpo-website/internal/cms"
	"bpo-website/internal/models"
	"bpo-website/internal/services"
)

// Multipart overhead allowed on top of the resume itself.
const multipartSlack = 1 << 20

type submissionService interface {
	SubmitApplication(ctx context.Context, app models.JobApplication, resume *models.ResumeFile) (*cms.CreatedRecord, error)
	SubmitPartnership(ctx context.Context, inq models.PartnershipInquiry) (*cms.CreatedRecord, error)
}

type SubmissionHandler struct {
	svc submissionService
}

func NewSubmissionHandler(svc submissionService) *SubmissionHandler {
	return &SubmissionHandler{svc: svc}
}

func (h *SubmissionHandler) JobApplication(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, services.MaxResumeSize+multipartSlack)
	if err := r.ParseMultipartForm(services.MaxResumeSize + multipartSlack); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed",
				map[string]string{"resume": services.MsgResumeSize}, r))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid multipart form", r))
		return
	}
	defer r.MultipartForm.RemoveAll()

	app := models.JobApplication{
		FullName:    r.FormValue("fullName"),
		Email:       r.FormValue("email"),
		Phone:       r.FormValue("phone"),
		Location:    r.FormValue("location"),
		LinkedIn:    strings.TrimSpace(r.FormValue("linkedin")),
		CoverLetter: r.FormValue("coverLetter"),
		JobTitle:    r.FormValue("jobTitle"),
	}

	resume, err := readResume(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Could not read the uploaded file", r))
		return
	}

	rec, err := h.svc.SubmitApplication(r.Context(), app, resume)
	if err != nil {
		msg := services.MsgApplicationFail
		var ue *services.UpstreamError
		if errors.As(err, &ue) && ue.Step == "upload" {
			msg = services.MsgUploadFailed
		}
		handleServiceError(w, r, err, msg)
		return
	}

	writeJSON(w, http.StatusOK, models.SubmissionResponse{
		Success: true,
		Message: "Application submitted successfully",
		Data:    rec,
	})
}

// readResume returns nil when no file was attached.
func readResume(r *http.Request) (*models.ResumeFile, error) {
	file, header, err := r.FormFile("resume")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, services.MaxResumeSize+1))
	if err != nil {
		return nil, err
	}

	size := header.Size
	if size == 0 {
		size = int64(len(data))
	}
	return &models.ResumeFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        size,
		Data:        data,
	}, nil
}

func (h *SubmissionHandler) Partnership(w http.ResponseWriter, r *http.Request) {
	var inq models.PartnershipInquiry
	if !decodeJSON(w, r, &inq) {
		return
	}

	rec, err := h.svc.SubmitPartnership(r.Context(), inq)
	if err != nil {
		handleServiceError(w, r, err, "Failed to submit inquiry. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, models.SubmissionResponse{
		Success: true,
		Message: "Thank you for your interest in partnering with us. We will be in touch shortly.",
		Data:    rec,
	})
}
