package handlers

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"sort"
	"strings"

	"bpo-website/internal/middleware"
	"bpo-website/internal/models"
	"bpo-website/internal/services"
)

const maxJSONBody = 1 << 20

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// decodeJSON reads a bounded JSON body into v, answering 400 itself on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return false
	}
	return true
}

// isFormPost reports whether the body is an HTML form submission rather
// than JSON.
func isFormPost(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mt == "application/x-www-form-urlencoded" || mt == "multipart/form-data"
}

// parseFormBody parses a bounded form body, answering 400 itself on failure.
func parseFormBody(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	var err error
	if mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mt == "multipart/form-data" {
		err = r.ParseMultipartForm(maxJSONBody)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid form body", r))
		return false
	}
	return true
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get(middleware.RequestIDHeader),
		},
	}
}

func errorRespWithFields(code, message string, fields map[string]string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			Fields:    fields,
			RequestID: r.Header.Get(middleware.RequestIDHeader),
		},
	}
}

// handleServiceError maps service errors onto the error envelope. internalMsg
// is shown for failures whose details must not reach the browser.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error, internalMsg string) {
	var (
		ve *services.ValidationError
		ue *services.UnauthorizedError
	)
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", validationMessage(ve.Fields), ve.Fields, r))
	case errors.Is(err, services.ErrNotConfigured):
		writeJSON(w, http.StatusServiceUnavailable, errorResp("SERVICE_NOT_CONFIGURED", "This service is not configured", r))
	case errors.As(err, &ue):
		writeJSON(w, http.StatusUnauthorized, errorResp("UNAUTHORIZED", ue.Message, r))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", internalMsg, r))
	}
}

// validationMessage names the missing required fields, if any.
func validationMessage(fields map[string]string) string {
	var missing []string
	for name, msg := range fields {
		if strings.HasSuffix(msg, "is required") {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return "Validation failed"
	}
	sort.Strings(missing)
	return "Missing required fields: " + strings.Join(missing, ", ")
}
