package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"bpo-website/internal/cms"
	"bpo-website/internal/middleware"
	"bpo-website/internal/models"
	"bpo-website/internal/repository"
	"bpo-website/internal/services"
)

type errorBody struct {
	Error models.APIError `json:"error"`
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) models.APIError {
	t.Helper()
	var body errorBody
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return body.Error
}

// ─── Enrollment ───

type stubEnrollmentRepo struct {
	createErr error
	created   *models.Enrollment
}

func (s *stubEnrollmentRepo) Create(ctx context.Context, e *models.Enrollment) error {
	if s.createErr != nil {
		return s.createErr
	}
	e.ID = uuid.New()
	e.Status = models.StatusPending
	e.CreatedAt = time.Now().UTC()
	s.created = e
	return nil
}

func (s *stubEnrollmentRepo) List(ctx context.Context, f models.EnrollmentFilter) ([]*models.Enrollment, error) {
	return []*models.Enrollment{{Email: "ana@x.com", Status: f.Status}}, nil
}

func postJSON(h http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.RequestIDHeader, "req-1")
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestEnrollmentHandler_Create(t *testing.T) {
	repo := &stubEnrollmentRepo{}
	h := NewEnrollmentHandler(services.NewEnrollmentService(repo, nil))

	body := `{"firstName":"Ana","lastName":"Otieno","email":"ana@x.com","trainingProgram":"MRI Imaging Training","trainingType":"online","experienceLevel":"beginner"}`
	rr := postJSON(h.Create, "/api/enrollments", body)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID        string `json:"id"`
			Email     string `json:"email"`
			CreatedAt string `json:"createdAt"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success")
	}
	if _, err := uuid.Parse(resp.Data.ID); err != nil {
		t.Fatalf("expected generated id, got %q", resp.Data.ID)
	}
	if resp.Data.Email != "ana@x.com" {
		t.Fatalf("expected same email, got %q", resp.Data.Email)
	}
	if _, err := time.Parse(time.RFC3339Nano, resp.Data.CreatedAt); err != nil {
		t.Fatalf("expected creation timestamp, got %q", resp.Data.CreatedAt)
	}
}

func TestEnrollmentHandler_MissingProgram(t *testing.T) {
	repo := &stubEnrollmentRepo{}
	h := NewEnrollmentHandler(services.NewEnrollmentService(repo, nil))

	body := `{"firstName":"Ana","lastName":"Otieno","email":"ana@x.com","trainingType":"online","experienceLevel":"beginner"}`
	rr := postJSON(h.Create, "/api/enrollments", body)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
	apiErr := decodeError(t, rr)
	if apiErr.Code != "VALIDATION_ERROR" || !strings.Contains(apiErr.Message, "trainingProgram") {
		t.Fatalf("expected message naming trainingProgram, got %+v", apiErr)
	}
	if apiErr.RequestID != "req-1" {
		t.Fatalf("expected request id echoed, got %q", apiErr.RequestID)
	}
	if repo.created != nil {
		t.Fatalf("nothing may be stored")
	}
}

func TestEnrollmentHandler_NotConfigured(t *testing.T) {
	h := NewEnrollmentHandler(services.NewEnrollmentService(repository.NewEnrollmentRepo(nil), nil))

	body := `{"firstName":"Ana","lastName":"Otieno","email":"ana@x.com","trainingProgram":"MRI","trainingType":"online","experienceLevel":"beginner"}`
	rr := postJSON(h.Create, "/api/enrollments", body)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, rr.Code)
	}
	if decodeError(t, rr).Code != "SERVICE_NOT_CONFIGURED" {
		t.Fatalf("unexpected error code")
	}
}

func TestEnrollmentHandler_InternalError(t *testing.T) {
	h := NewEnrollmentHandler(services.NewEnrollmentService(&stubEnrollmentRepo{createErr: errors.New("pq: connection refused")}, nil))

	body := `{"firstName":"Ana","lastName":"Otieno","email":"ana@x.com","trainingProgram":"MRI","trainingType":"online","experienceLevel":"beginner"}`
	rr := postJSON(h.Create, "/api/enrollments", body)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}
	if strings.Contains(rr.Body.String(), "connection refused") {
		t.Fatalf("internal details leaked: %s", rr.Body.String())
	}
}

func TestEnrollmentHandler_InvalidBody(t *testing.T) {
	h := NewEnrollmentHandler(services.NewEnrollmentService(&stubEnrollmentRepo{}, nil))
	rr := postJSON(h.Create, "/api/enrollments", `{"firstName":`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestEnrollmentHandler_List(t *testing.T) {
	h := NewEnrollmentHandler(services.NewEnrollmentService(&stubEnrollmentRepo{}, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/enrollments?status=pending&email=ana@x.com", nil)
	rr := httptest.NewRecorder()
	h.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp struct {
		Data  []models.Enrollment `json:"data"`
		Count int                 `json:"count"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != 1 || resp.Data[0].Status != "pending" {
		t.Fatalf("unexpected list %+v", resp)
	}
}

// ─── Leads ───

type recordingSink struct {
	leads []*models.Lead
}

func (s *recordingSink) Store(ctx context.Context, lead *models.Lead) error {
	s.leads = append(s.leads, lead)
	return nil
}

func TestLeadHandler_Submit(t *testing.T) {
	sink := &recordingSink{}
	h := NewLeadHandler(services.NewLeadService(nil, nil, sink))

	rr := postJSON(h.Submit, "/api/leads", `{"name":"Grace","email":"grace@example.com","message":"Need support agents"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp models.SubmissionResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != services.LeadAcknowledgement {
		t.Fatalf("unexpected acknowledgement %q", resp.Message)
	}
	if len(sink.leads) != 1 {
		t.Fatalf("expected lead to be stored")
	}
}

func TestLeadHandler_FormEncoded(t *testing.T) {
	sink := &recordingSink{}
	h := NewLeadHandler(services.NewLeadService(nil, nil, sink))

	form := url.Values{
		"name":    {"Grace"},
		"email":   {"grace@example.com"},
		"company": {"Acme Health"},
		"service": {"Medical Billing"},
		"message": {"Need coders"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.Submit(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if len(sink.leads) != 1 || sink.leads[0].Company != "Acme Health" || sink.leads[0].Service != "Medical Billing" {
		t.Fatalf("unexpected stored lead %+v", sink.leads)
	}
}

func TestLeadHandler_MultipartForm(t *testing.T) {
	sink := &recordingSink{}
	h := NewLeadHandler(services.NewLeadService(nil, nil, sink))

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("name", "Grace")
	mw.WriteField("email", "grace@example.com")
	mw.WriteField("message", "Hello")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/leads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	h.Submit(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if len(sink.leads) != 1 {
		t.Fatalf("expected lead to be stored")
	}
}

func TestLeadHandler_FormMissingFields(t *testing.T) {
	h := NewLeadHandler(services.NewLeadService(nil, nil, &recordingSink{}))

	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader("name=Grace"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.Submit(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if msg := decodeError(t, rr).Message; msg != "Missing required fields: email, message" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestLeadHandler_MissingFields(t *testing.T) {
	h := NewLeadHandler(services.NewLeadService(nil, nil, &recordingSink{}))

	rr := postJSON(h.Submit, "/api/leads", `{"name":"Grace"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	apiErr := decodeError(t, rr)
	if apiErr.Message != "Missing required fields: email, message" {
		t.Fatalf("unexpected message %q", apiErr.Message)
	}
}

// ─── Job applications ───

type stubContentWriter struct {
	uploadErr error
	uploads   int
	creates   int
}

func (s *stubContentWriter) Upload(ctx context.Context, filename, contentType string, r io.Reader) (*cms.UploadedFile, error) {
	s.uploads++
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	return &cms.UploadedFile{ID: 11, Name: filename}, nil
}

func (s *stubContentWriter) Delete(ctx context.Context, fileID int64) error {
	return nil
}

func (s *stubContentWriter) Create(ctx context.Context, collection string, data any) (*cms.CreatedRecord, error) {
	s.creates++
	return &cms.CreatedRecord{ID: 5, DocumentID: "abc"}, nil
}

func multipartRequest(t *testing.T, fields map[string]string, filename, contentType string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		mw.WriteField(k, v)
	}
	if filename != "" {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", `form-data; name="resume"; filename="`+filename+`"`)
		hdr.Set("Content-Type", contentType)
		part, err := mw.CreatePart(hdr)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		part.Write(data)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/job-applications", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func applicationFields() map[string]string {
	return map[string]string{
		"fullName":    "Brian Kiptoo",
		"email":       "brian@example.com",
		"phone":       "+254700000000",
		"location":    "Nairobi",
		"coverLetter": "Five years in contact centres.",
		"jobTitle":    "Customer Experience Agent",
	}
}

func TestJobApplication_Success(t *testing.T) {
	w := &stubContentWriter{}
	h := NewSubmissionHandler(services.NewSubmissionService(w, nil))

	rr := httptest.NewRecorder()
	h.JobApplication(rr, multipartRequest(t, applicationFields(), "cv.pdf", "application/pdf", []byte("%PDF-1.4")))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if w.uploads != 1 || w.creates != 1 {
		t.Fatalf("expected upload and create, got %d/%d", w.uploads, w.creates)
	}
}

func TestJobApplication_MissingCoverLetter(t *testing.T) {
	w := &stubContentWriter{}
	h := NewSubmissionHandler(services.NewSubmissionService(w, nil))

	fields := applicationFields()
	delete(fields, "coverLetter")
	rr := httptest.NewRecorder()
	h.JobApplication(rr, multipartRequest(t, fields, "cv.pdf", "application/pdf", []byte("%PDF-1.4")))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if w.uploads != 0 || w.creates != 0 {
		t.Fatalf("no downstream call allowed, got %d/%d", w.uploads, w.creates)
	}
}

func TestJobApplication_FileConstraints(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		size        int
		wantMsg     string
	}{
		{"wrong type", "cv.exe", "application/octet-stream", 10, services.MsgResumeType},
		{"too large", "cv.pdf", "application/pdf", int(services.MaxResumeSize) + 10, services.MsgResumeSize},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := &stubContentWriter{}
			h := NewSubmissionHandler(services.NewSubmissionService(w, nil))

			rr := httptest.NewRecorder()
			h.JobApplication(rr, multipartRequest(t, applicationFields(), tc.filename, tc.contentType, make([]byte, tc.size)))

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rr.Code)
			}
			if got := decodeError(t, rr).Fields["resume"]; got != tc.wantMsg {
				t.Fatalf("expected %q, got %q", tc.wantMsg, got)
			}
			if w.uploads != 0 {
				t.Fatalf("file must not be uploaded")
			}
		})
	}
}

func TestJobApplication_UploadFailure(t *testing.T) {
	w := &stubContentWriter{uploadErr: &cms.StatusError{Op: "upload", StatusCode: 502}}
	h := NewSubmissionHandler(services.NewSubmissionService(w, nil))

	rr := httptest.NewRecorder()
	h.JobApplication(rr, multipartRequest(t, applicationFields(), "cv.docx",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document", []byte("PK")))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if msg := decodeError(t, rr).Message; msg != services.MsgUploadFailed {
		t.Fatalf("unexpected message %q", msg)
	}
	if w.creates != 0 {
		t.Fatalf("no record may be created after a failed upload")
	}
}

func TestJobApplication_NotMultipart(t *testing.T) {
	h := NewSubmissionHandler(services.NewSubmissionService(&stubContentWriter{}, nil))
	rr := postJSON(h.JobApplication, "/api/job-applications", `{"fullName":"x"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestPartnership_NotConfigured(t *testing.T) {
	client := cms.NewClient(cms.Config{}, nil, nil)
	h := NewSubmissionHandler(services.NewSubmissionService(client, nil))

	rr := postJSON(h.Partnership, "/api/partnerships",
		`{"companyName":"Acme","contactName":"Lucy","email":"lucy@acme.example","partnershipType":"referral","message":"hi"}`)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d: %s", rr.Code, rr.Body.String())
	}
}

// ─── Chat & auth ───

type stubReplier struct {
	resp *models.ChatResponse
	err  error
}

func (s *stubReplier) Reply(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	return s.resp, s.err
}

func TestChatHandler(t *testing.T) {
	tests := []struct {
		name     string
		replier  *stubReplier
		wantCode int
		wantMsg  string
	}{
		{"ok", &stubReplier{resp: &models.ChatResponse{Message: models.ChatMessage{Role: "assistant", Content: "hi"}}}, http.StatusOK, ""},
		{"provider failure", &stubReplier{err: &services.UpstreamError{Step: "completion", Err: errors.New("401 invalid key sk-live")}}, http.StatusInternalServerError, "Failed to process chat message"},
		{"not configured", &stubReplier{err: services.ErrNotConfigured}, http.StatusServiceUnavailable, "This service is not configured"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewChatHandler(tc.replier)
			rr := postJSON(h.Reply, "/api/chat", `{"messages":[{"role":"user","content":"hi"}]}`)

			if rr.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rr.Code)
			}
			if tc.wantMsg != "" {
				if msg := decodeError(t, rr).Message; msg != tc.wantMsg {
					t.Fatalf("expected %q, got %q", tc.wantMsg, msg)
				}
			}
		})
	}
}

type stubAuth struct {
	err error
}

func (s *stubAuth) Login(ctx context.Context, req models.LoginRequest) (*models.AuthTokens, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.AuthTokens{AccessToken: "tok", ExpiresIn: 60}, nil
}

func TestAuthHandler_Login(t *testing.T) {
	rr := postJSON(NewAuthHandler(&stubAuth{}).Login, "/api/auth/login", `{"email":"a@b.co","password":"x"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	rr = postJSON(NewAuthHandler(&stubAuth{err: &services.UnauthorizedError{Message: "Invalid email or password"}}).Login,
		"/api/auth/login", `{"email":"a@b.co","password":"x"}`)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}
