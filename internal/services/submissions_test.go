package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"bpo-website/internal/cms"
	"bpo-website/internal/models"
)

type stubContentWriter struct {
	uploadErr error
	createErr error
	deleteErr error

	uploads     []string
	uploadBytes []byte
	creates     []string
	created     []any
	deletes     []int64
}

func (s *stubContentWriter) Upload(ctx context.Context, filename, contentType string, r io.Reader) (*cms.UploadedFile, error) {
	s.uploads = append(s.uploads, filename)
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	b, _ := io.ReadAll(r)
	s.uploadBytes = b
	return &cms.UploadedFile{ID: 42, Name: filename, URL: "/uploads/" + filename}, nil
}

func (s *stubContentWriter) Create(ctx context.Context, collection string, data any) (*cms.CreatedRecord, error) {
	s.creates = append(s.creates, collection)
	s.created = append(s.created, data)
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &cms.CreatedRecord{ID: 7, DocumentID: "doc7"}, nil
}

func (s *stubContentWriter) Delete(ctx context.Context, fileID int64) error {
	s.deletes = append(s.deletes, fileID)
	return s.deleteErr
}

func validApplication() models.JobApplication {
	return models.JobApplication{
		FullName:    "Brian Kiptoo",
		Email:       "brian@example.com",
		Phone:       "+254700000000",
		Location:    "Nairobi",
		CoverLetter: "I have five years of contact centre experience.",
		JobTitle:    "Customer Experience Agent",
	}
}

func validResume() *models.ResumeFile {
	data := []byte("%PDF-1.4 not really")
	return &models.ResumeFile{Filename: "cv.pdf", ContentType: "application/pdf", Size: int64(len(data)), Data: data}
}

func TestSubmitApplication_Success(t *testing.T) {
	w := &stubContentWriter{}
	svc := NewSubmissionService(w, nil)

	rec, err := svc.SubmitApplication(context.Background(), validApplication(), validResume())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID != 7 {
		t.Fatalf("expected record id 7, got %d", rec.ID)
	}
	if len(w.uploads) != 1 || len(w.creates) != 1 || w.creates[0] != CollectionJobApplications {
		t.Fatalf("expected one upload then one create, got uploads=%v creates=%v", w.uploads, w.creates)
	}

	app, ok := w.created[0].(models.JobApplication)
	if !ok {
		t.Fatalf("unexpected record type %T", w.created[0])
	}
	if app.Resume != 42 {
		t.Fatalf("expected record to reference uploaded file 42, got %d", app.Resume)
	}
	if app.Status != models.StatusPending {
		t.Fatalf("expected pending status, got %q", app.Status)
	}
	if string(w.uploadBytes) != "%PDF-1.4 not really" {
		t.Fatalf("uploaded bytes differ")
	}
}

func TestSubmitApplication_ValidationGate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.JobApplication)
		resume    *models.ResumeFile
		wantField string
		wantMsg   string
	}{
		{"missing cover letter", func(a *models.JobApplication) { a.CoverLetter = "" }, validResume(), "coverLetter", "coverLetter is required"},
		{"blank job title", func(a *models.JobApplication) { a.JobTitle = "   " }, validResume(), "jobTitle", "jobTitle is required"},
		{"bad email", func(a *models.JobApplication) { a.Email = "nope" }, validResume(), "email", "Invalid email format"},
		{"no file", func(a *models.JobApplication) {}, nil, "resume", MsgResumeRequired},
		{"wrong extension", func(a *models.JobApplication) {}, &models.ResumeFile{Filename: "cv.png", ContentType: "image/png", Size: 10}, "resume", MsgResumeType},
		{"mime mismatch", func(a *models.JobApplication) {}, &models.ResumeFile{Filename: "cv.pdf", ContentType: "text/html", Size: 10}, "resume", MsgResumeType},
		{"too large", func(a *models.JobApplication) {}, &models.ResumeFile{Filename: "cv.docx", ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", Size: MaxResumeSize + 1}, "resume", MsgResumeSize},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := &stubContentWriter{}
			svc := NewSubmissionService(w, nil)

			app := validApplication()
			tc.mutate(&app)
			_, err := svc.SubmitApplication(context.Background(), app, tc.resume)

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if ve.Fields[tc.wantField] != tc.wantMsg {
				t.Fatalf("expected %s=%q, got %v", tc.wantField, tc.wantMsg, ve.Fields)
			}
			if len(w.uploads) != 0 || len(w.creates) != 0 {
				t.Fatalf("no downstream call allowed on validation failure")
			}
		})
	}
}

func TestSubmitApplication_UploadFailureCreatesNothing(t *testing.T) {
	w := &stubContentWriter{uploadErr: &cms.StatusError{Op: "upload", StatusCode: 500}}
	svc := NewSubmissionService(w, nil)

	_, err := svc.SubmitApplication(context.Background(), validApplication(), validResume())

	var ue *UpstreamError
	if !errors.As(err, &ue) || ue.Step != "upload" {
		t.Fatalf("expected upload step failure, got %v", err)
	}
	if len(w.creates) != 0 {
		t.Fatalf("record must not be created after failed upload")
	}
}

func TestSubmitApplication_CreateFailure(t *testing.T) {
	w := &stubContentWriter{createErr: errors.New("boom")}
	svc := NewSubmissionService(w, nil)

	_, err := svc.SubmitApplication(context.Background(), validApplication(), validResume())

	var ue *UpstreamError
	if !errors.As(err, &ue) || ue.Step != "create" {
		t.Fatalf("expected create step failure, got %v", err)
	}
	if len(w.deletes) != 1 || w.deletes[0] != 42 {
		t.Fatalf("expected uploaded file 42 to be removed, got %v", w.deletes)
	}
}

func TestSubmitApplication_CreateFailureCleanupFails(t *testing.T) {
	w := &stubContentWriter{createErr: errors.New("boom"), deleteErr: errors.New("gone away")}
	svc := NewSubmissionService(w, nil)

	_, err := svc.SubmitApplication(context.Background(), validApplication(), validResume())

	var ue *UpstreamError
	if !errors.As(err, &ue) || ue.Step != "create" {
		t.Fatalf("the create failure must be reported, got %v", err)
	}
	if len(w.deletes) != 1 {
		t.Fatalf("expected one cleanup attempt, got %v", w.deletes)
	}
}

func TestSubmitApplication_SuccessKeepsUpload(t *testing.T) {
	w := &stubContentWriter{}
	svc := NewSubmissionService(w, nil)

	if _, err := svc.SubmitApplication(context.Background(), validApplication(), validResume()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(w.deletes) != 0 {
		t.Fatalf("a stored application keeps its resume, got deletes %v", w.deletes)
	}
}

func TestSubmitApplication_NotConfigured(t *testing.T) {
	w := &stubContentWriter{uploadErr: cms.ErrNotConfigured}
	svc := NewSubmissionService(w, nil)

	_, err := svc.SubmitApplication(context.Background(), validApplication(), validResume())
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestCheckResume_AcceptsGenericContentType(t *testing.T) {
	for _, ct := range []string{"", "application/octet-stream", "application/pdf; charset=binary"} {
		f := &models.ResumeFile{Filename: "CV.PDF", ContentType: ct, Size: 100}
		if msg := checkResume(f); msg != "" {
			t.Errorf("content type %q: unexpected rejection %q", ct, msg)
		}
	}
}

func TestSubmitPartnership(t *testing.T) {
	w := &stubContentWriter{}
	svc := NewSubmissionService(w, nil)

	inq := models.PartnershipInquiry{
		CompanyName:     "Acme Health",
		ContactName:     "Lucy",
		Email:           "lucy@acme.example",
		PartnershipType: "referral",
		Message:         "Let's talk",
	}
	if _, err := svc.SubmitPartnership(context.Background(), inq); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(w.creates) != 1 || w.creates[0] != CollectionPartnershipInquiries {
		t.Fatalf("expected partnership record, got %v", w.creates)
	}
	if got := w.created[0].(models.PartnershipInquiry).Status; got != models.StatusPending {
		t.Fatalf("expected pending status, got %q", got)
	}

	inq.PartnershipType = ""
	_, err := svc.SubmitPartnership(context.Background(), inq)
	var ve *ValidationError
	if !errors.As(err, &ve) || !strings.Contains(ve.Fields["partnershipType"], "required") {
		t.Fatalf("expected partnershipType validation error, got %v", err)
	}
}
