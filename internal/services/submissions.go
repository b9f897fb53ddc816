package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"bpo-website/internal/cms"
	"bpo-website/internal/models"
)

// Collections written by form submissions.
const (
	CollectionJobApplications      = "job-applications"
	CollectionPartnershipInquiries = "partnership-inquiries"
)

// MaxResumeSize is the largest accepted resume upload.
const MaxResumeSize int64 = 5 << 20

// User-facing file constraint messages.
const (
	MsgResumeRequired  = "Resume file is required"
	MsgResumeType      = "Only PDF, DOC and DOCX files are allowed"
	MsgResumeSize      = "File size must be less than 5MB"
	MsgUploadFailed    = "Failed to upload resume. Please try again."
	MsgApplicationFail = "Failed to submit application. Please try again."
)

var allowedResumeTypes = map[string][]string{
	".pdf":  {"application/pdf"},
	".doc":  {"application/msword"},
	".docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
}

// ContentWriter is the write side of the content client.
type ContentWriter interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader) (*cms.UploadedFile, error)
	Create(ctx context.Context, collection string, data any) (*cms.CreatedRecord, error)
	Delete(ctx context.Context, fileID int64) error
}

type SubmissionService struct {
	cms ContentWriter
	log *zap.Logger
}

func NewSubmissionService(w ContentWriter, log *zap.Logger) *SubmissionService {
	if log == nil {
		log = zap.NewNop()
	}
	return &SubmissionService{cms: w, log: log}
}

// SubmitApplication validates the form and the resume, uploads the resume,
// then creates the application record referencing the uploaded file. Nothing
// is created unless the upload succeeded, and a failed create removes the
// uploaded file again.
func (s *SubmissionService) SubmitApplication(ctx context.Context, app models.JobApplication, resume *models.ResumeFile) (*cms.CreatedRecord, error) {
	fieldErrors := make(map[string]string)
	requireFields(fieldErrors,
		field{"fullName", app.FullName},
		field{"email", app.Email},
		field{"phone", app.Phone},
		field{"location", app.Location},
		field{"coverLetter", app.CoverLetter},
		field{"jobTitle", app.JobTitle},
	)
	checkEmail(fieldErrors, "email", app.Email)
	if msg := checkResume(resume); msg != "" {
		fieldErrors["resume"] = msg
	}
	if len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	uploaded, err := s.cms.Upload(ctx, resume.Filename, resume.ContentType, bytes.NewReader(resume.Data))
	if err != nil {
		if errors.Is(err, cms.ErrNotConfigured) {
			return nil, notConfigured(err)
		}
		s.log.Error("resume upload failed", zap.String("email", app.Email), zap.Error(err))
		return nil, &UpstreamError{Step: "upload", Err: err}
	}

	app.Resume = uploaded.ID
	app.Status = models.StatusPending
	if excerpt, err := ExtractResumeExcerpt(resume.Filename, resume.Data, ResumeExcerptLength); err == nil {
		app.ResumeExcerpt = excerpt
	} else {
		s.log.Debug("resume excerpt unavailable", zap.String("file", resume.Filename), zap.Error(err))
	}

	rec, err := s.cms.Create(ctx, CollectionJobApplications, app)
	if err != nil {
		s.log.Error("application record failed", zap.Int64("resume_id", uploaded.ID), zap.Error(err))
		if delErr := s.cms.Delete(context.WithoutCancel(ctx), uploaded.ID); delErr != nil {
			s.log.Warn("orphaned resume upload", zap.Int64("resume_id", uploaded.ID), zap.Error(delErr))
		}
		return nil, &UpstreamError{Step: "create", Err: err}
	}
	return rec, nil
}

// checkResume returns the user-facing message for the first violated
// constraint, or "" when the file is acceptable.
func checkResume(f *models.ResumeFile) string {
	if f == nil || f.Filename == "" {
		return MsgResumeRequired
	}

	mimes, ok := allowedResumeTypes[strings.ToLower(filepath.Ext(f.Filename))]
	if !ok {
		return MsgResumeType
	}
	if ct := mediaType(f.ContentType); ct != "" && ct != "application/octet-stream" {
		found := false
		for _, m := range mimes {
			if ct == m {
				found = true
				break
			}
		}
		if !found {
			return MsgResumeType
		}
	}

	size := f.Size
	if size == 0 {
		size = int64(len(f.Data))
	}
	if size > MaxResumeSize {
		return MsgResumeSize
	}
	return ""
}

func mediaType(contentType string) string {
	ct, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(ct))
}

// SubmitPartnership forwards a partnership inquiry to the content service.
func (s *SubmissionService) SubmitPartnership(ctx context.Context, inq models.PartnershipInquiry) (*cms.CreatedRecord, error) {
	fieldErrors := make(map[string]string)
	requireFields(fieldErrors,
		field{"companyName", inq.CompanyName},
		field{"contactName", inq.ContactName},
		field{"email", inq.Email},
		field{"partnershipType", inq.PartnershipType},
		field{"message", inq.Message},
	)
	checkEmail(fieldErrors, "email", inq.Email)
	if len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	inq.Status = models.StatusPending
	rec, err := s.cms.Create(ctx, CollectionPartnershipInquiries, inq)
	if err != nil {
		if errors.Is(err, cms.ErrNotConfigured) {
			return nil, notConfigured(err)
		}
		s.log.Error("partnership inquiry failed", zap.String("email", inq.Email), zap.Error(err))
		return nil, &UpstreamError{Step: "create", Err: err}
	}
	return rec, nil
}
