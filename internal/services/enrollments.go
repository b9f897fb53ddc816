package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"bpo-website/internal/models"
)

type enrollmentStore interface {
	Create(ctx context.Context, e *models.Enrollment) error
	List(ctx context.Context, f models.EnrollmentFilter) ([]*models.Enrollment, error)
}

type EnrollmentService struct {
	repo enrollmentStore
	log  *zap.Logger
}

func NewEnrollmentService(repo enrollmentStore, log *zap.Logger) *EnrollmentService {
	if log == nil {
		log = zap.NewNop()
	}
	return &EnrollmentService{repo: repo, log: log}
}

func (s *EnrollmentService) Enroll(ctx context.Context, req models.EnrollmentRequest) (*models.EnrollmentReceipt, error) {
	fieldErrors := make(map[string]string)
	requireFields(fieldErrors,
		field{"firstName", req.FirstName},
		field{"lastName", req.LastName},
		field{"email", req.Email},
		field{"trainingProgram", req.TrainingProgram},
		field{"trainingType", req.TrainingType},
		field{"experienceLevel", req.ExperienceLevel},
	)
	checkEmail(fieldErrors, "email", req.Email)

	var start *time.Time
	if d := strings.TrimSpace(req.PreferredStartDate); d != "" {
		t, err := time.Parse("2006-01-02", d)
		if err != nil {
			fieldErrors["preferredStartDate"] = "Date must be in YYYY-MM-DD format"
		} else {
			start = &t
		}
	}

	if len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	e := &models.Enrollment{
		FirstName:          strings.TrimSpace(req.FirstName),
		LastName:           strings.TrimSpace(req.LastName),
		Email:              strings.TrimSpace(req.Email),
		Phone:              optional(req.Phone),
		Company:            optional(req.Company),
		TrainingProgram:    strings.TrimSpace(req.TrainingProgram),
		TrainingType:       strings.TrimSpace(req.TrainingType),
		ExperienceLevel:    strings.TrimSpace(req.ExperienceLevel),
		PreferredStartDate: start,
		Message:            optional(req.Message),
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, notConfigured(err)
	}

	s.log.Info("enrollment created", zap.String("enrollment_id", e.ID.String()), zap.String("program", e.TrainingProgram))
	return &models.EnrollmentReceipt{ID: e.ID, Email: e.Email, CreatedAt: e.CreatedAt}, nil
}

func (s *EnrollmentService) List(ctx context.Context, f models.EnrollmentFilter) ([]*models.Enrollment, error) {
	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, notConfigured(err)
	}
	if items == nil {
		items = []*models.Enrollment{}
	}
	return items, nil
}
