package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"bpo-website/internal/models"
)

// LeadAcknowledgement is returned to the visitor for every accepted lead.
const LeadAcknowledgement = "Thank you for reaching out! Our team will contact you within 24 hours."

// LeadInboxKey is the Redis list new leads are pushed onto.
const LeadInboxKey = "leads:inbox"

// LeadSink receives accepted leads.
type LeadSink interface {
	Store(ctx context.Context, lead *models.Lead) error
}

// LogSink writes the lead to the structured log. It never fails.
type LogSink struct {
	log *zap.Logger
}

func NewLogSink(log *zap.Logger) *LogSink {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogSink{log: log}
}

func (s *LogSink) Store(_ context.Context, lead *models.Lead) error {
	s.log.Info("lead received",
		zap.String("lead_id", lead.ID.String()),
		zap.String("email", lead.Email),
		zap.String("company", lead.Company),
		zap.String("service", lead.Service),
		zap.String("source", lead.Source),
	)
	return nil
}

// RedisInboxSink pushes the lead as JSON onto LeadInboxKey.
type RedisInboxSink struct {
	rdb *redis.Client
}

func NewRedisInboxSink(rdb *redis.Client) *RedisInboxSink {
	return &RedisInboxSink{rdb: rdb}
}

func (s *RedisInboxSink) Store(ctx context.Context, lead *models.Lead) error {
	data, err := json.Marshal(lead)
	if err != nil {
		return err
	}
	if err := s.rdb.LPush(ctx, LeadInboxKey, data).Err(); err != nil {
		return fmt.Errorf("push lead to inbox: %w", err)
	}
	return nil
}

// EmailSink notifies the sales mailbox.
type EmailSink struct {
	email *EmailService
	to    string
}

func NewEmailSink(email *EmailService, to string) *EmailSink {
	return &EmailSink{email: email, to: to}
}

func (s *EmailSink) Store(_ context.Context, lead *models.Lead) error {
	return s.email.SendLeadNotification(s.to, lead)
}

type LeadService struct {
	sinks  []LeadSink
	alerts AlertPublisher
	log    *zap.Logger
	now    func() time.Time
}

// NewLeadService stores every lead in each sink in order. The first sink is
// authoritative: its failure fails the submission, later sink failures are
// only logged.
func NewLeadService(log *zap.Logger, alerts AlertPublisher, sinks ...LeadSink) *LeadService {
	if log == nil {
		log = zap.NewNop()
	}
	return &LeadService{sinks: sinks, alerts: alerts, log: log, now: time.Now}
}

func (s *LeadService) Submit(ctx context.Context, req models.LeadRequest) (*models.Lead, error) {
	fieldErrors := make(map[string]string)
	requireFields(fieldErrors,
		field{"name", req.Name},
		field{"email", req.Email},
		field{"message", req.Message},
	)
	checkEmail(fieldErrors, "email", req.Email)
	if len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	lead := &models.Lead{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Company:   strings.TrimSpace(req.Company),
		Phone:     strings.TrimSpace(req.Phone),
		Service:   strings.TrimSpace(req.Service),
		Message:   strings.TrimSpace(req.Message),
		Source:    "contact",
		Status:    models.StatusPending,
		CreatedAt: s.now().UTC(),
	}

	for i, sink := range s.sinks {
		if err := sink.Store(ctx, lead); err != nil {
			if i == 0 {
				return nil, &UpstreamError{Step: "store", Err: err}
			}
			s.log.Warn("lead sink failed", zap.String("lead_id", lead.ID.String()), zap.Error(err))
		}
	}

	if s.alerts != nil {
		s.alerts.PublishLeadAlert(ctx, models.LeadAlert{
			Type:      "lead",
			Name:      lead.Name,
			Email:     lead.Email,
			Company:   lead.Company,
			CreatedAt: lead.CreatedAt,
		})
	}

	return lead, nil
}
