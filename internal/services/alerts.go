package services

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"bpo-website/internal/models"
)

// LeadAlertChannel is the pub/sub channel operators listen on.
const LeadAlertChannel = "lead_alerts"

type AlertPublisher interface {
	PublishLeadAlert(ctx context.Context, alert models.LeadAlert)
}

// RedisAlertPublisher publishes alerts as JSON. A nil client makes it a no-op.
type RedisAlertPublisher struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewRedisAlertPublisher(rdb *redis.Client, log *zap.Logger) *RedisAlertPublisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisAlertPublisher{rdb: rdb, log: log}
}

func (p *RedisAlertPublisher) PublishLeadAlert(ctx context.Context, alert models.LeadAlert) {
	if p == nil || p.rdb == nil {
		return
	}
	data, err := json.Marshal(alert)
	if err != nil {
		return
	}
	if err := p.rdb.Publish(ctx, LeadAlertChannel, data).Err(); err != nil {
		p.log.Warn("failed to publish lead alert", zap.Error(err))
	}
}
