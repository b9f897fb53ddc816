package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	redisConnectTimeout = 10 * time.Second
	// The alert hub holds one subscription at a time.
	alertsPoolSize = 2
)

// RedisClients splits Redis use in two. Main serves the content cache, the
// lead inbox and alert publishing; Alerts carries the subscription behind
// the operator websocket.
type RedisClients struct {
	Main   *redis.Client
	Alerts *redis.Client
}

// ConnectRedis opens and pings both clients. Nothing is left open on error.
func ConnectRedis(ctx context.Context, redisURL string, log *zap.Logger) (*RedisClients, error) {
	if log == nil {
		log = zap.NewNop()
	}
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, redisConnectTimeout)
	defer cancel()

	mainOpt := *opt
	mainOpt.ClientName = "bpo-website"
	main := redis.NewClient(&mainOpt)
	if err := main.Ping(ctx).Err(); err != nil {
		main.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	alertsOpt := *opt
	alertsOpt.ClientName = "bpo-website-alerts"
	alertsOpt.PoolSize = alertsPoolSize
	alerts := redis.NewClient(&alertsOpt)
	if err := alerts.Ping(ctx).Err(); err != nil {
		main.Close()
		alerts.Close()
		return nil, fmt.Errorf("ping redis alerts: %w", err)
	}

	log.Info("redis connected",
		zap.String("addr", opt.Addr),
		zap.Int("db", opt.DB),
		zap.Int("alerts_pool", alertsPoolSize))
	return &RedisClients{Main: main, Alerts: alerts}, nil
}

func (r *RedisClients) Close() error {
	return errors.Join(r.Main.Close(), r.Alerts.Close())
}
