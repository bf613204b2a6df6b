package monitoring

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	nuts "github.com/vaudience/go-nuts"
)

// Config holds monitoring configuration. An empty RedisAddr disables the
// counter sink; events are then only logged.
type Config struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Service records per-operation event counters. Recording is fail-soft: a
// broken sink must never fail the request that triggered the event.
type Service struct {
	config Config
	rdb    *redis.Client
}

const counterKeyPrefix = "sensorhub:events:"

// NewService creates a new monitoring service
func NewService(config Config) *Service {
	s := &Service{config: config}
	if config.RedisAddr != "" {
		s.rdb = redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
			DB:       config.RedisDB,
		})
		nuts.L.Infof("[Monitoring] Event counters enabled on %s", config.RedisAddr)
	}
	return s
}

// RecordEvent increments the counter for eventName and logs it with
// labels. The increment runs off the request path so a slow or
// unreachable sink never delays the request that raised the event.
func (s *Service) RecordEvent(eventName string, labels map[string]string) {
	nuts.L.Infof("[Monitoring] Event %s recorded with labels: %v", eventName, labels)
	if s.rdb == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := s.rdb.Incr(ctx, counterKeyPrefix+eventName).Err(); err != nil {
			nuts.L.Warnf("[Monitoring] Failed to record event %s: %v", eventName, err)
		}
	}()
}

// EventCount returns the current counter value for eventName.
func (s *Service) EventCount(ctx context.Context, eventName string) (int64, error) {
	if s.rdb == nil {
		return 0, nil
	}
	count, err := s.rdb.Get(ctx, counterKeyPrefix+eventName).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return count, err
}

// Close releases the sink connection.
func (s *Service) Close() error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Close()
}
