package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ariefcatur/go-food-orders/internal/redisx"
	"github.com/ariefcatur/go-food-orders/internal/shop"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// Service mencatat setiap event change feed: dedup per event_id lalu
// menaikkan counter per event_type di Redis.
type Service struct {
	Redis       *redis.Client
	Log         logrus.FieldLogger
	ServiceName string
}

// HandleChange dipasang sebagai handler consumer.
func (s *Service) HandleChange(ctx context.Context, m kafkago.Message) error {
	// 1) decode envelope; pesan rusak di-skip supaya offset tetap maju
	var env shop.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil || env.EventID == "" || env.EventType == "" {
		s.Log.WithField("offset", m.Offset).WithField("partition", m.Partition).Warn("skip malformed change event")
		return nil
	}
	log := s.Log.WithFields(logrus.Fields{
		"event_id":   env.EventID,
		"event_type": env.EventType,
		"entity_id":  env.CorrelationID,
		"trace_id":   env.TraceID,
	})

	// 2) dedup via Redis (pakai event_id)
	dkey := fmt.Sprintf(redisx.KeyDedup, s.ServiceName, env.EventID)
	fresh, err := redisx.Claim(ctx, s.Redis, dkey, redisx.TTLDedup)
	if err != nil {
		return fmt.Errorf("claim %s: %w", dkey, err)
	}
	if !fresh {
		log.Debug("duplicate change event")
		return nil
	}

	// 3) hitung; kalau gagal, lepas claim supaya redelivery diproses ulang
	if err := s.Redis.HIncrBy(ctx, redisx.KeyAuditCounts, env.EventType, 1).Err(); err != nil {
		_ = s.Redis.Del(ctx, dkey).Err()
		return fmt.Errorf("count %s: %w", env.EventType, err)
	}
	log.WithField("occurred_at", env.OccurredAt).Info("change recorded")
	return nil
}

// Counts mengembalikan jumlah event yang sudah tercatat per event_type.
func (s *Service) Counts(ctx context.Context) (map[string]int64, error) {
	raw, err := s.Redis.HGetAll(ctx, redisx.KeyAuditCounts).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(raw))
	for k, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("counter %s: %w", k, err)
		}
		out[k] = n
	}
	return out, nil
}
