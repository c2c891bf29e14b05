package shop

import (
	"encoding/json"
	"time"
)

// Entity yang ikut dikirim ke change feed.
const (
	EntityUser      = "user"
	EntityProduct   = "product"
	EntityCart      = "cart"
	EntityPesanan   = "pesanan"
	EntityOrderItem = "order_item"
	EntityReview    = "review"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

const EventVersion = 1

type Envelope struct {
	EventID       string          `json:"event_id"`      // uuid
	EventType     string          `json:"event_type"`    // {entity}.{action}, mis. "pesanan.updated"
	EventVersion  int             `json:"event_version"` // 1
	OccurredAt    time.Time       `json:"occurred_at"`   // RFC3339
	Producer      string          `json:"producer"`      // e.g., "food-api"
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // id entity
	Payload       json.RawMessage `json:"payload,omitempty"`        // snapshot baris; kosong untuk deleted
}

func EventType(entity, action string) string { return entity + "." + action }

// Partition key = id entity, supaya semua event 1 baris maintain urutan.
func PartitionKey(id string) []byte { return []byte(id) }
