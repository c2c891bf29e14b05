package httpx

import (
	"net/http"
	"strconv"
	"time"

	kafkax "github.com/ariefcatur/go-food-orders/internal/kafka"
	"github.com/ariefcatur/go-food-orders/internal/shop"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
)

type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

// ChangeFeed mengirim event setiap mutasi yang sukses. Fire-and-forget:
// producer bersifat async, kegagalan kirim cuma di-log oleh producer.
type ChangeFeed struct {
	Pub     Publisher
	Service string
}

// Emit aman dipanggil pada feed nil (Kafka tidak dikonfigurasi).
func (f *ChangeFeed) Emit(r *http.Request, entity, action, id string, row any) {
	if f == nil || f.Pub == nil {
		return
	}
	eventType := shop.EventType(entity, action)
	ev := shop.Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  shop.EventVersion,
		OccurredAt:    time.Now().UTC(),
		Producer:      f.Service,
		TraceID:       middleware.GetReqID(r.Context()),
		CorrelationID: id,
	}
	if row != nil {
		ev.Payload = kafkax.MustMarshal(row)
	}
	f.Pub.Publish(shop.PartitionKey(id), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(eventType)},
		kafkago.Header{Key: "x-event-version", Value: []byte(strconv.Itoa(shop.EventVersion))},
	)
}
