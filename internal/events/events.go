// Package events publishes domain change notifications for companies and
// invoices. Publishing is best-effort: callers log failures but never fail a
// request because the broker is unavailable.
package events

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Event types emitted after successful mutations.
const (
	CompanyCreated = "company.created"
	CompanyUpdated = "company.updated"
	CompanyDeleted = "company.deleted"
	InvoiceCreated = "invoice.created"
	InvoiceUpdated = "invoice.updated"
	InvoiceDeleted = "invoice.deleted"
)

// Event is the JSON envelope written to the broker.
type Event struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

// New builds an Event stamped with the current UTC time.
func New(typ string, data any) Event {
	return Event{Type: typ, OccurredAt: time.Now().UTC(), Data: data}
}

// Publisher delivers events to a downstream broker.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	Close() error
}

// Nop discards every event. It is used when EVENTS_ENABLED is false.
type Nop struct{}

// Publish implements Publisher.
func (Nop) Publish(context.Context, Event) error { return nil }

// Close implements Publisher.
func (Nop) Close() error { return nil }

// published counts publish attempts by event type and result ("ok"/"error").
var published = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "events_published_total",
		Help: "Total number of domain events published, by type and result.",
	},
	[]string{"type", "result"},
)

func init() {
	prometheus.MustRegister(published)
}

func observe(typ string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	published.WithLabelValues(typ, result).Inc()
}
