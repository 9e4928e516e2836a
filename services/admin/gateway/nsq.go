package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/fairpay/internal/pkg/circuitbreaker"
	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/piresc/fairpay/services/admin"
)

// Publisher is the part of the NSQ producer the gateway needs
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// AdminGW publishes ledger events to NSQ
type AdminGW struct {
	publisher Publisher
	topic     string
	breaker   *circuitbreaker.CircuitBreaker
}

// NewAdminGW creates a new admin gateway. breaker may be nil.
func NewAdminGW(publisher Publisher, topic string, breaker *circuitbreaker.CircuitBreaker) admin.AdminGW {
	return &AdminGW{
		publisher: publisher,
		topic:     topic,
		breaker:   breaker,
	}
}

// PublishLedgerEvent publishes event on the ledger topic
func (g *AdminGW) PublishLedgerEvent(ctx context.Context, event models.LedgerEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}
	publish := func(context.Context) error { return g.publisher.Publish(g.topic, event) }
	var err error
	if g.breaker != nil {
		err = g.breaker.Execute(ctx, publish)
	} else {
		err = publish(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Event, err)
	}
	return nil
}
