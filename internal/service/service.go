package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lmelectronica/ecommerce/internal/apperr"
	"github.com/lmelectronica/ecommerce/internal/logging"
	"github.com/lmelectronica/ecommerce/internal/mykafka"
)

const (
	TopicUserEvents    = "user_events"
	TopicProductEvents = "product_events"
	TopicOrderEvents   = "order_events"
)

// Events is the slice of the kafka producer the services need. A nil Events
// disables publishing, which is how unit tests run.
type Events interface {
	PublishEvent(ctx context.Context, topic, key string, event mykafka.Event) error
}

// publish fires a domain event without affecting the request outcome.
func publish(ctx context.Context, ev Events, topic string, key uint, event mykafka.Event) {
	if ev == nil {
		return
	}
	if err := ev.PublishEvent(ctx, topic, fmt.Sprint(key), event); err != nil {
		logging.FromContext(ctx).Error("event publish failed", "topic", topic, "type", event.Type, "error", err)
	}
}

// orNotFound maps a gorm miss to the domain not-found error.
func orNotFound(err error, entity string, key any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(entity, key)
	}
	return err
}
