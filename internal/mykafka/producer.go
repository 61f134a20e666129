package mykafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Event is the envelope every domain event is published in.
type Event struct {
	ID   string         `json:"id"`
	Type string         `json:"type"`
	At   int64          `json:"at"`
	Data map[string]any `json:"data"`
}

func NewEvent(eventType string, data map[string]any) Event {
	return Event{
		ID:   uuid.NewString(),
		Type: eventType,
		At:   time.Now().UTC().Unix(),
		Data: data,
	}
}

type Producer struct {
	writers map[string]*kafka.Writer
}

func NewProducer(brokers []string, topics []string) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka: no brokers configured")
	}

	writers := make(map[string]*kafka.Writer, len(topics))
	for _, topic := range topics {
		writers[topic] = &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 10 * time.Millisecond,
		}
	}

	return &Producer{writers: writers}, nil
}

func (p *Producer) PublishEvent(ctx context.Context, topic, key string, event Event) error {
	w, ok := p.writers[topic]
	if !ok {
		return fmt.Errorf("kafka: unknown topic %q", topic)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafka: json.Marshal failed: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}
	if err := w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: write to %q failed: %w", topic, err)
	}
	return nil
}

func (p *Producer) Close() error {
	var first error
	for _, w := range p.writers {
		if err := w.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
