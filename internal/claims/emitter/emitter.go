// Package emitter publishes claim lifecycle events to Kafka. It implements
// both outbound ports: the phase-completion emitter and the dead-letter
// publisher.
package emitter

import (
	"context"
	"encoding/json"
	"fmt"

	"dict-bridge/internal/claims/models"
)

// Producer is the broker dependency; satisfied by platform/kafka/producer.
type Producer interface {
	Produce(ctx context.Context, topic string, key, value []byte) error
}

// Topics names the channels the lifecycle reads and writes. Inbound topics
// double as the re-entry point for sweeper-injected expiry events; each
// inbound topic has a dead-letter sibling derived by DeadLetterTopic.
type Topics struct {
	OwnershipEvents   string
	PortabilityEvents string
	ClaimSucceeded    string
	ClaimFailed       string
}

// DeadLetterTopic derives the dead-letter sibling of an inbound topic.
func DeadLetterTopic(topic string) string {
	return topic + ".dlq"
}

// Inbound returns the phase-event topic for a claim type.
func (t Topics) Inbound(claimType models.ClaimType) string {
	if claimType == models.ClaimTypePortability {
		return t.PortabilityEvents
	}
	return t.OwnershipEvents
}

// KafkaEmitter publishes lifecycle events keyed by key id so per-key ordering
// is preserved within a partition.
type KafkaEmitter struct {
	producer Producer
	topics   Topics
}

// New wires the emitter.
func New(producer Producer, topics Topics) (*KafkaEmitter, error) {
	if producer == nil {
		return nil, fmt.Errorf("producer is required")
	}
	if topics.OwnershipEvents == "" || topics.PortabilityEvents == "" ||
		topics.ClaimSucceeded == "" || topics.ClaimFailed == "" {
		return nil, fmt.Errorf("all topics are required")
	}
	return &KafkaEmitter{producer: producer, topics: topics}, nil
}

// PhaseSucceeded announces a completed phase transition.
func (e *KafkaEmitter) PhaseSucceeded(ctx context.Context, event models.KeyEvent) error {
	return e.produce(ctx, e.topics.ClaimSucceeded, event.ID.String(), event)
}

// PhaseFailed announces a terminally failed key.
func (e *KafkaEmitter) PhaseFailed(ctx context.Context, event models.KeyEvent) error {
	return e.produce(ctx, e.topics.ClaimFailed, event.ID.String(), event)
}

// ClaimPendingExpired re-enters the transition pipeline with a synthetic
// cancellation event for an expired pending claim.
func (e *KafkaEmitter) ClaimPendingExpired(ctx context.Context, claimType models.ClaimType, event models.ClaimEvent) error {
	return e.produce(ctx, e.topics.Inbound(claimType), event.ID.String(), event)
}

// Publish re-dispatches a phase event to the dead-letter sibling of its
// inbound topic, payload intact.
func (e *KafkaEmitter) Publish(ctx context.Context, claimType models.ClaimType, event models.ClaimEvent) error {
	return e.produce(ctx, DeadLetterTopic(e.topics.Inbound(claimType)), event.ID.String(), event)
}

func (e *KafkaEmitter) produce(ctx context.Context, topic, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := e.producer.Produce(ctx, topic, []byte(key), value); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	return nil
}
