// Package consumer wraps franz-go group consumption behind a small
// topic-handler contract so feature packages never touch broker records.
package consumer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Message is the transport-neutral view of one inbound record.
type Message struct {
	Topic     string
	Key       []byte
	Value     []byte
	Timestamp time.Time
}

// Handler processes one message. Returning nil commits the offset; handlers
// that want at-least-once redelivery on infrastructure outages return the
// error instead.
type Handler interface {
	Handle(ctx context.Context, msg *Message) error
}

// Config holds the consumer group wiring.
type Config struct {
	Brokers []string
	Group   string
	Topics  []string
}

// Consumer runs a franz-go consumer group and dispatches records to one
// handler (typically a topic router).
type Consumer struct {
	client  *kgo.Client
	handler Handler
	logger  *slog.Logger
}

// New connects the consumer group.
func New(cfg Config, handler Handler, logger *slog.Logger) (*Consumer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if cfg.Group == "" {
		return nil, fmt.Errorf("consumer group is required")
	}
	if len(cfg.Topics) == 0 {
		return nil, fmt.Errorf("at least one topic is required")
	}
	if handler == nil {
		return nil, fmt.Errorf("handler is required")
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ConsumerGroup(cfg.Group),
		kgo.ConsumeTopics(cfg.Topics...),
		// Offsets advance only for records the handler accepted.
		kgo.AutoCommitMarks(),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &Consumer{client: client, handler: handler, logger: logger}, nil
}

// Run polls until ctx is cancelled. Handler errors leave the record unmarked
// so the group redelivers it after a rebalance or restart.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		fetches := c.client.PollFetches(ctx)
		if err := ctx.Err(); err != nil {
			return err
		}
		fetches.EachError(func(topic string, partition int32, err error) {
			c.logger.Error("kafka fetch error",
				"topic", topic, "partition", partition, "error", err)
		})
		fetches.EachRecord(func(record *kgo.Record) {
			msg := &Message{
				Topic:     record.Topic,
				Key:       record.Key,
				Value:     record.Value,
				Timestamp: record.Timestamp,
			}
			if err := c.handler.Handle(ctx, msg); err != nil {
				c.logger.Error("message handling failed, leaving uncommitted",
					"topic", record.Topic, "error", err)
				return
			}
			c.client.MarkCommitRecords(record)
		})
	}
}

// Close leaves the group and flushes marked offsets.
func (c *Consumer) Close() {
	c.client.Close()
}
