package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Empty(t, cfg.Participant, "participant has no safe default")
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "dict-bridge-claims", cfg.ConsumerGroup)
	assert.Equal(t, "dict.claims.ownership.v1", cfg.OwnershipTopic)
	assert.Equal(t, 7*24*time.Hour, cfg.ClaimExpiry)
	assert.Equal(t, 5*time.Minute, cfg.SweepInterval)
	assert.Equal(t, 1, cfg.DeadLetterMaxDispatches)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("DICT_BRIDGE_ADDR", ":9999")
	t.Setenv("DICT_PARTICIPANT_ISPB", "12345678")
	t.Setenv("KAFKA_BROKERS", "b1:9092, b2:9092,")
	t.Setenv("CLAIM_EXPIRY_SECONDS", "3600")
	t.Setenv("DEAD_LETTER_MAX_DISPATCHES", "3")

	cfg := FromEnv()

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "12345678", cfg.Participant)
	assert.Equal(t, []string{"b1:9092", "b2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, time.Hour, cfg.ClaimExpiry)
	assert.Equal(t, 3, cfg.DeadLetterMaxDispatches)
}

func TestMalformedNumbersFallBack(t *testing.T) {
	t.Setenv("CLAIM_EXPIRY_SECONDS", "not-a-number")
	t.Setenv("DEAD_LETTER_MAX_DISPATCHES", "-1")

	cfg := FromEnv()

	assert.Equal(t, 7*24*time.Hour, cfg.ClaimExpiry)
	assert.Equal(t, 1, cfg.DeadLetterMaxDispatches)
}
