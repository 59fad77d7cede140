package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "dict-bridge/pkg/domain-errors"
)

func TestParseInvariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseKeyID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseClaimID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseUserID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		valid := uuid.New()
		keyID, err := ParseKeyID(valid.String())
		require.NoError(t, err)
		assert.Equal(t, KeyID(valid), keyID)
		assert.False(t, keyID.IsNil())
	})
}

func TestIsNil(t *testing.T) {
	var zero KeyID
	assert.True(t, zero.IsNil())
	assert.False(t, KeyID(uuid.New()).IsNil())
}

func TestJSONRoundTrip(t *testing.T) {
	// IDs serialize as canonical UUID strings, not byte arrays.
	keyID := KeyID(uuid.New())

	payload, err := json.Marshal(struct {
		ID KeyID `json:"id"`
	}{ID: keyID})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"`+keyID.String()+`"}`, string(payload))

	var decoded struct {
		ID KeyID `json:"id"`
	}
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, keyID, decoded.ID)
}

func TestJSONRejectsMalformed(t *testing.T) {
	var decoded struct {
		ID ClaimID `json:"id"`
	}
	err := json.Unmarshal([]byte(`{"id":"xyz"}`), &decoded)
	assert.Error(t, err)
}
