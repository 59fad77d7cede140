// Package key persists alias keys. The Postgres store is the production
// implementation; the memory store backs unit tests.
package key

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dict-bridge/internal/claims/models"
	id "dict-bridge/pkg/domain"
	"dict-bridge/pkg/platform/sentinel"
)

// PostgresStore persists keys in the dict_keys table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgres constructs a Postgres-backed key store.
func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Get(ctx context.Context, keyID id.KeyID) (*models.Key, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, key_value, state, user_id, claim_id, created_at, updated_at
		FROM dict_keys
		WHERE id = $1
	`, uuid.UUID(keyID))
	return scanKey(row)
}

// UpdateState is the per-key serialization point: the UPDATE commits only if
// the row is still in 'from', so of two concurrent phase messages exactly one
// wins and the loser sees sentinel.ErrInvalidState.
func (s *PostgresStore) UpdateState(ctx context.Context, keyID id.KeyID, from, to models.KeyState) (*models.Key, error) {
	row := s.pool.QueryRow(ctx, `
		UPDATE dict_keys
		SET state = $3, updated_at = now()
		WHERE id = $1 AND state = $2
		RETURNING id, key_value, state, user_id, claim_id, created_at, updated_at
	`, uuid.UUID(keyID), string(from), string(to))

	key, err := scanKey(row)
	if errors.Is(err, sentinel.ErrNotFound) {
		// Either the key is gone or the state guard failed; distinguish so
		// callers can tell a delivery bug from a lost race.
		var exists bool
		if probeErr := s.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM dict_keys WHERE id = $1)`, uuid.UUID(keyID),
		).Scan(&exists); probeErr != nil {
			return nil, fmt.Errorf("probe key existence: %w", probeErr)
		}
		if exists {
			return nil, sentinel.ErrInvalidState
		}
		return nil, sentinel.ErrNotFound
	}
	return key, err
}

func (s *PostgresStore) ListByState(ctx context.Context, state models.KeyState) ([]*models.Key, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, key_value, state, user_id, claim_id, created_at, updated_at
		FROM dict_keys
		WHERE state = $1
		ORDER BY updated_at
	`, string(state))
	if err != nil {
		return nil, fmt.Errorf("list keys by state: %w", err)
	}
	defer rows.Close()

	var keys []*models.Key
	for rows.Next() {
		key, err := scanKey(rows)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list keys by state: %w", err)
	}
	return keys, nil
}

// Insert creates a key record. Used by integration tests and the alias
// registration flow.
func (s *PostgresStore) Insert(ctx context.Context, key *models.Key) error {
	var claimID *uuid.UUID
	if key.ClaimID != nil {
		u := uuid.UUID(*key.ClaimID)
		claimID = &u
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO dict_keys (id, key_value, state, user_id, claim_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, uuid.UUID(key.ID), key.Value, string(key.State), uuid.UUID(key.UserID), claimID, key.CreatedAt, key.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert key: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanKey(row rowScanner) (*models.Key, error) {
	var (
		key     models.Key
		rawID   uuid.UUID
		rawUser uuid.UUID
		claimID *uuid.UUID
		state   string
	)
	err := row.Scan(&rawID, &key.Value, &state, &rawUser, &claimID, &key.CreatedAt, &key.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan key: %w", err)
	}
	key.ID = id.KeyID(rawID)
	key.UserID = id.UserID(rawUser)
	key.State = models.KeyState(state)
	if claimID != nil {
		c := id.ClaimID(*claimID)
		key.ClaimID = &c
	}
	return &key, nil
}
