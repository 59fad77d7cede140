// Package claim persists claim records.
package claim

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dict-bridge/internal/claims/models"
	id "dict-bridge/pkg/domain"
	"dict-bridge/pkg/platform/sentinel"
)

// PostgresStore persists claims in the dict_claims table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a Postgres-backed claim store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Get(ctx context.Context, claimID id.ClaimID) (*models.Claim, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, claim_type, opened_at, reason
		FROM dict_claims
		WHERE id = $1
	`, uuid.UUID(claimID))
	return scanClaim(row)
}

// GetByIDAndOpenedBefore returns the claim only when it was opened strictly
// before the cutoff; the expiry decision stays in the query so the sweeper
// never compares timestamps itself.
func (s *PostgresStore) GetByIDAndOpenedBefore(ctx context.Context, claimID id.ClaimID, cutoff time.Time) (*models.Claim, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, claim_type, opened_at, reason
		FROM dict_claims
		WHERE id = $1 AND opened_at < $2
	`, uuid.UUID(claimID), cutoff)
	return scanClaim(row)
}

// Insert creates a claim record. OpenedAt is written once and never updated.
func (s *PostgresStore) Insert(ctx context.Context, claim *models.Claim) error {
	var reason sql.NullString
	if claim.Reason != "" {
		reason = sql.NullString{String: string(claim.Reason), Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO dict_claims (id, claim_type, opened_at, reason)
		VALUES ($1, $2, $3, $4)
	`, uuid.UUID(claim.ID), string(claim.Type), claim.OpenedAt, reason)
	if err != nil {
		return fmt.Errorf("insert claim: %w", err)
	}
	return nil
}

func scanClaim(row *sql.Row) (*models.Claim, error) {
	var (
		claim     models.Claim
		rawID     uuid.UUID
		claimType string
		reason    sql.NullString
	)
	err := row.Scan(&rawID, &claimType, &claim.OpenedAt, &reason)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan claim: %w", err)
	}
	claim.ID = id.ClaimID(rawID)
	claim.Type = models.ClaimType(claimType)
	if reason.Valid {
		claim.Reason = models.ClaimReason(reason.String)
	}
	return &claim, nil
}
