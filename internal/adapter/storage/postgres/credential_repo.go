package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/arhansuba/tg-trading-bot/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// CredentialRepo implements ports.CredentialRepository.
//
// Schema:
//
//	CREATE TABLE wallet_credentials (
//	    owner_id       TEXT PRIMARY KEY,
//	    nonce_hex      TEXT NOT NULL,
//	    ciphertext_hex TEXT NOT NULL,
//	    created_at     TIMESTAMPTZ NOT NULL
//	);
type CredentialRepo struct {
	pool Pool
}

// NewCredentialRepo creates a new CredentialRepo.
func NewCredentialRepo(pool Pool) *CredentialRepo {
	return &CredentialRepo{pool: pool}
}

// GetByOwner fetches the credential record for one owner. Returns (nil, nil)
// when no record exists; any other failure is a real error, never "not
// found".
func (r *CredentialRepo) GetByOwner(ctx context.Context, ownerID string) (*domain.CredentialRecord, error) {
	query := `SELECT owner_id, nonce_hex, ciphertext_hex, created_at
		FROM wallet_credentials WHERE owner_id = $1`

	rec := &domain.CredentialRecord{}
	err := r.pool.QueryRow(ctx, query, ownerID).Scan(
		&rec.OwnerID, &rec.NonceHex, &rec.CiphertextHex, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credential by owner: %w", err)
	}
	return rec, nil
}

// Upsert writes the record, replacing any existing one for the same owner.
// Concurrent first-contact creations race here; the last write wins.
func (r *CredentialRepo) Upsert(ctx context.Context, rec *domain.CredentialRecord) error {
	query := `INSERT INTO wallet_credentials (owner_id, nonce_hex, ciphertext_hex, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (owner_id) DO UPDATE
		SET nonce_hex = EXCLUDED.nonce_hex,
		    ciphertext_hex = EXCLUDED.ciphertext_hex,
		    created_at = EXCLUDED.created_at`

	_, err := r.pool.Exec(ctx, query, rec.OwnerID, rec.NonceHex, rec.CiphertextHex, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert credential: %w", err)
	}
	return nil
}
