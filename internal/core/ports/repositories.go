package ports

import (
	"context"

	"github.com/arhansuba/tg-trading-bot/internal/core/domain"
)

// CredentialRepository defines persistence for encrypted wallet credentials.
type CredentialRepository interface {
	// GetByOwner fetches the record for one owner. Returns (nil, nil) when no
	// record exists — callers must treat that as "not yet onboarded", never
	// as an error, and must never treat an error as "not found".
	GetByOwner(ctx context.Context, ownerID string) (*domain.CredentialRecord, error)
	// Upsert writes the record, replacing any existing one for the same owner.
	Upsert(ctx context.Context, rec *domain.CredentialRecord) error
}
