package service

import (
	"context"
	"fmt"
	"time"

	"github.com/arhansuba/tg-trading-bot/internal/core/domain"
	"github.com/arhansuba/tg-trading-bot/internal/core/ports"
	"github.com/arhansuba/tg-trading-bot/pkg/apperror"

	"github.com/rs/zerolog"
)

// CredentialServiceImpl implements ports.CredentialService. It holds the
// encrypted wallet export per user and reconstructs a live wallet handle on
// demand.
//
// Concurrency note: GetOrCreateWallet is deliberately lock-free across
// lookup → create → persist. Two concurrent first-contact messages for the
// same user can each create a provider wallet; the later Upsert wins and the
// user simply keeps whichever wallet was written last. This is an accepted
// trade-off, not an oversight — a per-user mutex around the whole sequence
// is the stricter alternative.
type CredentialServiceImpl struct {
	repo     ports.CredentialRepository
	encSvc   ports.EncryptionService
	provider ports.WalletProvider
	cache    ports.AddressCache
	network  string
	log      zerolog.Logger
}

// NewCredentialService creates a new CredentialServiceImpl.
func NewCredentialService(
	repo ports.CredentialRepository,
	encSvc ports.EncryptionService,
	provider ports.WalletProvider,
	cache ports.AddressCache,
	network string,
	log zerolog.Logger,
) *CredentialServiceImpl {
	return &CredentialServiceImpl{
		repo:     repo,
		encSvc:   encSvc,
		provider: provider,
		cache:    cache,
		network:  network,
		log:      log,
	}
}

// GetOrCreateWallet loads the owner's wallet from the encrypted record, or
// creates and persists one on first contact.
func (s *CredentialServiceImpl) GetOrCreateWallet(ctx context.Context, ownerID string) (ports.WalletHandle, error) {
	rec, err := s.getWithRetry(ctx, ownerID)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("lookup credentials: %w", err))
	}

	if rec != nil {
		// A record that can no longer be decrypted or imported is fatal for
		// this request. Re-creating a wallet here would orphan funds.
		export, err := s.encSvc.Decrypt(rec.NonceHex, rec.CiphertextHex)
		if err != nil {
			return nil, apperror.ErrCredentialCorruption(fmt.Errorf("decrypt record: %w", err))
		}
		handle, err := s.provider.ImportWallet(ctx, export)
		if err != nil {
			return nil, apperror.ErrCredentialCorruption(fmt.Errorf("import wallet: %w", err))
		}
		return handle, nil
	}

	handle, err := s.provider.CreateWallet(ctx, s.network)
	if err != nil {
		return nil, apperror.ErrProviderFailure(fmt.Errorf("create wallet: %w", err))
	}
	export, err := handle.Export(ctx)
	if err != nil {
		return nil, apperror.ErrProviderFailure(fmt.Errorf("export wallet: %w", err))
	}
	nonceHex, ciphertextHex, err := s.encSvc.Encrypt(export)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("encrypt export: %w", err))
	}

	newRec := &domain.CredentialRecord{
		OwnerID:       ownerID,
		NonceHex:      nonceHex,
		CiphertextHex: ciphertextHex,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.upsertWithRetry(ctx, newRec); err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("persist credentials: %w", err))
	}

	s.log.Info().Str("owner_id", ownerID).Str("network", s.network).Msg("wallet created and credentials stored")
	return handle, nil
}

// DefaultAddress returns the owner's address, memoized in the address cache
// so a simple deposit or balance lookup does not force a decrypt/import
// round trip every time.
func (s *CredentialServiceImpl) DefaultAddress(ctx context.Context, ownerID string) (string, error) {
	if cached, err := s.cache.Get(ctx, ownerID); err != nil {
		s.log.Warn().Err(err).Str("owner_id", ownerID).Msg("address cache read failed, falling through")
	} else if cached != "" {
		return cached, nil
	}

	handle, err := s.GetOrCreateWallet(ctx, ownerID)
	if err != nil {
		return "", err
	}
	addr, err := handle.DefaultAddress(ctx)
	if err != nil {
		return "", apperror.ErrProviderFailure(fmt.Errorf("default address: %w", err))
	}

	if err := s.cache.Set(ctx, ownerID, addr.HexAddress()); err != nil {
		s.log.Warn().Err(err).Str("owner_id", ownerID).Msg("address cache write failed")
	}
	return addr.HexAddress(), nil
}

// getWithRetry reads the record, retrying transient store errors exactly
// once. A (nil, nil) result is the distinguished "no record" outcome and is
// never produced from an error.
func (s *CredentialServiceImpl) getWithRetry(ctx context.Context, ownerID string) (*domain.CredentialRecord, error) {
	rec, err := s.repo.GetByOwner(ctx, ownerID)
	if err == nil {
		return rec, nil
	}
	s.log.Warn().Err(err).Str("owner_id", ownerID).Msg("credential lookup failed, retrying once")
	return s.repo.GetByOwner(ctx, ownerID)
}

func (s *CredentialServiceImpl) upsertWithRetry(ctx context.Context, rec *domain.CredentialRecord) error {
	err := s.repo.Upsert(ctx, rec)
	if err == nil {
		return nil
	}
	s.log.Warn().Err(err).Str("owner_id", rec.OwnerID).Msg("credential upsert failed, retrying once")
	return s.repo.Upsert(ctx, rec)
}
