package service

import (
	"context"
	"errors"
	"testing"

	"github.com/arhansuba/tg-trading-bot/internal/core/domain"
	"github.com/arhansuba/tg-trading-bot/internal/core/ports/mocks"
	"github.com/arhansuba/tg-trading-bot/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testNetwork = "base-mainnet"

type credentialTestDeps struct {
	svc      *CredentialServiceImpl
	repo     *mocks.MockCredentialRepository
	encSvc   *mocks.MockEncryptionService
	provider *mocks.MockWalletProvider
	cache    *mocks.MockAddressCache
	ctrl     *gomock.Controller
}

func setupCredentialService(t *testing.T) *credentialTestDeps {
	ctrl := gomock.NewController(t)
	d := &credentialTestDeps{
		repo:     mocks.NewMockCredentialRepository(ctrl),
		encSvc:   mocks.NewMockEncryptionService(ctrl),
		provider: mocks.NewMockWalletProvider(ctrl),
		cache:    mocks.NewMockAddressCache(ctrl),
		ctrl:     ctrl,
	}
	d.svc = NewCredentialService(d.repo, d.encSvc, d.provider, d.cache, testNetwork, zerolog.Nop())
	return d
}

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestCredentialService_GetOrCreate_ExistingRecord(t *testing.T) {
	d := setupCredentialService(t)
	ctx := context.Background()

	rec := &domain.CredentialRecord{OwnerID: "user-1", NonceHex: "aa", CiphertextHex: "bb"}
	handle := mocks.NewMockWalletHandle(d.ctrl)

	d.repo.EXPECT().GetByOwner(ctx, "user-1").Return(rec, nil)
	d.encSvc.EXPECT().Decrypt("aa", "bb").Return([]byte("export-blob"), nil)
	d.provider.EXPECT().ImportWallet(ctx, []byte("export-blob")).Return(handle, nil)

	got, err := d.svc.GetOrCreateWallet(ctx, "user-1")
	require.NoError(t, err)
	assert.Same(t, handle, got)
}

func TestCredentialService_GetOrCreate_FirstContactCreatesAndPersists(t *testing.T) {
	d := setupCredentialService(t)
	ctx := context.Background()

	handle := mocks.NewMockWalletHandle(d.ctrl)

	d.repo.EXPECT().GetByOwner(ctx, "user-2").Return(nil, nil)
	d.provider.EXPECT().CreateWallet(ctx, testNetwork).Return(handle, nil)
	handle.EXPECT().Export(ctx).Return([]byte("fresh-export"), nil)
	d.encSvc.EXPECT().Encrypt([]byte("fresh-export")).Return("nonce-hex", "ct-hex", nil)
	d.repo.EXPECT().Upsert(ctx, gomock.Cond(func(rec *domain.CredentialRecord) bool {
		return rec.OwnerID == "user-2" && rec.NonceHex == "nonce-hex" && rec.CiphertextHex == "ct-hex"
	})).Return(nil)

	got, err := d.svc.GetOrCreateWallet(ctx, "user-2")
	require.NoError(t, err)
	assert.Same(t, handle, got)
}

func TestCredentialService_GetOrCreate_CorruptRecordNeverRecreates(t *testing.T) {
	d := setupCredentialService(t)
	ctx := context.Background()

	rec := &domain.CredentialRecord{OwnerID: "user-3", NonceHex: "aa", CiphertextHex: "bb"}
	d.repo.EXPECT().GetByOwner(ctx, "user-3").Return(rec, nil)
	d.encSvc.EXPECT().Decrypt("aa", "bb").Return(nil, errors.New("message authentication failed"))
	// no CreateWallet expectation: recreating would orphan funds

	_, err := d.svc.GetOrCreateWallet(ctx, "user-3")
	assertAppError(t, err, "CRED_001")
}

func TestCredentialService_GetOrCreate_ImportFailureIsCorruption(t *testing.T) {
	d := setupCredentialService(t)
	ctx := context.Background()

	rec := &domain.CredentialRecord{OwnerID: "user-4", NonceHex: "aa", CiphertextHex: "bb"}
	d.repo.EXPECT().GetByOwner(ctx, "user-4").Return(rec, nil)
	d.encSvc.EXPECT().Decrypt("aa", "bb").Return([]byte("garbled"), nil)
	d.provider.EXPECT().ImportWallet(ctx, []byte("garbled")).Return(nil, errors.New("malformed export"))

	_, err := d.svc.GetOrCreateWallet(ctx, "user-4")
	assertAppError(t, err, "CRED_001")
}

func TestCredentialService_GetOrCreate_LookupRetriedOnceThenUnavailable(t *testing.T) {
	d := setupCredentialService(t)
	ctx := context.Background()

	infra := errors.New("connection timeout")
	d.repo.EXPECT().GetByOwner(ctx, "user-5").Return(nil, infra).Times(2)

	_, err := d.svc.GetOrCreateWallet(ctx, "user-5")
	assertAppError(t, err, "STORE_001")
}

func TestCredentialService_GetOrCreate_LookupRetrySucceeds(t *testing.T) {
	d := setupCredentialService(t)
	ctx := context.Background()

	rec := &domain.CredentialRecord{OwnerID: "user-6", NonceHex: "aa", CiphertextHex: "bb"}
	handle := mocks.NewMockWalletHandle(d.ctrl)

	gomock.InOrder(
		d.repo.EXPECT().GetByOwner(ctx, "user-6").Return(nil, errors.New("transient")),
		d.repo.EXPECT().GetByOwner(ctx, "user-6").Return(rec, nil),
	)
	d.encSvc.EXPECT().Decrypt("aa", "bb").Return([]byte("export"), nil)
	d.provider.EXPECT().ImportWallet(ctx, []byte("export")).Return(handle, nil)

	got, err := d.svc.GetOrCreateWallet(ctx, "user-6")
	require.NoError(t, err)
	assert.Same(t, handle, got)
}

func TestCredentialService_GetOrCreate_IdempotentAfterFirstCreation(t *testing.T) {
	d := setupCredentialService(t)
	ctx := context.Background()

	created := mocks.NewMockWalletHandle(d.ctrl)
	imported := mocks.NewMockWalletHandle(d.ctrl)
	addrCreated := mocks.NewMockWalletAddress(d.ctrl)
	addrImported := mocks.NewMockWalletAddress(d.ctrl)

	var stored *domain.CredentialRecord

	// First call: no record, create, persist.
	d.repo.EXPECT().GetByOwner(ctx, "user-7").Return(nil, nil)
	d.provider.EXPECT().CreateWallet(ctx, testNetwork).Return(created, nil)
	created.EXPECT().Export(ctx).Return([]byte("seed"), nil)
	d.encSvc.EXPECT().Encrypt([]byte("seed")).Return("n1", "c1", nil)
	d.repo.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, rec *domain.CredentialRecord) error {
		stored = rec
		return nil
	})
	created.EXPECT().DefaultAddress(ctx).Return(addrCreated, nil)
	addrCreated.EXPECT().HexAddress().Return("0xabc").AnyTimes()

	// Second call: record found, decrypts to the same export.
	d.repo.EXPECT().GetByOwner(ctx, "user-7").DoAndReturn(func(context.Context, string) (*domain.CredentialRecord, error) {
		return stored, nil
	})
	d.encSvc.EXPECT().Decrypt("n1", "c1").Return([]byte("seed"), nil)
	d.provider.EXPECT().ImportWallet(ctx, []byte("seed")).Return(imported, nil)
	imported.EXPECT().DefaultAddress(ctx).Return(addrImported, nil)
	addrImported.EXPECT().HexAddress().Return("0xabc").AnyTimes()

	// Cache misses both times, both writes accepted.
	d.cache.EXPECT().Get(ctx, "user-7").Return("", nil).Times(2)
	d.cache.EXPECT().Set(ctx, "user-7", "0xabc").Return(nil).Times(2)

	first, err := d.svc.DefaultAddress(ctx, "user-7")
	require.NoError(t, err)
	second, err := d.svc.DefaultAddress(ctx, "user-7")
	require.NoError(t, err)
	assert.Equal(t, first, second, "sequential getOrCreate must resolve to the same address")
}

func TestCredentialService_DefaultAddress_CacheHitSkipsStore(t *testing.T) {
	d := setupCredentialService(t)
	ctx := context.Background()

	d.cache.EXPECT().Get(ctx, "user-8").Return("0xcached", nil)
	// no repo or provider expectations

	addr, err := d.svc.DefaultAddress(ctx, "user-8")
	require.NoError(t, err)
	assert.Equal(t, "0xcached", addr)
}

func TestCredentialService_DefaultAddress_CacheFailureFallsThrough(t *testing.T) {
	d := setupCredentialService(t)
	ctx := context.Background()

	rec := &domain.CredentialRecord{OwnerID: "user-9", NonceHex: "n", CiphertextHex: "c"}
	handle := mocks.NewMockWalletHandle(d.ctrl)
	addr := mocks.NewMockWalletAddress(d.ctrl)

	d.cache.EXPECT().Get(ctx, "user-9").Return("", errors.New("redis down"))
	d.repo.EXPECT().GetByOwner(ctx, "user-9").Return(rec, nil)
	d.encSvc.EXPECT().Decrypt("n", "c").Return([]byte("export"), nil)
	d.provider.EXPECT().ImportWallet(ctx, []byte("export")).Return(handle, nil)
	handle.EXPECT().DefaultAddress(ctx).Return(addr, nil)
	addr.EXPECT().HexAddress().Return("0xdef").AnyTimes()
	d.cache.EXPECT().Set(ctx, "user-9", "0xdef").Return(errors.New("redis still down"))

	got, err := d.svc.DefaultAddress(ctx, "user-9")
	require.NoError(t, err, "cache failures must stay best-effort")
	assert.Equal(t, "0xdef", got)
}
