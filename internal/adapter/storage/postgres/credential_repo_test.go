package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arhansuba/tg-trading-bot/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord(ownerID string) *domain.CredentialRecord {
	return &domain.CredentialRecord{
		OwnerID:       ownerID,
		NonceHex:      "00112233445566778899aabb",
		CiphertextHex: "deadbeefcafe",
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
}

func credentialColumns() []string {
	return []string{"owner_id", "nonce_hex", "ciphertext_hex", "created_at"}
}

func TestCredentialRepo_GetByOwner_Found(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCredentialRepo(mock)
	rec := newTestRecord("tg:42")

	mock.ExpectQuery("SELECT .+ FROM wallet_credentials WHERE owner_id").
		WithArgs(rec.OwnerID).
		WillReturnRows(pgxmock.NewRows(credentialColumns()).
			AddRow(rec.OwnerID, rec.NonceHex, rec.CiphertextHex, rec.CreatedAt))

	got, err := repo.GetByOwner(context.Background(), rec.OwnerID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec.NonceHex, got.NonceHex)
	assert.Equal(t, rec.CiphertextHex, got.CiphertextHex)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepo_GetByOwner_NotFoundIsNilNil(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCredentialRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM wallet_credentials WHERE owner_id").
		WithArgs("tg:404").
		WillReturnRows(pgxmock.NewRows(credentialColumns()))

	got, err := repo.GetByOwner(context.Background(), "tg:404")
	require.NoError(t, err, "missing record is a valid state, not an error")
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepo_GetByOwner_InfraErrorIsNotNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCredentialRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM wallet_credentials WHERE owner_id").
		WithArgs("tg:42").
		WillReturnError(errors.New("connection refused"))

	got, err := repo.GetByOwner(context.Background(), "tg:42")
	require.Error(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepo_Upsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCredentialRepo(mock)
	rec := newTestRecord("tg:42")

	mock.ExpectExec("INSERT INTO wallet_credentials").
		WithArgs(rec.OwnerID, rec.NonceHex, rec.CiphertextHex, rec.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Upsert(context.Background(), rec)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepo_Upsert_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCredentialRepo(mock)
	rec := newTestRecord("tg:42")

	mock.ExpectExec("INSERT INTO wallet_credentials").
		WithArgs(rec.OwnerID, rec.NonceHex, rec.CiphertextHex, rec.CreatedAt).
		WillReturnError(errors.New("deadlock detected"))

	err = repo.Upsert(context.Background(), rec)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
