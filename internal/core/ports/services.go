package ports

import (
	"context"

	"github.com/arhansuba/tg-trading-bot/internal/core/domain"
)

// EncryptionService handles AES-256-GCM encryption with a detached nonce,
// matching the persisted record layout {nonceHex, ciphertextHex}.
type EncryptionService interface {
	Encrypt(plaintext []byte) (nonceHex string, ciphertextHex string, err error)
	Decrypt(nonceHex string, ciphertextHex string) ([]byte, error)
}

// CredentialService resolves a user's custody wallet, creating and storing
// encrypted credentials on first contact.
type CredentialService interface {
	// GetOrCreateWallet returns the owner's wallet. Two sequential calls for
	// the same owner always yield the same wallet after first creation.
	GetOrCreateWallet(ctx context.Context, ownerID string) (WalletHandle, error)
	// DefaultAddress returns the owner's address hex, memoized in the
	// address cache to avoid repeated decrypt/import round trips.
	DefaultAddress(ctx context.Context, ownerID string) (string, error)
}

// ConversationStore holds per-user conversation state. Get never errors and
// returns the zero value for unknown users; Update shallow-merges a patch,
// creating the entry if absent.
type ConversationStore interface {
	Get(ownerID string) domain.ConversationState
	Update(ownerID string, patch domain.StatePatch)
	Clear(ownerID string)
}

// AddressCache memoizes owner → default address. Best-effort: a miss or a
// cache failure only costs a decrypt/import round trip.
type AddressCache interface {
	Get(ctx context.Context, ownerID string) (string, error) // "" when absent
	Set(ctx context.Context, ownerID string, address string) error
}

// TradeService is the trade conversation flow engine plus the two wallet
// queries reachable from the menu.
type TradeService interface {
	// StartFlow begins a buy or sell conversation, replying with the asset
	// question.
	StartFlow(ctx context.Context, ownerID string, op domain.Operation) (string, error)
	// HandleText advances an in-progress flow with a free-text message and
	// returns the reply. Outside a flow it returns a usage hint.
	HandleText(ctx context.Context, ownerID string, text string) (string, error)
	// CheckBalance formats all asset balances for the owner's address.
	CheckBalance(ctx context.Context, ownerID string) (string, error)
	// DepositAddress returns the owner's deposit address, creating the wallet
	// on first use.
	DepositAddress(ctx context.Context, ownerID string) (string, error)
}
