package ports

import (
	"context"

	"github.com/arhansuba/tg-trading-bot/internal/core/domain"

	"github.com/shopspring/decimal"
)

// WalletProvider is the trading-provider boundary for wallet custody.
type WalletProvider interface {
	// CreateWallet provisions a fresh wallet on the given network.
	CreateWallet(ctx context.Context, network string) (WalletHandle, error)
	// ImportWallet reconstructs a wallet from a previously exported blob.
	ImportWallet(ctx context.Context, export []byte) (WalletHandle, error)
}

// WalletHandle is an in-memory, non-persisted wallet capable of exporting
// itself and exposing its default address. It is owned by the request that
// created or decrypted it.
type WalletHandle interface {
	// Export serializes the wallet into a blob suitable for encrypted storage.
	Export(ctx context.Context) ([]byte, error)
	// DefaultAddress returns the wallet's primary address.
	DefaultAddress(ctx context.Context) (WalletAddress, error)
}

// WalletAddress can query balances and submit trades for one address.
type WalletAddress interface {
	// HexAddress is the on-chain address string.
	HexAddress() string
	GetBalance(ctx context.Context, asset string) (decimal.Decimal, error)
	ListBalances(ctx context.Context) (map[string]decimal.Decimal, error)
	CreateTrade(ctx context.Context, intent domain.TradeIntent) (TradeHandle, error)
}

// TradeHandle is a submitted, not-yet-settled trade.
type TradeHandle interface {
	// AwaitSettlement blocks until the provider reports a terminal status or
	// ctx is cancelled. No timeout is imposed beyond ctx.
	AwaitSettlement(ctx context.Context) (*domain.SettlementReceipt, error)
}
