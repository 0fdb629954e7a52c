package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/arhansuba/tg-trading-bot/internal/core/domain"
	"github.com/arhansuba/tg-trading-bot/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// walletPayload is both the provider's wallet representation and the export
// blob format the credential store encrypts. It must remain stable across
// restarts.
type walletPayload struct {
	WalletID       string `json:"wallet_id"`
	NetworkID      string `json:"network_id"`
	Seed           string `json:"seed"`
	DefaultAddress string `json:"default_address"`
}

// CreateWallet provisions a fresh wallet on the given network.
func (c *Client) CreateWallet(ctx context.Context, network string) (ports.WalletHandle, error) {
	var resp walletPayload
	err := c.do(ctx, http.MethodPost, "/v1/wallets", map[string]string{"network_id": network}, &resp)
	if err != nil {
		return nil, err
	}
	c.log.Debug().Str("wallet_id", resp.WalletID).Str("network", network).Msg("wallet created")
	return &Wallet{client: c, data: resp}, nil
}

// ImportWallet reconstructs a wallet from a previously exported blob.
func (c *Client) ImportWallet(ctx context.Context, export []byte) (ports.WalletHandle, error) {
	var data walletPayload
	if err := json.Unmarshal(export, &data); err != nil {
		return nil, fmt.Errorf("unmarshal wallet export: %w", err)
	}
	if data.WalletID == "" || data.Seed == "" {
		return nil, fmt.Errorf("wallet export missing wallet_id or seed")
	}

	var resp walletPayload
	if err := c.do(ctx, http.MethodPost, "/v1/wallets/import", data, &resp); err != nil {
		return nil, err
	}
	return &Wallet{client: c, data: resp}, nil
}

// Wallet implements ports.WalletHandle.
type Wallet struct {
	client *Client
	data   walletPayload
}

// Export serializes the wallet for encrypted storage.
func (w *Wallet) Export(ctx context.Context) ([]byte, error) {
	out, err := json.Marshal(w.data)
	if err != nil {
		return nil, fmt.Errorf("marshal wallet export: %w", err)
	}
	return out, nil
}

// DefaultAddress returns the wallet's primary address.
func (w *Wallet) DefaultAddress(ctx context.Context) (ports.WalletAddress, error) {
	if w.data.DefaultAddress == "" {
		return nil, fmt.Errorf("wallet %s has no default address", w.data.WalletID)
	}
	return &Address{client: w.client, walletID: w.data.WalletID, hex: w.data.DefaultAddress}, nil
}

// Address implements ports.WalletAddress.
type Address struct {
	client   *Client
	walletID string
	hex      string
}

// HexAddress returns the on-chain address string.
func (a *Address) HexAddress() string {
	return a.hex
}

// GetBalance returns the address's balance of one asset. An asset the
// address has never held reports zero.
func (a *Address) GetBalance(ctx context.Context, asset string) (decimal.Decimal, error) {
	var resp struct {
		Amount string `json:"amount"`
	}
	path := fmt.Sprintf("/v1/wallets/%s/addresses/%s/balances/%s", a.walletID, a.hex, asset)
	if err := a.client.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return decimal.Zero, err
	}
	if resp.Amount == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(resp.Amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse %s balance %q: %w", asset, resp.Amount, err)
	}
	return amount, nil
}

// ListBalances returns every asset balance on the address.
func (a *Address) ListBalances(ctx context.Context) (map[string]decimal.Decimal, error) {
	var resp struct {
		Balances map[string]string `json:"balances"`
	}
	path := fmt.Sprintf("/v1/wallets/%s/addresses/%s/balances", a.walletID, a.hex)
	if err := a.client.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	balances := make(map[string]decimal.Decimal, len(resp.Balances))
	for asset, raw := range resp.Balances {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("parse %s balance %q: %w", asset, raw, err)
		}
		balances[asset] = amount
	}
	return balances, nil
}

// CreateTrade submits a trade from this address. A client-generated trade
// reference makes accidental double submission idempotent on the provider
// side.
func (a *Address) CreateTrade(ctx context.Context, intent domain.TradeIntent) (ports.TradeHandle, error) {
	req := map[string]string{
		"client_trade_id": uuid.NewString(),
		"from_asset_id":   intent.FromAsset,
		"to_asset_id":     intent.ToAsset,
		"amount":          intent.Amount.String(),
	}
	var resp tradePayload
	path := fmt.Sprintf("/v1/wallets/%s/addresses/%s/trades", a.walletID, a.hex)
	if err := a.client.do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	a.client.log.Info().
		Str("trade_id", resp.TradeID).
		Str("from", intent.FromAsset).
		Str("to", intent.ToAsset).
		Str("amount", intent.Amount.String()).
		Msg("trade submitted")
	return &Trade{client: a.client, walletID: a.walletID, address: a.hex, data: resp}, nil
}
