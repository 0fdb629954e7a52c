package domain

import "github.com/shopspring/decimal"

// QuoteAsset is the currency every trade is priced against. Buys spend it,
// and it can never itself be sold.
const QuoteAsset = "eth"

// TradeIntent is a fully specified, not-yet-submitted trade. It is built
// immediately before submission and discarded afterwards.
type TradeIntent struct {
	Direction Operation       `json:"direction"`
	FromAsset string          `json:"from_asset"`
	ToAsset   string          `json:"to_asset"`
	Amount    decimal.Decimal `json:"amount"`
}

// NewBuyIntent builds an intent spending QuoteAsset to acquire asset.
func NewBuyIntent(asset string, amount decimal.Decimal) TradeIntent {
	return TradeIntent{
		Direction: OperationBuy,
		FromAsset: QuoteAsset,
		ToAsset:   asset,
		Amount:    amount,
	}
}

// NewSellIntent builds an intent spending asset in exchange for QuoteAsset.
func NewSellIntent(asset string, amount decimal.Decimal) TradeIntent {
	return TradeIntent{
		Direction: OperationSell,
		FromAsset: asset,
		ToAsset:   QuoteAsset,
		Amount:    amount,
	}
}

// SpendAsset is the asset whose balance must cover Amount.
func (i TradeIntent) SpendAsset() string {
	return i.FromAsset
}

// SettlementReceipt confirms a submitted trade was included on-chain
// (or reports the provider's terminal failure status).
type SettlementReceipt struct {
	TradeID         string `json:"trade_id"`
	Status          string `json:"status"`
	TransactionLink string `json:"transaction_link"`
}
