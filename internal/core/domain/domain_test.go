package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestConversationState_ZeroValueIsIdle(t *testing.T) {
	var s ConversationState
	assert.True(t, s.Idle())
	assert.True(t, s.Valid())
}

func TestConversationState_Valid(t *testing.T) {
	s := ConversationState{Operation: OperationBuy, Step: StepAwaitingAsset}
	assert.False(t, s.Idle())
	assert.True(t, s.Valid())

	// step without operation violates the invariant
	s = ConversationState{Step: StepAwaitingAmount}
	assert.False(t, s.Valid())
}

func TestStatePatch_ApplyMergesOnlySetFields(t *testing.T) {
	s := ConversationState{Operation: OperationSell, Step: StepAwaitingAsset}

	PatchAsset("pepe").Apply(&s)
	assert.Equal(t, OperationSell, s.Operation, "operation must survive an asset-only patch")
	assert.Equal(t, StepAwaitingAsset, s.Step)
	assert.Equal(t, "pepe", s.Asset)

	PatchStep(StepAwaitingAmount).Apply(&s)
	assert.Equal(t, "pepe", s.Asset, "asset must survive a step-only patch")
	assert.Equal(t, StepAwaitingAmount, s.Step)
}

func TestTradeIntent_Directions(t *testing.T) {
	amt := decimal.RequireFromString("1.5")

	buy := NewBuyIntent("usdc", amt)
	assert.Equal(t, QuoteAsset, buy.FromAsset)
	assert.Equal(t, "usdc", buy.ToAsset)
	assert.Equal(t, QuoteAsset, buy.SpendAsset(), "buys spend the quote currency")

	sell := NewSellIntent("usdc", amt)
	assert.Equal(t, "usdc", sell.FromAsset)
	assert.Equal(t, QuoteAsset, sell.ToAsset)
	assert.Equal(t, "usdc", sell.SpendAsset(), "sells spend the selected asset")
}
