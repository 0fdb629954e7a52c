package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/arhansuba/tg-trading-bot/internal/core/domain"
	"github.com/arhansuba/tg-trading-bot/internal/core/ports"
	"github.com/arhansuba/tg-trading-bot/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const msgMenuHint = "Use the menu to get started: Check Balance, Deposit, Buy or Sell."

// TradeServiceImpl implements ports.TradeService: an explicit state machine
// over {Idle, AwaitingAsset(direction), AwaitingAmount(direction, asset)}.
//
// The flow always returns to Idle once an amount has been supplied — on
// success, on an insufficient-balance rejection, and on a provider failure
// alike. There is no retry-same-step loop; the user restarts with Buy/Sell.
// That is a deliberate simplicity trade-off.
type TradeServiceImpl struct {
	conv    ports.ConversationStore
	credSvc ports.CredentialService
	log     zerolog.Logger
}

// NewTradeService creates a new TradeServiceImpl.
func NewTradeService(conv ports.ConversationStore, credSvc ports.CredentialService, log zerolog.Logger) *TradeServiceImpl {
	return &TradeServiceImpl{conv: conv, credSvc: credSvc, log: log}
}

// StartFlow begins a buy or sell conversation. Any previous in-progress flow
// for the user is discarded so no stale asset selection can leak in.
func (s *TradeServiceImpl) StartFlow(ctx context.Context, ownerID string, op domain.Operation) (string, error) {
	if op != domain.OperationBuy && op != domain.OperationSell {
		return "", apperror.InternalError(fmt.Errorf("unknown operation %q", op))
	}

	s.conv.Clear(ownerID)
	s.conv.Update(ownerID, domain.StatePatch{
		Operation: &op,
		Step:      stepPtr(domain.StepAwaitingAsset),
	})

	verb := "buy"
	if op == domain.OperationSell {
		verb = "sell"
	}
	return fmt.Sprintf("What asset would you like to %s? (e.g. usdc)", verb), nil
}

// HandleText advances the flow with the user's free-text message.
func (s *TradeServiceImpl) HandleText(ctx context.Context, ownerID string, text string) (string, error) {
	state := s.conv.Get(ownerID)
	text = strings.TrimSpace(text)

	switch state.Step {
	case domain.StepAwaitingAsset:
		return s.handleAsset(ownerID, state.Operation, text)
	case domain.StepAwaitingAmount:
		return s.handleAmount(ctx, ownerID, state, text)
	default:
		return msgMenuHint, nil
	}
}

func (s *TradeServiceImpl) handleAsset(ownerID string, op domain.Operation, text string) (string, error) {
	asset := strings.ToLower(text)
	if asset == "" {
		// Stay at the asset question; an empty asset must never reach a
		// TradeIntent.
		return "Please name an asset (e.g. usdc).", nil
	}

	// ETH is the quote side of every pair; selling it is never valid.
	if op == domain.OperationSell && asset == domain.QuoteAsset {
		s.conv.Clear(ownerID)
		return apperror.ErrQuoteAssetNotSellable().Message, nil
	}

	s.conv.Update(ownerID, domain.StatePatch{
		Asset: &asset,
		Step:  stepPtr(domain.StepAwaitingAmount),
	})

	if op == domain.OperationBuy {
		return fmt.Sprintf("How much ETH would you like to spend on %s?", asset), nil
	}
	return fmt.Sprintf("How much %s would you like to sell?", asset), nil
}

// handleAmount runs validation and submission. Whatever happens in here, the
// conversation ends at Idle.
func (s *TradeServiceImpl) handleAmount(ctx context.Context, ownerID string, state domain.ConversationState, text string) (string, error) {
	defer s.conv.Clear(ownerID)

	amount, err := decimal.NewFromString(text)
	if err != nil || amount.IsNegative() {
		return apperror.ErrInvalidAmount().Message, nil
	}

	wallet, err := s.credSvc.GetOrCreateWallet(ctx, ownerID)
	if err != nil {
		return "", err
	}
	address, err := wallet.DefaultAddress(ctx)
	if err != nil {
		return "", apperror.ErrProviderFailure(fmt.Errorf("default address: %w", err))
	}

	var intent domain.TradeIntent
	if state.Operation == domain.OperationSell {
		intent = domain.NewSellIntent(state.Asset, amount)
	} else {
		intent = domain.NewBuyIntent(state.Asset, amount)
	}

	// Balance comparison in arbitrary-precision decimal; a binary float
	// would misjudge fractional boundaries.
	balance, err := address.GetBalance(ctx, intent.SpendAsset())
	if err != nil {
		return "", apperror.ErrProviderFailure(fmt.Errorf("get %s balance: %w", intent.SpendAsset(), err))
	}
	if amount.GreaterThan(balance) {
		return fmt.Sprintf("%s You have %s %s available.",
			apperror.ErrInsufficientBalance().Message, balance.String(), strings.ToUpper(intent.SpendAsset())), nil
	}

	trade, err := address.CreateTrade(ctx, intent)
	if err != nil {
		return "", apperror.ErrProviderFailure(fmt.Errorf("create trade: %w", err))
	}
	receipt, err := trade.AwaitSettlement(ctx)
	if err != nil {
		return "", apperror.ErrProviderFailure(fmt.Errorf("await settlement: %w", err))
	}

	s.log.Info().
		Str("owner_id", ownerID).
		Str("trade_id", receipt.TradeID).
		Str("from", intent.FromAsset).
		Str("to", intent.ToAsset).
		Str("amount", intent.Amount.String()).
		Msg("trade settled")

	return fmt.Sprintf("Trade complete! %s %s → %s\n%s",
		intent.Amount.String(), strings.ToUpper(intent.FromAsset), strings.ToUpper(intent.ToAsset),
		receipt.TransactionLink), nil
}

// CheckBalance formats every asset balance on the owner's default address.
func (s *TradeServiceImpl) CheckBalance(ctx context.Context, ownerID string) (string, error) {
	wallet, err := s.credSvc.GetOrCreateWallet(ctx, ownerID)
	if err != nil {
		return "", err
	}
	address, err := wallet.DefaultAddress(ctx)
	if err != nil {
		return "", apperror.ErrProviderFailure(fmt.Errorf("default address: %w", err))
	}
	balances, err := address.ListBalances(ctx)
	if err != nil {
		return "", apperror.ErrProviderFailure(fmt.Errorf("list balances: %w", err))
	}
	if len(balances) == 0 {
		return "Your wallet is empty. Use Deposit to fund it.", nil
	}

	assets := make([]string, 0, len(balances))
	for asset := range balances {
		assets = append(assets, asset)
	}
	sort.Strings(assets)

	var b strings.Builder
	b.WriteString("Your balances:\n")
	for _, asset := range assets {
		fmt.Fprintf(&b, "• %s: %s\n", strings.ToUpper(asset), balances[asset].String())
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// DepositAddress returns the owner's deposit address, creating the wallet on
// first use.
func (s *TradeServiceImpl) DepositAddress(ctx context.Context, ownerID string) (string, error) {
	addr, err := s.credSvc.DefaultAddress(ctx, ownerID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Send funds to your wallet address:\n`%s`", addr), nil
}

func stepPtr(st domain.Step) *domain.Step { return &st }
