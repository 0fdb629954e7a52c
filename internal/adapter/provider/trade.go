package provider

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/arhansuba/tg-trading-bot/internal/core/domain"
)

const settlementPollInterval = 2 * time.Second

const (
	tradeStatusComplete = "complete"
	tradeStatusFailed   = "failed"
)

type tradePayload struct {
	TradeID         string `json:"trade_id"`
	Status          string `json:"status"`
	TransactionLink string `json:"transaction_link"`
	FailureReason   string `json:"failure_reason,omitempty"`
}

// Trade implements ports.TradeHandle.
type Trade struct {
	client   *Client
	walletID string
	address  string
	data     tradePayload
}

// AwaitSettlement polls the trade until the provider reports a terminal
// status. It blocks only the calling goroutine and honors ctx cancellation;
// no timeout is imposed beyond ctx.
func (t *Trade) AwaitSettlement(ctx context.Context) (*domain.SettlementReceipt, error) {
	ticker := time.NewTicker(settlementPollInterval)
	defer ticker.Stop()

	for {
		switch t.data.Status {
		case tradeStatusComplete:
			return &domain.SettlementReceipt{
				TradeID:         t.data.TradeID,
				Status:          t.data.Status,
				TransactionLink: t.data.TransactionLink,
			}, nil
		case tradeStatusFailed:
			return nil, fmt.Errorf("trade %s failed: %s", t.data.TradeID, t.data.FailureReason)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("awaiting settlement of trade %s: %w", t.data.TradeID, ctx.Err())
		case <-ticker.C:
		}

		path := fmt.Sprintf("/v1/wallets/%s/addresses/%s/trades/%s", t.walletID, t.address, t.data.TradeID)
		var refreshed tradePayload
		if err := t.client.do(ctx, http.MethodGet, path, nil, &refreshed); err != nil {
			return nil, err
		}
		t.data = refreshed
	}
}
