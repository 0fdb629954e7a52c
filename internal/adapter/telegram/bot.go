package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/arhansuba/tg-trading-bot/internal/core/domain"
	"github.com/arhansuba/tg-trading-bot/internal/core/ports"
	"github.com/arhansuba/tg-trading-bot/pkg/apperror"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// Menu button labels. Telegram sends a button press as the label's plain
// text, so dispatch matches on these strings verbatim.
const (
	labelBalance  = "Check Balance"
	labelDeposit  = "Deposit"
	labelBuy      = "Buy"
	labelSell     = "Sell"
	labelHelp     = "Help"
	labelSettings = "Settings"
)

const (
	msgWelcome = "Welcome! I hold a custody wallet for you and trade on your behalf.\n" +
		"Use the menu below to check your balance, deposit funds, or trade."
	msgHelp = "• Check Balance — list every asset in your wallet\n" +
		"• Deposit — show your wallet address for funding\n" +
		"• Buy — spend ETH to buy another asset\n" +
		"• Sell — sell an asset back into ETH\n" +
		"• Settings — show your wallet configuration"
	msgSettingsFmt = "Your wallet settings:\n" +
		"• Network: %s\n" +
		"• Quote currency: ETH\n" +
		"Keys are held in custody; use Deposit to fund your wallet."
	msgInternal = "Something went wrong on our side. Please try again."
)

// sender is the slice of the Telegram API the bot needs.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot routes incoming Telegram updates to the trade service. Each update is
// handled on its own goroutine so one user's settlement wait never blocks
// another user's messages.
type Bot struct {
	api     sender
	trades  ports.TradeService
	conv    ports.ConversationStore
	network string
	log     zerolog.Logger
}

// NewBot creates a new Bot. network is the chain wallets live on, shown in
// Settings.
func NewBot(api sender, trades ports.TradeService, conv ports.ConversationStore, network string, log zerolog.Logger) *Bot {
	return &Bot{api: api, trades: trades, conv: conv, network: network, log: log}
}

// Run consumes updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			go b.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate processes a single update. A panic in one handler is
// contained: the conversation is reset and the user gets a generic reply, so
// a crashing flow never wedges, and the bot keeps serving.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	msg := update.Message
	ownerID := strconv.FormatInt(msg.From.ID, 10)

	defer func() {
		if r := recover(); r != nil {
			b.log.Error().Interface("panic", r).Str("owner_id", ownerID).Msg("recovered in update handler")
			b.conv.Clear(ownerID)
			b.send(ownerID, msg.Chat.ID, msgInternal, false)
		}
	}()

	reply, markdown := b.dispatch(ctx, ownerID, msg)
	if reply == "" {
		return
	}
	b.send(ownerID, msg.Chat.ID, reply, markdown)
}

func (b *Bot) send(ownerID string, chatID int64, text string, markdown bool) {
	out := tgbotapi.NewMessage(chatID, text)
	out.ReplyMarkup = menuKeyboard()
	if markdown {
		out.ParseMode = tgbotapi.ModeMarkdown
	}
	if _, err := b.api.Send(out); err != nil {
		b.log.Error().Err(err).Str("owner_id", ownerID).Msg("sending reply")
	}
}

// dispatch maps a message to a service call and returns the reply text. The
// second return is true when the reply contains Markdown.
func (b *Bot) dispatch(ctx context.Context, ownerID string, msg *tgbotapi.Message) (string, bool) {
	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			return msgWelcome, false
		case "help":
			return msgHelp, false
		default:
			return msgHelp, false
		}
	}

	switch msg.Text {
	case labelBalance:
		text, err := b.trades.CheckBalance(ctx, ownerID)
		return b.reply(ownerID, text, err), false
	case labelDeposit:
		text, err := b.trades.DepositAddress(ctx, ownerID)
		return b.reply(ownerID, text, err), err == nil
	case labelBuy:
		text, err := b.trades.StartFlow(ctx, ownerID, domain.OperationBuy)
		return b.reply(ownerID, text, err), false
	case labelSell:
		text, err := b.trades.StartFlow(ctx, ownerID, domain.OperationSell)
		return b.reply(ownerID, text, err), false
	case labelHelp:
		return msgHelp, false
	case labelSettings:
		return fmt.Sprintf(msgSettingsFmt, b.network), false
	default:
		text, err := b.trades.HandleText(ctx, ownerID, msg.Text)
		return b.reply(ownerID, text, err), false
	}
}

// reply converts a service result into user-facing text. On error the
// conversation is reset so the user is never stuck mid-flow, and only the
// typed error's safe message (or a generic one) is shown.
func (b *Bot) reply(ownerID string, text string, err error) string {
	if err == nil {
		return text
	}

	b.conv.Clear(ownerID)

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		b.log.Error().Err(appErr.Err).
			Str("owner_id", ownerID).
			Str("code", appErr.Code).
			Msg("trade flow error")
		return appErr.Message
	}
	b.log.Error().Err(err).Str("owner_id", ownerID).Msg("unexpected error")
	return msgInternal
}

func menuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(labelBalance),
			tgbotapi.NewKeyboardButton(labelDeposit),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(labelBuy),
			tgbotapi.NewKeyboardButton(labelSell),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(labelHelp),
			tgbotapi.NewKeyboardButton(labelSettings),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}
