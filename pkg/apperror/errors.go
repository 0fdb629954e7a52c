package apperror

import "fmt"

// AppError is a structured error with a user-safe message. Message is what
// the bot may echo back to the chat; Err carries the internal cause and is
// only ever logged.
type AppError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// ---- Credential store (CRED) ----

// ErrCredentialCorruption marks an existing record that cannot be decrypted
// or re-imported. Fatal for the request: creating a fresh wallet here would
// orphan whatever funds the stored one holds.
func ErrCredentialCorruption(err error) *AppError {
	return Wrap("CRED_001", "Your wallet record could not be read. Please contact support.", err)
}

// ---- Store infrastructure (STORE) ----

func ErrStoreUnavailable(err error) *AppError {
	return Wrap("STORE_001", "Wallet storage is temporarily unavailable. Please try again.", err)
}

// ---- Trade validation (TRADE) ----

func ErrInsufficientBalance() *AppError {
	return New("TRADE_001", "Insufficient balance for this trade.")
}

func ErrInvalidAmount() *AppError {
	return New("TRADE_002", "Invalid amount. Please enter a number like 0.01.")
}

func ErrQuoteAssetNotSellable() *AppError {
	return New("TRADE_003", "ETH is the quote currency and cannot be sold directly.")
}

// ---- Trading provider (PROV) ----

func ErrProviderFailure(err error) *AppError {
	return Wrap("PROV_001", "The trade could not be completed. Please try again.", err)
}

// ---- System (SYS) ----

// InternalError wraps an unexpected error with a generic user message.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Something went wrong. Please try again.", err)
}
