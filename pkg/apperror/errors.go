package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
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
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- Withdrawals (WDR) ----

func ErrInsufficientBalance() *AppError {
	return New("WDR_001", "Withdrawal amount exceeds available balance", http.StatusUnprocessableEntity)
}

func ErrInvalidNetwork() *AppError {
	return New("WDR_002", "Please enter a valid MTN, Vodafone, or AirtelTigo number", http.StatusBadRequest)
}

func ErrBelowMinimum(min string) *AppError {
	return New("WDR_003", fmt.Sprintf("Minimum withdrawal amount is %s", min), http.StatusBadRequest)
}

// ---- Payment Gateway (GW) ----

// ErrGatewayRejected carries the gateway's reported message verbatim.
func ErrGatewayRejected(gatewayCode, gatewayMessage string) *AppError {
	return New("GW_001", fmt.Sprintf("Error Code %s: %s", gatewayCode, gatewayMessage), http.StatusBadGateway)
}

// ErrGatewayAmbiguous marks an outcome that could not be confirmed either
// way, typically poll exhaustion after an accepted debit.
func ErrGatewayAmbiguous(err error) *AppError {
	return Wrap("GW_002", "Payment status could not be confirmed", http.StatusBadGateway, err)
}

// ErrPaymentCancelled maps the gateway sentinel for a user-cancelled or
// insufficient-funds debit. The only rejection that guarantees no charge.
func ErrPaymentCancelled() *AppError {
	return New("GW_003", "Payment was cancelled or had insufficient balance. Please try again.", http.StatusUnprocessableEntity)
}

// ---- Recording & Reconciliation (REC) ----

// ErrRecordingFailed means money moved (or is assumed to have moved) but the
// record-keeping call failed. Never silently swallowed.
func ErrRecordingFailed(err error) *AppError {
	return Wrap("REC_001", "Payment successful but boost recording failed. Please contact support.", http.StatusBadGateway, err)
}

func ErrDuplicateSubmission() *AppError {
	return New("REC_002", "A previous request is still being processed", http.StatusConflict)
}

// ---- Authentication (AUTH) ----

func ErrInvalidSession() *AppError {
	return New("AUTH_001", "Invalid or expired session", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ErrUpstreamUnavailable marks a transport-level failure talking to a
// backend service.
func ErrUpstreamUnavailable(name string, err error) *AppError {
	return Wrap("SYS_002", fmt.Sprintf("%s is unreachable", name), http.StatusBadGateway, err)
}
