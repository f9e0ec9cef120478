package tron

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlexZinkM/tron-wallet/internal/address"
	"github.com/AlexZinkM/tron-wallet/internal/common"
	"github.com/AlexZinkM/tron-wallet/internal/keys"
	"github.com/AlexZinkM/tron-wallet/internal/model"
)

var (
	ErrUnsigned             = errors.New("transaction has no signature")
	ErrBroadcastUnreachable = errors.New("broadcast endpoint unreachable")
	ErrRiskCheckBlocked     = errors.New("recipient flagged as malicious")
	ErrAliasNotFound        = errors.New("alias not found")
	ErrUnsupportedAsset     = errors.New("unsupported token")
	ErrOwnerMismatch        = errors.New("transaction owner is not the configured wallet")
	ErrInvalidTransaction   = errors.New("invalid transaction")
	ErrCooldownActive       = errors.New("cooldown active")
	ErrNotConfigured        = errors.New("not configured")
)

// Machine-readable error codes returned in results
const (
	CodeInvalidAddress       = "invalid_address"
	CodeInvalidAmount        = "invalid_amount"
	CodeUnsupportedAsset     = "unsupported_token"
	CodeKeyNotConfigured     = "key_not_configured"
	CodeInsufficientFunds    = "insufficient_funds"
	CodeUnsigned             = "unsigned"
	CodeBroadcastRejected    = "broadcast_rejected"
	CodeBroadcastUnreachable = "broadcast_unreachable"
	CodeAliasNotFound        = "alias_not_found"
	CodeRiskCheckBlocked     = "risk_check_blocked"
	CodeOwnerMismatch        = "owner_mismatch"
	CodeInvalidTransaction   = "invalid_transaction"
	CodeCooldownActive       = "cooldown_active"
	CodeNotConfigured        = "not_configured"
	CodeQueryFailed          = "query_failed"
)

// InsufficientFundsError carries every preflight finding at once
type InsufficientFundsError struct {
	Errors []model.PreflightError
}

func (e *InsufficientFundsError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, pe := range e.Errors {
		msgs = append(msgs, pe.Message)
	}
	return "insufficient funds: " + strings.Join(msgs, "; ")
}

// Codes lists the finding codes in order
func (e *InsufficientFundsError) Codes() []string {
	codes := make([]string, 0, len(e.Errors))
	for _, pe := range e.Errors {
		codes = append(codes, pe.Code)
	}
	return codes
}

// BroadcastRejectedError is an explicit result=false from the node.
// It must not be retried: the same bytes may already be on chain.
type BroadcastRejectedError struct {
	Code    string
	Message string
	TxID    string
}

func (e *BroadcastRejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("broadcast rejected: %s", e.Code)
	}
	return fmt.Sprintf("broadcast rejected: %s: %s", e.Code, e.Message)
}

// AliasNotFoundError is returned by alias resolvers for unknown names
type AliasNotFoundError struct {
	Alias      string
	Suggestion string
}

func (e *AliasNotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("alias %q not found, did you mean %q?", e.Alias, e.Suggestion)
	}
	return fmt.Sprintf("alias %q not found", e.Alias)
}

func (e *AliasNotFoundError) Unwrap() error {
	return ErrAliasNotFound
}

// ErrorCode maps an error to its result code
func ErrorCode(err error) string {
	var (
		funds    *InsufficientFundsError
		rejected *BroadcastRejectedError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &funds):
		return CodeInsufficientFunds
	case errors.As(err, &rejected):
		return CodeBroadcastRejected
	case errors.Is(err, ErrAliasNotFound):
		return CodeAliasNotFound
	case errors.Is(err, address.ErrInvalidAddress):
		return CodeInvalidAddress
	case errors.Is(err, common.ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrUnsupportedAsset):
		return CodeUnsupportedAsset
	case errors.Is(err, keys.ErrKeyNotConfigured), errors.Is(err, keys.ErrInvalidKey):
		return CodeKeyNotConfigured
	case errors.Is(err, ErrUnsigned):
		return CodeUnsigned
	case errors.Is(err, ErrBroadcastUnreachable):
		return CodeBroadcastUnreachable
	case errors.Is(err, ErrRiskCheckBlocked):
		return CodeRiskCheckBlocked
	case errors.Is(err, ErrOwnerMismatch):
		return CodeOwnerMismatch
	case errors.Is(err, ErrInvalidTransaction):
		return CodeInvalidTransaction
	case errors.Is(err, ErrCooldownActive):
		return CodeCooldownActive
	case errors.Is(err, ErrNotConfigured):
		return CodeNotConfigured
	}
	return CodeQueryFailed
}

// NewErrorResponse converts err to the API error body
func NewErrorResponse(err error) model.ErrorResponse {
	resp := model.ErrorResponse{Error: err.Error(), Code: ErrorCode(err)}

	var (
		funds    *InsufficientFundsError
		alias    *AliasNotFoundError
		rejected *BroadcastRejectedError
	)
	switch {
	case errors.As(err, &funds):
		resp.Errors = funds.Errors
	case errors.As(err, &alias):
		resp.Suggestion = alias.Suggestion
	case errors.As(err, &rejected):
		resp.RejectCode = rejected.Code
		resp.RejectMessage = rejected.Message
		resp.TxID = rejected.TxID
	}
	return resp
}
