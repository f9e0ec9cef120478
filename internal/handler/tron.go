package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/AlexZinkM/tron-wallet/internal/model"
	"github.com/AlexZinkM/tron-wallet/tron"
)

// maxBodyBytes caps request bodies; a signed transaction is well under this
const maxBodyBytes = 1 << 20

// WalletService is the part of tron.Service the HTTP API needs
type WalletService interface {
	WalletInfo(ctx context.Context) (*model.WalletInfoResponse, error)
	Balance(ctx context.Context, addr string) (*model.BalanceResponse, error)
	CheckSafety(ctx context.Context, addr string) (*model.SafetyResponse, error)
	Resources(ctx context.Context, addr string) (*model.ResourcesResponse, error)
	Build(ctx context.Context, req model.TransferRequest) (*model.BuildResult, error)
	Broadcast(ctx context.Context, tx *model.Transaction, sign bool) (*model.TransferResult, error)
	Transfer(ctx context.Context, req model.TransferRequest) *model.TransferResult
	TransactionStatus(ctx context.Context, txID string) (*model.TransactionStatusResponse, error)
	NetworkStatus(ctx context.Context) (*model.NetworkStatusResponse, error)
	GasParameters(ctx context.Context) (*model.GasParametersResponse, error)
}

// TronHandler serves the wallet operations over HTTP
type TronHandler struct {
	svc WalletService
	log *zap.Logger
}

// NewTronHandler creates a new TronHandler
func NewTronHandler(svc WalletService, log *zap.Logger) *TronHandler {
	return &TronHandler{svc: svc, log: log}
}

// Wallet handles GET /tron/wallet
// @Summary      Get wallet info
// @Description  Returns the configured address, TRX and USDT balances and a QR code of the address
// @Tags         tron
// @Produce      json
// @Success      200  {object}  model.WalletInfoResponse
// @Failure      500  {object}  model.ErrorResponse
// @Router       /tron/wallet [get]
func (h *TronHandler) Wallet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	info, err := h.svc.WalletInfo(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// GetBalance handles GET /tron/balance
// @Summary      Get balance
// @Description  Gets TRX and USDT balance of an address or alias (default: configured wallet)
// @Tags         tron
// @Produce      json
// @Param        address  query     string  false  "Address or alias"
// @Success      200      {object}  model.BalanceResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /tron/balance [get]
func (h *TronHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	balance, err := h.svc.Balance(r.Context(), r.URL.Query().Get("address"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balance)
}

// Safety handles GET /tron/safety
// @Summary      Check address safety
// @Description  Looks an address up in the TronScan malicious address database
// @Tags         tron
// @Produce      json
// @Param        address  query     string  true  "Address or alias"
// @Success      200      {object}  model.SafetyResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /tron/safety [get]
func (h *TronHandler) Safety(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	addr := r.URL.Query().Get("address")
	if addr == "" {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "address is required", Code: tron.CodeInvalidAddress})
		return
	}

	resp, err := h.svc.CheckSafety(r.Context(), addr)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetResources handles GET /tron/resources
// @Summary      Get account resources
// @Description  Remaining energy and bandwidth of an address (default: configured wallet)
// @Tags         tron
// @Produce      json
// @Param        address  query     string  false  "Address or alias"
// @Success      200      {object}  model.ResourcesResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /tron/resources [get]
func (h *TronHandler) GetResources(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	resp, err := h.svc.Resources(r.Context(), r.URL.Query().Get("address"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Build handles POST /tron/build
// @Summary      Build unsigned transaction
// @Description  Runs preflight and returns an unsigned transaction for review. Nothing is signed or sent.
// @Tags         tron
// @Accept       json
// @Produce      json
// @Param        request  body      model.TransferRequest  true  "Transfer data"
// @Success      200      {object}  model.BuildResult
// @Failure      400      {object}  model.ErrorResponse
// @Failure      422      {object}  model.ErrorResponse
// @Router       /tron/build [post]
func (h *TronHandler) Build(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.TransferRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.svc.Build(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Broadcast handles POST /tron/broadcast
// @Summary      Broadcast transaction
// @Description  Broadcasts a signed transaction, or signs it with the local key first when "sign" is set
// @Tags         tron
// @Accept       json
// @Produce      json
// @Param        request  body      model.BroadcastRequest  true  "Transaction"
// @Success      200      {object}  model.TransferResult
// @Failure      400      {object}  model.ErrorResponse
// @Failure      422      {object}  model.ErrorResponse  "Rejected by the node, see reject_code"
// @Failure      502      {object}  model.ErrorResponse
// @Router       /tron/broadcast [post]
func (h *TronHandler) Broadcast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.BroadcastRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.svc.Broadcast(r.Context(), &req.Transaction, req.Sign)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Transfer handles POST /tron/transfer
// @Summary      Send TRX or USDT
// @Description  Resolves the recipient, checks it for risk, verifies balances, then builds, signs and broadcasts
// @Tags         tron
// @Accept       json
// @Produce      json
// @Param        request  body      model.TransferRequest  true  "Transfer data"
// @Success      200      {object}  model.TransferResult
// @Failure      403      {object}  model.TransferResult  "Recipient blocked by safety check"
// @Failure      422      {object}  model.TransferResult
// @Router       /tron/transfer [post]
func (h *TronHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.TransferRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res := h.svc.Transfer(r.Context(), req)
	switch res.State {
	case tron.StateDone:
		writeJSON(w, http.StatusOK, res)
	case tron.StateBlocked:
		writeJSON(w, http.StatusForbidden, res)
	default:
		writeJSON(w, statusFor(res.ErrorCode), res)
	}
}

// TransactionStatus handles GET /tron/transaction
// @Summary      Get transaction status
// @Description  Reports whether a transaction is on chain, whether it succeeded, its block and confirmations
// @Tags         tron
// @Produce      json
// @Param        txid  query     string  true  "Transaction id, 64 hex characters"
// @Success      200   {object}  model.TransactionStatusResponse
// @Failure      400   {object}  model.ErrorResponse
// @Failure      502   {object}  model.ErrorResponse
// @Router       /tron/transaction [get]
func (h *TronHandler) TransactionStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	resp, err := h.svc.TransactionStatus(r.Context(), r.URL.Query().Get("txid"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// NetworkStatus handles GET /tron/network
// @Summary      Get network status
// @Description  Latest block number and id
// @Tags         tron
// @Produce      json
// @Success      200  {object}  model.NetworkStatusResponse
// @Failure      502  {object}  model.ErrorResponse
// @Router       /tron/network [get]
func (h *TronHandler) NetworkStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	resp, err := h.svc.NetworkStatus(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GasParameters handles GET /tron/gas
// @Summary      Get gas parameters
// @Description  Current energy and bandwidth prices in sun
// @Tags         tron
// @Produce      json
// @Success      200  {object}  model.GasParametersResponse
// @Failure      502  {object}  model.ErrorResponse
// @Router       /tron/gas [get]
func (h *TronHandler) GasParameters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	resp, err := h.svc.GasParameters(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *TronHandler) writeError(w http.ResponseWriter, err error) {
	resp := tron.NewErrorResponse(err)
	status := statusFor(resp.Code)
	if status >= http.StatusInternalServerError {
		h.log.Error("request failed", zap.String("code", resp.Code), zap.Error(err))
	}
	writeJSON(w, status, resp)
}

// statusFor maps an error code to an HTTP status
func statusFor(code string) int {
	switch code {
	case tron.CodeInvalidAddress, tron.CodeInvalidAmount, tron.CodeUnsupportedAsset,
		tron.CodeAliasNotFound, tron.CodeInvalidTransaction, tron.CodeUnsigned:
		return http.StatusBadRequest
	case tron.CodeOwnerMismatch, tron.CodeRiskCheckBlocked:
		return http.StatusForbidden
	case tron.CodeInsufficientFunds, tron.CodeBroadcastRejected:
		return http.StatusUnprocessableEntity
	case tron.CodeCooldownActive:
		return http.StatusTooManyRequests
	case tron.CodeBroadcastUnreachable, tron.CodeQueryFailed:
		return http.StatusBadGateway
	case tron.CodeNotConfigured:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
