package tron

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/AlexZinkM/tron-wallet/internal/common"
	"github.com/AlexZinkM/tron-wallet/internal/model"
)

// Transaction status values
const (
	TxStatusNotFound = "not_found"
	TxStatusSuccess  = "success"
	TxStatusFailed   = "failed"
)

// Chain parameter keys
const (
	paramEnergyFee      = "getEnergyFee"
	paramTransactionFee = "getTransactionFee"
)

// TransactionStatus reports whether txID landed and how it executed.
// A transaction that is not in a block yet reports not_found; after an
// unreachable broadcast that means it may still be pending or never arrived.
func (s *Service) TransactionStatus(ctx context.Context, txID string) (*model.TransactionStatusResponse, error) {
	if s.chain == nil {
		return nil, fmt.Errorf("transaction lookup: %w", ErrNotConfigured)
	}
	id, err := normalizeTxID(txID)
	if err != nil {
		return nil, err
	}

	info, err := s.chain.GetTransactionInfo(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction status: %w", err)
	}

	resp := &model.TransactionStatusResponse{TxID: id, Status: TxStatusNotFound}
	if !info.Found {
		resp.Summary = fmt.Sprintf("Transaction %s is not on chain yet. It may still be pending or it was never accepted.", id)
		return resp, nil
	}

	resp.BlockNumber = info.BlockNumber
	resp.Result = info.Result
	resp.Message = info.Message
	resp.Fee = common.SunToTRX(info.FeeSun)
	if info.Failed {
		resp.Status = TxStatusFailed
	} else {
		resp.Status = TxStatusSuccess
		resp.Success = true
	}

	// confirmations are informational, a failed head read does not fail the lookup
	if ref, err := s.ledger.GetCurrentBlockReference(ctx); err != nil {
		s.log.Warn("failed to read latest block", zap.String("txid", id), zap.Error(err))
	} else {
		resp.Confirmations = max(ref.Number-info.BlockNumber, 0)
	}

	outcome := "succeeded"
	if info.Failed {
		outcome = "failed"
	}
	resp.Summary = fmt.Sprintf("Transaction %s %s in block %d with %d confirmations.",
		id, outcome, resp.BlockNumber, resp.Confirmations)
	if info.Failed && info.Result != "" {
		resp.Summary += " Result: " + info.Result + "."
	}
	return resp, nil
}

// NetworkStatus reports the latest block
func (s *Service) NetworkStatus(ctx context.Context) (*model.NetworkStatusResponse, error) {
	ref, err := s.ledger.GetCurrentBlockReference(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get network status: %w", err)
	}
	return &model.NetworkStatusResponse{
		LatestBlock: ref.Number,
		BlockID:     ref.Hash,
		Summary:     fmt.Sprintf("Latest TRON block is %d.", ref.Number),
	}, nil
}

// GasParameters reports the current energy and bandwidth prices
func (s *Service) GasParameters(ctx context.Context) (*model.GasParametersResponse, error) {
	if s.chain == nil {
		return nil, fmt.Errorf("chain parameters: %w", ErrNotConfigured)
	}
	params, err := s.chain.GetChainParameters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain parameters: %w", err)
	}
	energy, ok := params[paramEnergyFee]
	if !ok {
		return nil, fmt.Errorf("chain parameters have no %s", paramEnergyFee)
	}

	resp := &model.GasParametersResponse{
		EnergyPriceSun:    energy,
		BandwidthPriceSun: params[paramTransactionFee],
		USDTTransferFee:   common.SunToTRX(energy * EstimatedTransferEnergy),
	}
	resp.Summary = fmt.Sprintf("Energy costs %d sun and bandwidth %d sun per unit. A USDT transfer burns about %s TRX without staked energy.",
		resp.EnergyPriceSun, resp.BandwidthPriceSun, resp.USDTTransferFee)
	return resp, nil
}

// normalizeTxID accepts 64 hex characters with an optional 0x prefix
func normalizeTxID(txID string) (string, error) {
	id := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(txID), "0x"))
	if raw, err := hex.DecodeString(id); err != nil || len(raw) != 32 {
		return "", fmt.Errorf("%w: txid must be 64 hex characters", ErrInvalidTransaction)
	}
	return id, nil
}
