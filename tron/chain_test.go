package tron

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/tron-wallet/internal/model"
)

const landedTxID = "02ff31a6bb0c33b941f58e99f69edb499a043c7f5c664ee9aec2bf263b891fb2"

func TestTransactionStatusSuccess(t *testing.T) {
	h := newHarness(t, 0, 0)
	h.chain.info = &model.TransactionInfo{Found: true, BlockNumber: testBlockNumber - 19, Result: "SUCCESS", FeeSun: 345_000}

	resp, err := h.svc.TransactionStatus(context.Background(), "0x"+landedTxID)
	require.NoError(t, err)
	assert.Equal(t, landedTxID, h.chain.txID)
	assert.Equal(t, TxStatusSuccess, resp.Status)
	assert.True(t, resp.Success)
	assert.Equal(t, int64(testBlockNumber-19), resp.BlockNumber)
	assert.Equal(t, int64(19), resp.Confirmations)
	assert.Equal(t, "0.345000", resp.Fee)
	assert.Contains(t, resp.Summary, "succeeded")
}

func TestTransactionStatusFailed(t *testing.T) {
	h := newHarness(t, 0, 0)
	h.chain.info = &model.TransactionInfo{Found: true, BlockNumber: 16, Failed: true, Result: "OUT_OF_ENERGY"}

	resp, err := h.svc.TransactionStatus(context.Background(), landedTxID)
	require.NoError(t, err)
	assert.Equal(t, TxStatusFailed, resp.Status)
	assert.False(t, resp.Success)
	assert.Equal(t, "OUT_OF_ENERGY", resp.Result)
	assert.Contains(t, resp.Summary, "OUT_OF_ENERGY")
}

func TestTransactionStatusNotFound(t *testing.T) {
	h := newHarness(t, 0, 0)

	resp, err := h.svc.TransactionStatus(context.Background(), landedTxID)
	require.NoError(t, err)
	assert.Equal(t, TxStatusNotFound, resp.Status)
	assert.False(t, resp.Success)
	assert.Zero(t, h.ledger.count("block"))
}

func TestTransactionStatusHeadReadFailure(t *testing.T) {
	h := newHarness(t, 0, 0)
	h.chain.info = &model.TransactionInfo{Found: true, BlockNumber: 16, Result: "SUCCESS"}
	h.ledger.refErr = errTransport

	resp, err := h.svc.TransactionStatus(context.Background(), landedTxID)
	require.NoError(t, err)
	assert.Equal(t, TxStatusSuccess, resp.Status)
	assert.Zero(t, resp.Confirmations)
}

func TestTransactionStatusRejectsBadTxID(t *testing.T) {
	h := newHarness(t, 0, 0)

	for _, id := range []string{"", "abc", landedTxID + "00", "zz" + landedTxID[2:]} {
		_, err := h.svc.TransactionStatus(context.Background(), id)
		assert.ErrorIs(t, err, ErrInvalidTransaction, id)
	}
	assert.Zero(t, h.chain.calls)
}

func TestTransactionStatusQueryFailure(t *testing.T) {
	h := newHarness(t, 0, 0)
	h.chain.err = errTransport

	_, err := h.svc.TransactionStatus(context.Background(), landedTxID)
	require.Error(t, err)
	assert.Equal(t, CodeQueryFailed, ErrorCode(err))
}

func TestNetworkStatus(t *testing.T) {
	h := newHarness(t, 0, 0)

	resp, err := h.svc.NetworkStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(testBlockNumber), resp.LatestBlock)
	assert.Equal(t, testBlockID, resp.BlockID)
}

func TestGasParameters(t *testing.T) {
	h := newHarness(t, 0, 0)
	h.chain.params = map[string]int64{paramEnergyFee: 420, paramTransactionFee: 1000}

	resp, err := h.svc.GasParameters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(420), resp.EnergyPriceSun)
	assert.Equal(t, int64(1000), resp.BandwidthPriceSun)
	assert.Equal(t, "27.300000", resp.USDTTransferFee)

	h.chain.params = map[string]int64{paramTransactionFee: 1000}
	_, err = h.svc.GasParameters(context.Background())
	assert.Error(t, err)
}

func TestChainLookupsNotConfigured(t *testing.T) {
	h := newHarness(t, 0, 0, func(d *Deps) { d.Chain = nil })

	_, err := h.svc.TransactionStatus(context.Background(), landedTxID)
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = h.svc.GasParameters(context.Background())
	assert.Equal(t, CodeNotConfigured, ErrorCode(err))
}
