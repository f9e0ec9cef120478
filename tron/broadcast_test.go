package tron

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/tron-wallet/internal/model"
)

func signedTestTx(t *testing.T) *model.Transaction {
	t.Helper()
	tx, err := newTestBuilder(t).BuildUnsigned(senderHuman, usdtHuman, "10", AssetTRX, testRef())
	require.NoError(t, err)
	require.NoError(t, SignTransaction(newSigner(), tx))
	return tx
}

func TestSubmitUnsignedMakesNoCall(t *testing.T) {
	tx, err := newTestBuilder(t).BuildUnsigned(senderHuman, usdtHuman, "10", AssetTRX, testRef())
	require.NoError(t, err)

	endpoint := &fakeEndpoint{}
	_, err = NewBroadcaster(endpoint).Submit(context.Background(), tx)
	assert.ErrorIs(t, err, ErrUnsigned)
	assert.Zero(t, endpoint.calls)
}

func TestSubmitAccepted(t *testing.T) {
	tx := signedTestTx(t)
	endpoint := &fakeEndpoint{resp: &model.BroadcastResponse{Result: true, TxID: tx.TxID}}

	res, err := NewBroadcaster(endpoint).Submit(context.Background(), tx)
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.Equal(t, tx.TxID, res.TxID)
	assert.Equal(t, 1, endpoint.calls)

	// the submitted bytes start with the raw data
	assert.Contains(t, endpoint.hex, tx.RawDataHex)
	assert.Contains(t, endpoint.hex, tx.Signature[0])
}

func TestSubmitFallsBackToLocalTxID(t *testing.T) {
	tx := signedTestTx(t)
	res, err := NewBroadcaster(&fakeEndpoint{}).Submit(context.Background(), tx)
	require.NoError(t, err)
	assert.Equal(t, tx.TxID, res.TxID)
}

func TestSubmitRejected(t *testing.T) {
	tx := signedTestTx(t)
	endpoint := &fakeEndpoint{resp: &model.BroadcastResponse{Code: "SIGERROR", Message: "Signature validation failed"}}

	_, err := NewBroadcaster(endpoint).Submit(context.Background(), tx)

	var rejected *BroadcastRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "SIGERROR", rejected.Code)
	assert.Equal(t, "Signature validation failed", rejected.Message)
	assert.Equal(t, tx.TxID, rejected.TxID)
	assert.Equal(t, 1, endpoint.calls, "rejections are not retried")
	assert.Equal(t, CodeBroadcastRejected, ErrorCode(err))
}

func TestSubmitUnreachable(t *testing.T) {
	tx := signedTestTx(t)
	endpoint := &fakeEndpoint{err: errTransport}

	_, err := NewBroadcaster(endpoint).Submit(context.Background(), tx)
	assert.ErrorIs(t, err, ErrBroadcastUnreachable)
	assert.Equal(t, 1, endpoint.calls)
	assert.Equal(t, CodeBroadcastUnreachable, ErrorCode(err))
}

func TestSubmitTamperedTransaction(t *testing.T) {
	tx := signedTestTx(t)
	raw := mustHex(t, tx.RawDataHex)
	raw[len(raw)-1] ^= 0x01
	tx.RawDataHex = hex.EncodeToString(raw)

	endpoint := &fakeEndpoint{}
	_, err := NewBroadcaster(endpoint).Submit(context.Background(), tx)
	assert.ErrorIs(t, err, ErrInvalidTransaction)
	assert.Zero(t, endpoint.calls)
}
