package tron

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/tron-wallet/internal/model"
)

func TestWalletInfo(t *testing.T) {
	h := newHarness(t, 1_500_000, 2_000_000)

	info, err := h.svc.WalletInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, senderHuman, info.Address)
	assert.Equal(t, "1.500000", info.TRXBalance)
	assert.Equal(t, "2.000000", info.USDTBalance)

	png, err := base64.StdEncoding.DecodeString(info.QR)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

func TestWalletInfoDegradesOnReadFailure(t *testing.T) {
	h := newHarness(t, 1_500_000, 0)
	h.ledger.usdtErr = errTransport

	info, err := h.svc.WalletInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.500000", info.TRXBalance)
	assert.Equal(t, balanceUnavailable, info.USDTBalance)
	assert.Contains(t, info.Summary, balanceUnavailable)
}

func TestBalance(t *testing.T) {
	h := newHarness(t, 3_000_000, 4_000_000)

	own, err := h.svc.Balance(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, senderHuman, own.Address)
	assert.Equal(t, "3.000000", own.TRX)
	assert.Equal(t, "4.000000", own.USDT)

	other, err := h.svc.Balance(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, usdtHuman, other.Address)

	h.ledger.trxErr = errTransport
	_, err = h.svc.Balance(context.Background(), "")
	assert.ErrorIs(t, err, errTransport)
}

func TestCheckSafety(t *testing.T) {
	h := newHarness(t, 0, 0)

	resp, err := h.svc.CheckSafety(context.Background(), usdtHuman)
	require.NoError(t, err)
	assert.True(t, resp.IsSafe)

	h.risk.report = &model.RiskReport{IsRisky: true, RiskType: "Fraud", Reasons: []string{"Fraud transactions"}}
	resp, err = h.svc.CheckSafety(context.Background(), usdtHuman)
	require.NoError(t, err)
	assert.False(t, resp.IsSafe)
	assert.Equal(t, "Fraud", resp.RiskType)
	assert.Contains(t, resp.Summary, "Fraud")
}

func TestResourcesClampsAtZero(t *testing.T) {
	h := newHarness(t, 0, 0)

	resp, err := h.svc.Resources(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.EnergyRemaining)
	assert.Equal(t, int64(500), resp.FreeNetRemaining)
}

func TestBuildDoesNotSignOrBroadcast(t *testing.T) {
	h := newHarness(t, 100_000_000, 100_000_000)

	res, err := h.svc.Build(context.Background(), model.TransferRequest{To: "alice", Amount: "10"})
	require.NoError(t, err)

	assert.False(t, res.Transaction.IsSigned())
	assert.True(t, res.SenderCheck.Sufficient)
	assert.True(t, res.RecipientCheck.Checked)
	assert.Contains(t, res.Summary, res.Transaction.TxID)
	assert.Zero(t, h.signer.signs)
	assert.Zero(t, h.endpoint.calls)
}

func TestBuildInvalidAmountBeforeNetwork(t *testing.T) {
	h := newHarness(t, 100_000_000, 100_000_000)

	_, err := h.svc.Build(context.Background(), model.TransferRequest{To: usdtHuman, Amount: "0"})
	assert.Equal(t, CodeInvalidAmount, ErrorCode(err))
	assert.Zero(t, h.ledger.total())
}

func TestBroadcastSignsLocally(t *testing.T) {
	h := newHarness(t, 100_000_000, 100_000_000)
	built, err := h.svc.Build(context.Background(), model.TransferRequest{To: usdtHuman, Amount: "1", Token: "TRX"})
	require.NoError(t, err)

	res, err := h.svc.Broadcast(context.Background(), built.Transaction, true)
	require.NoError(t, err)
	assert.True(t, res.Result)
	assert.Equal(t, built.Transaction.TxID, res.TxID)
	assert.Equal(t, 1, h.signer.signs)
	assert.Equal(t, 1, h.endpoint.calls)
}

func TestBroadcastUnsignedWithoutSigning(t *testing.T) {
	h := newHarness(t, 100_000_000, 100_000_000)
	built, err := h.svc.Build(context.Background(), model.TransferRequest{To: usdtHuman, Amount: "1"})
	require.NoError(t, err)

	_, err = h.svc.Broadcast(context.Background(), built.Transaction, false)
	assert.ErrorIs(t, err, ErrUnsigned)
	assert.Zero(t, h.endpoint.calls)
}

func TestBroadcastRefusesForeignTransaction(t *testing.T) {
	h := newHarness(t, 0, 0)
	tx, err := newTestBuilder(t).BuildUnsigned(usdtHuman, senderHuman, "1", AssetTRX, testRef())
	require.NoError(t, err)

	_, err = h.svc.Broadcast(context.Background(), tx, true)
	assert.ErrorIs(t, err, ErrOwnerMismatch)
	assert.Zero(t, h.signer.signs)
	assert.Zero(t, h.endpoint.calls)
}

func TestBroadcastRefusesDoubleSigning(t *testing.T) {
	h := newHarness(t, 0, 0)
	tx := signedTestTx(t)

	_, err := h.svc.Broadcast(context.Background(), tx, true)
	assert.ErrorIs(t, err, ErrInvalidTransaction)
	assert.Zero(t, h.endpoint.calls)
}

func TestCheckSafetyDisabled(t *testing.T) {
	h := newHarness(t, 0, 0, func(d *Deps) { d.Risk = nil })

	_, err := h.svc.CheckSafety(context.Background(), usdtHuman)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Equal(t, CodeNotConfigured, ErrorCode(err))

	h = newHarness(t, 0, 0, func(d *Deps) { d.Resources = nil })
	_, err = h.svc.Resources(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestBroadcastNilTransaction(t *testing.T) {
	h := newHarness(t, 0, 0)

	_, err := h.svc.Broadcast(context.Background(), nil, true)
	assert.ErrorIs(t, err, ErrInvalidTransaction)
	assert.Zero(t, h.signer.signs)
	assert.Zero(t, h.endpoint.calls)
}
