package tron

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/AlexZinkM/tron-wallet/internal/address"
	"github.com/AlexZinkM/tron-wallet/internal/keys"
	"github.com/AlexZinkM/tron-wallet/internal/model"
)

type mapResolver map[string]string

func (m mapResolver) Resolve(s string) (address.Address, error) {
	if target, ok := m[s]; ok {
		return address.Parse(target)
	}
	if a, err := address.Parse(s); err == nil {
		return a, nil
	}
	return address.Address{}, &AliasNotFoundError{Alias: s, Suggestion: "alice"}
}

type harness struct {
	ledger   *fakeLedger
	endpoint *fakeEndpoint
	risk     *fakeRisk
	chain    *fakeChain
	signer   *countingSigner
	svc      *Service
}

func newHarness(t *testing.T, trxSun, usdtBase int64, opts ...func(*Deps)) *harness {
	h := &harness{
		ledger:   newFakeLedger(trxSun, usdtBase),
		endpoint: &fakeEndpoint{},
		risk:     &fakeRisk{},
		chain:    &fakeChain{},
		signer:   newSigner(),
	}
	d := Deps{
		Ledger:    h.ledger,
		Endpoint:  h.endpoint,
		Signer:    h.signer,
		Risk:      h.risk,
		Aliases:   mapResolver{"alice": usdtHuman},
		Resources: h.ledger,
		Chain:     h.chain,
		USDT:      mustAddress(t, usdtHuman),
		Logger:    zaptest.NewLogger(t),
	}
	for _, o := range opts {
		o(&d)
	}
	h.svc = NewService(d)
	h.svc.builder.now = fixedNow
	return h
}

func (h *harness) assertNothingBuilt(t *testing.T) {
	t.Helper()
	assert.Zero(t, h.ledger.count("block"), "no reference block fetched")
	assert.Zero(t, h.signer.signs, "nothing signed")
	assert.Zero(t, h.endpoint.calls, "nothing broadcast")
}

func TestTransferDone(t *testing.T) {
	h := newHarness(t, 100_000_000, 100_000_000)

	res := h.svc.Transfer(context.Background(), model.TransferRequest{To: "alice", Amount: "10.0"})

	require.Equal(t, StateDone, res.State, res.Error)
	assert.True(t, res.Result)
	assert.Len(t, res.TxID, 64)
	assert.Equal(t, "10.000000", res.Amount)
	assert.Equal(t, "USDT", res.Token)
	assert.Equal(t, senderHuman, res.From)
	assert.Equal(t, usdtHuman, res.To)
	assert.Contains(t, res.Summary, res.TxID)
	assert.Empty(t, res.ErrorCode)

	assert.Equal(t, 1, h.risk.calls)
	assert.Equal(t, 1, h.ledger.count("block"))
	assert.Equal(t, 1, h.signer.signs)
	assert.Equal(t, 1, h.endpoint.calls)
}

func TestTransferNative(t *testing.T) {
	h := newHarness(t, 20_000_000, 0)

	res := h.svc.Transfer(context.Background(), model.TransferRequest{To: usdtHuman, Amount: "10.0", Token: "trx"})

	require.Equal(t, StateDone, res.State, res.Error)
	assert.Equal(t, "TRX", res.Token)
	assert.Zero(t, h.ledger.count("asset"))
}

func TestTransferBlockedNeverBuilds(t *testing.T) {
	h := newHarness(t, 100_000_000, 100_000_000)
	h.risk.report = &model.RiskReport{IsRisky: true, RiskType: "Blacklisted", Reasons: []string{"Address is blacklisted"}}

	res := h.svc.Transfer(context.Background(), model.TransferRequest{To: usdtHuman, Amount: "10"})

	assert.Equal(t, StateBlocked, res.State)
	assert.True(t, res.Blocked)
	assert.False(t, res.Result)
	assert.Equal(t, "Blacklisted", res.RiskType)
	assert.Equal(t, []string{"Address is blacklisted"}, res.Reasons)
	assert.Equal(t, CodeRiskCheckBlocked, res.ErrorCode)
	assert.Contains(t, res.Error, ErrRiskCheckBlocked.Error())
	assert.Zero(t, h.ledger.total(), "no balance reads after a block")
	h.assertNothingBuilt(t)
}

func TestTransferInvalidAmountTouchesNothing(t *testing.T) {
	for _, amount := range []string{"0", "-1", "0.0000001", "abc"} {
		t.Run(amount, func(t *testing.T) {
			h := newHarness(t, 100_000_000, 100_000_000)

			res := h.svc.Transfer(context.Background(), model.TransferRequest{To: usdtHuman, Amount: amount})

			assert.Equal(t, StateError, res.State)
			assert.Equal(t, CodeInvalidAmount, res.ErrorCode)
			assert.Zero(t, h.ledger.total())
			assert.Zero(t, h.risk.calls)
			h.assertNothingBuilt(t)
		})
	}
}

func TestTransferInsufficientFundsReportsAll(t *testing.T) {
	h := newHarness(t, 0, 0)

	res := h.svc.Transfer(context.Background(), model.TransferRequest{To: usdtHuman, Amount: "20"})

	assert.Equal(t, StateError, res.State)
	assert.Equal(t, CodeInsufficientFunds, res.ErrorCode)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, model.CodeInsufficientAssetBalance, res.Errors[0].Code)
	assert.Equal(t, model.CodeInsufficientFeeReserve, res.Errors[1].Code)
	h.assertNothingBuilt(t)
}

func TestTransferFeeReserveOnly(t *testing.T) {
	h := newHarness(t, 1_000_000, 50_000_000)

	res := h.svc.Transfer(context.Background(), model.TransferRequest{To: usdtHuman, Amount: "20", Token: "USDT"})

	require.Len(t, res.Errors, 1)
	assert.Equal(t, model.CodeInsufficientFeeReserve, res.Errors[0].Code)
	h.assertNothingBuilt(t)
}

func TestTransferUnknownAlias(t *testing.T) {
	h := newHarness(t, 100_000_000, 100_000_000)

	res := h.svc.Transfer(context.Background(), model.TransferRequest{To: "alise", Amount: "1"})

	assert.Equal(t, StateError, res.State)
	assert.Equal(t, CodeAliasNotFound, res.ErrorCode)
	assert.Equal(t, "alice", res.Suggestion)
	assert.Zero(t, h.risk.calls)
	h.assertNothingBuilt(t)
}

func TestTransferWithoutKey(t *testing.T) {
	h := newHarness(t, 100_000_000, 100_000_000, func(d *Deps) {
		d.Signer = keys.NewManager(nil)
	})

	res := h.svc.Transfer(context.Background(), model.TransferRequest{To: usdtHuman, Amount: "1"})

	assert.Equal(t, StateError, res.State)
	assert.Equal(t, CodeKeyNotConfigured, res.ErrorCode)
	assert.Zero(t, h.ledger.total())
	assert.Zero(t, h.endpoint.calls)
}

func TestTransferBroadcastRejected(t *testing.T) {
	h := newHarness(t, 100_000_000, 100_000_000)
	h.endpoint.resp = &model.BroadcastResponse{Code: "SIGERROR", Message: "Signature validation failed"}

	res := h.svc.Transfer(context.Background(), model.TransferRequest{To: usdtHuman, Amount: "1"})

	assert.Equal(t, StateError, res.State)
	assert.Equal(t, CodeBroadcastRejected, res.ErrorCode)
	assert.Equal(t, "SIGERROR", res.RejectCode)
	assert.Equal(t, "Signature validation failed", res.RejectMessage)
	assert.NotEmpty(t, res.TxID)
	assert.Equal(t, 1, h.endpoint.calls)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, "SIGERROR", fields["reject_code"])
}

func TestTransferBroadcastUnreachable(t *testing.T) {
	h := newHarness(t, 100_000_000, 100_000_000)
	h.endpoint.err = errTransport

	res := h.svc.Transfer(context.Background(), model.TransferRequest{To: usdtHuman, Amount: "1"})

	assert.Equal(t, StateError, res.State)
	assert.Equal(t, CodeBroadcastUnreachable, res.ErrorCode)
	assert.Contains(t, res.Summary, "unknown")
	assert.Contains(t, res.Summary, res.TxID)
	assert.Equal(t, 1, h.endpoint.calls, "unreachable broadcasts are not retried")
}

func TestTransferReferenceBlockFailure(t *testing.T) {
	h := newHarness(t, 100_000_000, 100_000_000)
	h.ledger.refErr = errors.New("timeout")

	res := h.svc.Transfer(context.Background(), model.TransferRequest{To: usdtHuman, Amount: "1"})

	assert.Equal(t, StateError, res.State)
	assert.Equal(t, CodeQueryFailed, res.ErrorCode)
	assert.Zero(t, h.signer.signs)
}

func TestTransferSafetyCheckUnavailable(t *testing.T) {
	h := newHarness(t, 100_000_000, 100_000_000)
	h.risk.err = errTransport

	res := h.svc.Transfer(context.Background(), model.TransferRequest{To: usdtHuman, Amount: "1"})

	require.Equal(t, StateDone, res.State, res.Error)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "safety check unavailable")
}

func TestTransferSafetyCheckDisabled(t *testing.T) {
	h := newHarness(t, 100_000_000, 100_000_000, func(d *Deps) { d.Risk = nil })

	res := h.svc.Transfer(context.Background(), model.TransferRequest{To: usdtHuman, Amount: "1"})

	assert.Equal(t, StateDone, res.State)
	assert.Zero(t, h.risk.calls)
}

func TestTransferRecipientWarnings(t *testing.T) {
	h := newHarness(t, 100_000_000, 100_000_000)
	h.ledger.status = &model.AccountStatus{}

	res := h.svc.Transfer(context.Background(), model.TransferRequest{To: usdtHuman, Amount: "1"})

	assert.Equal(t, StateDone, res.State)
	assert.Equal(t, []string{WarnRecipientNotActivated, WarnRecipientNoTRX}, res.Warnings)
}

func TestTransferCooldown(t *testing.T) {
	h := newHarness(t, 100_000_000, 100_000_000, func(d *Deps) { d.Cooldown = time.Hour })

	first := h.svc.Transfer(context.Background(), model.TransferRequest{To: usdtHuman, Amount: "1"})
	second := h.svc.Transfer(context.Background(), model.TransferRequest{To: usdtHuman, Amount: "1"})

	assert.Equal(t, StateDone, first.State)
	assert.Equal(t, StateError, second.State)
	assert.Equal(t, CodeCooldownActive, second.ErrorCode)
	assert.Equal(t, 1, h.endpoint.calls)
}

func TestTransferCooldownRefusesWhileInFlight(t *testing.T) {
	h := newHarness(t, 100_000_000, 100_000_000, func(d *Deps) { d.Cooldown = time.Hour })

	release, err := h.svc.reservePay()
	require.NoError(t, err)

	res := h.svc.Transfer(context.Background(), model.TransferRequest{To: usdtHuman, Amount: "1"})
	assert.Equal(t, CodeCooldownActive, res.ErrorCode)
	assert.Contains(t, res.Error, "in progress")
	assert.Zero(t, h.ledger.total())

	// a transfer that never broadcast does not start the cooldown
	release(false)
	res = h.svc.Transfer(context.Background(), model.TransferRequest{To: usdtHuman, Amount: "1"})
	assert.Equal(t, StateDone, res.State, res.Error)
}

func TestTransferFailureDoesNotStartCooldown(t *testing.T) {
	h := newHarness(t, 100_000_000, 100_000_000, func(d *Deps) { d.Cooldown = time.Hour })
	h.endpoint.resp = &model.BroadcastResponse{Code: "SIGERROR"}

	first := h.svc.Transfer(context.Background(), model.TransferRequest{To: usdtHuman, Amount: "1"})
	require.Equal(t, CodeBroadcastRejected, first.ErrorCode)

	h.endpoint.resp = nil
	second := h.svc.Transfer(context.Background(), model.TransferRequest{To: usdtHuman, Amount: "1"})
	assert.Equal(t, StateDone, second.State, second.Error)
}

func TestTransfersRunConcurrentlyWithoutCooldown(t *testing.T) {
	h := newHarness(t, 100_000_000, 100_000_000, func(d *Deps) { d.Risk = nil })
	gate := make(chan struct{})
	blocking := &blockingEndpoint{entered: make(chan struct{}, 2), gate: gate}
	h.svc.broadcaster = NewBroadcaster(blocking)

	results := make(chan *model.TransferResult, 2)
	for i := 0; i < 2; i++ {
		go func() {
			results <- h.svc.Transfer(context.Background(), model.TransferRequest{To: usdtHuman, Amount: "1", Token: "TRX"})
		}()
	}

	// both transfers reach the broadcast before either finishes
	for i := 0; i < 2; i++ {
		select {
		case <-blocking.entered:
		case <-time.After(5 * time.Second):
			t.Fatal("transfers were serialized")
		}
	}
	close(gate)

	for i := 0; i < 2; i++ {
		res := <-results
		assert.Equal(t, StateDone, res.State, res.Error)
	}
}

type blockingEndpoint struct {
	entered chan struct{}
	gate    chan struct{}
}

func (e *blockingEndpoint) BroadcastHex(ctx context.Context, _ string) (*model.BroadcastResponse, error) {
	e.entered <- struct{}{}
	select {
	case <-e.gate:
		return &model.BroadcastResponse{Result: true}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
