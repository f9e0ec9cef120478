package tron

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AlexZinkM/tron-wallet/internal/address"
	"github.com/AlexZinkM/tron-wallet/internal/metrics"
	"github.com/AlexZinkM/tron-wallet/internal/model"
)

// Transfer states
const (
	StateResolve     = "RESOLVE"
	StateSafetyCheck = "SAFETY_CHECK"
	StatePreflight   = "PREFLIGHT"
	StateBuild       = "BUILD"
	StateSign        = "SIGN"
	StateBroadcast   = "BROADCAST"
	StateDone        = "DONE"
	StateBlocked     = "BLOCKED"
	StateError       = "ERROR"
)

// Deps are the collaborators of a Service
type Deps struct {
	Ledger    Ledger
	Endpoint  BroadcastEndpoint
	Signer    Signer
	Risk      RiskChecker    // nil disables the safety check
	Aliases   AliasResolver  // nil accepts literal addresses only
	Resources ResourceReader // optional
	Chain     ChainReader    // optional, backs the transaction and gas lookups
	USDT      address.Address

	// Cooldown is the minimum time between two broadcasts, 0 disables it
	Cooldown time.Duration

	Logger  *zap.Logger
	Metrics *metrics.Metrics
}

// Service runs transfers and the read-only wallet operations
type Service struct {
	ledger      Ledger
	signer      Signer
	risk        RiskChecker
	aliases     AliasResolver
	resources   ResourceReader
	chain       ChainReader
	builder     *Builder
	preflight   *Preflight
	broadcaster *Broadcaster
	cooldown    time.Duration
	log         *zap.Logger
	metrics     *metrics.Metrics

	payMu       sync.Mutex
	paying      bool
	lastPayTime time.Time
}

// NewService wires a Service from d
func NewService(d Deps) *Service {
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}
	aliases := d.Aliases
	if aliases == nil {
		aliases = directResolver{}
	}
	return &Service{
		ledger:      d.Ledger,
		signer:      d.Signer,
		risk:        d.Risk,
		aliases:     aliases,
		resources:   d.Resources,
		chain:       d.Chain,
		builder:     NewBuilder(d.USDT),
		preflight:   NewPreflight(d.Ledger),
		broadcaster: NewBroadcaster(d.Endpoint),
		cooldown:    d.Cooldown,
		log:         log,
		metrics:     d.Metrics,
	}
}

// transfer carries one run through the state machine
type transfer struct {
	log    *zap.Logger
	state  string
	asset  Asset
	base   int64
	from   address.Address
	to     address.Address
	result *model.TransferResult
}

// Transfer resolves, checks, builds, signs and broadcasts a transfer.
// It always returns a result; failures are reported in it, never as a Go error.
func (s *Service) Transfer(ctx context.Context, req model.TransferRequest) *model.TransferResult {
	t := &transfer{
		log:    s.log.With(zap.String("request_id", uuid.NewString())),
		result: &model.TransferResult{},
	}
	res := s.run(ctx, t, req)
	res.State = t.state
	s.metrics.TransferFinished(string(t.asset), t.state)
	return res
}

func (s *Service) run(ctx context.Context, t *transfer, req model.TransferRequest) *model.TransferResult {
	var err error

	// Validate amount and token before touching any collaborator
	t.state = StateResolve
	if t.asset, err = ParseAsset(req.Token); err != nil {
		return s.fail(t, err)
	}
	if t.base, err = t.asset.ToBaseUnits(req.Amount); err != nil {
		return s.fail(t, err)
	}
	t.result.Amount = t.asset.Format(t.base)
	t.result.Token = string(t.asset)

	release, err := s.reservePay()
	if err != nil {
		return s.fail(t, err)
	}
	sent := false
	defer func() { release(sent) }()

	if t.from, err = s.signer.Address(); err != nil {
		return s.fail(t, err)
	}
	if t.to, err = s.aliases.Resolve(req.To); err != nil {
		return s.fail(t, err)
	}
	t.result.From = t.from.String()
	t.result.To = t.to.String()
	t.log = t.log.With(
		zap.String("from", t.result.From),
		zap.String("to", t.result.To),
		zap.String("amount", t.result.Amount),
		zap.String("token", t.result.Token),
	)

	if s.risk != nil {
		s.enter(t, StateSafetyCheck)
		report, err := timedStage(s.metrics, StateSafetyCheck, func() (*model.RiskReport, error) {
			return s.risk.CheckAddressRisk(ctx, t.to)
		})
		switch {
		case err != nil:
			t.log.Warn("safety check unavailable", zap.Error(err))
			t.result.Warnings = append(t.result.Warnings, "Recipient safety check unavailable: "+err.Error())
		case report.IsRisky:
			return s.block(t, report)
		}
	}

	s.enter(t, StatePreflight)
	if _, err := timedStage(s.metrics, StatePreflight, func() (*model.SenderCheck, error) {
		return s.preflight.CheckSenderBalance(ctx, t.from, t.result.Amount, t.asset)
	}); err != nil {
		return s.fail(t, err)
	}
	recipient := s.preflight.CheckRecipientStatus(ctx, t.to)
	t.result.Warnings = append(t.result.Warnings, recipient.Warnings...)

	s.enter(t, StateBuild)
	tx, err := timedStage(s.metrics, StateBuild, func() (*model.Transaction, error) {
		ref, err := s.ledger.GetCurrentBlockReference(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get reference block: %w", err)
		}
		return s.builder.build(t.from, t.to, t.base, t.asset, ref)
	})
	if err != nil {
		return s.fail(t, err)
	}
	t.result.TxID = tx.TxID
	t.log = t.log.With(zap.String("txid", tx.TxID))

	s.enter(t, StateSign)
	if _, err := timedStage(s.metrics, StateSign, func() (struct{}, error) {
		return struct{}{}, SignTransaction(s.signer, tx)
	}); err != nil {
		return s.fail(t, err)
	}

	s.enter(t, StateBroadcast)
	accepted, err := timedStage(s.metrics, StateBroadcast, func() (*model.BroadcastResult, error) {
		return s.broadcaster.Submit(ctx, tx)
	})
	s.metrics.BroadcastFinished(broadcastOutcome(err))
	if err != nil {
		return s.fail(t, err)
	}
	sent = true

	s.enter(t, StateDone)
	t.result.Result = true
	t.result.TxID = accepted.TxID
	t.result.Summary = fmt.Sprintf("Sent %s %s to %s. Transaction ID: %s",
		t.result.Amount, t.result.Token, t.result.To, accepted.TxID)
	t.log.Info("transfer broadcast")
	return t.result
}

// reservePay enforces the cooldown. Without a cooldown transfers run
// concurrently; with one, a second transfer is refused while the first is in
// flight or until the cooldown after the last broadcast has passed. The
// returned release must be called with whether the broadcast was accepted.
func (s *Service) reservePay() (func(sent bool), error) {
	if s.cooldown <= 0 {
		return func(bool) {}, nil
	}

	s.payMu.Lock()
	defer s.payMu.Unlock()

	if s.paying {
		return nil, fmt.Errorf("%w, another transfer is in progress", ErrCooldownActive)
	}
	if !s.lastPayTime.IsZero() {
		if since := time.Since(s.lastPayTime); since < s.cooldown {
			remaining := (s.cooldown - since).Round(time.Second)
			return nil, fmt.Errorf("%w, please wait %v", ErrCooldownActive, remaining)
		}
	}
	s.paying = true

	return func(sent bool) {
		s.payMu.Lock()
		defer s.payMu.Unlock()
		s.paying = false
		if sent {
			s.lastPayTime = time.Now()
		}
	}, nil
}

func (s *Service) enter(t *transfer, state string) {
	t.log.Debug("transfer state", zap.String("from_state", t.state), zap.String("to_state", state))
	t.state = state
}

func (s *Service) block(t *transfer, report *model.RiskReport) *model.TransferResult {
	s.enter(t, StateBlocked)
	t.result.Blocked = true
	t.result.RiskType = report.RiskType
	t.result.Reasons = report.Reasons
	err := fmt.Errorf("%w: %s", ErrRiskCheckBlocked, report.RiskType)
	t.result.Error = err.Error()
	t.result.ErrorCode = ErrorCode(err)
	t.result.Summary = fmt.Sprintf("Transfer blocked: recipient %s is flagged as %s.", t.result.To, report.RiskType)
	t.log.Warn("transfer blocked by safety check",
		zap.String("risk_type", report.RiskType), zap.Strings("reasons", report.Reasons))
	return t.result
}

func (s *Service) fail(t *transfer, err error) *model.TransferResult {
	failedIn := t.state
	s.enter(t, StateError)

	t.result.Error = err.Error()
	t.result.ErrorCode = ErrorCode(err)

	var (
		funds    *InsufficientFundsError
		alias    *AliasNotFoundError
		rejected *BroadcastRejectedError
	)
	switch {
	case errors.As(err, &funds):
		t.result.Errors = funds.Errors
	case errors.As(err, &alias):
		t.result.Suggestion = alias.Suggestion
	case errors.As(err, &rejected):
		t.result.TxID = rejected.TxID
		t.result.RejectCode = rejected.Code
		t.result.RejectMessage = rejected.Message
	}

	// an unreachable broadcast may still have landed
	if errors.Is(err, ErrBroadcastUnreachable) {
		t.result.Summary = fmt.Sprintf("Broadcast outcome unknown for transaction %s; check it on chain before retrying.", t.result.TxID)
	} else {
		t.result.Summary = "Transfer failed: " + err.Error()
	}

	t.log.Error("transfer failed",
		zap.String("stage", failedIn), zap.String("code", t.result.ErrorCode), zap.Error(err))
	return t.result
}

// timedStage runs fn and records its duration under stage
func timedStage[T any](m *metrics.Metrics, stage string, fn func() (T, error)) (T, error) {
	start := time.Now()
	v, err := fn()
	m.ObserveStage(stage, time.Since(start))
	return v, err
}

func broadcastOutcome(err error) string {
	var rejected *BroadcastRejectedError
	switch {
	case err == nil:
		return "accepted"
	case errors.As(err, &rejected):
		return "rejected"
	case errors.Is(err, ErrBroadcastUnreachable):
		return "unreachable"
	}
	return "invalid"
}
