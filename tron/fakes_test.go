package tron

import (
	"context"
	"encoding/hex"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/tron-wallet/internal/address"
	"github.com/AlexZinkM/tron-wallet/internal/keys"
	"github.com/AlexZinkM/tron-wallet/internal/model"
)

const (
	senderHuman = "TMVQGm1qAQYVdetCeGRRkTWYYrLXuHK2HC" // address of private key 1
	senderHex   = "417e5f4552091a69125d5dfcb7b8c2659029395bdf"
	usdtHuman   = "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"
	usdtHex     = "41a614f803b6fd780986a42c78ec9c7f77e6ded13c"

	testBlockNumber = 0x1234567
	testBlockID     = "0000000001234567a1b2c3d4e5f6071800000000000000000000000000000000"
	testNowMillis   = 1700000000000
)

var errTransport = errors.New("connection refused")

func keyOne() []byte {
	k := make([]byte, 32)
	k[31] = 1
	return k
}

func mustAddress(t *testing.T, s string) address.Address {
	t.Helper()
	a, err := address.Parse(s)
	require.NoError(t, err)
	return a
}

func fixedNow() time.Time {
	return time.UnixMilli(testNowMillis)
}

// fakeLedger counts every call by method name
type fakeLedger struct {
	mu    sync.Mutex
	calls map[string]int

	trx, usdt int64
	status    *model.AccountStatus

	trxErr, usdtErr, statusErr, refErr error
}

func newFakeLedger(trxSun, usdtBase int64) *fakeLedger {
	return &fakeLedger{
		calls:  map[string]int{},
		trx:    trxSun,
		usdt:   usdtBase,
		status: &model.AccountStatus{Activated: true, HasNative: true},
	}
}

func (l *fakeLedger) record(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls[name]++
}

func (l *fakeLedger) count(name string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls[name]
}

func (l *fakeLedger) total() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, c := range l.calls {
		n += c
	}
	return n
}

func (l *fakeLedger) GetNativeBalance(_ context.Context, _ address.Address) (int64, error) {
	l.record("native")
	return l.trx, l.trxErr
}

func (l *fakeLedger) GetAssetBalance(_ context.Context, _ address.Address) (int64, error) {
	l.record("asset")
	return l.usdt, l.usdtErr
}

func (l *fakeLedger) GetAccountStatus(_ context.Context, _ address.Address) (*model.AccountStatus, error) {
	l.record("status")
	if l.statusErr != nil {
		return nil, l.statusErr
	}
	return l.status, nil
}

func (l *fakeLedger) GetCurrentBlockReference(_ context.Context) (*model.BlockReference, error) {
	l.record("block")
	if l.refErr != nil {
		return nil, l.refErr
	}
	return &model.BlockReference{Number: testBlockNumber, Hash: testBlockID}, nil
}

func (l *fakeLedger) GetAccountResources(_ context.Context, _ address.Address) (*model.AccountResources, error) {
	l.record("resources")
	return &model.AccountResources{FreeNetUsed: 100, FreeNetLimit: 600, EnergyUsed: 5000, EnergyLimit: 2000}, nil
}

type fakeEndpoint struct {
	calls int
	hex   string
	resp  *model.BroadcastResponse
	err   error
}

func (e *fakeEndpoint) BroadcastHex(_ context.Context, txHex string) (*model.BroadcastResponse, error) {
	e.calls++
	e.hex = txHex
	if e.err != nil {
		return nil, e.err
	}
	if e.resp != nil {
		return e.resp, nil
	}
	return &model.BroadcastResponse{Result: true}, nil
}

type fakeRisk struct {
	calls  int
	report *model.RiskReport
	err    error
}

func (r *fakeRisk) CheckAddressRisk(_ context.Context, _ address.Address) (*model.RiskReport, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	if r.report != nil {
		return r.report, nil
	}
	return &model.RiskReport{RiskType: "Safe"}, nil
}

// countingSigner wraps a real key manager
type countingSigner struct {
	*keys.Manager
	mu    sync.Mutex
	signs int
}

func (s *countingSigner) Sign(txID []byte) ([]byte, error) {
	s.mu.Lock()
	s.signs++
	s.mu.Unlock()
	return s.Manager.Sign(txID)
}

func newSigner() *countingSigner {
	return &countingSigner{Manager: keys.NewManager(keys.StaticSource(keyOne()))}
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

type fakeChain struct {
	calls  int
	txID   string
	info   *model.TransactionInfo
	params map[string]int64
	err    error
}

func (c *fakeChain) GetTransactionInfo(_ context.Context, txID string) (*model.TransactionInfo, error) {
	c.calls++
	c.txID = txID
	if c.err != nil {
		return nil, c.err
	}
	if c.info != nil {
		return c.info, nil
	}
	return &model.TransactionInfo{}, nil
}

func (c *fakeChain) GetChainParameters(_ context.Context) (map[string]int64, error) {
	c.calls++
	return c.params, c.err
}
