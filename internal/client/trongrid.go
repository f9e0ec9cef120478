package client

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/AlexZinkM/tron-wallet/internal/address"
	"github.com/AlexZinkM/tron-wallet/internal/model"

	"github.com/go-resty/resty/v2"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"go.uber.org/ratelimit"
)

const (
	defaultTronGridURL = "https://api.trongrid.io"
	apiKeyHeader       = "TRON-PRO-API-KEY"
	balanceOfSelector  = "balanceOf(address)"
)

// ErrUnreachable marks transport-level failures: connection errors, timeouts,
// non-2xx responses, and undecodable bodies
var ErrUnreachable = errors.New("tron node unreachable")

// Options configures the HTTP clients
type Options struct {
	BaseURL   string
	APIKey    string
	Timeout   time.Duration
	RateLimit int // requests per second
}

// TronGridClient is a client for the TronGrid full-node HTTP API
type TronGridClient struct {
	http    *resty.Client
	limiter ratelimit.Limiter
	usdt    address.Address
}

// NewTronGridClient creates a new TronGrid client. usdt is the TRC20 contract
// queried for asset balances.
func NewTronGridClient(opts Options, usdt address.Address) *TronGridClient {
	return &TronGridClient{
		http:    newRestyClient(opts, defaultTronGridURL),
		limiter: newLimiter(opts.RateLimit),
		usdt:    usdt,
	}
}

func newRestyClient(opts Options, fallbackURL string) *resty.Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = fallbackURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if opts.APIKey != "" {
		c.SetHeader(apiKeyHeader, opts.APIKey)
	}
	return c
}

func newLimiter(rps int) ratelimit.Limiter {
	if rps <= 0 {
		return ratelimit.NewUnlimited()
	}
	return ratelimit.New(rps)
}

// post sends a JSON body and decodes the JSON response into out
func (c *TronGridClient) post(ctx context.Context, path string, body, out any) error {
	c.limiter.Take()

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return errors.Wrapf(ErrUnreachable, "%s: %v", path, err)
	}
	if resp.IsError() {
		return errors.Wrapf(ErrUnreachable, "%s: status %d", path, resp.StatusCode())
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return errors.Wrapf(ErrUnreachable, "%s: failed to decode response: %v", path, err)
	}
	return nil
}

type accountResponse struct {
	Address string `json:"address"`
	Balance int64  `json:"balance"`
	Error   string `json:"Error"`
}

func (c *TronGridClient) getAccount(ctx context.Context, addr address.Address) (*accountResponse, error) {
	var out accountResponse
	err := c.post(ctx, "/wallet/getaccount", map[string]any{
		"address": addr.String(),
		"visible": true,
	}, &out)
	if err != nil {
		return nil, err
	}
	if out.Error != "" {
		return nil, errors.Errorf("getaccount: %s", out.Error)
	}
	return &out, nil
}

// GetNativeBalance gets the TRX balance in sun
func (c *TronGridClient) GetNativeBalance(ctx context.Context, addr address.Address) (int64, error) {
	acc, err := c.getAccount(ctx, addr)
	if err != nil {
		return 0, errors.WithMessage(err, "failed to get TRX balance")
	}
	return acc.Balance, nil
}

// GetAccountStatus reports whether the account exists and holds any TRX.
// The node answers {} for accounts that were never activated.
func (c *TronGridClient) GetAccountStatus(ctx context.Context, addr address.Address) (*model.AccountStatus, error) {
	acc, err := c.getAccount(ctx, addr)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to get account status")
	}
	return &model.AccountStatus{
		Activated: acc.Address != "",
		HasNative: acc.Balance > 0,
	}, nil
}

type constantContractResponse struct {
	Result struct {
		Result  bool   `json:"result"`
		Message string `json:"message"`
	} `json:"result"`
	ConstantResult []string `json:"constant_result"`
}

// GetAssetBalance gets the USDT balance in token base units via balanceOf
func (c *TronGridClient) GetAssetBalance(ctx context.Context, addr address.Address) (int64, error) {
	param := make([]byte, 32)
	copy(param[12:], addr.EVM())

	var out constantContractResponse
	err := c.post(ctx, "/wallet/triggerconstantcontract", map[string]any{
		"owner_address":     addr.String(),
		"contract_address":  c.usdt.String(),
		"function_selector": balanceOfSelector,
		"parameter":         hex.EncodeToString(param),
		"visible":           true,
	}, &out)
	if err != nil {
		return 0, errors.WithMessage(err, "failed to get USDT balance")
	}
	if !out.Result.Result || len(out.ConstantResult) == 0 {
		return 0, errors.Errorf("failed to get USDT balance: %s", decodeMessage(out.Result.Message))
	}

	raw, err := hex.DecodeString(out.ConstantResult[0])
	if err != nil || len(raw) > 32 {
		return 0, errors.New("failed to parse USDT balance: malformed constant_result")
	}
	balance := new(uint256.Int).SetBytes(raw)
	if !balance.IsUint64() || balance.Uint64() > math.MaxInt64 {
		return 0, errors.New("failed to parse USDT balance: value out of range")
	}
	return int64(balance.Uint64()), nil
}

type nowBlockResponse struct {
	BlockID     string `json:"blockID"`
	BlockHeader struct {
		RawData struct {
			Number    int64 `json:"number"`
			Timestamp int64 `json:"timestamp"`
		} `json:"raw_data"`
	} `json:"block_header"`
}

// GetCurrentBlockReference gets the latest block number and id
func (c *TronGridClient) GetCurrentBlockReference(ctx context.Context) (*model.BlockReference, error) {
	var out nowBlockResponse
	if err := c.post(ctx, "/wallet/getnowblock", map[string]any{}, &out); err != nil {
		return nil, errors.WithMessage(err, "failed to get latest block")
	}
	if len(out.BlockID) != 64 {
		return nil, errors.Errorf("failed to get latest block: unexpected block id %q", out.BlockID)
	}
	return &model.BlockReference{
		Number: out.BlockHeader.RawData.Number,
		Hash:   out.BlockID,
	}, nil
}

// BroadcastHex submits a hex-encoded signed protobuf transaction.
// A rejection is a successful call with Result=false.
func (c *TronGridClient) BroadcastHex(ctx context.Context, txHex string) (*model.BroadcastResponse, error) {
	var out model.BroadcastResponse
	if err := c.post(ctx, "/wallet/broadcasthex", map[string]any{"transaction": txHex}, &out); err != nil {
		return nil, err
	}
	out.Message = decodeMessage(out.Message)
	return &out, nil
}

// GetAccountResources gets energy and bandwidth usage
func (c *TronGridClient) GetAccountResources(ctx context.Context, addr address.Address) (*model.AccountResources, error) {
	var out model.AccountResources
	err := c.post(ctx, "/wallet/getaccountresource", map[string]any{
		"address": addr.String(),
		"visible": true,
	}, &out)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to get account resources")
	}
	return &out, nil
}

type transactionInfoResponse struct {
	ID          string `json:"id"`
	Fee         int64  `json:"fee"`
	BlockNumber int64  `json:"blockNumber"`
	Result      string `json:"result"`
	ResMessage  string `json:"resMessage"`
	Receipt     struct {
		Result string `json:"result"`
	} `json:"receipt"`
}

// GetTransactionInfo gets the execution outcome of a transaction.
// The node answers {} until the transaction is in a block.
func (c *TronGridClient) GetTransactionInfo(ctx context.Context, txID string) (*model.TransactionInfo, error) {
	var out transactionInfoResponse
	if err := c.post(ctx, "/wallet/gettransactioninfobyid", map[string]any{"value": txID}, &out); err != nil {
		return nil, errors.WithMessage(err, "failed to get transaction info")
	}
	if out.ID == "" {
		return &model.TransactionInfo{}, nil
	}

	// native transfers carry no contract receipt result; only result=FAILED marks them
	info := &model.TransactionInfo{
		Found:       true,
		BlockNumber: out.BlockNumber,
		Result:      out.Receipt.Result,
		Message:     decodeMessage(out.ResMessage),
		FeeSun:      out.Fee,
	}
	info.Failed = out.Result == "FAILED" || (info.Result != "" && info.Result != "SUCCESS")
	if info.Result == "" {
		info.Result = "SUCCESS"
		if info.Failed {
			info.Result = out.Result
		}
	}
	return info, nil
}

type chainParametersResponse struct {
	ChainParameter []struct {
		Key   string `json:"key"`
		Value int64  `json:"value"`
	} `json:"chainParameter"`
}

// GetChainParameters gets the network parameters keyed by name, e.g. getEnergyFee.
// Parameters whose value is zero come back with the value omitted.
func (c *TronGridClient) GetChainParameters(ctx context.Context) (map[string]int64, error) {
	var out chainParametersResponse
	if err := c.post(ctx, "/wallet/getchainparameters", map[string]any{}, &out); err != nil {
		return nil, errors.WithMessage(err, "failed to get chain parameters")
	}
	if len(out.ChainParameter) == 0 {
		return nil, errors.New("failed to get chain parameters: empty response")
	}

	params := make(map[string]int64, len(out.ChainParameter))
	for _, p := range out.ChainParameter {
		params[p.Key] = p.Value
	}
	return params, nil
}

// decodeMessage decodes node messages that arrive hex-encoded
func decodeMessage(msg string) string {
	if msg == "" || len(msg)%2 != 0 {
		return msg
	}
	raw, err := hex.DecodeString(msg)
	if err != nil {
		return msg
	}
	for _, r := range string(raw) {
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return msg
		}
	}
	return string(raw)
}
