package client

import (
	"context"
	"encoding/json"

	"github.com/AlexZinkM/tron-wallet/internal/address"
	"github.com/AlexZinkM/tron-wallet/internal/model"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.uber.org/ratelimit"
)

const defaultTronScanURL = "https://apilist.tronscanapi.com"

// Risk types reported by CheckAddressRisk
const (
	RiskTypeSafe        = "Safe"
	RiskTypeBlacklisted = "Blacklisted"
	RiskTypeFraud       = "Fraud"
	RiskTypeScamToken   = "Scam token creator"
	RiskTypeSpam        = "Spam"
)

// TronScanClient is a client for the TronScan security API
type TronScanClient struct {
	http    *resty.Client
	limiter ratelimit.Limiter
}

// NewTronScanClient creates a new TronScan client
func NewTronScanClient(opts Options) *TronScanClient {
	return &TronScanClient{
		http:    newRestyClient(opts, defaultTronScanURL),
		limiter: newLimiter(opts.RateLimit),
	}
}

type securityResponse struct {
	IsBlackList         bool `json:"is_black_list"`
	HasFraudTransaction bool `json:"has_fraud_transaction"`
	FraudTokenCreator   bool `json:"fraud_token_creator"`
	SendAdByMemo        bool `json:"send_ad_by_memo"`
}

// CheckAddressRisk looks up the address in TronScan's security data
func (c *TronScanClient) CheckAddressRisk(ctx context.Context, addr address.Address) (*model.RiskReport, error) {
	c.limiter.Take()

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("address", addr.String()).
		Get("/api/security/account/data")
	if err != nil {
		return nil, errors.Wrapf(ErrUnreachable, "security lookup: %v", err)
	}
	if resp.IsError() {
		return nil, errors.Wrapf(ErrUnreachable, "security lookup: status %d", resp.StatusCode())
	}

	var out securityResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, errors.Wrap(err, "failed to decode security response")
	}

	report := &model.RiskReport{RiskType: RiskTypeSafe}
	// first matching flag decides the type; every flag adds a reason
	flag := func(set bool, riskType, reason string) {
		if !set {
			return
		}
		if !report.IsRisky {
			report.RiskType = riskType
		}
		report.IsRisky = true
		report.Reasons = append(report.Reasons, reason)
	}
	flag(out.IsBlackList, RiskTypeBlacklisted, "address is on the TRONSCAN blacklist")
	flag(out.HasFraudTransaction, RiskTypeFraud, "address has fraudulent transactions")
	flag(out.FraudTokenCreator, RiskTypeScamToken, "address created scam tokens")
	flag(out.SendAdByMemo, RiskTypeSpam, "address sends spam memos")

	return report, nil
}
