package model

// PreflightError codes
const (
	CodeInsufficientAssetBalance  = "insufficient_asset_balance"
	CodeInsufficientFeeReserve    = "insufficient_fee_reserve"
	CodeInsufficientNativeBalance = "insufficient_native_balance"
)

// SeverityError marks a blocking preflight finding
const SeverityError = "error"

// PreflightError describes one reason a transfer cannot be afforded.
// Required and Available are decimal strings in the unit of the shortfall.
type PreflightError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Severity  string `json:"severity"`
	Required  string `json:"required"`
	Available string `json:"available"`
}

// Balances holds the sender balances read during preflight
type Balances struct {
	TRX      string `json:"trx"`
	USDT     string `json:"usdt,omitempty"`
	TRXSun   int64  `json:"trx_sun"`
	USDTBase int64  `json:"usdt_base,omitempty"`
}

// SenderCheck is the result of a passing balance preflight
type SenderCheck struct {
	Sufficient bool     `json:"sufficient"`
	Balances   Balances `json:"balances"`
}

// RecipientCheck is the non-blocking recipient status check
type RecipientCheck struct {
	Checked  bool     `json:"checked"`
	Warnings []string `json:"warnings"`
}

// AccountStatus reports whether an account exists on-chain and holds TRX
type AccountStatus struct {
	Activated bool `json:"activated"`
	HasNative bool `json:"has_native"`
}

// RiskReport is the outcome of a recipient risk lookup
type RiskReport struct {
	IsRisky  bool     `json:"is_risky"`
	RiskType string   `json:"risk_type"`
	Reasons  []string `json:"reasons,omitempty"`
}
