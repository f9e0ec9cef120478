package tron

import (
	"fmt"
	"strings"
	"time"

	"github.com/AlexZinkM/tron-wallet/internal/common"
)

// Asset is a transferable asset
type Asset string

const (
	AssetUSDT Asset = "USDT" // TRC20 token, transferred by contract call
	AssetTRX  Asset = "TRX"  // native coin
)

const (
	// EnergyPriceSun is the per-unit energy price used for the fee reserve
	EnergyPriceSun = 420
	// EstimatedTransferEnergy is the energy a TRC20 transfer is budgeted for
	EstimatedTransferEnergy = 65_000
	// TokenFeeReserveSun is the TRX a sender must hold to pay for a token transfer (27.3 TRX)
	TokenFeeReserveSun = EnergyPriceSun * EstimatedTransferEnergy

	// NativeTransferFeeSun is the bandwidth budget added to a TRX transfer amount (0.3 TRX)
	NativeTransferFeeSun = 300_000

	// TokenFeeLimitSun is the fee_limit ceiling stamped on contract calls (100 TRX)
	TokenFeeLimitSun = 100_000_000

	// ExpirationWindow is how far past "now" a built transaction stays valid
	ExpirationWindow = 60 * time.Second
)

// ParseAsset parses a token name; empty means USDT
func ParseAsset(s string) (Asset, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(AssetUSDT):
		return AssetUSDT, nil
	case string(AssetTRX):
		return AssetTRX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAsset, s)
	}
}

// Decimals returns the on-chain precision of the asset
func (a Asset) Decimals() int {
	if a == AssetTRX {
		return common.TRXDecimals
	}
	return common.USDTDecimals
}

// ToBaseUnits converts a decimal amount of the asset to base units
func (a Asset) ToBaseUnits(amount string) (int64, error) {
	return common.ToBaseUnits(amount, a.Decimals())
}

// Format renders base units as a decimal string
func (a Asset) Format(base int64) string {
	return common.FormatWithDecimals(base, a.Decimals())
}
