package tron

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/AlexZinkM/tron-wallet/internal/address"
	"github.com/AlexZinkM/tron-wallet/internal/common"
	"github.com/AlexZinkM/tron-wallet/internal/model"
)

// Recipient warnings
const (
	WarnRecipientNotActivated = "Recipient account is not activated on-chain. The first transfer activates it and costs extra."
	WarnRecipientNoTRX        = "Recipient holds no TRX. They will not be able to move received tokens until they get TRX for fees."
	WarnRecipientUnchecked    = "Recipient status could not be checked."
)

// Preflight verifies a transfer is affordable before anything is built
type Preflight struct {
	ledger Ledger
}

// NewPreflight creates a preflight checker over ledger
func NewPreflight(ledger Ledger) *Preflight {
	return &Preflight{ledger: ledger}
}

// CheckSenderBalance verifies from can afford amount of asset plus fees.
// All shortfalls are reported together in an *InsufficientFundsError.
func (p *Preflight) CheckSenderBalance(ctx context.Context, from address.Address, amount string, asset Asset) (*model.SenderCheck, error) {
	base, err := asset.ToBaseUnits(amount)
	if err != nil {
		return nil, err
	}

	switch asset {
	case AssetTRX:
		return p.checkNative(ctx, from, base)
	case AssetUSDT:
		return p.checkToken(ctx, from, base)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedAsset, asset)
}

func (p *Preflight) checkNative(ctx context.Context, from address.Address, base int64) (*model.SenderCheck, error) {
	sun, err := p.ledger.GetNativeBalance(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("failed to read TRX balance: %w", err)
	}

	balances := model.Balances{TRX: common.SunToTRX(sun), TRXSun: sun}

	var f findings
	required := base + NativeTransferFeeSun
	if sun < required {
		f.add(model.CodeInsufficientNativeBalance,
			fmt.Sprintf("Insufficient TRX: need %s TRX (amount plus %s TRX fee), have %s TRX",
				common.SunToTRX(required), common.SunToTRX(NativeTransferFeeSun), balances.TRX),
			common.SunToTRX(required), balances.TRX)
	}
	if err := f.err(); err != nil {
		return nil, err
	}
	return &model.SenderCheck{Sufficient: true, Balances: balances}, nil
}

func (p *Preflight) checkToken(ctx context.Context, from address.Address, base int64) (*model.SenderCheck, error) {
	var sun, tokens int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := p.ledger.GetNativeBalance(gctx, from)
		if err != nil {
			return fmt.Errorf("failed to read TRX balance: %w", err)
		}
		sun = v
		return nil
	})
	g.Go(func() error {
		v, err := p.ledger.GetAssetBalance(gctx, from)
		if err != nil {
			return fmt.Errorf("failed to read USDT balance: %w", err)
		}
		tokens = v
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	balances := model.Balances{
		TRX:      common.SunToTRX(sun),
		USDT:     common.MicroToUSDT(tokens),
		TRXSun:   sun,
		USDTBase: tokens,
	}

	var f findings
	if tokens < base {
		f.add(model.CodeInsufficientAssetBalance,
			fmt.Sprintf("Insufficient USDT: need %s USDT, have %s USDT", common.MicroToUSDT(base), balances.USDT),
			common.MicroToUSDT(base), balances.USDT)
	}
	if sun < TokenFeeReserveSun {
		f.add(model.CodeInsufficientFeeReserve,
			fmt.Sprintf("Insufficient TRX for fees: a USDT transfer needs about %s TRX of energy, have %s TRX",
				common.SunToTRX(TokenFeeReserveSun), balances.TRX),
			common.SunToTRX(TokenFeeReserveSun), balances.TRX)
	}
	if err := f.err(); err != nil {
		return nil, err
	}
	return &model.SenderCheck{Sufficient: true, Balances: balances}, nil
}

// CheckRecipientStatus returns informational warnings about to. It never blocks.
func (p *Preflight) CheckRecipientStatus(ctx context.Context, to address.Address) *model.RecipientCheck {
	status, err := p.ledger.GetAccountStatus(ctx, to)
	if err != nil {
		return &model.RecipientCheck{Checked: false, Warnings: []string{WarnRecipientUnchecked}}
	}

	check := &model.RecipientCheck{Checked: true, Warnings: []string{}}
	if !status.Activated {
		check.Warnings = append(check.Warnings, WarnRecipientNotActivated)
	}
	if !status.HasNative {
		check.Warnings = append(check.Warnings, WarnRecipientNoTRX)
	}
	return check
}

type findings struct {
	errs []model.PreflightError
}

func (f *findings) add(code, msg, required, available string) {
	f.errs = append(f.errs, model.PreflightError{
		Code:      code,
		Message:   msg,
		Severity:  model.SeverityError,
		Required:  required,
		Available: available,
	})
}

func (f *findings) err() error {
	if len(f.errs) == 0 {
		return nil
	}
	return &InsufficientFundsError{Errors: f.errs}
}
