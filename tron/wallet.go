package tron

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/AlexZinkM/tron-wallet/internal/address"
	"github.com/AlexZinkM/tron-wallet/internal/common"
	"github.com/AlexZinkM/tron-wallet/internal/model"
)

// balanceUnavailable is shown in place of a balance that could not be read
const balanceUnavailable = "unavailable"

// WalletInfo returns the local address with its balances and a QR code.
// Balance read failures degrade to "unavailable" instead of failing.
func (s *Service) WalletInfo(ctx context.Context) (*model.WalletInfoResponse, error) {
	addr, err := s.signer.Address()
	if err != nil {
		return nil, err
	}

	info := &model.WalletInfoResponse{
		Address:     addr.String(),
		TRXBalance:  balanceUnavailable,
		USDTBalance: balanceUnavailable,
	}

	if sun, err := s.ledger.GetNativeBalance(ctx, addr); err != nil {
		s.log.Warn("failed to read TRX balance", zap.String("address", info.Address), zap.Error(err))
	} else {
		info.TRXBalance = common.SunToTRX(sun)
	}
	if tokens, err := s.ledger.GetAssetBalance(ctx, addr); err != nil {
		s.log.Warn("failed to read USDT balance", zap.String("address", info.Address), zap.Error(err))
	} else {
		info.USDTBalance = common.MicroToUSDT(tokens)
	}

	qr, err := generateQRCode(info.Address)
	if err != nil {
		s.log.Warn("failed to generate QR code", zap.Error(err))
	}
	info.QR = qr

	info.Summary = fmt.Sprintf("Wallet %s holds %s TRX and %s USDT.", info.Address, info.TRXBalance, info.USDTBalance)
	return info, nil
}

// Balance reads both balances of addr, or of the local wallet when addr is empty
func (s *Service) Balance(ctx context.Context, addr string) (*model.BalanceResponse, error) {
	target, err := s.target(addr)
	if err != nil {
		return nil, err
	}

	var sun, tokens int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sun, err = s.ledger.GetNativeBalance(gctx, target)
		return err
	})
	g.Go(func() (err error) {
		tokens, err = s.ledger.GetAssetBalance(gctx, target)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to read balance: %w", err)
	}

	resp := &model.BalanceResponse{
		Address: target.String(),
		TRX:     common.SunToTRX(sun),
		USDT:    common.MicroToUSDT(tokens),
	}
	resp.Summary = fmt.Sprintf("%s holds %s TRX and %s USDT.", resp.Address, resp.TRX, resp.USDT)
	return resp, nil
}

// CheckSafety looks addr up in the risk database
func (s *Service) CheckSafety(ctx context.Context, addr string) (*model.SafetyResponse, error) {
	if s.risk == nil {
		return nil, fmt.Errorf("safety check is disabled: %w", ErrNotConfigured)
	}
	target, err := s.aliases.Resolve(addr)
	if err != nil {
		return nil, err
	}

	report, err := s.risk.CheckAddressRisk(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("failed to check address safety: %w", err)
	}

	resp := &model.SafetyResponse{
		Address:    target.String(),
		IsSafe:     !report.IsRisky,
		RiskReport: *report,
	}
	if report.IsRisky {
		resp.Summary = fmt.Sprintf("WARNING: %s is flagged as %s.", resp.Address, report.RiskType)
	} else {
		resp.Summary = fmt.Sprintf("%s has no known risk flags.", resp.Address)
	}
	return resp, nil
}

// Resources reports remaining energy and bandwidth of addr or of the local wallet
func (s *Service) Resources(ctx context.Context, addr string) (*model.ResourcesResponse, error) {
	if s.resources == nil {
		return nil, fmt.Errorf("resource lookup: %w", ErrNotConfigured)
	}
	target, err := s.target(addr)
	if err != nil {
		return nil, err
	}

	r, err := s.resources.GetAccountResources(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("failed to read account resources: %w", err)
	}

	resp := &model.ResourcesResponse{
		Address:          target.String(),
		EnergyRemaining:  max(r.EnergyLimit-r.EnergyUsed, 0),
		EnergyLimit:      r.EnergyLimit,
		FreeNetRemaining: max(r.FreeNetLimit-r.FreeNetUsed, 0),
		NetRemaining:     max(r.NetLimit-r.NetUsed, 0),
	}
	resp.Summary = fmt.Sprintf("%s has %d energy and %d bandwidth (%d free) available.",
		resp.Address, resp.EnergyRemaining, resp.FreeNetRemaining+resp.NetRemaining, resp.FreeNetRemaining)
	return resp, nil
}

// Build runs preflight and returns an unsigned transaction without signing it.
// The sender is the local wallet.
func (s *Service) Build(ctx context.Context, req model.TransferRequest) (*model.BuildResult, error) {
	asset, err := ParseAsset(req.Token)
	if err != nil {
		return nil, err
	}
	base, err := asset.ToBaseUnits(req.Amount)
	if err != nil {
		return nil, err
	}

	from, err := s.signer.Address()
	if err != nil {
		return nil, err
	}
	to, err := s.aliases.Resolve(req.To)
	if err != nil {
		return nil, err
	}

	sender, err := s.preflight.CheckSenderBalance(ctx, from, asset.Format(base), asset)
	if err != nil {
		return nil, err
	}
	recipient := s.preflight.CheckRecipientStatus(ctx, to)

	ref, err := s.ledger.GetCurrentBlockReference(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get reference block: %w", err)
	}
	tx, err := s.builder.build(from, to, base, asset, ref)
	if err != nil {
		return nil, err
	}

	return &model.BuildResult{
		Summary: fmt.Sprintf("Unsigned transaction %s: %s %s from %s to %s. Expires in %v.",
			tx.TxID, asset.Format(base), asset, from, to, ExpirationWindow),
		Transaction:    tx,
		SenderCheck:    sender,
		RecipientCheck: recipient,
	}, nil
}

// Broadcast submits an already signed transaction, or signs it with the local
// key first when sign is set
func (s *Service) Broadcast(ctx context.Context, tx *model.Transaction, sign bool) (*model.TransferResult, error) {
	if tx == nil {
		return nil, fmt.Errorf("%w: missing transaction", ErrInvalidTransaction)
	}
	log := s.log.With(zap.String("txid", tx.TxID), zap.Bool("sign", sign))

	if sign {
		if tx.IsSigned() {
			return nil, fmt.Errorf("%w: transaction is already signed", ErrInvalidTransaction)
		}
		if err := SignTransaction(s.signer, tx); err != nil {
			return nil, err
		}
	}

	sent, err := s.broadcaster.Submit(ctx, tx)
	s.metrics.BroadcastFinished(broadcastOutcome(err))
	if err != nil {
		log.Error("broadcast failed", zap.Error(err))
		return nil, err
	}
	log.Info("transaction broadcast")

	return &model.TransferResult{
		State:   StateDone,
		Result:  true,
		TxID:    sent.TxID,
		Summary: "Transaction broadcast. Transaction ID: " + sent.TxID,
	}, nil
}

func (s *Service) target(addr string) (address.Address, error) {
	if addr == "" {
		return s.signer.Address()
	}
	return s.aliases.Resolve(addr)
}

// generateQRCode generates QR code of address in base64
func generateQRCode(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
