package tron

import (
	"context"

	"github.com/AlexZinkM/tron-wallet/internal/address"
	"github.com/AlexZinkM/tron-wallet/internal/model"
)

// Ledger is the read side of the network. Balances are integer base units.
type Ledger interface {
	GetNativeBalance(ctx context.Context, addr address.Address) (int64, error)
	GetAssetBalance(ctx context.Context, addr address.Address) (int64, error)
	GetAccountStatus(ctx context.Context, addr address.Address) (*model.AccountStatus, error)
	GetCurrentBlockReference(ctx context.Context) (*model.BlockReference, error)
}

// ResourceReader reports energy and bandwidth of an account
type ResourceReader interface {
	GetAccountResources(ctx context.Context, addr address.Address) (*model.AccountResources, error)
}

// ChainReader reports transaction outcomes and network parameters
type ChainReader interface {
	GetTransactionInfo(ctx context.Context, txID string) (*model.TransactionInfo, error)
	GetChainParameters(ctx context.Context) (map[string]int64, error)
}

// BroadcastEndpoint submits serialized signed transactions.
// A returned error means the outcome is unknown; an explicit rejection comes back as Result=false.
type BroadcastEndpoint interface {
	BroadcastHex(ctx context.Context, txHex string) (*model.BroadcastResponse, error)
}

// RiskChecker looks up a recipient in a malicious-address database
type RiskChecker interface {
	CheckAddressRisk(ctx context.Context, addr address.Address) (*model.RiskReport, error)
}

// AliasResolver maps a human alias or address string to an address
type AliasResolver interface {
	Resolve(nameOrAddress string) (address.Address, error)
}

// Signer owns the private key. Implementations never expose it.
type Signer interface {
	Address() (address.Address, error)
	Sign(txID []byte) ([]byte, error)
	VerifyOwnership(candidate string) bool
}

// directResolver accepts only literal addresses
type directResolver struct{}

func (directResolver) Resolve(s string) (address.Address, error) {
	return address.Parse(s)
}
