// Package keys holds the single signing key of the process.
//
// The key is read from its SecretSource on first use, kept only in memory,
// and never logged or returned. Signatures are deterministic (RFC 6979).
package keys

import (
	"errors"
	"fmt"
	"sync"

	"github.com/AlexZinkM/tron-wallet/internal/address"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

const (
	// PrivateKeyLength is the size of a raw secp256k1 scalar
	PrivateKeyLength = 32

	// SignatureLength is r (32) || s (32) || recovery id (1)
	SignatureLength = 65

	// DigestLength is the size of a txID
	DigestLength = 32
)

var (
	// ErrKeyNotConfigured is returned when no key source yields a key
	ErrKeyNotConfigured = errors.New("private key not configured")

	// ErrInvalidKey is returned for secrets that are present but malformed
	ErrInvalidKey = errors.New("invalid private key")
)

// Manager owns the process signing key. Safe for concurrent use; the key is
// read-only after the first successful load.
type Manager struct {
	source SecretSource

	once    sync.Once
	priv    []byte
	addr    address.Address
	loadErr error
}

// NewManager creates a Manager that loads its key lazily from source
func NewManager(source SecretSource) *Manager {
	return &Manager{source: source}
}

// Load reads and validates the key. Only the first call touches the source.
func (m *Manager) Load() error {
	m.once.Do(func() {
		if m.source == nil {
			m.loadErr = ErrKeyNotConfigured
			return
		}
		priv, err := m.source.PrivateKey()
		if err != nil {
			m.loadErr = err
			return
		}
		addr, err := DeriveAddress(priv)
		if err != nil {
			clear(priv)
			m.loadErr = err
			return
		}
		m.priv = priv
		m.addr = addr
	})
	return m.loadErr
}

// IsConfigured reports whether a usable key is available
func (m *Manager) IsConfigured() bool {
	return m.Load() == nil
}

// Address returns the address derived from the loaded key
func (m *Manager) Address() (address.Address, error) {
	if err := m.Load(); err != nil {
		return address.Address{}, err
	}
	return m.addr, nil
}

// Sign signs a 32-byte txID with the loaded key
func (m *Manager) Sign(txID []byte) ([]byte, error) {
	if err := m.Load(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotConfigured, err)
	}
	return sign(txID, m.priv, m.addr)
}

// VerifyOwnership reports whether candidate is the address of the loaded key
func (m *Manager) VerifyOwnership(candidate string) bool {
	own, err := m.Address()
	if err != nil {
		return false
	}
	parsed, err := address.Parse(candidate)
	if err != nil {
		return false
	}
	return parsed == own
}

// DeriveAddress computes the TRON address of a raw private key:
// 0x41 || last 20 bytes of Keccak-256(uncompressed public key)
func DeriveAddress(privateKey []byte) (address.Address, error) {
	if len(privateKey) != PrivateKeyLength {
		return address.Address{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKey, PrivateKeyLength, len(privateKey))
	}
	key, err := ethcrypto.ToECDSA(privateKey)
	if err != nil {
		return address.Address{}, fmt.Errorf("%w: not a valid secp256k1 scalar", ErrInvalidKey)
	}
	return address.FromHash(ethcrypto.PubkeyToAddress(key.PublicKey).Bytes())
}

// Sign produces a deterministic recoverable signature over txID
func Sign(txID, privateKey []byte) ([]byte, error) {
	signer, err := DeriveAddress(privateKey)
	if err != nil {
		return nil, err
	}
	return sign(txID, privateKey, signer)
}

func sign(txID, privateKey []byte, signer address.Address) ([]byte, error) {
	if len(txID) != DigestLength {
		return nil, fmt.Errorf("txID must be %d bytes, got %d", DigestLength, len(txID))
	}

	priv := secp256k1.PrivKeyFromBytes(privateKey)
	defer priv.Zero()

	// compact layout: [27 + recid] || r || s, nonce per RFC 6979
	compact := ecdsa.SignCompact(priv, txID, false)

	sig := make([]byte, SignatureLength)
	copy(sig, compact[1:])

	// pick the recovery id that yields the signer
	for v := byte(0); v <= 1; v++ {
		sig[64] = v
		pub, err := ethcrypto.SigToPub(txID, sig)
		if err != nil {
			continue
		}
		recovered, err := address.FromHash(ethcrypto.PubkeyToAddress(*pub).Bytes())
		if err == nil && recovered == signer {
			return sig, nil
		}
	}
	return nil, errors.New("signature does not recover to the signer address")
}
