package address

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

const (
	// Prefix is the mainnet network byte prepended to every 20-byte account hash.
	Prefix byte = 0x41

	// Size is the length of the raw network form (prefix + 20-byte hash).
	Size = 21

	// HumanLength is the length of a base58check encoded address ("T...").
	HumanLength = 34

	checksumLen = 4
	hashLen     = 20
)

// ErrInvalidAddress is returned for anything that is not a well-formed TRON address
var ErrInvalidAddress = errors.New("invalid TRON address")

// Address is the raw 21-byte network identity of an account
type Address [Size]byte

// String returns the base58check ("T...") form
func (a Address) String() string {
	return EncodeHuman(a)
}

// Hex returns the raw hex form including the network prefix, without "0x"
func (a Address) Hex() string {
	return hex.EncodeToString(a[:])
}

// Bytes returns a copy of the raw 21 bytes
func (a Address) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, a[:])
	return out
}

// EVM returns the 20-byte account hash without the network prefix
func (a Address) EVM() []byte {
	out := make([]byte, hashLen)
	copy(out, a[1:])
	return out
}

// IsZero reports whether the address was never set
func (a Address) IsZero() bool {
	return a == Address{}
}

// FromHash builds an address from a 20-byte public-key hash
func FromHash(hash []byte) (Address, error) {
	var a Address
	if len(hash) != hashLen {
		return a, fmt.Errorf("%w: hash must be %d bytes, got %d", ErrInvalidAddress, hashLen, len(hash))
	}
	a[0] = Prefix
	copy(a[1:], hash)
	return a, nil
}

// DecodeHuman decodes and checksum-verifies a base58check address
func DecodeHuman(s string) (Address, error) {
	var a Address

	decoded, err := base58.Decode(s)
	if err != nil {
		return a, fmt.Errorf("%w: not base58", ErrInvalidAddress)
	}
	if len(decoded) != Size+checksumLen {
		return a, fmt.Errorf("%w: decoded length %d, expected %d", ErrInvalidAddress, len(decoded), Size+checksumLen)
	}

	payload, sum := decoded[:Size], decoded[Size:]
	if !bytes.Equal(sum, checksum(payload)) {
		return a, fmt.Errorf("%w: checksum mismatch", ErrInvalidAddress)
	}
	if payload[0] != Prefix {
		return a, fmt.Errorf("%w: unexpected network prefix 0x%02x", ErrInvalidAddress, payload[0])
	}

	copy(a[:], payload)
	return a, nil
}

// EncodeHuman appends the double-SHA256 checksum and encodes in base58
func EncodeHuman(a Address) string {
	buf := make([]byte, 0, Size+checksumLen)
	buf = append(buf, a[:]...)
	buf = append(buf, checksum(a[:])...)
	return base58.Encode(buf)
}

// NormalizeHex accepts "0x41..", "41..", "0x<20 bytes>" or "<20 bytes>" and
// returns the canonical 21-byte form with the network prefix
func NormalizeHex(s string) (Address, error) {
	var a Address

	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return a, fmt.Errorf("%w: non-hex characters", ErrInvalidAddress)
	}

	switch len(raw) {
	case hashLen:
		return FromHash(raw)
	case Size:
		if raw[0] != Prefix {
			return a, fmt.Errorf("%w: unexpected network prefix 0x%02x", ErrInvalidAddress, raw[0])
		}
		copy(a[:], raw)
		return a, nil
	default:
		return a, fmt.Errorf("%w: hex address must be %d or %d bytes, got %d", ErrInvalidAddress, hashLen, Size, len(raw))
	}
}

// LooksLikeHumanAddress is a structural check only (leading 'T', 34 chars).
// It does not verify the checksum.
func LooksLikeHumanAddress(s string) bool {
	return len(s) == HumanLength && s[0] == 'T'
}

// Parse accepts either the human or the hex form
func Parse(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Address{}, fmt.Errorf("%w: empty", ErrInvalidAddress)
	}
	if LooksLikeHumanAddress(s) {
		return DecodeHuman(s)
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") || strings.HasPrefix(s, "41") {
		return NormalizeHex(s)
	}
	return DecodeHuman(s)
}

// IsValid reports whether s parses as an address in either form
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

func checksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:checksumLen]
}
