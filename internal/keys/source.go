package keys

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/AlexZinkM/tron-wallet/internal/address"
	"github.com/AlexZinkM/tron-wallet/internal/crypto"
)

// DefaultEnvVar is the environment variable holding the hex private key
const DefaultEnvVar = "TRON_PRIVATE_KEY"

// SecretSource yields the raw 32-byte private key. Callers own the returned
// slice and zero it when done.
type SecretSource interface {
	PrivateKey() ([]byte, error)
}

// EnvSource reads a 64-hex-character key from an environment variable
type EnvSource struct {
	Name string
}

// PrivateKey implements SecretSource
func (s EnvSource) PrivateKey() ([]byte, error) {
	name := s.Name
	if name == "" {
		name = DefaultEnvVar
	}
	return ParsePrivateKeyHex(os.Getenv(name), name)
}

// ParsePrivateKeyHex validates and decodes a hex secret. Errors are single
// line, name the violated constraint, and never contain the secret.
func ParsePrivateKeyHex(secret, varName string) ([]byte, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, fmt.Errorf("%w: set %s to a 64-character hex private key", ErrKeyNotConfigured, varName)
	}

	secret = strings.TrimPrefix(strings.TrimPrefix(secret, "0x"), "0X")
	if len(secret) != PrivateKeyLength*2 {
		return nil, fmt.Errorf("%w: %s must be 64 hex characters, got %d", ErrInvalidKey, varName, len(secret))
	}

	raw, err := hex.DecodeString(secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must contain only hex characters (0-9, a-f)", ErrInvalidKey, varName)
	}
	return raw, nil
}

// KeystoreSource decrypts the key from an encrypted keystore file
type KeystoreSource struct {
	Path string

	// Password is called once; the returned slice is zeroed after use
	Password func() ([]byte, error)
}

// PrivateKey implements SecretSource
func (s KeystoreSource) PrivateKey() ([]byte, error) {
	if s.Path == "" {
		return nil, fmt.Errorf("%w: keystore path is empty", ErrKeyNotConfigured)
	}
	if s.Password == nil {
		return nil, fmt.Errorf("%w: keystore password not provided", ErrKeyNotConfigured)
	}

	password, err := s.Password()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotConfigured, err)
	}
	defer clear(password)

	ksFile, data, err := crypto.DecryptKeystore(s.Path, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotConfigured, err)
	}

	derived, err := DeriveAddress(data.PrivateKey)
	if err != nil {
		clear(data.PrivateKey)
		return nil, err
	}
	if stored, err := address.Parse(ksFile.Address); err != nil || stored != derived {
		clear(data.PrivateKey)
		return nil, fmt.Errorf("%w: keystore address does not match its key", ErrInvalidKey)
	}
	return data.PrivateKey, nil
}

// StaticSource serves a fixed key; used by the keystore import command and tests
type StaticSource []byte

// PrivateKey implements SecretSource
func (s StaticSource) PrivateKey() ([]byte, error) {
	if len(s) == 0 {
		return nil, ErrKeyNotConfigured
	}
	out := make([]byte, len(s))
	copy(out, s)
	return out, nil
}
