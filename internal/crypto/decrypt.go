package crypto

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/AlexZinkM/tron-wallet/internal/model"
)

// ErrInvalidPassword is returned when the keystore cannot be opened with the given password
var ErrInvalidPassword = errors.New("invalid keystore password")

// DecryptKeystore reads and decrypts a keystore file.
// password must be []byte for security (caller should zero it after use)
func DecryptKeystore(filePath string, password []byte) (*model.KeystoreFile, *model.KeystoreData, error) {
	ksFile, err := readKeystoreFile(filePath)
	if err != nil {
		return nil, nil, err
	}
	if ksFile.Network != NetworkTron {
		return nil, nil, fmt.Errorf("keystore is for network %q, expected %q", ksFile.Network, NetworkTron)
	}

	salt, err := base64.StdEncoding.DecodeString(ksFile.Salt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode salt: %w", err)
	}

	nonce, err := base64.StdEncoding.DecodeString(ksFile.Nonce)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode nonce: %w", err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(ksFile.CipherText)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	aesGCM, err := newGCM(password, salt)
	if err != nil {
		return nil, nil, err
	}

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, nil, ErrInvalidPassword
	}
	defer clear(plaintext)

	var data model.KeystoreData
	if err := json.Unmarshal(plaintext, &data); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal keystore data: %w", err)
	}

	return ksFile, &data, nil
}

// ReadKeystoreAddress reads only the address from a keystore file (without decryption)
func ReadKeystoreAddress(filePath string) (string, error) {
	ksFile, err := readKeystoreFile(filePath)
	if err != nil {
		return "", err
	}
	return ksFile.Address, nil
}

func readKeystoreFile(filePath string) (*model.KeystoreFile, error) {
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("keystore file does not exist")
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(fileData) == 0 {
		return nil, errors.New("keystore file is empty")
	}

	fileData = bytes.TrimPrefix(fileData, utf8BOM)

	var ksFile model.KeystoreFile
	if err := json.Unmarshal(fileData, &ksFile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal keystore file: %w", err)
	}
	return &ksFile, nil
}
