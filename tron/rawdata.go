package tron

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/AlexZinkM/tron-wallet/internal/model"
)

// protocol.Transaction.raw field numbers
const (
	fieldRefBlockBytes = 1
	fieldRefBlockHash  = 4
	fieldExpiration    = 8
	fieldContract      = 11
	fieldTimestamp     = 14
	fieldFeeLimit      = 18
)

// protocol.Transaction.Contract.ContractType
var contractTypeNumbers = map[string]protowire.Number{
	model.ContractTypeTransfer:     1,
	model.ContractTypeTriggerSmart: 31,
}

// EncodeRawData serializes raw data to its canonical protobuf bytes.
// These are the bytes the txID commits to.
func EncodeRawData(raw *model.RawData) ([]byte, error) {
	var b []byte

	refBytes, err := decodeHexField("ref_block_bytes", raw.RefBlockBytes)
	if err != nil {
		return nil, err
	}
	refHash, err := decodeHexField("ref_block_hash", raw.RefBlockHash)
	if err != nil {
		return nil, err
	}

	b = appendBytes(b, fieldRefBlockBytes, refBytes)
	b = appendBytes(b, fieldRefBlockHash, refHash)
	b = appendVarint(b, fieldExpiration, raw.Expiration)
	for i := range raw.Contract {
		c, err := encodeContract(&raw.Contract[i])
		if err != nil {
			return nil, err
		}
		b = protowire.AppendTag(b, fieldContract, protowire.BytesType)
		b = protowire.AppendBytes(b, c)
	}
	b = appendVarint(b, fieldTimestamp, raw.Timestamp)
	b = appendVarint(b, fieldFeeLimit, raw.FeeLimit)
	return b, nil
}

func encodeContract(c *model.Contract) ([]byte, error) {
	typ, ok := contractTypeNumbers[c.Type]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported contract type %q", ErrInvalidTransaction, c.Type)
	}

	value, err := encodeContractValue(c.Type, &c.Parameter.Value)
	if err != nil {
		return nil, err
	}

	// google.protobuf.Any
	var anyMsg []byte
	anyMsg = protowire.AppendTag(anyMsg, 1, protowire.BytesType)
	anyMsg = protowire.AppendString(anyMsg, c.Parameter.TypeURL)
	anyMsg = protowire.AppendTag(anyMsg, 2, protowire.BytesType)
	anyMsg = protowire.AppendBytes(anyMsg, value)

	var b []byte
	b = appendVarint(b, 1, int64(typ))
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendBytes(b, anyMsg)
	return b, nil
}

func encodeContractValue(typ string, v *model.ContractValue) ([]byte, error) {
	owner, err := decodeHexField("owner_address", v.OwnerAddress)
	if err != nil {
		return nil, err
	}

	var b []byte
	b = appendBytes(b, 1, owner)

	switch typ {
	case model.ContractTypeTransfer:
		to, err := decodeHexField("to_address", v.ToAddress)
		if err != nil {
			return nil, err
		}
		b = appendBytes(b, 2, to)
		b = appendVarint(b, 3, v.Amount)
	case model.ContractTypeTriggerSmart:
		contract, err := decodeHexField("contract_address", v.ContractAddress)
		if err != nil {
			return nil, err
		}
		data, err := decodeHexField("data", v.Data)
		if err != nil {
			return nil, err
		}
		b = appendBytes(b, 2, contract)
		b = appendBytes(b, 4, data)
	}
	return b, nil
}

// EncodeSigned serializes a full protocol.Transaction: raw_data plus signatures
func EncodeSigned(tx *model.Transaction) ([]byte, error) {
	raw, err := decodeHexField("raw_data_hex", tx.RawDataHex)
	if err != nil {
		return nil, err
	}

	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendBytes(b, raw)
	for i, s := range tx.Signature {
		sig, err := decodeHexField(fmt.Sprintf("signature[%d]", i), s)
		if err != nil {
			return nil, err
		}
		if len(sig) != 65 {
			return nil, fmt.Errorf("%w: signature[%d] must be 65 bytes, got %d", ErrInvalidTransaction, i, len(sig))
		}
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, sig)
	}
	return b, nil
}

// Seal encodes tx.RawData and sets RawDataHex and TxID from it
func Seal(tx *model.Transaction) error {
	raw, err := EncodeRawData(&tx.RawData)
	if err != nil {
		return err
	}
	sum := sha256.Sum256(raw)
	tx.RawDataHex = hex.EncodeToString(raw)
	tx.TxID = hex.EncodeToString(sum[:])
	return nil
}

// VerifyTxID checks that TxID is SHA-256 of raw_data_hex and returns the digest.
// With canonical set it also requires RawData to re-encode to the same bytes,
// so the JSON a caller inspected is what gets signed.
func VerifyTxID(tx *model.Transaction, canonical bool) ([]byte, error) {
	raw, err := decodeHexField("raw_data_hex", tx.RawDataHex)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: raw_data_hex is empty", ErrInvalidTransaction)
	}
	sum := sha256.Sum256(raw)

	want, err := decodeHexField("txID", tx.TxID)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(sum[:], want) {
		return nil, fmt.Errorf("%w: txID does not match raw_data_hex", ErrInvalidTransaction)
	}

	if canonical {
		encoded, err := EncodeRawData(&tx.RawData)
		if err != nil {
			return nil, err
		}
		if !bytes.Equal(encoded, raw) {
			return nil, fmt.Errorf("%w: raw_data does not match raw_data_hex", ErrInvalidTransaction)
		}
	}
	return sum[:], nil
}

func appendVarint(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func decodeHexField(name, s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not valid hex", ErrInvalidTransaction, name)
	}
	return b, nil
}
