package tron

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"

	"github.com/AlexZinkM/tron-wallet/internal/address"
	"github.com/AlexZinkM/tron-wallet/internal/model"
)

// transferSelector is keccak256("transfer(address,uint256)")[:4]
var transferSelector = ethcrypto.Keccak256([]byte("transfer(address,uint256)"))[:4]

// Builder assembles unsigned transactions offline from a block reference
type Builder struct {
	usdt address.Address
	now  func() time.Time
}

// NewBuilder creates a builder that sends tokens through the given TRC20 contract
func NewBuilder(usdt address.Address) *Builder {
	return &Builder{usdt: usdt, now: time.Now}
}

// BuildUnsigned creates an unsigned transaction moving amount of asset from -> to.
// Amount and addresses are validated before the reference block is looked at.
func (b *Builder) BuildUnsigned(from, to, amount string, asset Asset, ref *model.BlockReference) (*model.Transaction, error) {
	base, err := asset.ToBaseUnits(amount)
	if err != nil {
		return nil, err
	}
	fromAddr, err := address.Parse(from)
	if err != nil {
		return nil, fmt.Errorf("sender: %w", err)
	}
	toAddr, err := address.Parse(to)
	if err != nil {
		return nil, fmt.Errorf("recipient: %w", err)
	}
	return b.build(fromAddr, toAddr, base, asset, ref)
}

func (b *Builder) build(from, to address.Address, base int64, asset Asset, ref *model.BlockReference) (*model.Transaction, error) {
	if ref == nil {
		return nil, fmt.Errorf("%w: missing block reference", ErrInvalidTransaction)
	}
	refBytes, refHash, err := refBlockFields(ref)
	if err != nil {
		return nil, err
	}

	now := b.now()
	raw := model.RawData{
		RefBlockBytes: refBytes,
		RefBlockHash:  refHash,
		Timestamp:     now.UnixMilli(),
		Expiration:    now.Add(ExpirationWindow).UnixMilli(),
	}

	switch asset {
	case AssetTRX:
		raw.Contract = []model.Contract{{
			Type: model.ContractTypeTransfer,
			Parameter: model.ContractParameter{
				TypeURL: model.TypeURLTransferContract,
				Value: model.ContractValue{
					OwnerAddress: from.Hex(),
					ToAddress:    to.Hex(),
					Amount:       base,
				},
			},
		}}
	case AssetUSDT:
		raw.FeeLimit = TokenFeeLimitSun
		raw.Contract = []model.Contract{{
			Type: model.ContractTypeTriggerSmart,
			Parameter: model.ContractParameter{
				TypeURL: model.TypeURLTriggerSmartContract,
				Value: model.ContractValue{
					OwnerAddress:    from.Hex(),
					ContractAddress: b.usdt.Hex(),
					Data:            hex.EncodeToString(TransferCallData(to, base)),
				},
			},
		}}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAsset, asset)
	}

	tx := &model.Transaction{RawData: raw}
	if err := Seal(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// TransferCallData encodes transfer(address,uint256):
// selector || left-padded 20-byte recipient || 32-byte big-endian amount
func TransferCallData(to address.Address, base int64) []byte {
	amount := uint256.NewInt(uint64(base)).Bytes32()

	data := make([]byte, 0, 4+32+32)
	data = append(data, transferSelector...)
	data = append(data, ethcommon.LeftPadBytes(to.EVM(), 32)...)
	data = append(data, amount[:]...)
	return data
}

// refBlockFields derives ref_block_bytes (bytes 6..8 of the big-endian block
// number) and ref_block_hash (bytes 8..16 of the block id)
func refBlockFields(ref *model.BlockReference) (string, string, error) {
	id, err := hex.DecodeString(ref.Hash)
	if err != nil || len(id) != 32 {
		return "", "", fmt.Errorf("%w: block id must be 32 bytes of hex", ErrInvalidTransaction)
	}
	var num [8]byte
	binary.BigEndian.PutUint64(num[:], uint64(ref.Number))
	return hex.EncodeToString(num[6:8]), hex.EncodeToString(id[8:16]), nil
}
