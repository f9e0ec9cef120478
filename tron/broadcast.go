package tron

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/AlexZinkM/tron-wallet/internal/model"
)

// Broadcaster submits signed transactions exactly once
type Broadcaster struct {
	endpoint BroadcastEndpoint
}

// NewBroadcaster creates a broadcaster over endpoint
func NewBroadcaster(endpoint BroadcastEndpoint) *Broadcaster {
	return &Broadcaster{endpoint: endpoint}
}

// Submit sends tx to the network. It never retries: a rejection is returned as
// *BroadcastRejectedError, a transport failure as ErrBroadcastUnreachable.
func (b *Broadcaster) Submit(ctx context.Context, tx *model.Transaction) (*model.BroadcastResult, error) {
	if tx == nil || !tx.IsSigned() {
		return nil, ErrUnsigned
	}
	if _, err := VerifyTxID(tx, false); err != nil {
		return nil, err
	}

	encoded, err := EncodeSigned(tx)
	if err != nil {
		return nil, err
	}

	resp, err := b.endpoint.BroadcastHex(ctx, hex.EncodeToString(encoded))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBroadcastUnreachable, err)
	}
	if !resp.Result {
		return nil, &BroadcastRejectedError{Code: resp.Code, Message: resp.Message, TxID: tx.TxID}
	}

	txID := resp.TxID
	if txID == "" {
		txID = tx.TxID
	}
	return &model.BroadcastResult{Accepted: true, TxID: txID}, nil
}
