package tron

import (
	"encoding/hex"
	"fmt"

	"github.com/AlexZinkM/tron-wallet/internal/model"
)

// SignTransaction verifies tx is internally consistent and appends the
// signer's signature over its txID
func SignTransaction(signer Signer, tx *model.Transaction) error {
	txID, err := VerifyTxID(tx, true)
	if err != nil {
		return err
	}

	if _, err := signer.Address(); err != nil {
		return err
	}
	for _, c := range tx.RawData.Contract {
		if !signer.VerifyOwnership(c.Parameter.Value.OwnerAddress) {
			return ErrOwnerMismatch
		}
	}

	sig, err := signer.Sign(txID)
	if err != nil {
		return fmt.Errorf("failed to sign transaction: %w", err)
	}
	tx.Signature = append(tx.Signature, hex.EncodeToString(sig))
	return nil
}
