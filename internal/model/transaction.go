package model

// Contract types carried in raw_data.contract[].type
const (
	ContractTypeTransfer        = "TransferContract"
	ContractTypeTriggerSmart    = "TriggerSmartContract"
	TypeURLTransferContract     = "type.googleapis.com/protocol.TransferContract"
	TypeURLTriggerSmartContract = "type.googleapis.com/protocol.TriggerSmartContract"
)

// ContractValue is the union of TransferContract and TriggerSmartContract fields.
// Addresses are raw hex ("41...").
type ContractValue struct {
	OwnerAddress    string `json:"owner_address"`
	ToAddress       string `json:"to_address,omitempty"`
	Amount          int64  `json:"amount,omitempty"`
	ContractAddress string `json:"contract_address,omitempty"`
	Data            string `json:"data,omitempty"`
}

// ContractParameter wraps a contract value with its protobuf type URL
type ContractParameter struct {
	TypeURL string        `json:"type_url"`
	Value   ContractValue `json:"value"`
}

// Contract is the single operation a transaction carries
type Contract struct {
	Type      string            `json:"type"`
	Parameter ContractParameter `json:"parameter"`
}

// RawData is the signed part of a transaction
type RawData struct {
	RefBlockBytes string     `json:"ref_block_bytes"`
	RefBlockHash  string     `json:"ref_block_hash"`
	Expiration    int64      `json:"expiration"`
	Timestamp     int64      `json:"timestamp"`
	FeeLimit      int64      `json:"fee_limit,omitempty"`
	Contract      []Contract `json:"contract"`
}

// Transaction is the TronGrid JSON shape of an unsigned or signed transaction.
// TxID is SHA-256 of the bytes in RawDataHex.
type Transaction struct {
	TxID       string   `json:"txID"`
	RawData    RawData  `json:"raw_data"`
	RawDataHex string   `json:"raw_data_hex"`
	Signature  []string `json:"signature,omitempty"`
	Visible    bool     `json:"visible"`
}

// IsSigned reports whether at least one signature is attached
func (t *Transaction) IsSigned() bool {
	return len(t.Signature) > 0
}

// BlockReference identifies a recent block used as the anti-replay anchor
type BlockReference struct {
	Number int64  `json:"number"`
	Hash   string `json:"hash"` // 32-byte block id, hex
}

// BroadcastResponse is the node's answer to a broadcast
type BroadcastResponse struct {
	Result  bool   `json:"result"`
	TxID    string `json:"txid,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// BroadcastResult is returned by a successful broadcast
type BroadcastResult struct {
	Accepted bool   `json:"accepted"`
	TxID     string `json:"txid"`
}
