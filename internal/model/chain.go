package model

// TransactionInfo is the on-chain outcome of a transaction.
// Found is false until the transaction is in a block.
type TransactionInfo struct {
	Found       bool
	BlockNumber int64
	Failed      bool
	Result      string // contract result, e.g. SUCCESS or OUT_OF_ENERGY
	Message     string
	FeeSun      int64
}

// TransactionStatusResponse represents response for GET /tron/transaction
type TransactionStatusResponse struct {
	TxID          string `json:"txid"`
	Status        string `json:"status"` // not_found, success or failed
	Success       bool   `json:"success"`
	BlockNumber   int64  `json:"block_number,omitempty"`
	Confirmations int64  `json:"confirmations,omitempty"`
	Result        string `json:"result,omitempty"`
	Message       string `json:"message,omitempty"`
	Fee           string `json:"fee_trx,omitempty"`
	Summary       string `json:"summary"`
}

// NetworkStatusResponse represents response for GET /tron/network
type NetworkStatusResponse struct {
	LatestBlock int64  `json:"latest_block"`
	BlockID     string `json:"block_id"`
	Summary     string `json:"summary"`
}

// GasParametersResponse represents response for GET /tron/gas
type GasParametersResponse struct {
	EnergyPriceSun    int64  `json:"energy_price_sun"`
	BandwidthPriceSun int64  `json:"bandwidth_price_sun"`
	USDTTransferFee   string `json:"estimated_usdt_transfer_fee_trx"` // at the standard energy estimate
	Summary           string `json:"summary"`
}
