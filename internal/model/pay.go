package model

// TransferRequest represents request for POST /tron/transfer and /tron/build
type TransferRequest struct {
	To     string `json:"to" binding:"required"`
	Amount string `json:"amount" binding:"required"`
	Token  string `json:"token"` // "USDT" (default) or "TRX"
}

// TransferResult is the structured outcome of every transfer attempt.
// Result is set only in DONE and Blocked only in BLOCKED.
type TransferResult struct {
	Summary string `json:"summary"`
	State   string `json:"state"`

	Result bool   `json:"result,omitempty"`
	TxID   string `json:"txid,omitempty"`
	Amount string `json:"amount,omitempty"`
	Token  string `json:"token,omitempty"`
	From   string `json:"from,omitempty"`
	To     string `json:"to,omitempty"`

	Blocked  bool     `json:"blocked,omitempty"`
	RiskType string   `json:"risk_type,omitempty"`
	Reasons  []string `json:"reasons,omitempty"`

	Error      string           `json:"error,omitempty"`
	ErrorCode  string           `json:"error_code,omitempty"`
	Errors     []PreflightError `json:"errors,omitempty"`
	Suggestion string           `json:"suggestion,omitempty"`

	// RejectCode and RejectMessage are the node's own reason for a broadcast_rejected
	RejectCode    string `json:"reject_code,omitempty"`
	RejectMessage string `json:"reject_message,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}

// BuildResult represents response for POST /tron/build
type BuildResult struct {
	Summary        string          `json:"summary"`
	Transaction    *Transaction    `json:"unsigned_tx"`
	SenderCheck    *SenderCheck    `json:"sender_check,omitempty"`
	RecipientCheck *RecipientCheck `json:"recipient_check,omitempty"`
}

// BroadcastRequest represents request for POST /tron/broadcast
type BroadcastRequest struct {
	Transaction Transaction `json:"transaction"`
	Sign        bool        `json:"sign"` // sign with the local key before broadcasting
}
