package model

// BalanceResponse represents response for GET /tron/balance
type BalanceResponse struct {
	Address string `json:"address"`
	TRX     string `json:"trx"`
	USDT    string `json:"usdt"`
	Summary string `json:"summary"`
}

// SafetyResponse represents response for GET /tron/safety
type SafetyResponse struct {
	Address string `json:"address"`
	IsSafe  bool   `json:"is_safe"`
	RiskReport
	Summary string `json:"summary"`
}

// AccountResources is the energy / bandwidth state of an account
type AccountResources struct {
	FreeNetUsed  int64 `json:"freeNetUsed"`
	FreeNetLimit int64 `json:"freeNetLimit"`
	NetUsed      int64 `json:"NetUsed"`
	NetLimit     int64 `json:"NetLimit"`
	EnergyUsed   int64 `json:"EnergyUsed"`
	EnergyLimit  int64 `json:"EnergyLimit"`
}

// ResourcesResponse represents response for GET /tron/resources
type ResourcesResponse struct {
	Address          string `json:"address"`
	EnergyRemaining  int64  `json:"energy_remaining"`
	EnergyLimit      int64  `json:"energy_limit"`
	FreeNetRemaining int64  `json:"free_bandwidth_remaining"`
	NetRemaining     int64  `json:"staked_bandwidth_remaining"`
	Summary          string `json:"summary"`
}
