package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAddressRisk(t *testing.T) {
	cases := []struct {
		name     string
		resp     map[string]any
		risky    bool
		riskType string
		reasons  int
	}{
		{name: "clean", resp: map[string]any{}, riskType: RiskTypeSafe},
		{name: "blacklisted", resp: map[string]any{"is_black_list": true}, risky: true, riskType: RiskTypeBlacklisted, reasons: 1},
		{
			name:     "fraud and spam",
			resp:     map[string]any{"has_fraud_transaction": true, "send_ad_by_memo": true},
			risky:    true,
			riskType: RiskTypeFraud,
			reasons:  2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var query string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				query = r.URL.Query().Get("address")
				assert.Equal(t, "/api/security/account/data", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(tc.resp)
			}))
			defer srv.Close()

			report, err := NewTronScanClient(Options{BaseURL: srv.URL}).CheckAddressRisk(context.Background(), mustAddr(t, testAddr))
			require.NoError(t, err)
			assert.Equal(t, testAddr, query)
			assert.Equal(t, tc.risky, report.IsRisky)
			assert.Equal(t, tc.riskType, report.RiskType)
			assert.Len(t, report.Reasons, tc.reasons)
		})
	}
}

func TestCheckAddressRiskUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewTronScanClient(Options{BaseURL: srv.URL}).CheckAddressRisk(context.Background(), mustAddr(t, testAddr))
	assert.ErrorIs(t, err, ErrUnreachable)
}
