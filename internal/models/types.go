package models

import (
	"encoding/json"
	"strings"

	"github.com/Giri-Aayush/concero-faucet/internal/chains"
)

// ClaimRequest is the body of a faucet claim
type ClaimRequest struct {
	Address string `json:"address"`
	ChainID int64  `json:"chainId"`
}

// ClaimResponse is what the faucet answers with, successful or not.
// TxHash and ErrorCode are optional.
type ClaimResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	TxHash    string `json:"txHash,omitempty"`
	ErrorCode string `json:"errorCode,omitempty"`
}

// UnmarshalJSON reads the faucet reply without trusting its field types.
// Any syntactically valid JSON decodes: a non-object or a missing field
// leaves the zero value, success is true only for a JSON true, and
// non-string text fields keep their raw JSON text.
func (r *ClaimResponse) UnmarshalJSON(data []byte) error {
	*r = ClaimResponse{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}

	_ = json.Unmarshal(fields["success"], &r.Success)
	r.Message = looseString(fields["message"])
	r.TxHash = looseString(fields["txHash"])
	r.ErrorCode = looseString(fields["errorCode"])
	return nil
}

func looseString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	if text := strings.TrimSpace(string(raw)); text != "null" {
		return text
	}
	return ""
}

// ChainsResponse lists the chains a faucet serves
type ChainsResponse struct {
	Chains []chains.Chain `json:"chains"`
}

// HealthResponse represents the health status of the API
type HealthResponse struct {
	Status    string `json:"status"`
	Store     string `json:"store"`
	Timestamp int64  `json:"timestamp"`
}
