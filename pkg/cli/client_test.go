package cli

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Giri-Aayush/concero-faucet/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimSendsJSONBody(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"ok","txHash":"0xabc"}`))
	}))
	defer server.Close()

	client := NewFaucetClient(server.URL+"/", ClaimTimeout)
	resp, err := client.Claim(context.Background(), "0x742d35cc6634c0532925a3b844bc454e4438f44e", 84532)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, FaucetPath, gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "0x742d35cc6634c0532925a3b844bc454e4438f44e", gotBody["address"])
	assert.Equal(t, float64(84532), gotBody["chainId"])

	assert.Equal(t, &models.ClaimResponse{Success: true, Message: "ok", TxHash: "0xabc"}, resp)
}

func TestClaimDecodesErrorStatusBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"success":false,"message":"Already claimed","errorCode":"COOLDOWN_ACTIVE","extra":1}`))
	}))
	defer server.Close()

	resp, err := NewFaucetClient(server.URL, ClaimTimeout).Claim(context.Background(), "0xabc", 11155111)
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Equal(t, "Already claimed", resp.Message)
	assert.Equal(t, "COOLDOWN_ACTIVE", resp.ErrorCode)
	assert.Empty(t, resp.TxHash)
}

func TestClaimMissingFieldsDegrade(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	resp, err := NewFaucetClient(server.URL, ClaimTimeout).Claim(context.Background(), "0xabc", 6342)
	require.NoError(t, err)
	assert.Equal(t, &models.ClaimResponse{}, resp)
}

func TestClaimWrongTypedFieldsAreNotParseErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"message":"ok","errorCode":42}`))
	}))
	defer server.Close()

	resp, err := NewFaucetClient(server.URL, ClaimTimeout).Claim(context.Background(), "0xabc", 84532)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "ok", resp.Message)
	assert.Equal(t, "42", resp.ErrorCode)
}

func TestClaimParseError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"html page", "<html>Bad Gateway</html>"},
		{"empty body", ""},
		{"truncated object", `{"success":true,"message":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewFaucetClient(server.URL, ClaimTimeout).Claim(context.Background(), "0xabc", 43113)
			assert.ErrorIs(t, err, ErrParse)
			assert.NotErrorIs(t, err, ErrNetwork)
		})
	}
}

func TestClaimNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewFaucetClient(url, ClaimTimeout).Claim(context.Background(), "0xabc", 43113)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.NotErrorIs(t, err, ErrTimeout)
}

func TestClaimClientTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer server.Close()

	start := time.Now()
	_, err := NewFaucetClient(server.URL, 100*time.Millisecond).Claim(context.Background(), "0xabc", 421614)

	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestClaimContextDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := NewFaucetClient(server.URL, ClaimTimeout).Claim(ctx, "0xabc", 421614)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestClaimContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := NewFaucetClient(server.URL, ClaimTimeout).Claim(ctx, "0xabc", 421614)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrNetwork)
}
