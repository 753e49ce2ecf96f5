package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/Giri-Aayush/concero-faucet/internal/models"
	"github.com/go-resty/resty/v2"
)

const (
	// FaucetPath is the claim endpoint below the API base URL
	FaucetPath = "/api/faucet"

	// ClaimTimeout bounds one claim, both in the HTTP client and in the scheduler
	ClaimTimeout = 30 * time.Second
)

// FaucetClient handles communication with the faucet API
type FaucetClient struct {
	baseURL string
	client  *resty.Client
}

// NewFaucetClient creates a new faucet client
func NewFaucetClient(baseURL string, timeout time.Duration) *FaucetClient {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")

	return &FaucetClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// Claim requests test tokens for address on chainID.
//
// The body is decoded whatever the HTTP status is: the faucet reports
// refusals as {"success": false, ...} with a 4xx code.
func (c *FaucetClient) Claim(ctx context.Context, address string, chainID int64) (*models.ClaimResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(models.ClaimRequest{Address: address, ChainID: chainID}).
		Post(c.baseURL + FaucetPath)

	if err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			return nil, err
		case isTimeout(err):
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
		}
	}

	var response models.ClaimResponse
	if err := json.Unmarshal(resp.Body(), &response); err != nil {
		return nil, fmt.Errorf("%w (status %d): %v", ErrParse, resp.StatusCode(), err)
	}

	return &response, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
