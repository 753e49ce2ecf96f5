package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Giri-Aayush/concero-faucet/internal/chains"
	"github.com/Giri-Aayush/concero-faucet/internal/models"
	"github.com/Giri-Aayush/concero-faucet/pkg/cli/ui"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CycleInterval is the pause between the end of one pass and the start of the next
const CycleInterval = 25 * time.Hour

// Claimer requests faucet tokens for one address on one chain
type Claimer interface {
	Claim(ctx context.Context, address string, chainID int64) (*models.ClaimResponse, error)
}

// Display renders the lifecycle of claims and the wait between passes
type Display interface {
	StartClaimCountdown(walletNum int, address, chainName string, budget time.Duration) ui.Stopper
	PrintClaimResult(walletNum int, address, chainName string, resp *models.ClaimResponse)
	PrintClaimError(walletNum int, address, chainName, message string)
	WaitForNextCycle(ctx context.Context, d time.Duration) error
}

// Scheduler walks every address across every selected chain, one claim at a
// time, then sleeps until the next pass.
type Scheduler struct {
	client    Claimer
	display   Display
	logger    *zap.Logger
	addresses []string
	selection []chains.Chain

	claimTimeout  time.Duration
	cycleInterval time.Duration
}

// NewScheduler creates a scheduler with the standard 30s claim budget and
// 25h cycle interval
func NewScheduler(client Claimer, display Display, logger *zap.Logger, addresses []string, selection []chains.Chain) *Scheduler {
	return &Scheduler{
		client:        client,
		display:       display,
		logger:        logger,
		addresses:     addresses,
		selection:     selection,
		claimTimeout:  ClaimTimeout,
		cycleInterval: CycleInterval,
	}
}

// Run executes passes forever. It only returns once ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	for pass := 1; ; pass++ {
		if err := s.RunPass(ctx, pass); err != nil {
			return err
		}

		s.logger.Info("Pass complete, waiting for next cycle",
			zap.Int("pass", pass),
			zap.Duration("wait", s.cycleInterval),
		)

		if err := s.display.WaitForNextCycle(ctx, s.cycleInterval); err != nil {
			return err
		}
	}
}

// RunPass claims once for every (address, chain) pair in file and selection
// order. Claim failures are reported and skipped; only cancellation of ctx
// ends the pass early.
func (s *Scheduler) RunPass(ctx context.Context, pass int) error {
	s.logger.Info("Starting pass",
		zap.Int("pass", pass),
		zap.Int("addresses", len(s.addresses)),
		zap.Int("chains", len(s.selection)),
	)

	for i, address := range s.addresses {
		walletNum := i + 1
		for _, chain := range s.selection {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := s.claim(ctx, walletNum, address, chain); err != nil {
				return err
			}
		}
	}
	return nil
}

type claimResult struct {
	resp *models.ClaimResponse
	err  error
}

// claim runs a single attempt. The request races a local timer; whichever
// settles first decides the outcome. The request context is cancelled on
// return so a losing request is abandoned rather than awaited.
func (s *Scheduler) claim(ctx context.Context, walletNum int, address string, chain chains.Chain) error {
	attemptID := uuid.NewString()
	started := time.Now()

	countdown := s.display.StartClaimCountdown(walletNum, address, chain.Name, s.claimTimeout)

	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan claimResult, 1)
	go func() {
		resp, err := s.client.Claim(reqCtx, address, chain.ID)
		results <- claimResult{resp: resp, err: err}
	}()

	timer := time.NewTimer(s.claimTimeout)
	defer timer.Stop()

	var result claimResult
	select {
	case result = <-results:
	case <-timer.C:
		result.err = fmt.Errorf("%w after %s", ErrTimeout, s.claimTimeout)
	case <-ctx.Done():
		countdown.Stop()
		return ctx.Err()
	}

	countdown.Stop()

	fields := []zap.Field{
		zap.String("attempt_id", attemptID),
		zap.Int("wallet", walletNum),
		zap.String("address", address),
		zap.Int64("chain_id", chain.ID),
		zap.Duration("duration", time.Since(started)),
	}

	if result.err == nil && result.resp == nil {
		result.err = fmt.Errorf("%w: empty response", ErrParse)
	}

	if result.err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.logger.Debug("Claim failed", append(fields, zap.Error(result.err))...)
		s.display.PrintClaimError(walletNum, address, chain.Name, s.errorMessage(result.err))
		return nil
	}

	s.logger.Debug("Claim settled", append(fields,
		zap.Bool("success", result.resp.Success),
		zap.String("tx_hash", result.resp.TxHash),
		zap.String("error_code", result.resp.ErrorCode),
	)...)
	s.display.PrintClaimResult(walletNum, address, chain.Name, result.resp)
	return nil
}

func (s *Scheduler) errorMessage(err error) string {
	if errors.Is(err, ErrTimeout) {
		return fmt.Sprintf("Claim timed out after %d seconds", int(s.claimTimeout/time.Second))
	}
	return err.Error()
}
