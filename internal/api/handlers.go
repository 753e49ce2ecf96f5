package api

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Giri-Aayush/concero-faucet/internal/cache"
	"github.com/Giri-Aayush/concero-faucet/internal/chains"
	"github.com/Giri-Aayush/concero-faucet/internal/config"
	"github.com/Giri-Aayush/concero-faucet/internal/metrics"
	"github.com/Giri-Aayush/concero-faucet/internal/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Error codes returned in ClaimResponse.ErrorCode
const (
	CodeBadRequest       = "BAD_REQUEST"
	CodeInvalidAddress   = "INVALID_ADDRESS"
	CodeUnsupportedChain = "UNSUPPORTED_CHAIN"
	CodeCooldownActive   = "COOLDOWN_ACTIVE"
	CodeInternal         = "INTERNAL_ERROR"
)

// Handler contains dependencies for API handlers
type Handler struct {
	config *config.ServerConfig
	logger *zap.Logger
	store  cache.CooldownStore
	now    func() time.Time
}

// NewHandler creates a new API handler
func NewHandler(cfg *config.ServerConfig, logger *zap.Logger, store cache.CooldownStore) *Handler {
	return &Handler{
		config: cfg,
		logger: logger,
		store:  store,
		now:    time.Now,
	}
}

func reject(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(models.ClaimResponse{
		Success:   false,
		Message:   message,
		ErrorCode: code,
	})
}

// Claim handles faucet claims
func (h *Handler) Claim(c *fiber.Ctx) error {
	start := h.now()
	ctx := c.UserContext()

	if h.config.ResponseDelay > 0 {
		time.Sleep(h.config.ResponseDelay)
	}

	// Parse request
	var req models.ClaimRequest
	if err := c.BodyParser(&req); err != nil {
		metrics.ClaimsTotal.WithLabelValues("unknown", metrics.ResultRejected).Inc()
		return reject(c, fiber.StatusBadRequest, CodeBadRequest, "Invalid request body")
	}

	chain, ok := chains.Lookup(req.ChainID)
	label := "unknown"
	if ok {
		label = chain.Name
	}
	defer func() {
		metrics.ClaimLatency.WithLabelValues(label).Observe(h.now().Sub(start).Seconds())
	}()

	// Validate address
	if !common.IsHexAddress(req.Address) || !strings.HasPrefix(req.Address, "0x") {
		metrics.ClaimsTotal.WithLabelValues(label, metrics.ResultRejected).Inc()
		return reject(c, fiber.StatusBadRequest, CodeInvalidAddress,
			fmt.Sprintf("Invalid address: %s", req.Address))
	}

	// Validate chain
	if !ok {
		metrics.ClaimsTotal.WithLabelValues(label, metrics.ResultRejected).Inc()
		return reject(c, fiber.StatusBadRequest, CodeUnsupportedChain,
			fmt.Sprintf("%s is not supported", chains.NameOf(req.ChainID)))
	}

	// Check and start the cooldown in one step so concurrent claims for the
	// same pair cannot both pass
	remaining, err := h.store.Acquire(ctx, req.Address, req.ChainID, h.config.Cooldown())
	if err != nil {
		h.logger.Error("Failed to acquire cooldown", zap.Error(err), zap.String("store", h.store.Name()))
		metrics.CooldownStoreErrors.Inc()
		metrics.ClaimsTotal.WithLabelValues(label, metrics.ResultError).Inc()
		return reject(c, fiber.StatusInternalServerError, CodeInternal, "Failed to check cooldown")
	}
	if remaining > 0 {
		metrics.ClaimsTotal.WithLabelValues(label, metrics.ResultCooldown).Inc()
		return reject(c, fiber.StatusTooManyRequests, CodeCooldownActive,
			fmt.Sprintf("Already claimed on %s. Try again in %.1f hours", chain.Name, remaining.Hours()))
	}

	txHash := h.txHash(req.Address, req.ChainID)
	metrics.ClaimsTotal.WithLabelValues(label, metrics.ResultSent).Inc()

	h.logger.Info("Tokens sent",
		zap.String("request_id", requestID(c)),
		zap.String("tx_hash", txHash),
		zap.String("recipient", req.Address),
		zap.String("chain", chain.Name),
	)

	return c.JSON(models.ClaimResponse{
		Success: true,
		Message: fmt.Sprintf("Tokens sent on %s", chain.Name),
		TxHash:  txHash,
	})
}

// txHash is a fake but well-formed transaction hash
func (h *Handler) txHash(address string, chainID int64) string {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], uint64(chainID))
	binary.BigEndian.PutUint64(buf[8:], uint64(h.now().UnixNano()))
	return crypto.Keccak256Hash(common.HexToAddress(address).Bytes(), buf[:]).Hex()
}

// GetChains returns the supported chains
func (h *Handler) GetChains(c *fiber.Ctx) error {
	return c.JSON(models.ChainsResponse{Chains: chains.Catalog})
}

// GetCooldown reports the remaining cooldown for an address on a chain
func (h *Handler) GetCooldown(c *fiber.Ctx) error {
	address := c.Params("address")
	chainID, err := strconv.ParseInt(c.Params("chainId"), 10, 64)
	if err != nil {
		return reject(c, fiber.StatusBadRequest, CodeUnsupportedChain, "Invalid chain id")
	}

	remaining, err := h.store.Remaining(c.UserContext(), address, chainID)
	if err != nil {
		h.logger.Error("Failed to check cooldown", zap.Error(err))
		metrics.CooldownStoreErrors.Inc()
		return reject(c, fiber.StatusInternalServerError, CodeInternal, "Failed to check cooldown")
	}

	return c.JSON(fiber.Map{
		"address":          address,
		"chainId":          chainID,
		"remainingSeconds": int64(remaining.Seconds()),
	})
}

// Health returns the health status of the API
func (h *Handler) Health(c *fiber.Ctx) error {
	if err := h.store.Ping(c.UserContext()); err != nil {
		h.logger.Warn("Cooldown store unavailable", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.HealthResponse{
			Status:    "degraded",
			Store:     h.store.Name(),
			Timestamp: h.now().Unix(),
		})
	}

	return c.JSON(models.HealthResponse{
		Status:    "ok",
		Store:     h.store.Name(),
		Timestamp: h.now().Unix(),
	})
}
