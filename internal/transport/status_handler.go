// Package transport exposes the staker's status over HTTP and gRPC.
package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
	"github.com/goodnatureofminers/yody-staker/internal/staker/service"
)

const (
	defaultMintedLimit = 20
	maxMintedLimit     = 500
)

type (
	StatusProvider interface {
		Status() service.Status
	}
	MintedLister interface {
		RecentMinted(ctx context.Context, network model.Network, limit int) ([]model.MintedBlock, error)
	}
)

// StatusHandler serves the staking status as JSON.
type StatusHandler struct {
	provider StatusProvider
	logger   *zap.Logger
}

func NewStatusHandler(logger *zap.Logger, provider StatusProvider) *StatusHandler {
	return &StatusHandler{provider: provider, logger: logger.Named("status")}
}

func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, h.logger, h.provider.Status())
}

// MintedHandler lists the latest journaled blocks. The limit query parameter caps the result.
type MintedHandler struct {
	lister  MintedLister
	network model.Network
	logger  *zap.Logger
}

func NewMintedHandler(logger *zap.Logger, lister MintedLister, network model.Network) *MintedHandler {
	return &MintedHandler{lister: lister, network: network, logger: logger.Named("minted")}
}

func (h *MintedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	limit := defaultMintedLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 || v > maxMintedLimit {
			http.Error(w, "limit must be between 1 and "+strconv.Itoa(maxMintedLimit), http.StatusBadRequest)
			return
		}
		limit = v
	}
	blocks, err := h.lister.RecentMinted(r.Context(), h.network, limit)
	if err != nil {
		h.logger.Warn("list minted blocks", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if blocks == nil {
		blocks = []model.MintedBlock{}
	}
	writeJSON(w, h.logger, blocks)
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("write response", zap.Error(err))
	}
}

// NewHTTPHandler routes the status endpoint and metrics behind permissive CORS. minted is
// optional and only mounted when the journal is configured.
func NewHTTPHandler(status, minted http.Handler) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/status", status)
	if minted != nil {
		mux.Handle("/minted", minted)
	}
	mux.Handle("/metrics", promhttp.Handler())
	return cors.Default().Handler(mux)
}
