package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dict-bridge/internal/claims/models"
	"dict-bridge/internal/claims/service"
	dErrors "dict-bridge/pkg/domain-errors"
)

// Ops exposes operational endpoints: a manual sweep trigger for operators and
// schedulers that drive the expiry cadence externally.
type Ops struct {
	sweeper *service.Sweeper
	logger  *slog.Logger
}

// NewOps creates the operational HTTP handler.
func NewOps(sweeper *service.Sweeper, logger *slog.Logger) *Ops {
	return &Ops{sweeper: sweeper, logger: logger}
}

// Register mounts the ops routes.
func (o *Ops) Register(r chi.Router) {
	r.Post("/ops/claims/sweep", o.handleSweep)
}

type sweepRequest struct {
	Reason models.ClaimReason `json:"reason"`
}

type sweepResponse struct {
	Expired []sweptKey `json:"expired"`
}

type sweptKey struct {
	ID    string          `json:"id"`
	Key   string          `json:"key"`
	State models.KeyState `json:"state"`
}

func (o *Ops) handleSweep(w http.ResponseWriter, r *http.Request) {
	var req sweepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Reason == "" {
		req.Reason = models.ReasonDefaultOperation
	}

	keys, err := o.sweeper.SweepExpired(r.Context(), req.Reason)
	if err != nil {
		o.logger.Error("manual sweep failed", "reason", req.Reason, "error", err)
		if dErrors.HasCode(err, dErrors.CodeInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "sweep failed", http.StatusInternalServerError)
		return
	}

	resp := sweepResponse{Expired: make([]sweptKey, 0, len(keys))}
	for _, key := range keys {
		resp.Expired = append(resp.Expired, sweptKey{
			ID:    key.ID.String(),
			Key:   key.Value,
			State: key.State,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		o.logger.Error("encode sweep response", "error", err)
	}
}
