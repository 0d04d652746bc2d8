package handler

import (
	"net/http"

	"github.com/iho/bankmatch/internal/usecase"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	txRepo  usecase.TransactionRepository
	attRepo usecase.AttachmentRepository
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(txRepo usecase.TransactionRepository, attRepo usecase.AttachmentRepository) *HealthHandler {
	return &HealthHandler{
		txRepo:  txRepo,
		attRepo: attRepo,
	}
}

// Liveness returns 200 if the service is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 if the fixture stores are loaded.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	txs, err := h.txRepo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "transaction store unhealthy", err.Error())
		return
	}

	atts, err := h.attRepo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "attachment store unhealthy", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":       "ready",
		"transactions": len(txs),
		"attachments":  len(atts),
	})
}
