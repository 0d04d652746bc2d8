package handler

import (
	"context"
	"net/http"

	"github.com/iho/bankmatch/internal/adapter/http/dto"
	"github.com/iho/bankmatch/internal/domain"
)

// ReconcileService runs a full reconciliation of the loaded fixtures.
type ReconcileService interface {
	Run(ctx context.Context) (*domain.ReconciliationReport, error)
}

// ReconcileHandler handles full reconciliation runs.
type ReconcileHandler struct {
	reconcileUC ReconcileService
}

// NewReconcileHandler creates a new ReconcileHandler.
func NewReconcileHandler(reconcileUC ReconcileService) *ReconcileHandler {
	return &ReconcileHandler{reconcileUC: reconcileUC}
}

// Run reconciles the loaded transactions against the loaded attachments
// and returns the full report.
func (h *ReconcileHandler) Run(w http.ResponseWriter, r *http.Request) {
	report, err := h.reconcileUC.Run(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "reconciliation failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReportFromDomain(report))
}
