package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/bankmatch/internal/adapter/http/dto"
	"github.com/iho/bankmatch/internal/domain"
)

// MatchService finds the counterpart for a single transaction or attachment.
type MatchService interface {
	MatchTransaction(ctx context.Context, tx domain.Transaction) (*domain.Attachment, error)
	MatchAttachment(ctx context.Context, att domain.Attachment) (*domain.Transaction, error)
}

// MatchHandler handles single-entity match queries.
type MatchHandler struct {
	matchUC MatchService
}

// NewMatchHandler creates a new MatchHandler.
func NewMatchHandler(matchUC MatchService) *MatchHandler {
	return &MatchHandler{matchUC: matchUC}
}

// MatchTransaction finds the attachment for a posted bank transaction.
// A confident no-match is a 200 with a null match, not an error.
func (h *MatchHandler) MatchTransaction(w http.ResponseWriter, r *http.Request) {
	var req dto.MatchTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tx, err := req.ToDomain()
	if err != nil {
		writeError(w, mapDomainError(err), "invalid transaction", err.Error())
		return
	}

	att, err := h.matchUC.MatchTransaction(r.Context(), tx)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to match transaction", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MatchAttachmentResponse{
		Match: dto.AttachmentFromDomain(att),
	})
}

// MatchAttachment finds the bank transaction for a posted attachment.
func (h *MatchHandler) MatchAttachment(w http.ResponseWriter, r *http.Request) {
	var req dto.MatchAttachmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	att, err := req.ToDomain()
	if err != nil {
		writeError(w, mapDomainError(err), "invalid attachment", err.Error())
		return
	}

	tx, err := h.matchUC.MatchAttachment(r.Context(), att)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to match attachment", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MatchTransactionResponse{
		Match: dto.TransactionFromDomain(tx),
	})
}
