package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Malotkya/CapstoneProject/internal/api/respond"
	"github.com/Malotkya/CapstoneProject/internal/decklist"
	"github.com/Malotkya/CapstoneProject/internal/importer"
	"github.com/Malotkya/CapstoneProject/internal/provider/scryfall"
	"github.com/Malotkya/CapstoneProject/internal/store"
)

// writeDeckError maps pipeline and store errors onto API responses.
func (h *Handler) writeDeckError(w http.ResponseWriter, err error) {
	var apiErr *scryfall.APIError
	switch {
	case errors.Is(err, store.ErrNotFound):
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Deck not found")

	case errors.Is(err, decklist.ErrUnknownFormat),
		errors.Is(err, decklist.ErrSetCodeSize),
		errors.Is(err, decklist.ErrMissingName):
		respond.WriteErrorDetail(w, http.StatusUnprocessableEntity, "INVALID_DECKLIST",
			"Deck list could not be read", err.Error())

	case errors.As(err, &apiErr) && len(apiErr.Warnings) > 0:
		respond.WriteErrorDetail(w, http.StatusBadGateway, "ENRICHMENT_FAILED",
			"Error received from Scryfall", strings.Join(apiErr.Warnings, "\n"))

	case errors.Is(err, importer.ErrEnrichment):
		respond.WriteErrorDetail(w, http.StatusBadGateway, "ENRICHMENT_FAILED",
			"Card lookup failed", err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		respond.WriteError(w, http.StatusGatewayTimeout, "TIMEOUT", "Request timed out")

	default:
		h.logger.Error("deck request failed", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
