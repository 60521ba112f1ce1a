package handler

import (
	"net/http"

	"github.com/Malotkya/CapstoneProject/internal/api/respond"
	"github.com/Malotkya/CapstoneProject/internal/card"
	"github.com/Malotkya/CapstoneProject/internal/decklist"
)

// ParseRequest is the body of a parse preview.
type ParseRequest struct {
	DeckList string `json:"deckList"`
}

// ParseResponse lists the cards read from a deck list.
type ParseResponse struct {
	Format decklist.Format `json:"format"`
	Cards  []card.Card     `json:"cards"`
	Count  int             `json:"count"`
}

// ParseDeckList previews how a deck list will be read.
// @Summary Parse deck list
// @Description Detects the format (bulk JSON, CSV or text) and returns the cards without saving anything.
// @Tags decklist
// @Accept json
// @Produce json
// @Param body body ParseRequest true "Deck list"
// @Success 200 {object} ParseResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 422 {object} respond.ErrorResponse
// @Router /decklist/parse [post]
func (h *Handler) ParseDeckList(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	cards, format, err := decklist.ParseFormat(req.DeckList)
	if err != nil {
		h.writeDeckError(w, err)
		return
	}
	if cards == nil {
		cards = []card.Card{}
	}
	respond.WriteJSONObject(w, http.StatusOK, ParseResponse{
		Format: format,
		Cards:  cards,
		Count:  decklist.CountCards(cards),
	})
}
