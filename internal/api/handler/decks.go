package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Malotkya/CapstoneProject/internal/api/respond"
	"github.com/Malotkya/CapstoneProject/internal/cache"
	"github.com/Malotkya/CapstoneProject/internal/deckcache"
	"github.com/Malotkya/CapstoneProject/internal/decklist"
	"github.com/Malotkya/CapstoneProject/internal/importer"
	"github.com/Malotkya/CapstoneProject/internal/store"
)

// DeckRequest is the body of deck create and update calls. Nil fields are
// left unchanged on update.
type DeckRequest struct {
	Title    *string `json:"title"`
	DeckList *string `json:"deckList"`
	Image    *string `json:"image"`
}

// DeckResponse is a saved deck with its cache decoded and sorted.
type DeckResponse struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	DeckList  string           `json:"deckList"`
	Cache     *deckcache.Cache `json:"cache"`
	Image     string           `json:"image"`
	Colors    string           `json:"colors"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// WriteResponse is returned by calls that run the import pipeline.
type WriteResponse struct {
	Deck   DeckResponse    `json:"deck"`
	Result importer.Result `json:"result"`
}

// CategoryCount is the number of copies filed under one category.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DeckListResponse is the plain list used for purchase and download links.
type DeckListResponse struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Lines      []string        `json:"lines"`
	Categories []CategoryCount `json:"categories"`
	Total      int             `json:"total"`
}

// CreateDeck saves a new deck.
// @Summary Create deck
// @Description Parses and reconciles the deck list, then (unless enrich=false) looks up missing cards on Scryfall and rewrites the list. Nothing is saved if any step fails.
// @Tags decks
// @Accept json
// @Produce json
// @Param body body DeckRequest true "Deck"
// @Param enrich query bool false "Run Scryfall enrichment" default(true)
// @Success 201 {object} WriteResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 422 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /decks [post]
func (h *Handler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	var req DeckRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_TITLE", "title is required")
		return
	}

	item := store.NewItem(strings.TrimSpace(*req.Title), "")
	if req.DeckList != nil {
		item.DeckList = *req.DeckList
	}
	if req.Image != nil {
		item.Image = *req.Image
	}

	result, err := h.pipeline.Insert(item)
	if err != nil {
		h.writeDeckError(w, err)
		return
	}
	if r.URL.Query().Get("enrich") != "false" {
		if result, err = h.pipeline.Update(r.Context(), item); err != nil {
			h.writeDeckError(w, err)
			return
		}
	}

	if err := h.store.Create(r.Context(), item); err != nil {
		h.writeDeckError(w, err)
		return
	}
	h.logger.Info("deck created", "id", item.ID, "result", result.Summary())
	respond.WriteJSONObject(w, http.StatusCreated, WriteResponse{Deck: h.deckResponse(item), Result: result})
}

// ListDecks returns every saved deck.
// @Summary List decks
// @Description Returns id, title, image and colors of every deck, most recently updated first.
// @Tags decks
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /decks [get]
func (h *Handler) ListDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := h.store.List(r.Context())
	if err != nil {
		h.writeDeckError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"decks": decks,
		"count": len(decks),
	})
}

// GetDeck returns one deck with its cache.
// @Summary Get deck
// @Description Returns the deck with its sorted cache. Supports ETag revalidation.
// @Tags decks
// @Produce json
// @Param id path string true "Deck ID"
// @Success 200 {object} DeckResponse
// @Success 304 "Not Modified"
// @Failure 404 {object} respond.ErrorResponse
// @Router /decks/{id} [get]
func (h *Handler) GetDeck(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	cacheKey := cache.DeckKey(id)

	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, true)
		return
	}

	item, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.writeDeckError(w, err)
		return
	}
	data, err := json.Marshal(h.deckResponse(item))
	if err != nil {
		h.writeDeckError(w, err)
		return
	}

	etag := h.cache.Set(cacheKey, data, cache.TTLDeck)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, false)
}

// UpdateDeck saves changes to a deck and runs the full import pipeline.
// @Summary Update deck
// @Description Reconciles the deck list against the stored cache, enriches missing cards and rewrites the list in canonical order.
// @Tags decks
// @Accept json
// @Produce json
// @Param id path string true "Deck ID"
// @Param body body DeckRequest true "Changed fields"
// @Success 200 {object} WriteResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 422 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /decks/{id} [put]
func (h *Handler) UpdateDeck(w http.ResponseWriter, r *http.Request) {
	var req DeckRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	item, err := h.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeDeckError(w, err)
		return
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		item.Title = strings.TrimSpace(*req.Title)
	}
	if req.DeckList != nil {
		item.DeckList = *req.DeckList
	}
	if req.Image != nil {
		item.Image = *req.Image
	}

	result, err := h.pipeline.Update(r.Context(), item)
	if err != nil {
		h.writeDeckError(w, err)
		return
	}
	h.save(w, r, item, result)
}

// RefreshDeck re-enriches the stored cache without reading the deck list.
// @Summary Refresh deck
// @Description Looks up every cached card still missing Scryfall data and rewrites the deck list.
// @Tags decks
// @Produce json
// @Param id path string true "Deck ID"
// @Success 200 {object} WriteResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /decks/{id}/refresh [post]
func (h *Handler) RefreshDeck(w http.ResponseWriter, r *http.Request) {
	item, err := h.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeDeckError(w, err)
		return
	}

	result, err := h.pipeline.Refresh(r.Context(), item)
	if err != nil {
		h.writeDeckError(w, err)
		return
	}
	h.save(w, r, item, result)
}

// GetDeckList returns the display list of a deck.
// @Summary Get deck display list
// @Description Returns "count name" lines for purchase and download, commanders first, plus per-category copy counts.
// @Tags decks
// @Produce json
// @Param id path string true "Deck ID"
// @Success 200 {object} DeckListResponse
// @Success 304 "Not Modified"
// @Failure 404 {object} respond.ErrorResponse
// @Router /decks/{id}/list [get]
func (h *Handler) GetDeckList(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	cacheKey := cache.DeckListKey(id)

	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, true)
		return
	}

	item, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.writeDeckError(w, err)
		return
	}

	cls := h.pipeline.Classifier()
	c := h.pipeline.Cache(item)
	resp := DeckListResponse{
		ID:         item.ID,
		Title:      item.Title,
		Lines:      decklist.DisplayList(c, cls),
		Categories: []CategoryCount{},
	}
	if n := decklist.CountCards(c.Commanders); n > 0 {
		resp.Categories = append(resp.Categories, CategoryCount{Name: "Commander", Count: n})
		resp.Total += n
	}
	for _, cat := range c.Categories(cls) {
		if n := decklist.CountCards(c.MainDeck[cat]); n > 0 {
			resp.Categories = append(resp.Categories, CategoryCount{Name: cat, Count: n})
			resp.Total += n
		}
	}

	data, err := json.Marshal(resp)
	if err != nil {
		h.writeDeckError(w, err)
		return
	}
	etag := h.cache.Set(cacheKey, data, cache.TTLDeckList)
	respond.WriteJSON(w, data, etag, false)
}

// DeleteDeck removes a deck.
// @Summary Delete deck
// @Tags decks
// @Param id path string true "Deck ID"
// @Success 204 "No Content"
// @Failure 404 {object} respond.ErrorResponse
// @Router /decks/{id} [delete]
func (h *Handler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.Delete(r.Context(), id); err != nil {
		h.writeDeckError(w, err)
		return
	}
	h.invalidate(id)
	h.logger.Info("deck deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

// save persists an item the pipeline has already processed.
func (h *Handler) save(w http.ResponseWriter, r *http.Request, item *store.Item, result importer.Result) {
	if err := h.store.Update(r.Context(), item); err != nil {
		h.writeDeckError(w, err)
		return
	}
	h.invalidate(item.ID)
	h.logger.Info("deck saved", "id", item.ID, "result", result.Summary())
	respond.WriteJSONObject(w, http.StatusOK, WriteResponse{Deck: h.deckResponse(item), Result: result})
}

func (h *Handler) invalidate(id string) {
	h.cache.Delete(cache.DeckKey(id), cache.DeckListKey(id))
}

func (h *Handler) deckResponse(item *store.Item) DeckResponse {
	return DeckResponse{
		ID:        item.ID,
		Title:     item.Title,
		DeckList:  item.DeckList,
		Cache:     h.pipeline.Cache(item),
		Image:     item.Image,
		Colors:    item.Colors,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// decodeBody reads a JSON request body into v. It writes the error response
// and returns false when the body is unusable.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			respond.WriteError(w, http.StatusRequestEntityTooLarge, "BODY_TOO_LARGE", "Request body is too large")
		case errors.Is(err, io.EOF):
			respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "Request body is empty")
		default:
			respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_BODY", "Request body is not valid JSON", err.Error())
		}
		return false
	}
	return true
}
