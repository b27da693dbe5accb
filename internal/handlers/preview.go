package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"gameinfo/internal/card"
	"gameinfo/internal/viewmodel"
	"gameinfo/views/components"
)

const maxPreviewBody = 64 << 10

// PreviewHandler renders a single card from a JSON description, for tools
// that want the markup without writing a deck file.
type PreviewHandler struct {
	logger *log.Logger
}

func NewPreviewHandler(logger *log.Logger) *PreviewHandler {
	return &PreviewHandler{logger: logger}
}

func (h *PreviewHandler) RegisterRoutes(r chi.Router) {
	r.Post("/render", h.renderCard)
}

type previewRequest struct {
	Image        string                 `json:"image"`
	Title        string                 `json:"title"`
	Developer    card.Developer         `json:"developer"`
	Rating       float64                `json:"rating"`
	Status       string                 `json:"status"`
	Description  string                 `json:"description"`
	Players      *int                   `json:"players"`
	Community    *int                   `json:"community"`
	Categories   []string               `json:"categories"`
	Platforms    []string               `json:"platforms"`
	ShowFeedback bool                   `json:"showFeedback"`
	Actions      []viewmodel.ActionLink `json:"actions"`
}

func (h *PreviewHandler) renderCard(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPreviewBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "body too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
		return
	}
	status, err := card.ParseStatus(req.Status)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}

	info := card.GameInfo{
		Image:        req.Image,
		Title:        req.Title,
		Developer:    req.Developer,
		Rating:       req.Rating,
		Status:       status,
		Description:  req.Description,
		Players:      req.Players,
		Community:    req.Community,
		Categories:   req.Categories,
		Platforms:    req.Platforms,
		ShowFeedback: req.ShowFeedback,
	}
	if len(req.Actions) > 0 {
		info.AdditionalActions = components.ActionLinks(req.Actions)
	}
	h.logger.Debug("render preview", "title", req.Title, "status", status)
	render(w, r, h.logger, components.GameInfoCard(info))
}
