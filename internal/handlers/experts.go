package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/simhub/apiserver/internal/seed"
	"github.com/simhub/apiserver/internal/services"
	"github.com/simhub/apiserver/internal/store"
	"github.com/simhub/apiserver/types"
)

// ExpertHandler provides HTTP handlers for expert profiles.
type ExpertHandler struct {
	expertService *services.ExpertService
}

func NewExpertHandler(expertService *services.ExpertService) *ExpertHandler {
	return &ExpertHandler{expertService: expertService}
}

// ExpertRouter registers expert routes on the given router.
func ExpertRouter(
	r chi.Router,
	expertService *services.ExpertService,
	authMiddleware func(http.Handler) http.Handler,
) {
	handler := NewExpertHandler(expertService)

	r.Get("/", handler.ListExperts)
	r.Get("/skills", handler.Skills)
	r.With(authMiddleware).Post("/", handler.CreateExpert)
	r.Route("/{expertID}", func(r chi.Router) {
		r.Get("/", handler.GetExpert)
		r.With(authMiddleware).Put("/", handler.UpdateExpert)
	})
}

// ListExperts returns profiles matching the filter query parameters:
// search, min_rate, max_rate, min_rating, skills (comma-separated).
func (h *ExpertHandler) ListExperts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := types.ExpertFilter{
		Search:    strings.TrimSpace(query.Get("search")),
		MinRate:   query.Get("min_rate"),
		MaxRate:   query.Get("max_rate"),
		MinRating: query.Get("min_rating"),
		Skills:    parseTags(query.Get("skills")),
	}

	items := h.expertService.List(filter)
	writeJSON(w, http.StatusOK, ExpertListResponse{Items: items, Total: len(items)})
}

// Skills returns the expert skill-tag catalog.
func (h *ExpertHandler) Skills(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, seed.ExpertSkills)
}

func (h *ExpertHandler) GetExpert(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "expertID")

	expert, err := h.expertService.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "expert not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch expert")
		return
	}

	writeJSON(w, http.StatusOK, expert)
}

func (h *ExpertHandler) CreateExpert(w http.ResponseWriter, r *http.Request) {
	var req ExpertCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Title = strings.TrimSpace(req.Title)
	if req.Name == "" || req.Title == "" {
		writeError(w, http.StatusBadRequest, "name and title are required")
		return
	}

	created, err := h.expertService.Create(r.Context(), types.Expert{
		Name:        req.Name,
		Title:       req.Title,
		Avatar:      req.Avatar,
		HourlyRate:  req.HourlyRate,
		Skills:      req.Skills,
		Description: req.Description,
		Location:    req.Location,
		Languages:   req.Languages,
		Education:   req.Education,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create profile")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *ExpertHandler) UpdateExpert(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "expertID")

	var patch types.ExpertPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	updated, err := h.expertService.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "expert not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update profile")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// ExpertCreateRequest is the payload for creating an expert profile.
type ExpertCreateRequest struct {
	Name        string            `json:"name"`
	Title       string            `json:"title"`
	Avatar      string            `json:"avatar"`
	HourlyRate  float64           `json:"hourlyRate"`
	Skills      []string          `json:"skills"`
	Description string            `json:"description"`
	Location    string            `json:"location"`
	Languages   []string          `json:"languages"`
	Education   []types.Education `json:"education"`
}

// ExpertListResponse is the list response payload.
type ExpertListResponse struct {
	Items []types.Expert `json:"items"`
	Total int            `json:"total"`
}
