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

// SoftwareHandler provides HTTP handlers for software listings.
type SoftwareHandler struct {
	softwareService *services.SoftwareService
	sessions        *services.SessionService
}

func NewSoftwareHandler(softwareService *services.SoftwareService, sessions *services.SessionService) *SoftwareHandler {
	return &SoftwareHandler{softwareService: softwareService, sessions: sessions}
}

// SoftwareRouter registers software routes on the given router.
func SoftwareRouter(
	r chi.Router,
	softwareService *services.SoftwareService,
	sessions *services.SessionService,
	authMiddleware func(http.Handler) http.Handler,
) {
	handler := NewSoftwareHandler(softwareService, sessions)

	r.Get("/", handler.ListSoftware)
	r.Get("/categories", handler.Categories)
	r.Get("/features", handler.Features)
	r.With(authMiddleware).Post("/", handler.CreateSoftware)
	r.Route("/{softwareID}", func(r chi.Router) {
		r.Get("/", handler.GetSoftware)
		r.With(authMiddleware).Put("/", handler.UpdateSoftware)
	})
}

// ListSoftware returns listings matching the filter query parameters:
// search, category, min_price, max_price, features (comma-separated).
func (h *SoftwareHandler) ListSoftware(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := types.SoftwareFilter{
		Search:   strings.TrimSpace(query.Get("search")),
		Category: strings.TrimSpace(query.Get("category")),
		MinPrice: query.Get("min_price"),
		MaxPrice: query.Get("max_price"),
		Features: parseTags(query.Get("features")),
	}

	items := h.softwareService.List(filter)
	writeJSON(w, http.StatusOK, SoftwareListResponse{Items: items, Total: len(items)})
}

// Categories returns the software category catalog.
func (h *SoftwareHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, seed.SoftwareCategories)
}

// Features returns the software feature-tag catalog.
func (h *SoftwareHandler) Features(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, seed.SoftwareFeatures)
}

func (h *SoftwareHandler) GetSoftware(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "softwareID")

	sw, err := h.softwareService.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "software not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch software")
		return
	}

	writeJSON(w, http.StatusOK, sw)
}

func (h *SoftwareHandler) CreateSoftware(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var req SoftwareCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	if req.Name == "" || req.Description == "" {
		writeError(w, http.StatusBadRequest, "name and description are required")
		return
	}

	created, err := h.softwareService.Create(r.Context(), types.Software{
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Price:         req.Price,
		Licensing:     req.Licensing,
		Features:      req.Features,
		Compatibility: req.Compatibility,
		Owner:         owner.Summary(),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to offer software")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *SoftwareHandler) UpdateSoftware(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "softwareID")

	var patch types.SoftwarePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	updated, err := h.softwareService.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "software not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update software")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *SoftwareHandler) currentUser(w http.ResponseWriter, r *http.Request) (types.User, bool) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return types.User{}, false
	}

	user, err := h.sessions.GetUser(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return types.User{}, false
		}
		writeError(w, http.StatusInternalServerError, "failed to load user")
		return types.User{}, false
	}
	return user, true
}

// SoftwareCreateRequest is the payload for offering software.
type SoftwareCreateRequest struct {
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	Category      string                `json:"category"`
	Price         float64               `json:"price"`
	Licensing     string                `json:"licensing"`
	Features      []string              `json:"features"`
	Compatibility []types.Compatibility `json:"compatibility"`
}

// SoftwareListResponse is the list response payload.
type SoftwareListResponse struct {
	Items []types.Software `json:"items"`
	Total int              `json:"total"`
}
