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

// HardwareHandler provides HTTP handlers for hardware listings.
type HardwareHandler struct {
	hardwareService *services.HardwareService
	sessions        *services.SessionService
}

func NewHardwareHandler(hardwareService *services.HardwareService, sessions *services.SessionService) *HardwareHandler {
	return &HardwareHandler{hardwareService: hardwareService, sessions: sessions}
}

// HardwareRouter registers hardware routes on the given router.
func HardwareRouter(
	r chi.Router,
	hardwareService *services.HardwareService,
	sessions *services.SessionService,
	authMiddleware func(http.Handler) http.Handler,
) {
	handler := NewHardwareHandler(hardwareService, sessions)

	r.Get("/", handler.ListHardware)
	r.Get("/categories", handler.Categories)
	r.Get("/features", handler.Features)
	r.With(authMiddleware).Post("/", handler.CreateHardware)
	r.Route("/{hardwareID}", func(r chi.Router) {
		r.Get("/", handler.GetHardware)
		r.With(authMiddleware).Put("/", handler.UpdateHardware)
	})
}

// ListHardware returns listings matching the filter query parameters:
// search, category, min_price, max_price, features (comma-separated).
func (h *HardwareHandler) ListHardware(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := types.HardwareFilter{
		Search:   strings.TrimSpace(query.Get("search")),
		Category: strings.TrimSpace(query.Get("category")),
		MinPrice: query.Get("min_price"),
		MaxPrice: query.Get("max_price"),
		Features: parseTags(query.Get("features")),
	}

	items := h.hardwareService.List(filter)
	writeJSON(w, http.StatusOK, HardwareListResponse{Items: items, Total: len(items)})
}

// Categories returns the hardware category catalog.
func (h *HardwareHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, seed.HardwareCategories)
}

// Features returns the hardware feature-tag catalog.
func (h *HardwareHandler) Features(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, seed.HardwareFeatures)
}

func (h *HardwareHandler) GetHardware(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "hardwareID")

	hw, err := h.hardwareService.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "hardware not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch hardware")
		return
	}

	writeJSON(w, http.StatusOK, hw)
}

func (h *HardwareHandler) CreateHardware(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var req HardwareCreateRequest
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

	created, err := h.hardwareService.Create(r.Context(), types.Hardware{
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		Price:          req.Price,
		RentalTerms:    req.RentalTerms,
		Condition:      req.Condition,
		Location:       req.Location,
		Features:       req.Features,
		Specifications: req.Specifications,
		Availability:   req.Availability,
		Owner:          owner.Summary(),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to offer hardware")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *HardwareHandler) UpdateHardware(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "hardwareID")

	var patch types.HardwarePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	updated, err := h.hardwareService.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "hardware not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update hardware")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *HardwareHandler) currentUser(w http.ResponseWriter, r *http.Request) (types.User, bool) {
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

// HardwareCreateRequest is the payload for offering hardware.
type HardwareCreateRequest struct {
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	Category       string                `json:"category"`
	Price          float64               `json:"price"`
	RentalTerms    string                `json:"rentalTerms"`
	Condition      string                `json:"condition"`
	Location       string                `json:"location"`
	Features       []string              `json:"features"`
	Specifications []types.Specification `json:"specifications"`
	Availability   string                `json:"availability"`
}

// HardwareListResponse is the list response payload.
type HardwareListResponse struct {
	Items []types.Hardware `json:"items"`
	Total int              `json:"total"`
}
