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

// JobHandler provides HTTP handlers for job postings.
type JobHandler struct {
	jobService *services.JobService
	sessions   *services.SessionService
}

// NewJobHandler constructs a handler with the provided services.
func NewJobHandler(jobService *services.JobService, sessions *services.SessionService) *JobHandler {
	return &JobHandler{jobService: jobService, sessions: sessions}
}

// JobRouter registers job routes on the given router.
func JobRouter(
	r chi.Router,
	jobService *services.JobService,
	sessions *services.SessionService,
	authMiddleware func(http.Handler) http.Handler,
) {
	handler := NewJobHandler(jobService, sessions)

	r.Get("/", handler.ListJobs)
	r.Get("/categories", handler.Categories)
	r.Get("/skills", handler.Skills)
	r.With(authMiddleware).Post("/", handler.CreateJob)
	r.Route("/{jobID}", func(r chi.Router) {
		r.Get("/", handler.GetJob)
		r.With(authMiddleware).Put("/", handler.UpdateJob)
		r.With(authMiddleware).Delete("/", handler.DeleteJob)
		r.With(authMiddleware).Post("/proposals", handler.SubmitProposal)
	})
}

// ListJobs returns jobs matching the filter query parameters: search,
// category, min_budget, max_budget, skills (comma-separated).
func (h *JobHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := types.JobFilter{
		Search:    strings.TrimSpace(query.Get("search")),
		Category:  strings.TrimSpace(query.Get("category")),
		MinBudget: query.Get("min_budget"),
		MaxBudget: query.Get("max_budget"),
		Skills:    parseTags(query.Get("skills")),
	}

	items := h.jobService.List(filter)
	writeJSON(w, http.StatusOK, JobListResponse{Items: items, Total: len(items)})
}

// Categories returns the job category catalog.
func (h *JobHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, seed.JobCategories)
}

// Skills returns the job skill-tag catalog.
func (h *JobHandler) Skills(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, seed.JobSkills)
}

func (h *JobHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "jobID")

	job, err := h.jobService.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "job not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch job")
		return
	}

	writeJSON(w, http.StatusOK, job)
}

func (h *JobHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	poster, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var req JobCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if req.Title == "" || req.Description == "" {
		writeError(w, http.StatusBadRequest, "title and description are required")
		return
	}

	created, err := h.jobService.Create(r.Context(), types.Job{
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		Duration:    req.Duration,
		Category:    req.Category,
		Skills:      req.Skills,
		Location:    req.Location,
		PostedBy:    poster.Summary(),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to post job")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *JobHandler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "jobID")

	var patch types.JobPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	updated, err := h.jobService.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "job not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update job")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *JobHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "jobID")

	if err := h.jobService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "job not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete job")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SubmitProposal submits a bid on a job for the authenticated user.
func (h *JobHandler) SubmitProposal(w http.ResponseWriter, r *http.Request) {
	freelancer, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "jobID")

	var req ProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	proposal, err := h.jobService.SubmitProposal(r.Context(), id, types.Proposal{
		FreelancerID:   freelancer.ID,
		FreelancerName: freelancer.Name,
		Bid:            req.Bid,
		CoverLetter:    req.CoverLetter,
		DeliveryTime:   req.DeliveryTime,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "job not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to submit proposal")
		return
	}

	writeJSON(w, http.StatusCreated, proposal)
}

func (h *JobHandler) currentUser(w http.ResponseWriter, r *http.Request) (types.User, bool) {
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

// JobCreateRequest is the payload for posting a job.
type JobCreateRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Budget      float64  `json:"budget"`
	Duration    string   `json:"duration"`
	Category    string   `json:"category"`
	Skills      []string `json:"skills"`
	Location    string   `json:"location"`
}

// ProposalRequest is the payload for bidding on a job.
type ProposalRequest struct {
	Bid          float64 `json:"bid"`
	CoverLetter  string  `json:"coverLetter"`
	DeliveryTime string  `json:"deliveryTime"`
}

// JobListResponse is the list response payload.
type JobListResponse struct {
	Items []types.Job `json:"items"`
	Total int         `json:"total"`
}
