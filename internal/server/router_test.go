package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/simhub/apiserver/internal/handlers"
	"github.com/simhub/apiserver/internal/kvstore"
	"github.com/simhub/apiserver/types"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "router-test-secret"

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	kv := kvstore.New(kvstore.NewMemoryBackend())
	svcs, err := buildServices(context.Background(), kv)
	require.NoError(t, err)
	return NewRouter(svcs, testJWTSecret)
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func registerUser(t *testing.T, router http.Handler, email, name string) handlers.AuthResponse {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    email,
		"name":     name,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeBody[handlers.AuthResponse](t, rec)
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterLoginFlow(t *testing.T) {
	router := newTestRouter(t)

	auth := registerUser(t, router, "ada@example.com", "Ada")
	require.NotEmpty(t, auth.Token)
	require.Equal(t, "ada@example.com", auth.User.Email)
	require.Equal(t, "Ada", auth.User.Name)
	require.NotEmpty(t, auth.User.ID)
	require.Empty(t, auth.User.PasswordHash)

	// duplicate registration is rejected
	rec := doJSON(t, router, http.MethodPost, "/auth/register", "", map[string]string{
		"email": "ada@example.com", "name": "Impostor", "password": "other",
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	// correct credentials log in
	rec = doJSON(t, router, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "ada@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	login := decodeBody[handlers.AuthResponse](t, rec)
	require.Equal(t, auth.User.ID, login.User.ID)

	// wrong password does not
	rec = doJSON(t, router, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "ada@example.com", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe(t *testing.T) {
	router := newTestRouter(t)
	auth := registerUser(t, router, "ada@example.com", "Ada")

	rec := doJSON(t, router, http.MethodGet, "/auth/me", auth.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decodeBody[types.User](t, rec)
	require.Equal(t, auth.User.ID, me.ID)
	require.Empty(t, me.PasswordHash)

	rec = doJSON(t, router, http.MethodGet, "/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/auth/me", "not-a-token", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout(t *testing.T) {
	router := newTestRouter(t)
	registerUser(t, router, "ada@example.com", "Ada")

	rec := doJSON(t, router, http.MethodPost, "/auth/logout", "", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// idempotent
	rec = doJSON(t, router, http.MethodPost, "/auth/logout", "", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestListJobsWithSeedData(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/jobs", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[handlers.JobListResponse](t, rec)
	require.Equal(t, 3, list.Total)
	require.Len(t, list.Items, 3)
}

func TestListJobsFiltered(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/jobs?min_budget=4000&max_budget=5000", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[handlers.JobListResponse](t, rec)
	require.Equal(t, 1, list.Total)
	require.Equal(t, "simjob3", list.Items[0].ID)

	rec = doJSON(t, router, http.MethodGet, "/jobs?search=crane&category=VR%2FAR+Development", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list = decodeBody[handlers.JobListResponse](t, rec)
	require.Equal(t, 1, list.Total)
	require.Equal(t, "simjob1", list.Items[0].ID)

	rec = doJSON(t, router, http.MethodGet, "/jobs?skills=Unity,C%23", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list = decodeBody[handlers.JobListResponse](t, rec)
	require.Equal(t, 1, list.Total)
	require.Equal(t, "simjob1", list.Items[0].ID)
}

func TestJobCategoriesCatalog(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/jobs/categories", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	categories := decodeBody[[]string](t, rec)
	require.Contains(t, categories, "VR/AR Development")

	rec = doJSON(t, router, http.MethodGet, "/jobs/skills", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	skills := decodeBody[[]string](t, rec)
	require.Contains(t, skills, "Unity")
}

func TestCreateJobRequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/jobs", "", map[string]any{
		"title": "x", "description": "y",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateJobSetsPosterSnapshot(t *testing.T) {
	router := newTestRouter(t)
	auth := registerUser(t, router, "client@example.com", "Client Co")

	rec := doJSON(t, router, http.MethodPost, "/jobs", auth.Token, map[string]any{
		"title":       "Forklift VR Trainer",
		"description": "Build a warehouse forklift training scene.",
		"budget":      8000,
		"category":    "VR/AR Development",
		"skills":      []string{"Unity"},
		"location":    "Remote",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[types.Job](t, rec)
	require.NotEmpty(t, created.ID)
	require.Equal(t, auth.User.ID, created.PostedBy.ID)
	require.Equal(t, "Client Co", created.PostedBy.Name)
	require.Equal(t, "open", created.Status)
	require.Zero(t, created.Proposals)

	rec = doJSON(t, router, http.MethodGet, "/jobs/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSubmitProposalFlow(t *testing.T) {
	router := newTestRouter(t)
	auth := registerUser(t, router, "freelancer@example.com", "Freelancer")

	rec := doJSON(t, router, http.MethodPost, "/jobs/simjob1/proposals", auth.Token, map[string]any{
		"bid":          14000,
		"coverLetter":  "I can deliver this.",
		"deliveryTime": "10 weeks",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	proposal := decodeBody[types.Proposal](t, rec)
	require.Equal(t, auth.User.ID, proposal.FreelancerID)
	require.Equal(t, "Freelancer", proposal.FreelancerName)
	require.Equal(t, "pending", proposal.Status)

	rec = doJSON(t, router, http.MethodGet, "/jobs/simjob1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	job := decodeBody[types.Job](t, rec)
	require.Equal(t, 1, job.Proposals)
	require.Len(t, job.ProposalsData, 1)

	rec = doJSON(t, router, http.MethodPost, "/jobs/nope/proposals", auth.Token, map[string]any{"bid": 1})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateAndDeleteJob(t *testing.T) {
	router := newTestRouter(t)
	auth := registerUser(t, router, "client@example.com", "Client Co")

	rec := doJSON(t, router, http.MethodPut, "/jobs/simjob2", auth.Token, map[string]any{
		"title": "Updated Rig Setup",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[types.Job](t, rec)
	require.Equal(t, "Updated Rig Setup", updated.Title)
	require.Equal(t, 3000.0, updated.Budget)

	rec = doJSON(t, router, http.MethodDelete, "/jobs/simjob2", auth.Token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/jobs/simjob2", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/jobs/simjob2", auth.Token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExpertEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/experts?min_rate=100&max_rate=115", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[handlers.ExpertListResponse](t, rec)
	require.Equal(t, 1, list.Total)
	require.Equal(t, "expert3", list.Items[0].ID)

	rec = doJSON(t, router, http.MethodGet, "/experts/expert1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/experts/nope", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSoftwareEndpoints(t *testing.T) {
	router := newTestRouter(t)
	auth := registerUser(t, router, "vendor@example.com", "Vendor")

	rec := doJSON(t, router, http.MethodGet, "/software?category=Medical+Simulation", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[handlers.SoftwareListResponse](t, rec)
	require.Equal(t, 1, list.Total)
	require.Equal(t, "sw2", list.Items[0].ID)

	rec = doJSON(t, router, http.MethodPost, "/software", auth.Token, map[string]any{
		"name":        "FlowSim",
		"description": "Fluid dynamics playground.",
		"category":    "Physics Engines",
		"price":       199,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[types.Software](t, rec)
	require.Equal(t, auth.User.ID, created.Owner.ID)
	require.Zero(t, created.Rating)
}

func TestHardwareEndpoints(t *testing.T) {
	router := newTestRouter(t)
	auth := registerUser(t, router, "vendor@example.com", "Vendor")

	rec := doJSON(t, router, http.MethodGet, "/hardware?max_price=1000", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[handlers.HardwareListResponse](t, rec)
	require.Equal(t, 1, list.Total)
	require.Equal(t, "hw2", list.Items[0].ID)

	rec = doJSON(t, router, http.MethodPost, "/hardware", auth.Token, map[string]any{
		"name":        "Pedal Set",
		"description": "Load cell brake pedal set.",
		"category":    "Driving Simulator Cockpits",
		"price":       350,
		"condition":   "New",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[types.Hardware](t, rec)
	require.Equal(t, auth.User.ID, created.Owner.ID)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/hardware/%s", created.ID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}
