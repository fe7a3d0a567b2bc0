package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"towline/database/repository/outcome"
	"towline/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClientRepo struct {
	clients   map[string]*models.Client
	createErr error
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[string]*models.Client)}
}

func (f *fakeClientRepo) GetByID(_ context.Context, id string) (*models.Client, outcome.Outcome, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, outcome.NotFoundNone, nil
	}
	return c, outcome.OkNone, nil
}

func (f *fakeClientRepo) GetAll(context.Context) ([]models.Client, outcome.Outcome, error) {
	all := make([]models.Client, 0, len(f.clients))
	for _, c := range f.clients {
		all = append(all, *c)
	}
	return all, outcome.OkNone, nil
}

func (f *fakeClientRepo) Create(_ context.Context, c *models.Client) (*models.Client, outcome.Outcome, error) {
	if f.createErr != nil {
		return nil, outcome.OkNone, f.createErr
	}
	copied := *c
	f.clients[c.ID] = &copied
	return &copied, outcome.OkCreated, nil
}

func (f *fakeClientRepo) Update(_ context.Context, c *models.Client) (*models.Client, outcome.Outcome, error) {
	if _, ok := f.clients[c.ID]; !ok {
		return nil, outcome.NotFoundNone, nil
	}
	copied := *c
	f.clients[c.ID] = &copied
	return &copied, outcome.OkUpdated, nil
}

type fakeProvisioner struct {
	nextUID   string
	createErr error
	deleted   []string
}

func (f *fakeProvisioner) CreateAccount(context.Context, string, string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.nextUID, nil
}

func (f *fakeProvisioner) DeleteAccount(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func clientRouter(repo *fakeClientRepo, prov *fakeProvisioner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &ClientHandler{Clients: repo, Identity: prov}
	r := gin.New()
	r.POST("/api/clients/register", h.RegisterClientHandler)
	r.GET("/api/clients/:id", h.GetClientByIDHandler)
	r.PUT("/api/clients/:id", h.UpdateClientHandler)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterClient(t *testing.T) {
	repo := newFakeClientRepo()
	prov := &fakeProvisioner{nextUID: "uid-1"}
	r := clientRouter(repo, prov)

	w := doJSON(t, r, http.MethodPost, "/api/clients/register", gin.H{
		"email":     "skip@example.com",
		"password":  "dockline99",
		"firstName": "Skip",
		"lastName":  "Barlow",
		"boatName":  "Second Wind",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var got models.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "uid-1", got.ID)
	assert.Equal(t, "Second Wind", got.BoatName)
	assert.Contains(t, repo.clients, "uid-1")
}

func TestRegisterClientRollsBackOnRepoFailure(t *testing.T) {
	repo := newFakeClientRepo()
	repo.createErr = fmt.Errorf("mongo unavailable")
	prov := &fakeProvisioner{nextUID: "uid-1"}
	r := clientRouter(repo, prov)

	w := doJSON(t, r, http.MethodPost, "/api/clients/register", gin.H{
		"email":     "skip@example.com",
		"password":  "dockline99",
		"firstName": "Skip",
		"lastName":  "Barlow",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, []string{"uid-1"}, prov.deleted)
}

func TestRegisterClientRejectsBadPayload(t *testing.T) {
	r := clientRouter(newFakeClientRepo(), &fakeProvisioner{nextUID: "uid-1"})

	w := doJSON(t, r, http.MethodPost, "/api/clients/register", gin.H{
		"email": "not-an-email",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetClientByID(t *testing.T) {
	repo := newFakeClientRepo()
	repo.clients["c-1"] = &models.Client{ID: "c-1", FirstName: "Skip"}
	r := clientRouter(repo, &fakeProvisioner{})

	w := doJSON(t, r, http.MethodGet, "/api/clients/c-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/clients/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateClientForcesPathID(t *testing.T) {
	repo := newFakeClientRepo()
	repo.clients["c-1"] = &models.Client{ID: "c-1", FirstName: "Skip"}
	r := clientRouter(repo, &fakeProvisioner{})

	w := doJSON(t, r, http.MethodPut, "/api/clients/c-1", gin.H{
		"id":        "smuggled",
		"firstName": "Skipper",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Skipper", repo.clients["c-1"].FirstName)
	assert.NotContains(t, repo.clients, "smuggled")
}
