package handlers

import (
	"net/http"

	clientRepo "towline/database/repository/client"
	"towline/database/repository/outcome"
	"towline/models"
	"towline/services/identity"
	"towline/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientHandler serves /api/clients.
type ClientHandler struct {
	Clients  clientRepo.Repository
	Identity identity.Provisioner
}

// RegisterClientRequest carries signup credentials plus the initial profile.
type RegisterClientRequest struct {
	Email              string `json:"email" binding:"required,email"`
	Password           string `json:"password" binding:"required,min=8"`
	FirstName          string `json:"firstName" binding:"required"`
	LastName           string `json:"lastName" binding:"required"`
	PhoneNumber        string `json:"phoneNumber"`
	BoatName           string `json:"boatName"`
	BoatModel          string `json:"boatModel"`
	RegistrationNumber string `json:"registrationNumber"`
}

// RegisterClientHandler handles POST /api/clients/register. The account is
// provisioned with the identity provider first; its UID becomes the client
// ID. If the database write then fails, the account is rolled back.
func (h *ClientHandler) RegisterClientHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid, err := h.Identity.CreateAccount(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Error("failed to provision client account", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create account"})
		return
	}

	client := &models.Client{
		ID:                 uid,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		PhoneNumber:        req.PhoneNumber,
		BoatName:           req.BoatName,
		BoatModel:          req.BoatModel,
		RegistrationNumber: req.RegistrationNumber,
	}
	created, out, err := h.Clients.Create(c.Request.Context(), client)
	if err != nil || out != outcome.OkCreated {
		if delErr := h.Identity.DeleteAccount(c.Request.Context(), uid); delErr != nil {
			logger.Error("failed to roll back auth account", zap.String("uid", uid), zap.Error(delErr))
		}
		respond(c, nil, out, err)
		return
	}
	respond(c, created, out, nil)
}

// GetClientByIDHandler handles GET /api/clients/:id.
func (h *ClientHandler) GetClientByIDHandler(c *gin.Context) {
	client, out, err := h.Clients.GetByID(c.Request.Context(), c.Param("id"))
	respond(c, client, out, err)
}

// GetAllClientsHandler handles GET /api/clients.
func (h *ClientHandler) GetAllClientsHandler(c *gin.Context) {
	clients, out, err := h.Clients.GetAll(c.Request.Context())
	respond(c, clients, out, err)
}

// UpdateClientHandler handles PUT /api/clients/:id. The body's ID is forced
// to the path parameter.
func (h *ClientHandler) UpdateClientHandler(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client.ID = c.Param("id")

	updated, out, err := h.Clients.Update(c.Request.Context(), &client)
	respond(c, updated, out, err)
}
