package handlers

import (
	"net/http"

	"towline/database/repository/outcome"
	providerRepo "towline/database/repository/provider"
	"towline/models"
	"towline/services/identity"
	"towline/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler serves /api/providers.
type ProviderHandler struct {
	Providers providerRepo.Repository
	Identity  identity.Provisioner
}

// RegisterProviderRequest carries signup credentials plus the company profile.
type RegisterProviderRequest struct {
	Email       string          `json:"email" binding:"required,email"`
	Password    string          `json:"password" binding:"required,min=8"`
	CompanyName string          `json:"companyName" binding:"required"`
	PhoneNumber string          `json:"phoneNumber"`
	Address     string          `json:"address"`
	Location    models.GeoPoint `json:"location"`
}

// RegisterProviderHandler handles POST /api/providers/register. Mirrors
// client registration: provision the account, use its UID as the provider ID,
// roll back on a failed database write.
func (h *ProviderHandler) RegisterProviderHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req RegisterProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid, err := h.Identity.CreateAccount(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Error("failed to provision provider account", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create account"})
		return
	}

	provider := &models.Provider{
		ID:          uid,
		CompanyName: req.CompanyName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Location:    req.Location,
	}
	created, out, err := h.Providers.Create(c.Request.Context(), provider)
	if err != nil || out != outcome.OkCreated {
		if delErr := h.Identity.DeleteAccount(c.Request.Context(), uid); delErr != nil {
			logger.Error("failed to roll back auth account", zap.String("uid", uid), zap.Error(delErr))
		}
		respond(c, nil, out, err)
		return
	}
	respond(c, created, out, nil)
}

// GetProviderByIDHandler handles GET /api/providers/:providerId.
func (h *ProviderHandler) GetProviderByIDHandler(c *gin.Context) {
	provider, out, err := h.Providers.GetByID(c.Request.Context(), c.Param("providerId"))
	respond(c, provider, out, err)
}

// GetAllProvidersHandler handles GET /api/providers.
func (h *ProviderHandler) GetAllProvidersHandler(c *gin.Context) {
	providers, out, err := h.Providers.GetAll(c.Request.Context())
	respond(c, providers, out, err)
}

// UpdateProviderHandler handles PUT /api/providers/:providerId.
func (h *ProviderHandler) UpdateProviderHandler(c *gin.Context) {
	var provider models.Provider
	if err := c.ShouldBindJSON(&provider); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	provider.ID = c.Param("providerId")

	updated, out, err := h.Providers.Update(c.Request.Context(), &provider)
	respond(c, updated, out, err)
}
