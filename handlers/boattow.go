package handlers

import (
	"net/http"

	boattowRepo "towline/database/repository/boattow"
	"towline/models"

	"github.com/gin-gonic/gin"
)

// BoatTowHandler serves /api/providers/:providerId/boattows.
type BoatTowHandler struct {
	BoatTows boattowRepo.Repository
}

// GetBoatTowByIDHandler handles GET /api/providers/:providerId/boattows/:id.
func (h *BoatTowHandler) GetBoatTowByIDHandler(c *gin.Context) {
	tow, out, err := h.BoatTows.GetByID(c.Request.Context(), c.Param("providerId"), c.Param("id"))
	respond(c, tow, out, err)
}

// GetAllBoatTowsHandler handles GET /api/providers/:providerId/boattows.
func (h *BoatTowHandler) GetAllBoatTowsHandler(c *gin.Context) {
	tows, out, err := h.BoatTows.GetAll(c.Request.Context(), c.Param("providerId"))
	respond(c, tows, out, err)
}

// CreateBoatTowHandler handles POST /api/providers/:providerId/boattows.
func (h *BoatTowHandler) CreateBoatTowHandler(c *gin.Context) {
	var tow models.BoatTow
	if err := c.ShouldBindJSON(&tow); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, out, err := h.BoatTows.Create(c.Request.Context(), c.Param("providerId"), &tow)
	respond(c, created, out, err)
}

// UpdateBoatTowHandler handles PUT /api/providers/:providerId/boattows/:id.
func (h *BoatTowHandler) UpdateBoatTowHandler(c *gin.Context) {
	var tow models.BoatTow
	if err := c.ShouldBindJSON(&tow); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tow.ID = c.Param("id")

	updated, out, err := h.BoatTows.Update(c.Request.Context(), c.Param("providerId"), &tow)
	respond(c, updated, out, err)
}
