package handlers

import (
	"net/http"

	workerRepo "towline/database/repository/worker"
	"towline/models"

	"github.com/gin-gonic/gin"
)

// WorkerHandler serves /api/providers/:providerId/workers.
type WorkerHandler struct {
	Workers workerRepo.Repository
}

// GetWorkerByIDHandler handles GET /api/providers/:providerId/workers/:id.
func (h *WorkerHandler) GetWorkerByIDHandler(c *gin.Context) {
	worker, out, err := h.Workers.GetByID(c.Request.Context(), c.Param("providerId"), c.Param("id"))
	respond(c, worker, out, err)
}

// GetAllWorkersHandler handles GET /api/providers/:providerId/workers.
func (h *WorkerHandler) GetAllWorkersHandler(c *gin.Context) {
	workers, out, err := h.Workers.GetAll(c.Request.Context(), c.Param("providerId"))
	respond(c, workers, out, err)
}

// CreateWorkerHandler handles POST /api/providers/:providerId/workers.
func (h *WorkerHandler) CreateWorkerHandler(c *gin.Context) {
	var worker models.Worker
	if err := c.ShouldBindJSON(&worker); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, out, err := h.Workers.Create(c.Request.Context(), c.Param("providerId"), &worker)
	respond(c, created, out, err)
}

// UpdateWorkerHandler handles PUT /api/providers/:providerId/workers/:id.
func (h *WorkerHandler) UpdateWorkerHandler(c *gin.Context) {
	var worker models.Worker
	if err := c.ShouldBindJSON(&worker); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	worker.ID = c.Param("id")

	updated, out, err := h.Workers.Update(c.Request.Context(), c.Param("providerId"), &worker)
	respond(c, updated, out, err)
}

// PatchWorkerHandler handles PATCH /api/providers/:providerId/workers/:id.
// Replaces every mutable field except the image bucket key.
func (h *WorkerHandler) PatchWorkerHandler(c *gin.Context) {
	var worker models.Worker
	if err := c.ShouldBindJSON(&worker); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	worker.ID = c.Param("id")

	patched, out, err := h.Workers.PatchAllButImageBucket(c.Request.Context(), c.Param("providerId"), &worker)
	respond(c, patched, out, err)
}

// PatchWorkerLocationHandler handles PUT .../workers/:id/location.
func (h *WorkerHandler) PatchWorkerLocationHandler(c *gin.Context) {
	var location models.GeoPoint
	if err := c.ShouldBindJSON(&location); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.Workers.PatchLocation(c.Request.Context(), c.Param("providerId"), c.Param("id"), location)
	respond(c, gin.H{"status": "ok"}, out, err)
}

// PatchWorkerStatusHandler handles PUT .../workers/:id/status.
func (h *WorkerHandler) PatchWorkerStatusHandler(c *gin.Context) {
	var req struct {
		Status models.WorkerStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.IsValidWorkerStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown worker status", "data": string(req.Status)})
		return
	}

	out, err := h.Workers.PatchStatus(c.Request.Context(), c.Param("providerId"), c.Param("id"), req.Status)
	respond(c, gin.H{"status": "ok"}, out, err)
}

// PatchWorkerDeviceTokenHandler handles PUT .../workers/:id/device-token.
func (h *WorkerHandler) PatchWorkerDeviceTokenHandler(c *gin.Context) {
	var req struct {
		DeviceToken string `json:"deviceToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.Workers.PatchDeviceToken(c.Request.Context(), c.Param("providerId"), c.Param("id"), req.DeviceToken)
	respond(c, gin.H{"status": "ok"}, out, err)
}
