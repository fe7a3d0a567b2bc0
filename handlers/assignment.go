package handlers

import (
	"io"
	"net/http"
	"time"

	assignmentRepo "towline/database/repository/assignment"
	"towline/models"
	assignmentSvc "towline/services/assignment"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler serves /api/assignments.
type AssignmentHandler struct {
	Assignments *assignmentSvc.Service
}

// GetAssignmentByIDHandler handles GET /api/assignments/:id.
func (h *AssignmentHandler) GetAssignmentByIDHandler(c *gin.Context) {
	a, out, err := h.Assignments.GetByID(c.Request.Context(), c.Param("id"))
	respond(c, a, out, err)
}

// CreateAssignmentHandler handles POST /api/assignments.
func (h *AssignmentHandler) CreateAssignmentHandler(c *gin.Context) {
	var a models.Assignment
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, out, err := h.Assignments.Create(c.Request.Context(), &a)
	respond(c, created, out, err)
}

// UpdateAssignmentHandler handles PUT /api/assignments/:id.
func (h *AssignmentHandler) UpdateAssignmentHandler(c *gin.Context) {
	var a models.Assignment
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a.ID = c.Param("id")

	updated, out, err := h.Assignments.Update(c.Request.Context(), &a)
	respond(c, updated, out, err)
}

// SearchAssignmentsRequest is the body of POST /api/assignments/search.
// Time bounds are RFC 3339 and strict on both ends.
type SearchAssignmentsRequest struct {
	CreatedAfter  *time.Time                `json:"createdAfter"`
	CreatedBefore *time.Time                `json:"createdBefore"`
	Statuses      []models.AssignmentStatus `json:"statuses"`
	IncludeClient bool                      `json:"includeClient"`
	IncludeWorker bool                      `json:"includeWorker"`
}

// SearchAssignmentsHandler handles POST /api/assignments/search.
func (h *AssignmentHandler) SearchAssignmentsHandler(c *gin.Context) {
	var req SearchAssignmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, out, err := h.Assignments.Search(c.Request.Context(), assignmentRepo.SearchCriteria{
		CreatedAfter:  req.CreatedAfter,
		CreatedBefore: req.CreatedBefore,
		Statuses:      req.Statuses,
		IncludeClient: req.IncludeClient,
		IncludeWorker: req.IncludeWorker,
	})
	respond(c, results, out, err)
}

// AppendAssignmentImageHandler handles POST /api/assignments/:id/images.
// Accepts a multipart "file" part; the part's filename becomes the image
// name on the assignment.
func (h *AssignmentHandler) AppendAssignmentImageHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file", "detail": err.Error()})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	updated, out, err := h.Assignments.AppendImage(c.Request.Context(), c.Param("id"), fileHeader.Filename, contentType, file)
	respond(c, updated, out, err)
}

// DownloadAssignmentImageHandler handles GET /api/assignments/:id/images/:name.
func (h *AssignmentHandler) DownloadAssignmentImageHandler(c *gin.Context) {
	rc, contentType, err := h.Assignments.DownloadImage(c.Request.Context(), c.Param("id"), c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
		return
	}
	defer rc.Close()

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	io.Copy(c.Writer, rc) //nolint:errcheck
}
