package handlers

import (
	"io"
	"net/http"

	"towline/models"
	imageSvc "towline/services/image"

	"github.com/gin-gonic/gin"
)

// ImageHandler serves the image directory and blob endpoints under
// /api/images/:store/:bucket.
type ImageHandler struct {
	Images *imageSvc.Service
}

func bucketKeyFrom(c *gin.Context) models.ImageBucketKey {
	return models.ImageBucketKey{Store: c.Param("store"), Bucket: c.Param("bucket")}
}

// CreateBucketHandler handles POST /api/images/:store. The bucket identifier
// is assigned server-side and returned in the record.
func (h *ImageHandler) CreateBucketHandler(c *gin.Context) {
	bucket, out, err := h.Images.CreateBucket(c.Request.Context(), c.Param("store"))
	respond(c, bucket, out, err)
}

// GetBucketHandler handles GET /api/images/:store/:bucket.
func (h *ImageHandler) GetBucketHandler(c *gin.Context) {
	bucket, out, err := h.Images.GetBucket(c.Request.Context(), bucketKeyFrom(c))
	respond(c, bucket, out, err)
}

// UploadImageHandler handles POST /api/images/:store/:bucket. Accepts a
// multipart "file" part named by its filename.
func (h *ImageHandler) UploadImageHandler(c *gin.Context) {
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

	out, err := h.Images.UploadImage(c.Request.Context(), bucketKeyFrom(c), fileHeader.Filename, contentType, file)
	respond(c, gin.H{"name": fileHeader.Filename}, out, err)
}

// DownloadImageHandler handles GET /api/images/:store/:bucket/:name.
func (h *ImageHandler) DownloadImageHandler(c *gin.Context) {
	rc, contentType, err := h.Images.DownloadImage(c.Request.Context(), bucketKeyFrom(c), c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
		return
	}
	defer rc.Close()

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	io.Copy(c.Writer, rc) //nolint:errcheck
}

// DeleteImageHandler handles DELETE /api/images/:store/:bucket/:name.
func (h *ImageHandler) DeleteImageHandler(c *gin.Context) {
	out, err := h.Images.DeleteImage(c.Request.Context(), bucketKeyFrom(c), c.Param("name"))
	respond(c, gin.H{"status": "deleted"}, out, err)
}
