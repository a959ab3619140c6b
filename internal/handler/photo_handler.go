package handler

import (
	"net/http"
	"strconv"

	"github.com/PhanHoangKe/GooglePhotosClone/internal/common/httpx"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/service"

	"github.com/gin-gonic/gin"
)

// ListPhotos serves the library view with search, sort and pagination.
func (h *Handler) ListPhotos(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := h.services.Photo.List(service.PhotoListQuery{
		UserID:  uid,
		Search:  c.Query("search"),
		SortBy:  c.Query("sort_by"),
		SortDir: c.Query("sort_direction"),
		Page:    page,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to list photos")
		return
	}

	c.JSON(http.StatusOK, result)
}

// UploadPhotos accepts a multipart batch under "photos" with optional
// index-aligned "titles".
func (h *Handler) UploadPhotos(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}

	files := form.File["photos"]
	titles := form.Value["titles"]

	created, err := h.services.Photo.UploadBatch(uid, files, titles)
	if err != nil {
		httpx.WriteServiceError(c, err, "upload failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "upload complete",
		"created_count": created,
	})
}

// DeletePhoto moves a photo to the trash (soft delete).
func (h *Handler) DeletePhoto(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}
	photoID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo id"})
		return
	}

	if err := h.services.Photo.Trash(uid, photoID); err != nil {
		httpx.WriteServiceError(c, err, "failed to delete photo")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "photo moved to trash"})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}
