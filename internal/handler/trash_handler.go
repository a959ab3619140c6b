package handler

import (
	"net/http"
	"strconv"

	"github.com/PhanHoangKe/GooglePhotosClone/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

// ListTrash serves trashed photos, newest deletion first.
func (h *Handler) ListTrash(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := h.services.Photo.ListTrash(uid, c.Query("search"), page)
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to list trash")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) RestorePhoto(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}
	photoID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo id"})
		return
	}

	if err := h.services.Photo.Restore(uid, photoID); err != nil {
		httpx.WriteServiceError(c, err, "failed to restore photo")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "photo restored"})
}

func (h *Handler) PurgePhoto(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}
	photoID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo id"})
		return
	}

	if err := h.services.Photo.Purge(uid, photoID); err != nil {
		httpx.WriteServiceError(c, err, "failed to delete photo permanently")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "photo permanently deleted"})
}
