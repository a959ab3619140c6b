package handler

import (
	"net/http"

	"github.com/PhanHoangKe/GooglePhotosClone/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

type createAlbumRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PhotoIDs    []uint `json:"photo_ids" binding:"required"`
}

func (h *Handler) ListAlbums(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}

	albums, err := h.services.Album.List(uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to list albums")
		return
	}
	c.JSON(http.StatusOK, gin.H{"albums": albums})
}

func (h *Handler) CreateAlbum(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}

	var req createAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	album, err := h.services.Album.Create(uid, req.Name, req.Description, req.PhotoIDs)
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to create album")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":      album.ID,
		"name":    album.Name,
		"message": "album created",
	})
}

func (h *Handler) GetAlbum(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}
	albumID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid album id"})
		return
	}

	detail, err := h.services.Album.Get(uid, albumID)
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to load album")
		return
	}
	c.JSON(http.StatusOK, detail)
}
