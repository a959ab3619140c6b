package handler

import (
	"net/http"

	"github.com/PhanHoangKe/GooglePhotosClone/internal/consts"

	"github.com/gin-gonic/gin"
)

// ServeBlob streams a stored file by namespace and key. Only the two known
// namespaces are routable; key validation happens inside the disk store.
func (h *Handler) ServeBlob(c *gin.Context) {
	namespace := c.Param("namespace")
	if namespace != consts.NamespacePhotos && namespace != consts.NamespaceAvatars {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	p, err := h.blobs.Path(namespace, c.Param("key"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if !h.blobs.Exists(namespace, c.Param("key")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.File(p)
}
