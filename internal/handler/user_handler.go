package handler

import (
	"net/http"

	"github.com/PhanHoangKe/GooglePhotosClone/internal/common/httpx"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/service"

	"github.com/gin-gonic/gin"
)

type updatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

type deleteAccountRequest struct {
	Password string `json:"password" binding:"required"`
}

func (h *Handler) GetProfile(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}

	user, err := h.services.User.GetByID(uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to load profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"email":         user.Email,
		"avatar":        user.Avatar,
		"storage_used":  user.StorageUsed,
		"storage_limit": user.EffectiveStorageLimit(),
		"created_at":    user.CreatedAt,
	})
}

// UpdateProfile handles the multipart profile form: username, email and an
// optional inline avatar.
func (h *Handler) UpdateProfile(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}

	upd := service.ProfileUpdate{
		Username: c.PostForm("username"),
		Email:    c.PostForm("email"),
	}
	if fh, err := c.FormFile("avatar"); err == nil {
		upd.Avatar = fh
	}

	user, err := h.services.User.UpdateProfile(uid, upd)
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to update profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"username": user.Username,
		"email":    user.Email,
		"avatar":   user.Avatar,
		"message":  "profile updated",
	})
}

func (h *Handler) UpdatePassword(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}

	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.services.User.UpdatePassword(uid, req.CurrentPassword, req.NewPassword); err != nil {
		httpx.WriteServiceError(c, err, "failed to update password")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

func (h *Handler) UpdateAvatar(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avatar file is required"})
		return
	}

	url, err := h.services.User.UpdateAvatar(uid, fh)
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to update avatar")
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatar": url, "message": "avatar updated"})
}

func (h *Handler) RemoveAvatar(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.services.User.RemoveAvatar(uid); err != nil {
		httpx.WriteServiceError(c, err, "failed to remove avatar")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "avatar removed"})
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}

	var req deleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.services.User.DeleteAccount(uid, req.Password); err != nil {
		httpx.WriteServiceError(c, err, "failed to delete account")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
