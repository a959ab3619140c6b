package handler

import (
	"net/http"

	"github.com/PhanHoangKe/GooglePhotosClone/internal/common/httpx"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/middleware"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, email and password are required"})
		return
	}

	user, err := h.services.Auth.Register(req.Username, req.Email, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "registration failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "account created", "user": user})
}

type loginRequest struct {
	Account  string `json:"account" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "account and password are required"})
		return
	}

	token, user, err := h.services.Auth.Login(req.Account, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *Handler) Logout(c *gin.Context) {
	if token := c.GetString(middleware.ContextToken); token != "" {
		h.services.Auth.Logout(token)
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
