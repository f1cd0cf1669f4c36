package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sriram31Mech/EventHubPro-1/internal/apperror"
	"github.com/Sriram31Mech/EventHubPro-1/internal/auditlog"
	"github.com/Sriram31Mech/EventHubPro-1/middleware"
)

// ===========================
// 🎯 Auth Handler
// ===========================

type Handler struct {
	service Service
	audit   auditlog.Service
}

func NewHandler(service Service, audit auditlog.Service) *Handler {
	return &Handler{service: service, audit: audit}
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, token, err := h.service.Register(req)
	if err != nil {
		h.audit.LogAction("", "REGISTER", "user", "", middleware.GetIPFromContext(c),
			map[string]interface{}{"success": false})
		if ve, ok := apperror.AsValidation(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": ve.Fields})
			return
		}
		if errors.Is(err, apperror.ErrConflict) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
		return
	}

	h.audit.LogAction(user.ID, "REGISTER", "user", user.ID, middleware.GetIPFromContext(c),
		map[string]interface{}{"success": true})
	c.JSON(http.StatusOK, gin.H{
		"message": "registration successful",
		"user":    user.Public(),
		"token":   token,
	})
}

// Login godoc
// @Summary Authenticate and receive a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, token, err := h.service.Login(req)
	if err != nil {
		h.audit.LogAction("", "LOGIN", "user", "", middleware.GetIPFromContext(c),
			map[string]interface{}{"success": false})
		if ve, ok := apperror.AsValidation(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": ve.Fields})
			return
		}
		if errors.Is(err, apperror.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to login"})
		return
	}

	h.audit.LogAction(user.ID, "LOGIN", "user", user.ID, middleware.GetIPFromContext(c),
		map[string]interface{}{"success": true})
	c.JSON(http.StatusOK, gin.H{
		"message": "login successful",
		"user":    user.Public(),
		"token":   token,
	})
}

// Me godoc
// @Summary Current authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	user, err := h.service.Me(identity.UserID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.Public()})
}
