package ai

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sriram31Mech/EventHubPro-1/internal/apperror"
	"github.com/Sriram31Mech/EventHubPro-1/internal/auditlog"
	"github.com/Sriram31Mech/EventHubPro-1/middleware"
)

// ===========================
// 🎯 Description Assist Handler
// ===========================

type Handler struct {
	service Service
	audit   auditlog.Service
}

func NewHandler(service Service, audit auditlog.Service) *Handler {
	return &Handler{service: service, audit: audit}
}

// Generate godoc
// @Summary Generate an event description draft
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenerateRequest true "Event details"
// @Success 200 {object} map[string]interface{}
// @Failure 429 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/ai/generate-description [post]
func (h *Handler) Generate(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	description, err := h.service.GenerateDescription(c.Request.Context(), identity, req)
	if err != nil {
		h.audit.LogAction(identity.UserID, "AI_DESCRIPTION_GENERATED", "event", "",
			middleware.GetIPFromContext(c), map[string]interface{}{"success": false, "title": req.Title})
		if ve, ok := apperror.AsValidation(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": ve.Fields})
			return
		}
		if rl, ok := apperror.AsRateLimited(err); ok {
			c.Header("Retry-After", strconv.Itoa(int(rl.RetryAfter.Seconds())))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":      "description service is busy, try again later",
				"retryAfter": int(rl.RetryAfter.Seconds()),
			})
			return
		}
		if errors.Is(err, apperror.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "description service unavailable"})
		return
	}

	h.audit.LogAction(identity.UserID, "AI_DESCRIPTION_GENERATED", "event", "",
		middleware.GetIPFromContext(c), map[string]interface{}{"success": true, "title": req.Title})
	c.JSON(http.StatusOK, gin.H{
		"description":   description,
		"isAiGenerated": true,
	})
}
