package reports

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sriram31Mech/EventHubPro-1/internal/event"
	"github.com/Sriram31Mech/EventHubPro-1/middleware"
)

// ===========================
// 🎯 Report Handler
// ===========================

type Handler struct {
	events event.Service
}

func NewHandler(events event.Service) *Handler {
	return &Handler{events: events}
}

// Export godoc
// @Summary Export the caller's events as xlsx, pdf or csv
// @Tags reports
// @Produce application/octet-stream
// @Security BearerAuth
// @Param format query string false "xlsx (default), pdf or csv"
// @Success 200 {file} file
// @Failure 400 {object} map[string]interface{}
// @Router /api/events/my/export [get]
func (h *Handler) Export(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	format := c.DefaultQuery("format", "xlsx")

	events, err := h.events.ListByAdmin(identity.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load events"})
		return
	}

	data, filename, contentType, err := Export(events, format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be xlsx, pdf or csv"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}
