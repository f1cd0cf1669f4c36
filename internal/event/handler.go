package event

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sriram31Mech/EventHubPro-1/internal/apperror"
	"github.com/Sriram31Mech/EventHubPro-1/middleware"
)

// ===========================
// 🎯 Event Handler
// ===========================

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// List godoc
// @Summary Public event catalog with optional filters
// @Tags events
// @Produce json
// @Param search query string false "Free text over title, description, venue and location"
// @Param eventType query string false "conference, workshop, networking, seminar or all"
// @Param location query string false "Case-insensitive substring"
// @Param date query string false "YYYY-MM-DD, matches events starting that day"
// @Success 200 {object} map[string]interface{}
// @Router /api/events [get]
func (h *Handler) List(c *gin.Context) {
	params := SearchParams{
		Search:    c.Query("search"),
		EventType: c.Query("eventType"),
		Location:  c.Query("location"),
		Date:      c.Query("date"),
	}

	events, err := h.service.List(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}

// Get godoc
// @Summary Single event by id
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/events/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	ev, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": ev})
}

// MyEvents godoc
// @Summary Events owned by the authenticated admin
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/events/my [get]
func (h *Handler) MyEvents(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	events, err := h.service.ListByAdmin(identity.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}

// Create godoc
// @Summary Create an event listing
// @Tags events
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param eventType formData string true "Category"
// @Param location formData string true "Location"
// @Param venue formData string true "Venue"
// @Param startDate formData string true "YYYY-MM-DD"
// @Param endDate formData string true "YYYY-MM-DD"
// @Param image formData file false "Cover image (jpeg/jpg/png, max 5MB)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/events [post]
func (h *Handler) Create(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req CreateEventRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
		return
	}

	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	ev, err := h.service.Create(c.Request.Context(), identity, req, image, middleware.GetIPFromContext(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event created", "event": ev})
}

// Update godoc
// @Summary Partially update an owned event
// @Tags events
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/events/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	req := bindUpdateForm(c)

	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	ev, err := h.service.Update(c.Request.Context(), identity, c.Param("id"), req, image, middleware.GetIPFromContext(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event updated", "event": ev})
}

// Delete godoc
// @Summary Delete an owned event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/events/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	err := h.service.Delete(c.Request.Context(), identity, c.Param("id"), middleware.GetIPFromContext(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}

// bindUpdateForm reads only the form fields actually present, so an omitted
// field stays untouched while an empty one still goes through validation.
func bindUpdateForm(c *gin.Context) UpdateEventRequest {
	var req UpdateEventRequest
	if v, ok := c.GetPostForm("title"); ok {
		req.Title = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		req.Description = &v
	}
	if v, ok := c.GetPostForm("eventType"); ok {
		req.EventType = &v
	}
	if v, ok := c.GetPostForm("location"); ok {
		req.Location = &v
	}
	if v, ok := c.GetPostForm("venue"); ok {
		req.Venue = &v
	}
	if v, ok := c.GetPostForm("startDate"); ok {
		req.StartDate = &v
	}
	if v, ok := c.GetPostForm("endDate"); ok {
		req.EndDate = &v
	}
	if v, ok := c.GetPostForm("startTime"); ok {
		req.StartTime = &v
	}
	if v, ok := c.GetPostForm("endTime"); ok {
		req.EndTime = &v
	}
	if v, ok := c.GetPostForm("cost"); ok {
		req.Cost = &v
	}
	if v, ok := c.GetPostForm("isAiGenerated"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			req.IsAiGenerated = &b
		}
	}
	return req
}

func (h *Handler) writeError(c *gin.Context, err error) {
	if ve, ok := apperror.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": ve.Fields})
		return
	}
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
	case errors.Is(err, apperror.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "you do not own this event"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
	}
}
