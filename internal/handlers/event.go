package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/data-catalog-service/internal/catalog"
	"github.com/PratikDhanave/data-catalog-service/internal/models"
	"github.com/PratikDhanave/data-catalog-service/internal/store"
)

// RegisterEventRoutes registers the event CRUD endpoints.
//
// POST   /events
// GET    /events
// GET    /events/:id
// PUT    /events/:id
// DELETE /events/:id
func RegisterEventRoutes(r gin.IRoutes, svc *catalog.EventService) {
	r.POST("/events", func(c *gin.Context) {
		var req models.CreateEventRequest
		if !bindJSON(c, &req) {
			return
		}

		event, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create event"})
			return
		}
		c.JSON(http.StatusCreated, event)
	})

	r.GET("/events", func(c *gin.Context) {
		events, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch events"})
			return
		}
		c.JSON(http.StatusOK, events)
	})

	r.GET("/events/:id", func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
			return
		}

		event, err := svc.Get(c.Request.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch event"})
			return
		}
		c.JSON(http.StatusOK, event)
	})

	r.PUT("/events/:id", func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
			return
		}

		var req models.UpdateEventRequest
		if !bindJSON(c, &req) {
			return
		}

		// Not-found is folded into the generic failure here; only reads and
		// tracking-plan writes report 404 distinctly.
		event, err := svc.Update(c.Request.Context(), id, req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to update event"})
			return
		}
		c.JSON(http.StatusOK, event)
	})

	r.DELETE("/events/:id", func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
			return
		}

		if err := svc.Delete(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to delete event"})
			return
		}
		c.Status(http.StatusNoContent)
	})
}
