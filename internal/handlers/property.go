package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/data-catalog-service/internal/catalog"
	"github.com/PratikDhanave/data-catalog-service/internal/models"
	"github.com/PratikDhanave/data-catalog-service/internal/store"
)

// RegisterPropertyRoutes registers the property CRUD endpoints, shaped
// exactly like the event ones.
func RegisterPropertyRoutes(r gin.IRoutes, svc *catalog.PropertyService) {
	r.POST("/properties", func(c *gin.Context) {
		var req models.CreatePropertyRequest
		if !bindJSON(c, &req) {
			return
		}

		property, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create property"})
			return
		}
		c.JSON(http.StatusCreated, property)
	})

	r.GET("/properties", func(c *gin.Context) {
		properties, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch properties"})
			return
		}
		c.JSON(http.StatusOK, properties)
	})

	r.GET("/properties/:id", func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
			return
		}

		property, err := svc.Get(c.Request.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch property"})
			return
		}
		c.JSON(http.StatusOK, property)
	})

	r.PUT("/properties/:id", func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
			return
		}

		var req models.UpdatePropertyRequest
		if !bindJSON(c, &req) {
			return
		}

		property, err := svc.Update(c.Request.Context(), id, req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to update property"})
			return
		}
		c.JSON(http.StatusOK, property)
	})

	r.DELETE("/properties/:id", func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
			return
		}

		if err := svc.Delete(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to delete property"})
			return
		}
		c.Status(http.StatusNoContent)
	})
}
