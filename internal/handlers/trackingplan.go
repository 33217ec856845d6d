package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/data-catalog-service/internal/catalog"
	"github.com/PratikDhanave/data-catalog-service/internal/models"
	"github.com/PratikDhanave/data-catalog-service/internal/store"
	"github.com/PratikDhanave/data-catalog-service/internal/validate"
)

// RegisterTrackingPlanRoutes registers the tracking-plan endpoints. Unlike
// the flat event/property routes, a malformed :id here is reported as a
// field-level error list and a missing plan is a distinct 404 on every
// /:id route.
func RegisterTrackingPlanRoutes(r gin.IRoutes, svc *catalog.TrackingPlanService) {
	r.POST("/tracking-plans", func(c *gin.Context) {
		var req models.CreateTrackingPlanRequest
		if !bindJSON(c, &req) {
			return
		}

		plan, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create tracking plan"})
			return
		}
		c.JSON(http.StatusCreated, plan)
	})

	r.GET("/tracking-plans", func(c *gin.Context) {
		plans, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tracking plans"})
			return
		}
		c.JSON(http.StatusOK, plans)
	})

	r.GET("/tracking-plans/:id", func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"errors": validate.IDError()})
			return
		}

		plan, err := svc.Get(c.Request.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tracking plan not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tracking plan"})
			return
		}
		c.JSON(http.StatusOK, plan)
	})

	r.PUT("/tracking-plans/:id", func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"errors": validate.IDError()})
			return
		}

		var req models.UpdateTrackingPlanRequest
		if !bindJSON(c, &req) {
			return
		}

		plan, err := svc.Update(c.Request.Context(), id, req)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tracking plan not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to update tracking plan"})
			return
		}
		c.JSON(http.StatusOK, plan)
	})

	r.DELETE("/tracking-plans/:id", func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"errors": validate.IDError()})
			return
		}

		err := svc.Delete(c.Request.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tracking plan not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to delete tracking plan"})
			return
		}
		c.Status(http.StatusNoContent)
	})
}
