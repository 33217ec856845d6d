// Package handlers binds the HTTP surface to the catalog services. Status
// codes are the binding contract: validation failures are 400 with a
// field-level error list, a missing row is 404 where the route distinguishes
// it, and store failures surface as generic messages only.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/data-catalog-service/internal/validate"
)

// parseID parses the :id path parameter as a positive integer. A non-numeric
// id is a validation failure, never conflated with not-found.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// bindJSON decodes and validates the request body. On failure it writes the
// field-level error list (or a generic bad-request for malformed JSON) and
// reports false.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}
	if fields := validate.Fields(err); len(fields) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
	}
	return false
}
