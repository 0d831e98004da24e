package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ViewerHeader names the header carrying the acting user's id. Session
// handling lives outside this service; whatever sits in front of it is
// trusted to have authenticated the id.
const ViewerHeader = "X-Fritter-User"

// viewerID returns the acting user's id, or 0 for an anonymous request
func viewerID(c *gin.Context) int64 {
	raw := c.GetHeader(ViewerHeader)
	if raw == "" {
		raw = c.Query("viewer")
	}
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// requireViewer resolves the acting user or rejects the request with 403
func requireViewer(c *gin.Context) (int64, bool) {
	id := viewerID(c)
	if id == 0 {
		c.JSON(http.StatusForbidden, gin.H{"error": "you must be logged in"})
		return 0, false
	}
	return id, true
}
