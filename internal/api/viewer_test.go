package api

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestViewerID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		header string
		query  string
		want   int64
	}{
		{"from header", "42", "", 42},
		{"from query", "", "7", 7},
		{"header wins over query", "42", "7", 42},
		{"missing", "", "", 0},
		{"not a number", "abc", "", 0},
		{"zero rejected", "0", "", 0},
		{"negative rejected", "-3", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			url := "/api/feed"
			if tt.query != "" {
				url += "?viewer=" + tt.query
			}
			c.Request = httptest.NewRequest("GET", url, nil)
			if tt.header != "" {
				c.Request.Header.Set(ViewerHeader, tt.header)
			}

			if got := viewerID(c); got != tt.want {
				t.Errorf("viewerID() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRequireViewer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/feed", nil)

	if _, ok := requireViewer(c); ok {
		t.Error("Expected requireViewer to reject an anonymous request")
	}
	if w.Code != 403 {
		t.Errorf("Expected status 403, got %d", w.Code)
	}
}
