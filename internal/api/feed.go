package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fritter-app/fritter/internal/feed"
	"github.com/fritter-app/fritter/pkg/logging"
	"github.com/fritter-app/fritter/pkg/telemetry"
)

// FeedAPI provides the personalized feed handler
type FeedAPI struct {
	assembler *feed.Assembler
	logger    *zap.Logger
}

// NewFeedAPI creates a new feed API
func NewFeedAPI(assembler *feed.Assembler) *FeedAPI {
	return &FeedAPI{
		assembler: assembler,
		logger:    logging.GetLogger().With(zap.String("component", "api-feed")),
	}
}

// Get handles GET /api/feed. Assembling the feed reaps the viewer's
// expired mutes as a side effect.
func (f *FeedAPI) Get(c *gin.Context) {
	viewer, ok := requireViewer(c)
	if !ok {
		return
	}

	ctx, span := telemetry.StartSpan(c.Request.Context(), "api.feed.get")
	defer span.End()

	items, err := f.assembler.Assemble(ctx, viewer)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]FreetResponse, 0, len(items))
	for _, item := range items {
		response = append(response, newFreetResponse(item.Freet, item.AuthorUsername))
	}

	c.JSON(http.StatusOK, response)
}
