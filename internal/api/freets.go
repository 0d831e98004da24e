package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fritter-app/fritter/internal/cache"
	"github.com/fritter-app/fritter/internal/db"
	"github.com/fritter-app/fritter/internal/feed"
	"github.com/fritter-app/fritter/internal/models"
	"github.com/fritter-app/fritter/pkg/config"
	"github.com/fritter-app/fritter/pkg/logging"
)

// FreetAPI provides freet-related handlers
type FreetAPI struct {
	repo   *db.Repository
	cache  *cache.Cache
	cfg    config.FritterConfig
	logger *zap.Logger
}

// NewFreetAPI creates a new freet API
func NewFreetAPI(repo *db.Repository, redisCache *cache.Cache, cfg config.FritterConfig) *FreetAPI {
	return &FreetAPI{
		repo:   repo,
		cache:  redisCache,
		cfg:    cfg,
		logger: logging.GetLogger().With(zap.String("component", "api-freets")),
	}
}

type createFreetRequest struct {
	Content    string `json:"content"`
	CircleName string `json:"circlename"`
}

// Create handles POST /api/freets
func (f *FreetAPI) Create(c *gin.Context) {
	viewer, ok := requireViewer(c)
	if !ok {
		return
	}

	var req createFreetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := models.ValidateContent(req.Content, f.cfg.MaxFreetLength); err != nil {
		respondError(c, err)
		return
	}

	ctx := c.Request.Context()

	if req.CircleName != "" {
		circleRepo := db.NewCircleRepository(f.repo)
		exists, err := circleRepo.Exists(ctx, req.CircleName, viewer)
		if err != nil {
			respondError(c, err)
			return
		}
		if !exists {
			c.JSON(http.StatusBadRequest, gin.H{"error": "the specified circle does not exist"})
			return
		}
	}

	freet := models.NewFreet(viewer, req.Content, req.CircleName, time.Now().UTC())
	freetRepo := db.NewFreetRepository(f.repo)
	if err := freetRepo.Create(ctx, freet); err != nil {
		respondError(c, err)
		return
	}

	userRepo := db.NewUserRepository(f.repo)
	author, err := userRepo.GetByID(ctx, viewer)
	if err != nil {
		respondError(c, err)
		return
	}

	f.logger.Info("Freet created", zap.Int64("freet_id", freet.ID), zap.Int64("author_id", viewer))

	c.JSON(http.StatusCreated, gin.H{
		"message": "Your freet was created successfully.",
		"freet":   newFreetResponse(*freet, author.Username),
	})
}

// ListAll handles GET /api/freets: every freet the viewer may see, most
// recently modified first. The anonymous listing (public freets only) is
// served from cache when redis is configured.
func (f *FreetAPI) ListAll(c *gin.Context) {
	viewer := viewerID(c)
	ctx := c.Request.Context()

	cacheKey := cache.HashKey("freets", "all", "anon")
	if viewer == 0 && f.cache != nil {
		var cached []FreetResponse
		if err := f.cache.GetJSON(cacheKey, &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	freetRepo := db.NewFreetRepository(f.repo)
	freets, err := freetRepo.ListAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	response, err := f.visibleResponses(c, freets, viewer)
	if err != nil {
		respondError(c, err)
		return
	}

	if viewer == 0 && f.cache != nil {
		if err := f.cache.SetJSON(cacheKey, response, f.cfg.FreetCacheTTL); err != nil {
			f.logger.Warn("Failed to cache freet listing", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, response)
}

// ListByAuthor handles GET /api/freets/author/:username
func (f *FreetAPI) ListByAuthor(c *gin.Context) {
	viewer := viewerID(c)
	ctx := c.Request.Context()

	userRepo := db.NewUserRepository(f.repo)
	author, err := userRepo.GetByUsername(ctx, c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	freetRepo := db.NewFreetRepository(f.repo)
	freets, err := freetRepo.ListByAuthor(ctx, author.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	response, err := f.visibleResponses(c, freets, viewer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

type updateFreetRequest struct {
	Content     *string `json:"content"`
	CircleName  *string `json:"circlename"`
	ClearCircle bool    `json:"clearCircle"`
}

// Update handles PUT /api/freets/:freetId. Content edits bump modified_at;
// the circle scope can be set or cleared independently
func (f *FreetAPI) Update(c *gin.Context) {
	viewer, ok := requireViewer(c)
	if !ok {
		return
	}

	freetID, err := strconv.ParseInt(c.Param("freetId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "freet not found"})
		return
	}

	var req updateFreetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx := c.Request.Context()
	freetRepo := db.NewFreetRepository(f.repo)
	freet, err := freetRepo.GetByID(ctx, freetID)
	if err != nil {
		respondError(c, err)
		return
	}
	if freet.AuthorID != viewer {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot modify other users' freets"})
		return
	}

	if req.Content != nil {
		if err := models.ValidateContent(*req.Content, f.cfg.MaxFreetLength); err != nil {
			respondError(c, err)
			return
		}
		freet.Content = *req.Content
		freet.ModifiedAt = time.Now().UTC()
		if err := freetRepo.UpdateContent(ctx, freet); err != nil {
			respondError(c, err)
			return
		}
	}

	if req.ClearCircle {
		if err := freetRepo.UpdateCircle(ctx, freet.ID, ""); err != nil {
			respondError(c, err)
			return
		}
	} else if req.CircleName != nil && *req.CircleName != "" {
		circleRepo := db.NewCircleRepository(f.repo)
		exists, err := circleRepo.Exists(ctx, *req.CircleName, viewer)
		if err != nil {
			respondError(c, err)
			return
		}
		if !exists {
			c.JSON(http.StatusBadRequest, gin.H{"error": "the specified circle does not exist"})
			return
		}
		if err := freetRepo.UpdateCircle(ctx, freet.ID, *req.CircleName); err != nil {
			respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Your freet was updated successfully."})
}

// Delete handles DELETE /api/freets/:freetId
func (f *FreetAPI) Delete(c *gin.Context) {
	viewer, ok := requireViewer(c)
	if !ok {
		return
	}

	freetID, err := strconv.ParseInt(c.Param("freetId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "freet not found"})
		return
	}

	ctx := c.Request.Context()
	freetRepo := db.NewFreetRepository(f.repo)
	freet, err := freetRepo.GetByID(ctx, freetID)
	if err != nil {
		respondError(c, err)
		return
	}
	if freet.AuthorID != viewer {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot delete other users' freets"})
		return
	}

	if err := freetRepo.Delete(ctx, freetID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Your freet was deleted successfully."})
}

// visibleResponses applies the circle-visibility gate and resolves author
// usernames for a batch of freets
func (f *FreetAPI) visibleResponses(c *gin.Context, freets []models.Freet, viewer int64) ([]FreetResponse, error) {
	ctx := c.Request.Context()
	circleRepo := db.NewCircleRepository(f.repo)
	userRepo := db.NewUserRepository(f.repo)

	usernames := make(map[int64]string)
	response := make([]FreetResponse, 0, len(freets))
	for _, freet := range freets {
		visible, err := feed.Visible(ctx, circleRepo, freet, viewer)
		if err != nil {
			return nil, err
		}
		if !visible {
			continue
		}

		name, ok := usernames[freet.AuthorID]
		if !ok {
			author, err := userRepo.GetByID(ctx, freet.AuthorID)
			if err != nil {
				return nil, err
			}
			name = author.Username
			usernames[freet.AuthorID] = name
		}
		response = append(response, newFreetResponse(freet, name))
	}
	return response, nil
}
