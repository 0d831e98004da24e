package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fritter-app/fritter/internal/db"
	"github.com/fritter-app/fritter/internal/models"
	"github.com/fritter-app/fritter/pkg/logging"
)

// FollowAPI provides follow-related handlers
type FollowAPI struct {
	repo   *db.Repository
	logger *zap.Logger
}

// NewFollowAPI creates a new follow API
func NewFollowAPI(repo *db.Repository) *FollowAPI {
	return &FollowAPI{
		repo:   repo,
		logger: logging.GetLogger().With(zap.String("component", "api-follows")),
	}
}

type followRequest struct {
	Username string `json:"username"`
}

// Create handles POST /api/follows. The viewer follows the named user.
func (f *FollowAPI) Create(c *gin.Context) {
	viewer, ok := requireViewer(c)
	if !ok {
		return
	}

	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required field: username"})
		return
	}

	ctx := c.Request.Context()
	userRepo := db.NewUserRepository(f.repo)
	target, err := userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	follow := &models.Follow{
		FollowerID:  viewer,
		FollowingID: target.ID,
		CreatedAt:   time.Now().UTC(),
	}
	followRepo := db.NewFollowRepository(f.repo)
	if err := followRepo.Create(ctx, follow); err != nil {
		respondError(c, err)
		return
	}

	f.logger.Info("Follow created",
		zap.Int64("follower", viewer),
		zap.Int64("following", target.ID))

	c.JSON(http.StatusCreated, gin.H{"message": "You are now following " + req.Username + "."})
}

// Delete handles DELETE /api/follows/:username. The viewer unfollows.
func (f *FollowAPI) Delete(c *gin.Context) {
	viewer, ok := requireViewer(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	userRepo := db.NewUserRepository(f.repo)
	target, err := userRepo.GetByUsername(ctx, c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	followRepo := db.NewFollowRepository(f.repo)
	if err := followRepo.Delete(ctx, viewer, target.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "You are no longer following " + c.Param("username") + "."})
}

// ListFollowing handles GET /api/follows/following
func (f *FollowAPI) ListFollowing(c *gin.Context) {
	viewer, ok := requireViewer(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	followRepo := db.NewFollowRepository(f.repo)
	follows, err := followRepo.ListFollowing(ctx, viewer)
	if err != nil {
		respondError(c, err)
		return
	}

	names, err := f.resolveNames(c, follows, false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, names)
}

// ListFollowers handles GET /api/follows/followers
func (f *FollowAPI) ListFollowers(c *gin.Context) {
	viewer, ok := requireViewer(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	followRepo := db.NewFollowRepository(f.repo)
	follows, err := followRepo.ListFollowers(ctx, viewer)
	if err != nil {
		respondError(c, err)
		return
	}

	names, err := f.resolveNames(c, follows, true)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, names)
}

// resolveNames maps follow edges to the usernames on the far end
func (f *FollowAPI) resolveNames(c *gin.Context, follows []models.Follow, followers bool) ([]string, error) {
	ctx := c.Request.Context()
	userRepo := db.NewUserRepository(f.repo)

	names := make([]string, 0, len(follows))
	for _, follow := range follows {
		id := follow.FollowingID
		if followers {
			id = follow.FollowerID
		}
		user, err := userRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		names = append(names, user.Username)
	}
	return names, nil
}
