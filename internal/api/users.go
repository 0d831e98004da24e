package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fritter-app/fritter/internal/db"
	"github.com/fritter-app/fritter/internal/models"
	"github.com/fritter-app/fritter/pkg/config"
	"github.com/fritter-app/fritter/pkg/logging"
)

// UserAPI provides user-related handlers
type UserAPI struct {
	repo   *db.Repository
	cfg    config.FritterConfig
	logger *zap.Logger
}

// NewUserAPI creates a new user API
func NewUserAPI(repo *db.Repository, cfg config.FritterConfig) *UserAPI {
	return &UserAPI{
		repo:   repo,
		cfg:    cfg,
		logger: logging.GetLogger().With(zap.String("component", "api-users")),
	}
}

type createUserRequest struct {
	Username string `json:"username"`
}

// Create handles POST /api/users
func (u *UserAPI) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || len(username) > u.cfg.MaxUsernameLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username must be between 1 and " +
			strconv.Itoa(u.cfg.MaxUsernameLength) + " characters"})
		return
	}

	user := &models.User{
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
	userRepo := db.NewUserRepository(u.repo)
	if err := userRepo.Create(c.Request.Context(), user); err != nil {
		respondError(c, err)
		return
	}

	u.logger.Info("User created", zap.Int64("user_id", user.ID), zap.String("username", user.Username))

	c.JSON(http.StatusCreated, gin.H{
		"message": "Your account was created successfully.",
		"user":    gin.H{"id": user.ID, "username": user.Username},
	})
}

// Get handles GET /api/users/:username
func (u *UserAPI) Get(c *gin.Context) {
	username := c.Param("username")

	userRepo := db.NewUserRepository(u.repo)
	user, err := userRepo.GetByUsername(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": user.ID, "username": user.Username})
}

// Delete handles DELETE /api/users. The viewer removes their own account,
// which cascades to their freets, follows, circles, and mutes.
func (u *UserAPI) Delete(c *gin.Context) {
	viewer, ok := requireViewer(c)
	if !ok {
		return
	}

	userRepo := db.NewUserRepository(u.repo)
	if err := userRepo.Delete(c.Request.Context(), viewer); err != nil {
		respondError(c, err)
		return
	}

	u.logger.Info("User deleted", zap.Int64("user_id", viewer))

	c.JSON(http.StatusOK, gin.H{"message": "Your account was deleted successfully."})
}
