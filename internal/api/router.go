package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fritter-app/fritter/internal/cache"
	"github.com/fritter-app/fritter/internal/db"
	"github.com/fritter-app/fritter/internal/feed"
	"github.com/fritter-app/fritter/internal/mute"
	"github.com/fritter-app/fritter/pkg/config"
	"github.com/fritter-app/fritter/pkg/logging"
)

// Router sets up API routes
type Router struct {
	db     *db.DB
	cache  *cache.Cache
	cfg    *config.Config
	logger *zap.Logger
}

// NewRouter creates a new API router
func NewRouter(database *db.DB, redisCache *cache.Cache, cfg *config.Config) *Router {
	return &Router{
		db:     database,
		cache:  redisCache,
		cfg:    cfg,
		logger: logging.GetLogger().With(zap.String("component", "api-router")),
	}
}

// SetupRoutes sets up all API routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check endpoints
	engine.GET("/health", r.healthHandler)
	engine.GET("/.well-known/healthcheck.json", r.healthHandler)

	repo := db.NewRepository(r.db.DB)

	users := NewUserAPI(repo, r.cfg.Fritter)
	freets := NewFreetAPI(repo, r.cache, r.cfg.Fritter)
	follows := NewFollowAPI(repo)
	circles := NewCircleAPI(repo)
	mutes := NewMuteAPI(repo)

	assembler := feed.NewAssembler(
		db.NewUserRepository(repo),
		db.NewFreetRepository(repo),
		db.NewFollowRepository(repo),
		db.NewCircleRepository(repo),
		mute.NewRelevance(db.NewMuteRepository(repo)),
	)
	feedAPI := NewFeedAPI(assembler)

	api := engine.Group("/api")

	api.POST("/users", users.Create)
	api.GET("/users/:username", users.Get)
	api.DELETE("/users", users.Delete)

	api.POST("/freets", freets.Create)
	api.GET("/freets", freets.ListAll)
	api.GET("/freets/author/:username", freets.ListByAuthor)
	api.PUT("/freets/:freetId", freets.Update)
	api.DELETE("/freets/:freetId", freets.Delete)

	api.POST("/follows", follows.Create)
	api.DELETE("/follows/:username", follows.Delete)
	api.GET("/follows/following", follows.ListFollowing)
	api.GET("/follows/followers", follows.ListFollowers)

	api.POST("/circles", circles.Create)
	api.GET("/circles", circles.List)
	api.DELETE("/circles/:circlename", circles.DeleteCircle)
	api.DELETE("/circles/:circlename/members/:username", circles.DeleteMembership)

	api.POST("/mutes", mutes.Create)
	api.GET("/mutes", mutes.List)
	api.DELETE("/mutes/:muteId", mutes.Delete)

	api.GET("/feed", feedAPI.Get)
}

// healthHandler handles health check requests
func (r *Router) healthHandler(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "OK",
		"service": "fritter-api",
	})
}
