package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fritter-app/fritter/internal/db"
	"github.com/fritter-app/fritter/internal/models"
	"github.com/fritter-app/fritter/pkg/logging"
)

// CircleAPI provides circle-membership handlers
type CircleAPI struct {
	repo   *db.Repository
	logger *zap.Logger
}

// NewCircleAPI creates a new circle API
func NewCircleAPI(repo *db.Repository) *CircleAPI {
	return &CircleAPI{
		repo:   repo,
		logger: logging.GetLogger().With(zap.String("component", "api-circles")),
	}
}

type addMemberRequest struct {
	CircleName string `json:"circlename"`
	Member     string `json:"member"`
}

// Create handles POST /api/circles. The viewer adds a member to one of
// their circles; the circle comes into being with its first member
func (ca *CircleAPI) Create(c *gin.Context) {
	viewer, ok := requireViewer(c)
	if !ok {
		return
	}

	var req addMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CircleName == "" || req.Member == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields: circlename, member"})
		return
	}

	ctx := c.Request.Context()
	userRepo := db.NewUserRepository(ca.repo)
	member, err := userRepo.GetByUsername(ctx, req.Member)
	if err != nil {
		respondError(c, err)
		return
	}

	circle := &models.Circle{
		CircleName: req.CircleName,
		OwnerID:    viewer,
		MemberID:   member.ID,
	}
	circleRepo := db.NewCircleRepository(ca.repo)
	if err := circleRepo.Create(ctx, circle); err != nil {
		respondError(c, err)
		return
	}

	ca.logger.Info("Circle membership created",
		zap.Int64("owner", viewer),
		zap.String("circle", req.CircleName),
		zap.Int64("member", member.ID))

	c.JSON(http.StatusCreated, gin.H{
		"message": req.Member + " was added to circle " + req.CircleName + ".",
	})
}

// List handles GET /api/circles. Returns the viewer's circles grouped by name.
func (ca *CircleAPI) List(c *gin.Context) {
	viewer, ok := requireViewer(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	circleRepo := db.NewCircleRepository(ca.repo)
	circles, err := circleRepo.ListByOwner(ctx, viewer)
	if err != nil {
		respondError(c, err)
		return
	}

	userRepo := db.NewUserRepository(ca.repo)
	grouped := make(map[string][]string)
	order := make([]string, 0)
	for _, circle := range circles {
		member, err := userRepo.GetByID(ctx, circle.MemberID)
		if err != nil {
			respondError(c, err)
			return
		}
		if _, seen := grouped[circle.CircleName]; !seen {
			order = append(order, circle.CircleName)
		}
		grouped[circle.CircleName] = append(grouped[circle.CircleName], member.Username)
	}

	response := make([]gin.H, 0, len(order))
	for _, name := range order {
		response = append(response, gin.H{"circlename": name, "members": grouped[name]})
	}
	c.JSON(http.StatusOK, response)
}

// DeleteMembership handles DELETE /api/circles/:circlename/members/:username
func (ca *CircleAPI) DeleteMembership(c *gin.Context) {
	viewer, ok := requireViewer(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	userRepo := db.NewUserRepository(ca.repo)
	member, err := userRepo.GetByUsername(ctx, c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	circleRepo := db.NewCircleRepository(ca.repo)
	if err := circleRepo.DeleteMembership(ctx, c.Param("circlename"), viewer, member.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": c.Param("username") + " was removed from circle " + c.Param("circlename") + ".",
	})
}

// DeleteCircle handles DELETE /api/circles/:circlename. Removes every
// membership of the named circle
func (ca *CircleAPI) DeleteCircle(c *gin.Context) {
	viewer, ok := requireViewer(c)
	if !ok {
		return
	}

	circleRepo := db.NewCircleRepository(ca.repo)
	if err := circleRepo.DeleteCircle(c.Request.Context(), c.Param("circlename"), viewer); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Circle " + c.Param("circlename") + " was deleted successfully.",
	})
}
