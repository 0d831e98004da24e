package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fritter-app/fritter/internal/db"
	"github.com/fritter-app/fritter/internal/models"
	"github.com/fritter-app/fritter/internal/mute"
	"github.com/fritter-app/fritter/pkg/logging"
)

// MuteAPI provides mute-related handlers
type MuteAPI struct {
	repo   *db.Repository
	logger *zap.Logger
}

// NewMuteAPI creates a new mute API
func NewMuteAPI(repo *db.Repository) *MuteAPI {
	return &MuteAPI{
		repo:   repo,
		logger: logging.GetLogger().With(zap.String("component", "api-mutes")),
	}
}

// createMuteRequest mirrors the mute creation form: every field optional,
// hour/minute pairs where either half marks the pair as supplied
type createMuteRequest struct {
	Phrase        string `json:"phrase"`
	Account       string `json:"account"`
	CircleName    string `json:"circlename"`
	DurationHours *int   `json:"durationHours"`
	DurationMins  *int   `json:"durationMins"`
	StartHours    *int   `json:"startHours"`
	StartMins     *int   `json:"startMins"`
	EndHours      *int   `json:"endHours"`
	EndMins       *int   `json:"endMins"`
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// validClock reports whether an optional hour/minute pair is in clock
// range. An absent half counts as zero.
func validClock(hours, mins *int) bool {
	h, m := intOrZero(hours), intOrZero(mins)
	return h >= 0 && h <= 23 && m >= 0 && m <= 59
}

// Create handles POST /api/mutes
func (m *MuteAPI) Create(c *gin.Context) {
	viewer, ok := requireViewer(c)
	if !ok {
		return
	}

	var req createMuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx := c.Request.Context()
	params := models.MuteParams{Phrase: req.Phrase}

	accountUsername := ""
	if req.Account != "" {
		userRepo := db.NewUserRepository(m.repo)
		account, err := userRepo.GetByUsername(ctx, req.Account)
		if err != nil {
			respondError(c, err)
			return
		}

		// Only followed accounts can be muted by account
		followRepo := db.NewFollowRepository(m.repo)
		if _, err := followRepo.Get(ctx, viewer, account.ID); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "you are not following account " + req.Account})
				return
			}
			respondError(c, err)
			return
		}

		params.AccountID = account.ID
		accountUsername = account.Username
	}

	if req.CircleName != "" {
		circleRepo := db.NewCircleRepository(m.repo)
		exists, err := circleRepo.Exists(ctx, req.CircleName, viewer)
		if err != nil {
			respondError(c, err)
			return
		}
		if !exists {
			c.JSON(http.StatusBadRequest, gin.H{"error": "the specified circle does not exist"})
			return
		}
		params.CircleName = req.CircleName
	}

	if req.DurationHours != nil || req.DurationMins != nil {
		params.HasDuration = true
		params.Duration = time.Duration(intOrZero(req.DurationHours))*time.Hour +
			time.Duration(intOrZero(req.DurationMins))*time.Minute
	}
	if req.StartHours != nil || req.StartMins != nil {
		if !validClock(req.StartHours, req.StartMins) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start time must use hours 0-23 and minutes 0-59"})
			return
		}
		params.HasStart = true
		params.StartMins = mute.ClockMins(intOrZero(req.StartHours), intOrZero(req.StartMins))
	}
	if req.EndHours != nil || req.EndMins != nil {
		if !validClock(req.EndHours, req.EndMins) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end time must use hours 0-23 and minutes 0-59"})
			return
		}
		params.HasEnd = true
		params.EndMins = mute.ClockMins(intOrZero(req.EndHours), intOrZero(req.EndMins))
	}

	rule, err := models.NewMute(viewer, params, time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}

	muteRepo := db.NewMuteRepository(m.repo)
	if err := muteRepo.Create(ctx, rule); err != nil {
		respondError(c, err)
		return
	}

	m.logger.Info("Mute created", zap.Int64("mute_id", rule.ID), zap.Int64("owner_id", viewer))

	c.JSON(http.StatusCreated, gin.H{
		"message": "Your mute was created successfully.",
		"mute":    newMuteResponse(*rule, accountUsername),
	})
}

// List handles GET /api/mutes. Returns the viewer's full rule set without
// reaping; expiry only runs on feed evaluation
func (m *MuteAPI) List(c *gin.Context) {
	viewer, ok := requireViewer(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	muteRepo := db.NewMuteRepository(m.repo)
	mutes, err := muteRepo.ListByOwner(ctx, viewer)
	if err != nil {
		respondError(c, err)
		return
	}

	userRepo := db.NewUserRepository(m.repo)
	response := make([]MuteResponse, 0, len(mutes))
	for _, rule := range mutes {
		accountUsername := ""
		if rule.AccountID.Valid {
			account, err := userRepo.GetByID(ctx, rule.AccountID.Int64)
			if err != nil {
				respondError(c, err)
				return
			}
			accountUsername = account.Username
		}
		response = append(response, newMuteResponse(rule, accountUsername))
	}

	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /api/mutes/:muteId
func (m *MuteAPI) Delete(c *gin.Context) {
	viewer, ok := requireViewer(c)
	if !ok {
		return
	}

	muteID, err := strconv.ParseInt(c.Param("muteId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "mute not found"})
		return
	}

	ctx := c.Request.Context()
	muteRepo := db.NewMuteRepository(m.repo)
	rule, err := muteRepo.GetByID(ctx, muteID)
	if err != nil {
		respondError(c, err)
		return
	}
	if rule.OwnerID != viewer {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot modify other users' mutes"})
		return
	}

	if err := muteRepo.Delete(ctx, muteID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Your mute was deleted successfully."})
}
