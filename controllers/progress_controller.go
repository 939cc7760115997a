// file: controllers/progress_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/builders-garden/just-frame-it/config"
	"github.com/builders-garden/just-frame-it/database"
	"github.com/builders-garden/just-frame-it/dto"
	"github.com/builders-garden/just-frame-it/middlewares"
	"github.com/builders-garden/just-frame-it/models"
	"github.com/builders-garden/just-frame-it/utils"
)

type ProgressController struct {
	Allowlist *config.Allowlist
}

func NewProgressController(allowlist *config.Allowlist) *ProgressController {
	return &ProgressController{Allowlist: allowlist}
}

// Create records a progress update for the caller's team. The team name is
// resolved from the injected fid-to-team map, never taken from the payload.
func (p *ProgressController) Create(c *gin.Context) {
	fid, ok := middlewares.Fid(c)
	if !ok {
		utils.Unauthenticated(c, "authentication required")
		return
	}
	if !p.Allowlist.CanReport(fid) {
		utils.Forbidden(c, "not allowed to post progress updates")
		return
	}
	team := p.Allowlist.TeamFor(fid)
	if team == "" {
		utils.Forbidden(c, "no team registered for this account")
		return
	}

	var req dto.CreateProgressUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body")
		return
	}
	if req.KeyFeatures == "" || req.UserEngagement == "" || req.Challenges == "" || req.NextSteps == "" {
		utils.BadRequest(c, "key_features, user_engagement, challenges and next_steps are required")
		return
	}

	update := models.ProgressUpdate{
		TeamName:            team,
		DemoLink:            req.DemoLink,
		KeyFeatures:         req.KeyFeatures,
		UserEngagement:      req.UserEngagement,
		Challenges:          req.Challenges,
		NextSteps:           req.NextSteps,
		TechnicalMilestones: req.TechnicalMilestones,
		AdditionalNotes:     req.AdditionalNotes,
		AuthorFid:           fid,
		AuthorDisplayName:   req.AuthorDisplayName,
		AuthorUsername:      req.AuthorUsername,
	}
	if err := database.DB.Create(&update).Error; err != nil {
		utils.Internal(c, "failed to create progress update")
		return
	}

	c.JSON(http.StatusCreated, update)
}

// List returns progress updates newest first, optionally filtered by team.
func (p *ProgressController) List(c *gin.Context) {
	db := database.DB.Model(&models.ProgressUpdate{})
	if team := c.Query("team"); team != "" {
		db = db.Where("team_name = ?", team)
	}

	var updates []models.ProgressUpdate
	if err := db.Order("created_at desc").Find(&updates).Error; err != nil {
		utils.Internal(c, "failed to list progress updates")
		return
	}

	c.JSON(http.StatusOK, gin.H{"updates": updates})
}

// Update replaces the supplied narrative fields in place. Only the author may
// edit; the check ladder is 401 (no identity), 404 (no record), 403 (someone
// else's record). Last write wins.
func (p *ProgressController) Update(c *gin.Context) {
	update, ok := p.ownedUpdate(c)
	if !ok {
		return
	}

	var req dto.UpdateProgressUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body")
		return
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&update.DemoLink, req.DemoLink)
	apply(&update.KeyFeatures, req.KeyFeatures)
	apply(&update.UserEngagement, req.UserEngagement)
	apply(&update.Challenges, req.Challenges)
	apply(&update.NextSteps, req.NextSteps)
	apply(&update.TechnicalMilestones, req.TechnicalMilestones)
	apply(&update.AdditionalNotes, req.AdditionalNotes)

	if update.KeyFeatures == "" || update.UserEngagement == "" || update.Challenges == "" || update.NextSteps == "" {
		utils.BadRequest(c, "required narrative fields cannot be cleared")
		return
	}

	if err := database.DB.Save(update).Error; err != nil {
		utils.Internal(c, "failed to update progress update")
		return
	}

	c.JSON(http.StatusOK, update)
}

// Delete removes the caller's own progress update.
func (p *ProgressController) Delete(c *gin.Context) {
	update, ok := p.ownedUpdate(c)
	if !ok {
		return
	}

	if err := database.DB.Delete(update).Error; err != nil {
		utils.Internal(c, "failed to delete progress update")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": update.ID})
}

// ownedUpdate loads the addressed record and enforces the ownership ladder.
// It writes the error response itself and returns ok=false on any failure.
func (p *ProgressController) ownedUpdate(c *gin.Context) (*models.ProgressUpdate, bool) {
	fid, ok := middlewares.Fid(c)
	if !ok {
		utils.Unauthenticated(c, "authentication required")
		return nil, false
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		utils.BadRequest(c, "invalid progress update id")
		return nil, false
	}

	var update models.ProgressUpdate
	if err := database.DB.First(&update, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "progress update not found")
			return nil, false
		}
		utils.Internal(c, "database error")
		return nil, false
	}

	if update.AuthorFid != fid {
		utils.Forbidden(c, "only the author may modify this update")
		return nil, false
	}

	return &update, true
}
