// file: controllers/judging_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/builders-garden/just-frame-it/config"
	"github.com/builders-garden/just-frame-it/database"
	"github.com/builders-garden/just-frame-it/dto"
	"github.com/builders-garden/just-frame-it/middlewares"
	"github.com/builders-garden/just-frame-it/models"
	"github.com/builders-garden/just-frame-it/services"
	"github.com/builders-garden/just-frame-it/utils"
)

type JudgingController struct {
	Allowlist *config.Allowlist
}

func NewJudgingController(allowlist *config.Allowlist) *JudgingController {
	return &JudgingController{Allowlist: allowlist}
}

// SubmitTeamVotes records a judge's demo-day point allocation: exactly 10
// points over at most 4 teams. The submission replaces every prior row for
// this judge, across all demo days, inside one transaction.
func (j *JudgingController) SubmitTeamVotes(c *gin.Context) {
	fid, ok := middlewares.Fid(c)
	if !ok {
		utils.Unauthenticated(c, "authentication required")
		return
	}
	if !j.Allowlist.CanVote(fid) {
		utils.Forbidden(c, "not on the judging panel")
		return
	}

	var req dto.SubmitTeamVotesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body")
		return
	}

	alloc := make(map[string]services.AllocationEntry, len(req.Votes))
	for team, entry := range req.Votes {
		alloc[team] = services.AllocationEntry{Points: entry.Points, Notes: entry.Notes}
	}

	err := services.ReplaceTeamVotes(database.DB, fid, models.DemoDay(req.DemoDay), alloc)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.Internal(c, "failed to record team votes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"demo_day": req.DemoDay, "teams": len(alloc)})
}

// MyTeamVotes returns the caller's own point allocation for a demo day.
func (j *JudgingController) MyTeamVotes(c *gin.Context) {
	fid, ok := middlewares.Fid(c)
	if !ok {
		utils.Unauthenticated(c, "authentication required")
		return
	}

	demoDay := models.DemoDay(c.Query("demoDay"))
	if !models.ValidDemoDay(demoDay) {
		utils.BadRequest(c, "invalid or missing demoDay")
		return
	}

	var votes []models.TeamVote
	if err := database.DB.
		Where("voter_fid = ? AND demo_day = ?", fid, demoDay).
		Order("team_name asc").Find(&votes).Error; err != nil {
		utils.Internal(c, "failed to list team votes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"demo_day": demoDay, "votes": votes})
}
