// file: controllers/vote_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/builders-garden/just-frame-it/config"
	"github.com/builders-garden/just-frame-it/database"
	"github.com/builders-garden/just-frame-it/dto"
	"github.com/builders-garden/just-frame-it/middlewares"
	"github.com/builders-garden/just-frame-it/models"
	"github.com/builders-garden/just-frame-it/services"
	"github.com/builders-garden/just-frame-it/utils"
)

type VoteController struct {
	Allowlist *config.Allowlist
}

func NewVoteController(allowlist *config.Allowlist) *VoteController {
	return &VoteController{Allowlist: allowlist}
}

// Submit records one judge's scores for one application. Resubmitting for the
// same application overwrites the judge's previous row; nothing is recomputed
// eagerly, totals are derived at read time.
func (v *VoteController) Submit(c *gin.Context) {
	fid, ok := middlewares.Fid(c)
	if !ok {
		utils.Unauthenticated(c, "authentication required")
		return
	}
	if !v.Allowlist.CanVote(fid) {
		utils.Forbidden(c, "not on the judging panel")
		return
	}

	var req dto.SubmitVoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body")
		return
	}
	if req.ApplicationID == 0 {
		utils.BadRequest(c, "application_id is required")
		return
	}
	if req.Experience == nil || req.Idea == nil || req.Virality == nil {
		utils.BadRequest(c, "experience, idea and virality are required")
		return
	}
	if err := services.ValidateScores(*req.Experience, *req.Idea, *req.Virality); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var app models.Application
	if err := database.DB.First(&app, req.ApplicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "application not found")
			return
		}
		utils.Internal(c, "database error")
		return
	}

	vote := models.Vote{
		ApplicationID: req.ApplicationID,
		VoterFid:      fid,
		Experience:    *req.Experience,
		Idea:          *req.Idea,
		Virality:      *req.Virality,
		Signature:     req.Signature,
	}
	if err := services.UpsertVote(database.DB, &vote); err != nil {
		utils.Internal(c, "failed to record vote")
		return
	}

	c.JSON(http.StatusOK, vote)
}

// List returns the caller's own application-level votes.
func (v *VoteController) List(c *gin.Context) {
	fid, ok := middlewares.Fid(c)
	if !ok {
		utils.Unauthenticated(c, "authentication required")
		return
	}

	var votes []models.Vote
	if err := database.DB.Where("voter_fid = ?", fid).
		Order("application_id asc").Find(&votes).Error; err != nil {
		utils.Internal(c, "failed to list votes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"votes": votes})
}
