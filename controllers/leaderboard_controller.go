// file: controllers/leaderboard_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/builders-garden/just-frame-it/database"
	"github.com/builders-garden/just-frame-it/models"
	"github.com/builders-garden/just-frame-it/services"
	"github.com/builders-garden/just-frame-it/utils"
)

type LeaderboardController struct{}

func NewLeaderboardController() *LeaderboardController {
	return &LeaderboardController{}
}

// Leaderboard returns every team's summed points, highest first. Team votes
// mutate by full replacement, so the aggregation is recomputed on every
// request and the response is marked uncacheable.
func (l *LeaderboardController) Leaderboard(c *gin.Context) {
	standings, err := services.Leaderboard(database.DB)
	if err != nil {
		utils.Internal(c, "failed to compute leaderboard")
		return
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, gin.H{"leaderboard": standings})
}

// TeamVotes returns the raw team-vote rows for one demo day.
func (l *LeaderboardController) TeamVotes(c *gin.Context) {
	demoDay := models.DemoDay(c.Query("demoDay"))
	if !models.ValidDemoDay(demoDay) {
		utils.BadRequest(c, "invalid or missing demoDay")
		return
	}

	var votes []models.TeamVote
	if err := database.DB.Where("demo_day = ?", demoDay).
		Order("team_name asc, voter_fid asc").Find(&votes).Error; err != nil {
		utils.Internal(c, "failed to list team votes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"demo_day": demoDay, "votes": votes})
}
