// file: controllers/application_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/builders-garden/just-frame-it/database"
	"github.com/builders-garden/just-frame-it/dto"
	"github.com/builders-garden/just-frame-it/middlewares"
	"github.com/builders-garden/just-frame-it/models"
	"github.com/builders-garden/just-frame-it/services"
	"github.com/builders-garden/just-frame-it/utils"
)

type ApplicationController struct{}

func NewApplicationController() *ApplicationController {
	return &ApplicationController{}
}

// List returns a page of applications with their vote aggregates, ranked by
// total score (default) or average score in either direction. An optional
// username filter matches any team member.
func (a *ApplicationController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	sortBy := c.DefaultQuery("sort", services.SortByTotal)
	if sortBy != services.SortByTotal && sortBy != services.SortByAvg {
		utils.BadRequest(c, "sort must be 'total' or 'avg'")
		return
	}
	desc := c.DefaultQuery("order", "desc") != "asc"

	db := database.DB.Model(&models.Application{}).
		Preload("Members").
		Preload("Votes")

	if username := c.Query("username"); username != "" {
		sub := database.DB.Model(&models.ApplicationMember{}).
			Select("application_id").
			Where("username LIKE ?", "%"+username+"%")
		db = db.Where("id IN (?)", sub)
	}

	// Rank the full result set before paginating: a page boundary must never
	// change where an application sorts.
	var apps []models.Application
	if err := db.Order("id asc").Find(&apps).Error; err != nil {
		utils.Internal(c, "failed to list applications")
		return
	}

	ranked := services.RankApplications(apps, sortBy, desc)
	total := int64(len(ranked))

	start := (page - 1) * pageSize
	if start > len(ranked) {
		start = len(ranked)
	}
	end := start + pageSize
	if end > len(ranked) {
		end = len(ranked)
	}

	c.JSON(http.StatusOK, dto.PageResp{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Items:    ranked[start:end],
	})
}

// Create handles POST /apply. The authenticated caller is always member 1;
// applications are immutable once created.
func (a *ApplicationController) Create(c *gin.Context) {
	fid, ok := middlewares.Fid(c)
	if !ok {
		utils.Unauthenticated(c, "authentication required")
		return
	}

	var req dto.CreateApplicationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body")
		return
	}
	if req.ProjectName == "" || req.Description == "" || req.Motivation == "" || req.RepoURL == "" {
		utils.BadRequest(c, "project_name, description, motivation and repo_url are required")
		return
	}
	if len(req.Members) == 0 {
		utils.BadRequest(c, "at least one team member is required")
		return
	}
	if len(req.Members) > models.MaxTeamMembers {
		utils.BadRequest(c, "a team has at most 3 members")
		return
	}
	if req.Members[0].Fid != fid {
		utils.BadRequest(c, "the first team member must be the submitter")
		return
	}
	for i, m := range req.Members {
		if m.Fid == 0 {
			utils.BadRequest(c, "member "+strconv.Itoa(i+1)+" is missing a fid")
			return
		}
	}

	app := models.Application{
		ProjectName:       req.ProjectName,
		Description:       req.Description,
		Motivation:        req.Motivation,
		PriorWork:         req.PriorWork,
		RepoURL:           req.RepoURL,
		ResidencyEligible: req.ResidencyEligible,
	}
	for i, m := range req.Members {
		app.Members = append(app.Members, models.ApplicationMember{
			Position:    i + 1,
			Fid:         m.Fid,
			DisplayName: m.DisplayName,
			Username:    m.Username,
			AvatarURL:   m.AvatarURL,
		})
	}

	if err := database.DB.Create(&app).Error; err != nil {
		utils.Internal(c, "failed to create application")
		return
	}

	c.JSON(http.StatusCreated, app)
}
