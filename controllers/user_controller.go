// file: controllers/user_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/builders-garden/just-frame-it/middlewares"
	"github.com/builders-garden/just-frame-it/services"
	"github.com/builders-garden/just-frame-it/utils"
)

type UserController struct {
	Neynar *services.NeynarClient
}

func NewUserController(neynar *services.NeynarClient) *UserController {
	return &UserController{Neynar: neynar}
}

// Me returns the caller's Farcaster profile.
func (u *UserController) Me(c *gin.Context) {
	fid, ok := middlewares.Fid(c)
	if !ok {
		utils.Unauthenticated(c, "authentication required")
		return
	}

	user, err := u.Neynar.UserByFid(c.Request.Context(), fid)
	if err != nil {
		u.writeNeynarError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Search proxies a profile search to Neynar.
func (u *UserController) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		utils.BadRequest(c, "q is required")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	users, err := u.Neynar.SearchUsers(c.Request.Context(), query, limit)
	if err != nil {
		u.writeNeynarError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// BulkByFids resolves a comma-separated fid list to profiles. Public: the
// client uses it to render team members before anyone signs in.
func (u *UserController) BulkByFids(c *gin.Context) {
	raw := c.Query("fids")
	if raw == "" {
		utils.BadRequest(c, "fids is required")
		return
	}

	var fids []uint64
	for _, part := range strings.Split(raw, ",") {
		fid, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil || fid == 0 {
			utils.BadRequest(c, "malformed fid list")
			return
		}
		fids = append(fids, fid)
	}
	if len(fids) > 100 {
		utils.BadRequest(c, "at most 100 fids per request")
		return
	}

	users, err := u.Neynar.UsersByFids(c.Request.Context(), fids)
	if err != nil {
		u.writeNeynarError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (u *UserController) writeNeynarError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFound(c, "user not found")
	case errors.Is(err, services.ErrUpstream):
		utils.Upstream(c, "profile service unavailable")
	default:
		utils.Internal(c, "profile lookup failed")
	}
}
