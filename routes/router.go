// file: routes/router.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/builders-garden/just-frame-it/config"
	"github.com/builders-garden/just-frame-it/controllers"
	"github.com/builders-garden/just-frame-it/middlewares"
	"github.com/builders-garden/just-frame-it/services"
)

// SetupRouter wires every endpoint. The allow-list and secrets come in via
// cfg so the controllers carry no process-wide mutable state of their own.
func SetupRouter(cfg *config.Config, allowlist *config.Allowlist, neynar *services.NeynarClient) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.RequestIDMiddleware())

	auth := controllers.NewAuthController(cfg.JWTSecret, neynar)
	apps := controllers.NewApplicationController()
	votes := controllers.NewVoteController(allowlist)
	judging := controllers.NewJudgingController(allowlist)
	leaderboard := controllers.NewLeaderboardController()
	progress := controllers.NewProgressController(allowlist)
	users := controllers.NewUserController(neynar)
	webhook := controllers.NewWebhookController(cfg.WebhookSecret)

	authed := middlewares.JWTAuthMiddleware(cfg.JWTSecret)

	// Sign-in flow; everything else rides on the token issued here.
	r.GET("/auth/nonce", auth.Nonce)
	r.POST("/auth/sign-in", auth.SignIn)

	r.GET("/applications", authed, apps.List)
	r.POST("/apply", authed, apps.Create)

	r.POST("/votes", authed, votes.Submit)
	r.GET("/votes", authed, votes.List)

	judgingRoutes := r.Group("/judging")
	judgingRoutes.Use(authed)
	{
		judgingRoutes.POST("/vote", judging.SubmitTeamVotes)
		judgingRoutes.GET("/votes", judging.MyTeamVotes)
	}

	// Public read side.
	r.GET("/team-votes/leaderboard", leaderboard.Leaderboard)
	r.GET("/team-votes", leaderboard.TeamVotes)

	r.POST("/progress-updates", authed, progress.Create)
	r.GET("/progress-updates", progress.List)
	r.POST("/progress-updates/:id", authed, progress.Update)
	r.DELETE("/progress-updates/:id", authed, progress.Delete)

	r.GET("/users/me", authed, users.Me)
	r.GET("/users/search", authed, users.Search)
	r.GET("/farcaster/users", users.BulkByFids)

	r.POST("/webhook", webhook.Handle)

	return r
}
