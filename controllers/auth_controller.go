// file: controllers/auth_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/builders-garden/just-frame-it/database"
	"github.com/builders-garden/just-frame-it/dto"
	"github.com/builders-garden/just-frame-it/services"
	"github.com/builders-garden/just-frame-it/utils"
)

type AuthController struct {
	JWTSecret string
	Signers   services.SignerKeyResolver
}

func NewAuthController(jwtSecret string, signers services.SignerKeyResolver) *AuthController {
	return &AuthController{JWTSecret: jwtSecret, Signers: signers}
}

// Nonce issues a single-use sign-in nonce for the client to embed in the
// message it signs.
func (a *AuthController) Nonce(c *gin.Context) {
	nonce, err := services.IssueNonce(c.Request.Context(), database.RDB)
	if err != nil {
		utils.Internal(c, "failed to issue nonce")
		return
	}
	c.JSON(http.StatusOK, gin.H{"nonce": nonce})
}

// SignIn verifies a signed sign-in message and issues the session token. The
// token is the only credential later requests are authorized on.
func (a *AuthController) SignIn(c *gin.Context) {
	var req dto.SignInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body")
		return
	}
	if req.Fid == 0 {
		utils.BadRequest(c, "fid is required")
		return
	}

	err := services.VerifySignIn(c.Request.Context(), database.RDB, a.Signers,
		req.Fid, req.Message, req.Nonce, req.Signature, req.PublicKey)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			utils.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrBadSignature):
			utils.Unauthenticated(c, "signature verification failed")
		case errors.Is(err, services.ErrUpstream):
			utils.Upstream(c, "signer lookup failed")
		default:
			utils.Internal(c, "sign-in failed")
		}
		return
	}

	token, err := utils.GenerateToken(req.Fid, a.JWTSecret)
	if err != nil {
		utils.Internal(c, "failed to issue token")
		return
	}

	c.JSON(http.StatusOK, dto.SignInResp{Token: token, Fid: req.Fid})
}
