// file: controllers/webhook_controller.go
package controllers

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	"github.com/builders-garden/just-frame-it/database"
	"github.com/builders-garden/just-frame-it/dto"
	"github.com/builders-garden/just-frame-it/models"
	"github.com/builders-garden/just-frame-it/utils"
)

const signatureHeader = "X-Neynar-Signature"

type WebhookController struct {
	Secret string
}

func NewWebhookController(secret string) *WebhookController {
	return &WebhookController{Secret: secret}
}

// Handle processes notification-subscription lifecycle events from the
// identity provider. The payload is authenticated with an HMAC-SHA512
// signature over the raw body; delivery of notifications themselves happens
// elsewhere, this service only tracks the tokens.
func (w *WebhookController) Handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.BadRequest(c, "unreadable body")
		return
	}

	if !w.verifySignature(body, c.GetHeader(signatureHeader)) {
		utils.Unauthenticated(c, "invalid webhook signature")
		return
	}

	var event dto.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		utils.BadRequest(c, "malformed event payload")
		return
	}
	if event.Fid == 0 {
		utils.BadRequest(c, "event is missing fid")
		return
	}

	row := models.NotificationToken{Fid: event.Fid}
	switch event.Event {
	case dto.EventFrameAdded, dto.EventNotificationsEnabled:
		if event.NotificationDetails != nil {
			row.Token = event.NotificationDetails.Token
			row.URL = event.NotificationDetails.URL
			row.Enabled = true
		}
	case dto.EventFrameRemoved, dto.EventNotificationsDisabled:
		// Enabled stays false, token and url are cleared.
	default:
		utils.BadRequest(c, "unknown event type")
		return
	}

	err = database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "fid"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "url", "enabled", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		utils.Internal(c, "failed to record event")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (w *WebhookController) verifySignature(body []byte, sigHex string) bool {
	if sigHex == "" || w.Secret == "" {
		return false
	}
	sig, err := hex.DecodeString(sigHex)
	if err != nil {
		return false
	}
	mac := hmac.New(sha512.New, []byte(w.Secret))
	mac.Write(body)
	return hmac.Equal(sig, mac.Sum(nil))
}
