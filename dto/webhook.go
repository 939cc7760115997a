// file: dto/webhook.go
package dto

// WebhookEvent is the identity provider's notification-subscription lifecycle
// payload. NotificationDetails is only present on events that grant a token.
type WebhookEvent struct {
	Event               string `json:"event"`
	Fid                 uint64 `json:"fid"`
	NotificationDetails *struct {
		Token string `json:"token"`
		URL   string `json:"url"`
	} `json:"notificationDetails"`
}

// Webhook event names.
const (
	EventFrameAdded            = "frame_added"
	EventFrameRemoved          = "frame_removed"
	EventNotificationsEnabled  = "notifications_enabled"
	EventNotificationsDisabled = "notifications_disabled"
)
