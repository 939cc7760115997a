// file: models/progress_update.go
package models

import (
	"time"
)

// ProgressUpdate is a team status report authored by one account. Only the
// author may update or delete it; ownership is checked against AuthorFid.
// The reporting cycle is implicit in CreatedAt rather than carried as an
// explicit demo-day column.
type ProgressUpdate struct {
	ID                  uint32    `gorm:"primarykey" json:"id"`
	TeamName            string    `gorm:"size:100;index;not null" json:"team_name"`
	DemoLink            string    `gorm:"size:255" json:"demo_link,omitempty"`
	KeyFeatures         string    `gorm:"type:text;not null" json:"key_features"`
	UserEngagement      string    `gorm:"type:text;not null" json:"user_engagement"`
	Challenges          string    `gorm:"type:text;not null" json:"challenges"`
	NextSteps           string    `gorm:"type:text;not null" json:"next_steps"`
	TechnicalMilestones string    `gorm:"type:text" json:"technical_milestones,omitempty"`
	AdditionalNotes     string    `gorm:"type:text" json:"additional_notes,omitempty"`
	AuthorFid           uint64    `gorm:"index;not null" json:"author_fid"`
	AuthorDisplayName   string    `gorm:"size:100" json:"author_display_name"`
	AuthorUsername      string    `gorm:"size:100" json:"author_username"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (ProgressUpdate) TableName() string {
	return "jfi_progress_update"
}
