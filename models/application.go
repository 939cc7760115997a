// file: models/application.go
package models

import (
	"time"
)

// MaxTeamMembers caps the size of an applying team, submitter included.
const MaxTeamMembers = 3

// Application is a team's builder-program submission. Applications are created
// once and never updated or deleted through the API.
type Application struct {
	ID                 uint32              `gorm:"primarykey" json:"id"`
	ProjectName        string              `gorm:"size:100;not null" json:"project_name"`
	Description        string              `gorm:"type:text;not null" json:"description"`
	Motivation         string              `gorm:"type:text;not null" json:"motivation"`
	PriorWork          string              `gorm:"type:text" json:"prior_work,omitempty"`
	RepoURL            string              `gorm:"size:255;not null" json:"repo_url"`
	ResidencyEligible  bool                `gorm:"not null;default:false" json:"residency_eligible"`
	CreatedAt          time.Time           `json:"created_at"`
	Members            []ApplicationMember `gorm:"foreignKey:ApplicationID" json:"members"`
	Votes              []Vote              `gorm:"foreignKey:ApplicationID" json:"votes,omitempty"`
}

func (Application) TableName() string {
	return "jfi_application"
}

// ApplicationMember is one account on an applying team. Position 1 is the
// submitter and is always present; positions 2 and 3 are optional.
type ApplicationMember struct {
	ID            uint32 `gorm:"primarykey" json:"id"`
	ApplicationID uint32 `gorm:"uniqueIndex:unique_app_position;not null" json:"application_id"`
	Position      int    `gorm:"uniqueIndex:unique_app_position;not null" json:"position"`
	Fid           uint64 `gorm:"not null" json:"fid"`
	DisplayName   string `gorm:"size:100" json:"display_name"`
	Username      string `gorm:"size:100" json:"username"`
	AvatarURL     string `gorm:"size:255" json:"avatar_url,omitempty"`
}

func (ApplicationMember) TableName() string {
	return "jfi_application_member"
}
