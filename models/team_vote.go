// file: models/team_vote.go
package models

import (
	"time"
)

// DemoDay identifies the sprint milestone a judging round belongs to.
type DemoDay string

const (
	DemoDaySprint1   DemoDay = "SPRINT_1"
	DemoDaySprint2   DemoDay = "SPRINT_2"
	DemoDaySprint3   DemoDay = "SPRINT_3"
	DemoDayFinalDemo DemoDay = "FINAL_DEMO"
)

// ValidDemoDay reports whether d is one of the fixed milestone values.
func ValidDemoDay(d DemoDay) bool {
	switch d {
	case DemoDaySprint1, DemoDaySprint2, DemoDaySprint3, DemoDayFinalDemo:
		return true
	}
	return false
}

// Budget constraints on one judge's demo-day submission.
const (
	TeamVoteBudget   = 10
	TeamVoteMaxTeams = 4
)

// TeamVote is one judge's point allocation to one team at one demo day. A
// submission replaces every prior row for that voter (see
// services.ReplaceTeamVotes for the exact semantics).
type TeamVote struct {
	ID        uint32    `gorm:"primarykey" json:"id"`
	VoterFid  uint64    `gorm:"index;not null" json:"voter_fid"`
	TeamName  string    `gorm:"size:100;index;not null" json:"team_name"`
	DemoDay   DemoDay   `gorm:"size:20;index;not null" json:"demo_day"`
	Points    int       `gorm:"not null" json:"points"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (TeamVote) TableName() string {
	return "jfi_team_vote"
}
