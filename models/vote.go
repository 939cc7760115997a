// file: models/vote.go
package models

import (
	"time"
)

// Score bounds accepted by the vote endpoint. The submission UI offers a
// narrower 1-5 slider, but the API contract has always been 1-10 and stored
// rows exist across the full range, so the wider bound is authoritative.
const (
	MinScore = 1
	MaxScore = 10
)

// Vote is one judge's scoring of one application. The composite unique index
// on (application_id, voter_fid) backs the upsert: a judge re-scoring an
// application overwrites their previous row.
type Vote struct {
	ID            uint32 `gorm:"primarykey" json:"id"`
	ApplicationID uint32 `gorm:"uniqueIndex:unique_app_voter;not null" json:"application_id"`
	VoterFid      uint64 `gorm:"uniqueIndex:unique_app_voter;not null" json:"voter_fid"`
	Experience    int    `gorm:"not null" json:"experience"`
	Idea          int    `gorm:"not null" json:"idea"`
	Virality      int    `gorm:"not null" json:"virality"`
	// Signature is kept for wire compatibility with older clients; nothing
	// reads it anymore.
	Signature string    `gorm:"size:255" json:"signature,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Vote) TableName() string {
	return "jfi_vote"
}
