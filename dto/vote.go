// file: dto/vote.go
package dto

// SubmitVoteReq carries one judge's scores for one application. The score
// fields are pointers so a missing field is distinguishable from a zero.
type SubmitVoteReq struct {
	ApplicationID uint32 `json:"application_id"`
	Experience    *int   `json:"experience"`
	Idea          *int   `json:"idea"`
	Virality      *int   `json:"virality"`
	Signature     string `json:"signature"`
}

// TeamVoteEntryReq is one team's share of a demo-day allocation.
type TeamVoteEntryReq struct {
	Points int    `json:"points"`
	Notes  string `json:"notes"`
}

// SubmitTeamVotesReq is a judge's full demo-day submission: team name to
// points/notes, plus the milestone being judged.
type SubmitTeamVotesReq struct {
	DemoDay string                      `json:"demo_day"`
	Votes   map[string]TeamVoteEntryReq `json:"votes"`
}
