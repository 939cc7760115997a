// file: services/scoring_service.go
package services

import (
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/builders-garden/just-frame-it/models"
)

// Sentinel errors the controllers map to HTTP statuses.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

// ValidateScores checks the three sub-scores of an application-level vote
// against the accepted bound.
func ValidateScores(experience, idea, virality int) error {
	for _, s := range []struct {
		name  string
		value int
	}{
		{"experience", experience},
		{"idea", idea},
		{"virality", virality},
	} {
		if s.value < models.MinScore || s.value > models.MaxScore {
			return fmt.Errorf("%w: %s must be between %d and %d",
				ErrValidation, s.name, models.MinScore, models.MaxScore)
		}
	}
	return nil
}

// UpsertVote writes exactly one row keyed by (application_id, voter_fid):
// insert when absent, overwrite the score columns when present. Submitting
// the same payload twice leaves one row with the latest values.
func UpsertVote(db *gorm.DB, vote *models.Vote) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "application_id"}, {Name: "voter_fid"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"experience", "idea", "virality", "signature", "updated_at",
		}),
	}).Create(vote).Error
}

// AllocationEntry is one team's slice of a judge's demo-day point budget.
type AllocationEntry struct {
	Points int
	Notes  string
}

// ValidateAllocation enforces the demo-day budget: points must sum to exactly
// TeamVoteBudget across at most TeamVoteMaxTeams distinct teams, every entry
// carrying at least one point.
func ValidateAllocation(alloc map[string]AllocationEntry) error {
	if len(alloc) == 0 {
		return fmt.Errorf("%w: no teams in allocation", ErrValidation)
	}
	if len(alloc) > models.TeamVoteMaxTeams {
		return fmt.Errorf("%w: at most %d teams may receive points",
			ErrValidation, models.TeamVoteMaxTeams)
	}
	total := 0
	for team, entry := range alloc {
		if team == "" {
			return fmt.Errorf("%w: empty team name", ErrValidation)
		}
		if entry.Points < 1 {
			return fmt.Errorf("%w: points for %q must be positive", ErrValidation, team)
		}
		total += entry.Points
	}
	if total != models.TeamVoteBudget {
		return fmt.Errorf("%w: points must sum to exactly %d, got %d",
			ErrValidation, models.TeamVoteBudget, total)
	}
	return nil
}

// ReplaceTeamVotes records a judge's demo-day submission. A submission
// replaces every prior row for that voter across all demo days, so judges
// carry one live allocation at a time; resubmitting for a later demo day
// drops the earlier day's rows. Delete and insert run in one transaction so
// concurrent leaderboard reads never observe a half-written state.
func ReplaceTeamVotes(db *gorm.DB, voterFid uint64, demoDay models.DemoDay, alloc map[string]AllocationEntry) error {
	if !models.ValidDemoDay(demoDay) {
		return fmt.Errorf("%w: unknown demo day %q", ErrValidation, demoDay)
	}
	if err := ValidateAllocation(alloc); err != nil {
		return err
	}

	// Insert in team-name order so row IDs are deterministic per submission.
	teams := make([]string, 0, len(alloc))
	for team := range alloc {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("voter_fid = ?", voterFid).Delete(&models.TeamVote{}).Error; err != nil {
			return err
		}
		for _, team := range teams {
			entry := alloc[team]
			row := models.TeamVote{
				VoterFid: voterFid,
				TeamName: team,
				DemoDay:  demoDay,
				Points:   entry.Points,
				Notes:    entry.Notes,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// TeamStanding is one leaderboard row.
type TeamStanding struct {
	TeamName    string `json:"team_name"`
	TotalPoints int    `json:"total_points"`
}

// Leaderboard sums stored team-vote points per team, highest first. Teams
// with no rows are absent rather than zero-filled. Computed fresh on every
// call; team votes mutate by full replacement so cached totals go stale
// immediately.
func Leaderboard(db *gorm.DB) ([]TeamStanding, error) {
	// Non-nil so an empty store serializes as [] rather than null.
	standings := []TeamStanding{}
	err := db.Model(&models.TeamVote{}).
		Select("team_name, SUM(points) as total_points").
		Group("team_name").
		Order("total_points desc").
		Scan(&standings).Error
	if err != nil {
		return nil, err
	}
	return standings, nil
}

// Application ranking sort keys.
const (
	SortByTotal = "total"
	SortByAvg   = "avg"
)

// RankedApplication pairs an application with its vote aggregates.
type RankedApplication struct {
	Application models.Application `json:"application"`
	TotalScore  int                `json:"total_score"`
	VoteCount   int                `json:"vote_count"`
	AvgScore    float64            `json:"avg_score"`
}

// RankApplications computes per-application totals and orders them by the
// requested key. The sort is stable: applications with equal scores keep
// their input order on every render.
func RankApplications(apps []models.Application, sortBy string, desc bool) []RankedApplication {
	ranked := make([]RankedApplication, 0, len(apps))
	for _, app := range apps {
		total := 0
		for _, v := range app.Votes {
			total += v.Experience + v.Idea + v.Virality
		}
		count := len(app.Votes)
		avg := 0.0
		if count > 0 {
			avg = float64(total) / float64(count)
		}
		ranked = append(ranked, RankedApplication{
			Application: app,
			TotalScore:  total,
			VoteCount:   count,
			AvgScore:    avg,
		})
	}

	key := func(r RankedApplication) float64 {
		if sortBy == SortByAvg {
			return r.AvgScore
		}
		return float64(r.TotalScore)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if desc {
			return key(ranked[i]) > key(ranked[j])
		}
		return key(ranked[i]) < key(ranked[j])
	})
	return ranked
}
