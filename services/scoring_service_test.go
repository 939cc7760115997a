// file: services/scoring_service_test.go
package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/builders-garden/just-frame-it/models"
	"github.com/builders-garden/just-frame-it/services"
	"github.com/builders-garden/just-frame-it/testutil"
)

func TestValidateScores(t *testing.T) {
	tests := []struct {
		name    string
		exp     int
		idea    int
		vir     int
		wantErr bool
	}{
		{"all at lower bound", 1, 1, 1, false},
		{"all at upper bound", 10, 10, 10, false},
		{"mixed valid", 3, 7, 10, false},
		{"experience too high", 11, 5, 5, true},
		{"experience zero", 0, 5, 5, true},
		{"idea negative", 5, -1, 5, true},
		{"virality too high", 5, 5, 11, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := services.ValidateScores(tt.exp, tt.idea, tt.vir)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, services.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAllocation(t *testing.T) {
	tests := []struct {
		name    string
		alloc   map[string]services.AllocationEntry
		wantErr bool
	}{
		{
			"single team full budget",
			map[string]services.AllocationEntry{"TeamZ": {Points: 10}},
			false,
		},
		{
			"four teams summing to ten",
			map[string]services.AllocationEntry{
				"A": {Points: 4}, "B": {Points: 3}, "C": {Points: 2}, "D": {Points: 1},
			},
			false,
		},
		{
			"sum below budget",
			map[string]services.AllocationEntry{"A": {Points: 6}, "B": {Points: 3}},
			true,
		},
		{
			"sum above budget",
			map[string]services.AllocationEntry{"A": {Points: 6}, "B": {Points: 5}},
			true,
		},
		{
			"five distinct teams",
			map[string]services.AllocationEntry{
				"A": {Points: 2}, "B": {Points: 2}, "C": {Points: 2}, "D": {Points: 2}, "E": {Points: 2},
			},
			true,
		},
		{
			"zero-point entry",
			map[string]services.AllocationEntry{"A": {Points: 10}, "B": {Points: 0}},
			true,
		},
		{
			"empty allocation",
			map[string]services.AllocationEntry{},
			true,
		},
		{
			"empty team name",
			map[string]services.AllocationEntry{"": {Points: 10}},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := services.ValidateAllocation(tt.alloc)
			if tt.wantErr {
				assert.ErrorIs(t, err, services.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpsertVoteIdempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)

	app := models.Application{
		ProjectName: "Frameify",
		Description: "d",
		Motivation:  "m",
		RepoURL:     "https://example.com/repo",
		Members:     []models.ApplicationMember{{Position: 1, Fid: testutil.BuilderFid}},
	}
	require.NoError(t, db.Create(&app).Error)

	first := models.Vote{
		ApplicationID: app.ID, VoterFid: testutil.JudgeFid,
		Experience: 3, Idea: 4, Virality: 5,
	}
	require.NoError(t, services.UpsertVote(db, &first))

	second := models.Vote{
		ApplicationID: app.ID, VoterFid: testutil.JudgeFid,
		Experience: 8, Idea: 9, Virality: 10,
	}
	require.NoError(t, services.UpsertVote(db, &second))

	var count int64
	db.Model(&models.Vote{}).Count(&count)
	assert.Equal(t, int64(1), count, "resubmission must not create a second row")

	var stored models.Vote
	require.NoError(t, db.Where("application_id = ? AND voter_fid = ?", app.ID, testutil.JudgeFid).First(&stored).Error)
	assert.Equal(t, 8, stored.Experience)
	assert.Equal(t, 9, stored.Idea)
	assert.Equal(t, 10, stored.Virality)

	// A different judge gets their own row.
	third := models.Vote{
		ApplicationID: app.ID, VoterFid: testutil.JudgeTwoFid,
		Experience: 2, Idea: 2, Virality: 2,
	}
	require.NoError(t, services.UpsertVote(db, &third))
	db.Model(&models.Vote{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestReplaceTeamVotesFullReplace(t *testing.T) {
	db := testutil.SetupTestDB(t)

	// Sprint 1: 6 points to TeamX, 4 to TeamY.
	err := services.ReplaceTeamVotes(db, testutil.JudgeFid, models.DemoDaySprint1,
		map[string]services.AllocationEntry{
			"TeamX": {Points: 6},
			"TeamY": {Points: 4, Notes: "solid demo"},
		})
	require.NoError(t, err)

	standings, err := services.Leaderboard(db)
	require.NoError(t, err)
	require.Len(t, standings, 2)
	assert.Equal(t, services.TeamStanding{TeamName: "TeamX", TotalPoints: 6}, standings[0])
	assert.Equal(t, services.TeamStanding{TeamName: "TeamY", TotalPoints: 4}, standings[1])

	// Sprint 2 submission replaces everything, sprint 1 included.
	err = services.ReplaceTeamVotes(db, testutil.JudgeFid, models.DemoDaySprint2,
		map[string]services.AllocationEntry{"TeamZ": {Points: 10}})
	require.NoError(t, err)

	var sprint1Count int64
	db.Model(&models.TeamVote{}).
		Where("voter_fid = ? AND demo_day = ?", testutil.JudgeFid, models.DemoDaySprint1).
		Count(&sprint1Count)
	assert.Equal(t, int64(0), sprint1Count, "sprint 1 rows must be gone after the sprint 2 submission")

	standings, err = services.Leaderboard(db)
	require.NoError(t, err)
	require.Len(t, standings, 1)
	assert.Equal(t, services.TeamStanding{TeamName: "TeamZ", TotalPoints: 10}, standings[0])
}

func TestReplaceTeamVotesRejectsInvalid(t *testing.T) {
	db := testutil.SetupTestDB(t)

	// Seed a valid allocation first.
	require.NoError(t, services.ReplaceTeamVotes(db, testutil.JudgeFid, models.DemoDaySprint1,
		map[string]services.AllocationEntry{"TeamX": {Points: 10}}))

	// An invalid follow-up must leave the store untouched.
	err := services.ReplaceTeamVotes(db, testutil.JudgeFid, models.DemoDaySprint1,
		map[string]services.AllocationEntry{"TeamX": {Points: 7}})
	assert.ErrorIs(t, err, services.ErrValidation)

	err = services.ReplaceTeamVotes(db, testutil.JudgeFid, "SPRINT_99",
		map[string]services.AllocationEntry{"TeamX": {Points: 10}})
	assert.ErrorIs(t, err, services.ErrValidation)

	var votes []models.TeamVote
	require.NoError(t, db.Find(&votes).Error)
	require.Len(t, votes, 1)
	assert.Equal(t, "TeamX", votes[0].TeamName)
	assert.Equal(t, 10, votes[0].Points)
}

func TestLeaderboardAggregatesAcrossVoters(t *testing.T) {
	db := testutil.SetupTestDB(t)

	require.NoError(t, services.ReplaceTeamVotes(db, testutil.JudgeFid, models.DemoDaySprint1,
		map[string]services.AllocationEntry{"Alpha": {Points: 7}, "Beta": {Points: 3}}))
	require.NoError(t, services.ReplaceTeamVotes(db, testutil.JudgeTwoFid, models.DemoDaySprint1,
		map[string]services.AllocationEntry{"Beta": {Points: 6}, "Gamma": {Points: 4}}))

	standings, err := services.Leaderboard(db)
	require.NoError(t, err)
	require.Len(t, standings, 3)
	assert.Equal(t, services.TeamStanding{TeamName: "Beta", TotalPoints: 9}, standings[0])
	assert.Equal(t, services.TeamStanding{TeamName: "Alpha", TotalPoints: 7}, standings[1])
	assert.Equal(t, services.TeamStanding{TeamName: "Gamma", TotalPoints: 4}, standings[2])
}

func TestLeaderboardEmptyStore(t *testing.T) {
	db := testutil.SetupTestDB(t)

	standings, err := services.Leaderboard(db)
	require.NoError(t, err)
	assert.Empty(t, standings, "teams with zero rows must be absent, not zero-filled")
}

func TestRankApplications(t *testing.T) {
	apps := []models.Application{
		{
			ID: 1, ProjectName: "first",
			Votes: []models.Vote{
				{Experience: 3, Idea: 4, Virality: 5},
				{Experience: 2, Idea: 2, Virality: 2},
			},
		},
		{
			ID: 2, ProjectName: "second",
			Votes: []models.Vote{
				{Experience: 10, Idea: 10, Virality: 10},
			},
		},
		{ID: 3, ProjectName: "unvoted"},
	}

	ranked := services.RankApplications(apps, services.SortByTotal, true)
	require.Len(t, ranked, 3)

	assert.Equal(t, uint32(2), ranked[0].Application.ID)
	assert.Equal(t, 30, ranked[0].TotalScore)

	assert.Equal(t, uint32(1), ranked[1].Application.ID)
	assert.Equal(t, 18, ranked[1].TotalScore)
	assert.Equal(t, 2, ranked[1].VoteCount)
	assert.InDelta(t, 9.0, ranked[1].AvgScore, 1e-9)

	assert.Equal(t, uint32(3), ranked[2].Application.ID)
	assert.Equal(t, 0, ranked[2].TotalScore)
	assert.Equal(t, 0.0, ranked[2].AvgScore, "no votes means average zero, not a division by zero")
}

func TestRankApplicationsByAvgAscending(t *testing.T) {
	apps := []models.Application{
		{ID: 1, Votes: []models.Vote{{Experience: 5, Idea: 5, Virality: 5}}},                                      // avg 15
		{ID: 2, Votes: []models.Vote{{Experience: 1, Idea: 1, Virality: 1}, {Experience: 1, Idea: 1, Virality: 1}}}, // avg 3
	}

	ranked := services.RankApplications(apps, services.SortByAvg, false)
	require.Len(t, ranked, 2)
	assert.Equal(t, uint32(2), ranked[0].Application.ID)
	assert.Equal(t, uint32(1), ranked[1].Application.ID)
}

func TestRankApplicationsStableOnTies(t *testing.T) {
	apps := []models.Application{
		{ID: 1, Votes: []models.Vote{{Experience: 2, Idea: 2, Virality: 2}}},
		{ID: 2, Votes: []models.Vote{{Experience: 2, Idea: 2, Virality: 2}}},
		{ID: 3, Votes: []models.Vote{{Experience: 2, Idea: 2, Virality: 2}}},
	}

	// Equal scores keep input order on every render.
	for i := 0; i < 5; i++ {
		ranked := services.RankApplications(apps, services.SortByTotal, true)
		assert.Equal(t, uint32(1), ranked[0].Application.ID)
		assert.Equal(t, uint32(2), ranked[1].Application.ID)
		assert.Equal(t, uint32(3), ranked[2].Application.ID)
	}
}
