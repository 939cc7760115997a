// file: testutil/testutil.go

// Package testutil provides the shared fixtures the handler and service tests
// use: an in-memory SQLite database wired into the process-wide handle, a
// fixed test configuration, and token helpers.
package testutil

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/builders-garden/just-frame-it/config"
	"github.com/builders-garden/just-frame-it/database"
	"github.com/builders-garden/just-frame-it/models"
	"github.com/builders-garden/just-frame-it/routes"
	"github.com/builders-garden/just-frame-it/services"
	"github.com/builders-garden/just-frame-it/utils"
)

// JWTSecret signs every token issued in tests.
const JWTSecret = "test-secret"

// Known fids used across the test suites.
const (
	JudgeFid    uint64 = 100
	JudgeTwoFid uint64 = 101
	BuilderFid  uint64 = 200
	OutsiderFid uint64 = 999
)

// SetupTestDB opens a fresh in-memory database, migrates the full schema and
// installs it as the process-wide handle for the duration of the test.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// One connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Application{},
		&models.ApplicationMember{},
		&models.Vote{},
		&models.TeamVote{},
		&models.ProgressUpdate{},
		&models.NotificationToken{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		sqlDB.Close()
	})
	return db
}

// TestAllowlist returns the judging/reporting authorization used in tests:
// JudgeFid and JudgeTwoFid may vote, BuilderFid reports for "Team Rocket".
func TestAllowlist() *config.Allowlist {
	return config.NewAllowlist(
		[]uint64{JudgeFid, JudgeTwoFid},
		[]uint64{BuilderFid},
		map[uint64]string{BuilderFid: "Team Rocket"},
	)
}

// BearerToken issues a signed session token for fid.
func BearerToken(t *testing.T, fid uint64) string {
	t.Helper()
	token, err := utils.GenerateToken(fid, JWTSecret)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return "Bearer " + token
}

// GinTestMode silences gin for the whole test binary.
func GinTestMode() {
	gin.SetMode(gin.TestMode)
}

// WebhookSecret signs webhook payloads in tests.
const WebhookSecret = "test-webhook-secret"

// SetupRouter builds the full route table against the test configuration.
// Call SetupTestDB first so the handlers hit the in-memory store.
func SetupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	GinTestMode()
	cfg := &config.Config{
		JWTSecret:     JWTSecret,
		WebhookSecret: WebhookSecret,
	}
	neynar := services.NewNeynarClient("", "", nil)
	return routes.SetupRouter(cfg, TestAllowlist(), neynar)
}
