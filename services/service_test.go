package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"jamapi/database"
	"jamapi/models"
)

// newTestDB opens an in-memory sqlite database with the full schema.
// The pool is pinned to a single connection so every query sees the same
// in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

// requireKind asserts that err is a service error of the given kind.
func requireKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	require.Error(t, err)
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, kind, svcErr.Kind, "unexpected error kind for %v", err)
}

func seedJam(t *testing.T, db *gorm.DB, name string, ongoing bool) models.Jam {
	t.Helper()
	jam := models.Jam{Name: name, Ongoing: ongoing}
	require.NoError(t, db.Create(&jam).Error)
	return jam
}

func seedUser(t *testing.T, db *gorm.DB, id int64) models.User {
	t.Helper()
	user := models.User{ID: id}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedTeam(t *testing.T, db *gorm.DB, jamID int, name string, leaderID int64) models.Team {
	t.Helper()
	team := models.Team{
		JamID:          jamID,
		Name:           name,
		NameNormalized: models.NormalizeTeamName(name),
		LeaderID:       leaderID,
	}
	require.NoError(t, db.Create(&team).Error)
	return team
}

func seedMember(t *testing.T, db *gorm.DB, teamID int, userID int64, isLeader bool) models.TeamMember {
	t.Helper()
	member := models.TeamMember{TeamID: teamID, UserID: userID, IsLeader: isLeader}
	require.NoError(t, db.Create(&member).Error)
	return member
}
