package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jamapi/dto"
	"jamapi/models"
)

func TestTeamGet(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)

	jam := seedJam(t, db, "jam", false)
	seedUser(t, db, 1)
	seedUser(t, db, 2)
	team := seedTeam(t, db, jam.ID, "pythonistas", 1)
	seedMember(t, db, team.ID, 1, true)
	seedMember(t, db, team.ID, 2, false)

	resp, err := svc.Get(context.Background(), team.ID)
	require.NoError(t, err)
	assert.Equal(t, team.ID, resp.ID)
	assert.Equal(t, jam.ID, resp.JamID)
	assert.Equal(t, "pythonistas", resp.Name)
	require.Len(t, resp.Users, 2)
	assert.Equal(t, dto.TeamUserResp{UserID: 1, IsLeader: true}, resp.Users[0])
	assert.Equal(t, dto.TeamUserResp{UserID: 2, IsLeader: false}, resp.Users[1])
}

func TestTeamGetMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)

	_, err := svc.Get(context.Background(), 404)
	requireKind(t, err, KindNotFound)
}

func TestTeamFindByNameCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)

	jam := seedJam(t, db, "jam", false)
	seedUser(t, db, 1)
	team := seedTeam(t, db, jam.ID, "LemonCakes", 1)

	resp, err := svc.FindByName(context.Background(), "lemoncakes", &jam.ID)
	require.NoError(t, err)
	assert.Equal(t, team.ID, resp.ID)
	assert.Equal(t, "LemonCakes", resp.Name)
}

func TestTeamFindByNameDefaultsToOngoingJam(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)

	past := seedJam(t, db, "past", false)
	current := seedJam(t, db, "current", true)
	seedUser(t, db, 1)
	seedTeam(t, db, past.ID, "repeaters", 1)
	currentTeam := seedTeam(t, db, current.ID, "repeaters", 1)

	resp, err := svc.FindByName(context.Background(), "Repeaters", nil)
	require.NoError(t, err)
	assert.Equal(t, currentTeam.ID, resp.ID)
	assert.Equal(t, current.ID, resp.JamID)
}

func TestTeamFindByNameNoOngoingJam(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)

	jam := seedJam(t, db, "past", false)
	seedUser(t, db, 1)
	seedTeam(t, db, jam.ID, "orphans", 1)

	_, err := svc.FindByName(context.Background(), "orphans", nil)
	requireKind(t, err, KindNotFound)
}

func TestTeamUsersMissingTeam(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)

	_, err := svc.Users(context.Background(), 404)
	requireKind(t, err, KindNotFound)
}

func TestTeamAddUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)
	ctx := context.Background()

	jam := seedJam(t, db, "jam", false)
	seedUser(t, db, 1)
	seedUser(t, db, 2)
	team := seedTeam(t, db, jam.ID, "openers", 1)
	seedMember(t, db, team.ID, 1, true)

	resp, err := svc.AddUser(ctx, team.ID, 2, false)
	require.NoError(t, err)
	assert.Equal(t, dto.TeamUserResp{UserID: 2, IsLeader: false}, *resp)

	// Adding the same user again is a conflict and leaves one row behind.
	_, err = svc.AddUser(ctx, team.ID, 2, false)
	requireKind(t, err, KindConflict)

	var count int64
	require.NoError(t, db.Model(&models.TeamMember{}).Where("team_id = ? AND user_id = ?", team.ID, 2).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestTeamAddUserMissingRefs(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)
	ctx := context.Background()

	jam := seedJam(t, db, "jam", false)
	seedUser(t, db, 1)
	team := seedTeam(t, db, jam.ID, "solo", 1)

	_, err := svc.AddUser(ctx, 404, 1, false)
	requireKind(t, err, KindNotFound)

	_, err = svc.AddUser(ctx, team.ID, 404, false)
	requireKind(t, err, KindNotFound)
}

func TestTeamRemoveUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)
	ctx := context.Background()

	jam := seedJam(t, db, "jam", false)
	seedUser(t, db, 1)
	seedUser(t, db, 2)
	team := seedTeam(t, db, jam.ID, "churn", 1)
	seedMember(t, db, team.ID, 1, true)
	seedMember(t, db, team.ID, 2, false)

	require.NoError(t, svc.RemoveUser(ctx, team.ID, 2))

	var count int64
	require.NoError(t, db.Model(&models.TeamMember{}).Where("team_id = ?", team.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Removing a user who is not on the team reports the missing relation.
	err := svc.RemoveUser(ctx, team.ID, 2)
	requireKind(t, err, KindInvalidState)
}

func TestTeamRemoveUserMissingTeam(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(db)

	err := svc.RemoveUser(context.Background(), 404, 1)
	requireKind(t, err, KindNotFound)
}
