package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jamapi/dto"
)

func TestInfractionCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewInfractionService(db)
	ctx := context.Background()

	jam := seedJam(t, db, "jam", false)
	seedUser(t, db, 1)

	resp, err := svc.Create(ctx, dto.CreateInfractionReq{
		UserID:         1,
		JamID:          jam.ID,
		InfractionType: "ban",
		Reason:         "plagiarized submission",
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "ban", resp.InfractionType)
	assert.Equal(t, "plagiarized submission", resp.Reason)

	got, err := svc.Get(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, *resp, *got)
}

func TestInfractionCreateInvalidType(t *testing.T) {
	db := newTestDB(t)
	svc := NewInfractionService(db)

	jam := seedJam(t, db, "jam", false)
	seedUser(t, db, 1)

	_, err := svc.Create(context.Background(), dto.CreateInfractionReq{
		UserID:         1,
		JamID:          jam.ID,
		InfractionType: "timeout",
		Reason:         "whatever",
	})
	requireKind(t, err, KindUnprocessable)
}

func TestInfractionCreateMissingRefs(t *testing.T) {
	db := newTestDB(t)
	svc := NewInfractionService(db)
	ctx := context.Background()

	jam := seedJam(t, db, "jam", false)
	seedUser(t, db, 1)

	_, err := svc.Create(ctx, dto.CreateInfractionReq{
		UserID: 1, JamID: 404, InfractionType: "note", Reason: "r",
	})
	requireKind(t, err, KindNotFound)

	_, err = svc.Create(ctx, dto.CreateInfractionReq{
		UserID: 404, JamID: jam.ID, InfractionType: "note", Reason: "r",
	})
	requireKind(t, err, KindNotFound)
}

func TestInfractionList(t *testing.T) {
	db := newTestDB(t)
	svc := NewInfractionService(db)
	ctx := context.Background()

	jam := seedJam(t, db, "jam", false)
	seedUser(t, db, 1)

	for _, reason := range []string{"first", "second"} {
		_, err := svc.Create(ctx, dto.CreateInfractionReq{
			UserID: 1, JamID: jam.ID, InfractionType: "warning", Reason: reason,
		})
		require.NoError(t, err)
	}

	resps, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, resps, 2)
	assert.Equal(t, "first", resps[0].Reason)
	assert.Equal(t, "second", resps[1].Reason)
}

func TestInfractionGetMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewInfractionService(db)

	_, err := svc.Get(context.Background(), 404)
	requireKind(t, err, KindNotFound)
}
