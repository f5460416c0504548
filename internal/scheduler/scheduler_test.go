package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/olegiv/groeiboek/internal/model"
	"github.com/olegiv/groeiboek/internal/store"
	"github.com/olegiv/groeiboek/internal/testutil"
)

func TestPurge_RemovesExpiredRecords(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	ctx := context.Background()
	queries := store.New(db)
	now := time.Now()

	user, err := queries.CreateUser(ctx, store.CreateUserParams{
		Email: "purge@example.com", Name: "Purge", Status: model.UserActive,
		CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)

	// One expired and one live refresh token.
	_, err = queries.CreateRefreshToken(ctx, store.CreateRefreshTokenParams{
		UserID: user.ID, TokenHash: "expired", ExpiresAt: now.Add(-time.Hour), CreatedAt: now,
	})
	require.NoError(t, err)
	live, err := queries.CreateRefreshToken(ctx, store.CreateRefreshTokenParams{
		UserID: user.ID, TokenHash: "live", ExpiresAt: now.Add(time.Hour), CreatedAt: now,
	})
	require.NoError(t, err)

	_, err = queries.CreatePasswordReset(ctx, store.CreatePasswordResetParams{
		UserID: user.ID, TokenHash: "stale", ExpiresAt: now.Add(-time.Minute), CreatedAt: now,
	})
	require.NoError(t, err)

	team, err := queries.CreateTeam(ctx, store.CreateTeamParams{
		Name: "Purgers", OwnerID: user.ID, CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
	_, err = queries.CreateTeamInvitation(ctx, store.CreateTeamInvitationParams{
		TeamID: team.ID, Email: "late@example.com", Role: model.RoleMember,
		Token: "tok", ExpiresAt: now.Add(-time.Hour), CreatedAt: now,
	})
	require.NoError(t, err)

	s := New(db, testutil.TestLogger())
	require.NoError(t, s.Purge(ctx))

	_, err = queries.GetRefreshTokenByHash(ctx, "expired")
	require.Error(t, err)
	_, err = queries.GetRefreshTokenByHash(ctx, live.TokenHash)
	require.NoError(t, err)

	_, err = queries.GetPasswordResetByHash(ctx, "stale")
	require.Error(t, err)

	_, err = queries.GetTeamInvitationByToken(ctx, "tok")
	require.Error(t, err)
}

func TestPurge_KeepsAcceptedInvitations(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	ctx := context.Background()
	queries := store.New(db)
	now := time.Now()

	user, err := queries.CreateUser(ctx, store.CreateUserParams{
		Email: "owner@example.com", Name: "Owner", Status: model.UserActive,
		CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
	team, err := queries.CreateTeam(ctx, store.CreateTeamParams{
		Name: "Keepers", OwnerID: user.ID, CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
	inv, err := queries.CreateTeamInvitation(ctx, store.CreateTeamInvitationParams{
		TeamID: team.ID, Email: "done@example.com", Role: model.RoleMember,
		Token: "accepted-tok", ExpiresAt: now.Add(-time.Hour), CreatedAt: now,
	})
	require.NoError(t, err)
	require.NoError(t, queries.MarkTeamInvitationAccepted(ctx, store.MarkTeamInvitationAcceptedParams{
		AcceptedAt: now, ID: inv.ID,
	}))

	s := New(db, testutil.TestLogger())
	require.NoError(t, s.Purge(ctx))

	// Accepted invitations stay as membership history.
	_, err = queries.GetTeamInvitationByToken(ctx, "accepted-tok")
	require.NoError(t, err)
}
