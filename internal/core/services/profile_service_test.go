package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warblehq/warble/internal/adapters/secondary/repository"
	"github.com/warblehq/warble/internal/core/domain"
)

func TestGetProfile_Counts(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	engagement := NewEngagementService(store, &capturePublisher{})
	profiles := NewProfileService(store, store, store)

	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")
	carol := seedUser(t, store, "carol")

	seedTweet(t, store, alice, "one", time.Time{})
	seedTweet(t, store, alice, "two", time.Time{})

	// bob and carol follow alice; alice follows carol.
	_, err := engagement.ToggleFollow(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	_, err = engagement.ToggleFollow(ctx, carol.ID, alice.ID)
	require.NoError(t, err)
	_, err = engagement.ToggleFollow(ctx, alice.ID, carol.ID)
	require.NoError(t, err)

	profile, err := profiles.GetProfile(ctx, "alice", domain.Anonymous())
	require.NoError(t, err)
	assert.Equal(t, alice.ID, profile.ID)
	assert.Equal(t, 2, profile.TweetCount)
	assert.Equal(t, 2, profile.FollowerCount)
	assert.Equal(t, 1, profile.FollowingCount)
	assert.False(t, profile.IsFollowing)
}

func TestGetProfile_IsFollowingPerViewer(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	engagement := NewEngagementService(store, &capturePublisher{})
	profiles := NewProfileService(store, store, store)

	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")
	carol := seedUser(t, store, "carol")

	_, err := engagement.ToggleFollow(ctx, bob.ID, alice.ID)
	require.NoError(t, err)

	asBob, err := profiles.GetProfile(ctx, "alice", domain.Authenticated(bob.ID))
	require.NoError(t, err)
	assert.True(t, asBob.IsFollowing)

	asCarol, err := profiles.GetProfile(ctx, "alice", domain.Authenticated(carol.ID))
	require.NoError(t, err)
	assert.False(t, asCarol.IsFollowing)
}

func TestGetProfile_OwnProfileNeverFollowsItself(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	engagement := NewEngagementService(store, &capturePublisher{})
	profiles := NewProfileService(store, store, store)

	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")

	_, err := engagement.ToggleFollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	own, err := profiles.GetProfile(ctx, "alice", domain.Authenticated(alice.ID))
	require.NoError(t, err)
	assert.False(t, own.IsFollowing)
	assert.Equal(t, 1, own.FollowingCount)
}

func TestGetProfile_UnknownUsername(t *testing.T) {
	store := repository.NewMemoryStore()
	profiles := NewProfileService(store, store, store)

	_, err := profiles.GetProfile(context.Background(), "ghost", domain.Anonymous())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
