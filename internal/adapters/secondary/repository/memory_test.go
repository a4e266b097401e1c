package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warblehq/warble/internal/core/domain"
	"github.com/warblehq/warble/internal/core/ports"
)

func addUser(t *testing.T, store *MemoryStore, username string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(username+"@example.com", username, username, "hash")
	require.NoError(t, err)
	require.NoError(t, store.SaveUser(context.Background(), user))
	return user
}

func addTweet(t *testing.T, store *MemoryStore, author *domain.User, content string, at time.Time) *domain.Tweet {
	t.Helper()
	tweet, err := domain.NewTweet(author.Summary(), content)
	require.NoError(t, err)
	if !at.IsZero() {
		tweet.CreatedAt = at
	}
	require.NoError(t, store.SaveTweet(context.Background(), tweet))
	return tweet
}

func TestMemoryStore_UserUniqueness(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	addUser(t, store, "alice")

	dupEmail, err := domain.NewUser("alice@example.com", "other", "Other", "hash")
	require.NoError(t, err)
	assert.ErrorIs(t, store.SaveUser(ctx, dupEmail), domain.ErrEmailTaken)

	dupName, err := domain.NewUser("other@example.com", "alice", "Other", "hash")
	require.NoError(t, err)
	assert.ErrorIs(t, store.SaveUser(ctx, dupName), domain.ErrUsernameTaken)
}

func TestMemoryStore_UserLookups(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	alice := addUser(t, store, "alice")

	byID, err := store.UserByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byID.ID)

	byEmail, err := store.UserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byEmail.ID)

	byName, err := store.UserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byName.ID)

	_, err = store.UserByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMemoryStore_ReturnedUsersAreCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	alice := addUser(t, store, "alice")

	got, err := store.UserByID(ctx, alice.ID)
	require.NoError(t, err)
	got.DisplayName = "mutated"

	again, err := store.UserByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", again.DisplayName)
}

func TestMemoryStore_EdgeUniqueness(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	alice := addUser(t, store, "alice")
	bob := addUser(t, store, "bob")
	tweet := addTweet(t, store, alice, "hello", time.Time{})

	require.NoError(t, store.CreateEdge(ctx, domain.EdgeLike, bob.ID, tweet.ID))
	assert.ErrorIs(t, store.CreateEdge(ctx, domain.EdgeLike, bob.ID, tweet.ID), domain.ErrEdgeExists)

	require.NoError(t, store.DeleteEdge(ctx, domain.EdgeLike, bob.ID, tweet.ID))
	assert.ErrorIs(t, store.DeleteEdge(ctx, domain.EdgeLike, bob.ID, tweet.ID), domain.ErrEdgeNotFound)
}

func TestMemoryStore_EdgeTargetChecks(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	bob := addUser(t, store, "bob")

	assert.ErrorIs(t, store.CreateEdge(ctx, domain.EdgeLike, bob.ID, "no-such-tweet"), domain.ErrTweetNotFound)
	assert.ErrorIs(t, store.CreateEdge(ctx, domain.EdgeRetweet, bob.ID, "no-such-tweet"), domain.ErrTweetNotFound)
	assert.ErrorIs(t, store.CreateEdge(ctx, domain.EdgeFollow, bob.ID, "no-such-user"), domain.ErrUserNotFound)
}

func TestMemoryStore_EdgeCounts(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	alice := addUser(t, store, "alice")
	bob := addUser(t, store, "bob")
	carol := addUser(t, store, "carol")

	require.NoError(t, store.CreateEdge(ctx, domain.EdgeFollow, bob.ID, alice.ID))
	require.NoError(t, store.CreateEdge(ctx, domain.EdgeFollow, carol.ID, alice.ID))
	require.NoError(t, store.CreateEdge(ctx, domain.EdgeFollow, alice.ID, bob.ID))

	followers, err := store.CountEdgesByTarget(ctx, domain.EdgeFollow, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, followers)

	following, err := store.CountEdgesByActor(ctx, domain.EdgeFollow, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, following)
}

func TestMemoryStore_ListTweetsStableOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	alice := addUser(t, store, "alice")

	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	older := addTweet(t, store, alice, "older", ts.Add(-time.Hour))
	tieA := addTweet(t, store, alice, "tie a", ts)
	tieB := addTweet(t, store, alice, "tie b", ts)

	for i := 0; i < 5; i++ {
		tweets, err := store.ListTweets(ctx, ports.TweetFilter{})
		require.NoError(t, err)
		require.Len(t, tweets, 3)
		assert.Equal(t, tieB.ID, tweets[0].ID)
		assert.Equal(t, tieA.ID, tweets[1].ID)
		assert.Equal(t, older.ID, tweets[2].ID)
	}
}

func TestMemoryStore_SaveTweetUnknownAuthor(t *testing.T) {
	store := NewMemoryStore()
	tweet, err := domain.NewTweet(domain.UserSummary{ID: "ghost", Username: "ghost"}, "hello")
	require.NoError(t, err)
	assert.ErrorIs(t, store.SaveTweet(context.Background(), tweet), domain.ErrUserNotFound)
}
