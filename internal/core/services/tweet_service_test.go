package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warblehq/warble/internal/adapters/secondary/repository"
	"github.com/warblehq/warble/internal/core/domain"
)

func TestCreateTweet_ReturnsHydratedItem(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	pub := &capturePublisher{}
	svc := NewTweetService(store, store, pub)

	alice := seedUser(t, store, "alice")
	require.NoError(t, alice.SetAvatar("https://cdn.example.com/alice.png"))
	require.NoError(t, store.UpdateUser(ctx, alice))

	item, err := svc.CreateTweet(ctx, alice.ID, "hello world")
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "hello world", item.Content)
	assert.Equal(t, alice.ID, item.Author.ID)
	assert.Equal(t, "alice", item.Author.Username)
	assert.Equal(t, "https://cdn.example.com/alice.png", item.Author.Avatar)
	assert.False(t, item.CreatedAt.IsZero())

	// Fresh tweets have no engagement yet, not even from the author.
	assert.Zero(t, item.LikeCount)
	assert.Zero(t, item.RetweetCount)
	assert.False(t, item.IsLiked)
	assert.False(t, item.IsRetweeted)

	require.Len(t, pub.tweets, 1)
	assert.Equal(t, item.ID, pub.tweets[0])
}

func TestCreateTweet_AppearsInFeed(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewTweetService(store, store, &capturePublisher{})
	feed := NewFeedService(store, store, store)

	alice := seedUser(t, store, "alice")
	item, err := svc.CreateTweet(ctx, alice.ID, "hello")
	require.NoError(t, err)

	items, err := feed.ListGlobal(ctx, domain.Anonymous())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
}

func TestCreateTweet_ContentValidation(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewTweetService(store, store, &capturePublisher{})

	alice := seedUser(t, store, "alice")

	_, err := svc.CreateTweet(ctx, alice.ID, "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyContent)

	_, err = svc.CreateTweet(ctx, alice.ID, strings.Repeat("x", 281))
	assert.ErrorIs(t, err, domain.ErrContentTooLong)

	// Exactly at the limit is fine.
	_, err = svc.CreateTweet(ctx, alice.ID, strings.Repeat("x", 280))
	assert.NoError(t, err)
}

func TestCreateTweet_UnknownAuthor(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewTweetService(store, store, &capturePublisher{})

	_, err := svc.CreateTweet(context.Background(), "no-such-user", "hello")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
