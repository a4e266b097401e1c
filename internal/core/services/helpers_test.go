package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/warblehq/warble/internal/adapters/secondary/repository"
	"github.com/warblehq/warble/internal/core/domain"
)

type toggleEvent struct {
	kind     domain.EdgeKind
	actorID  string
	targetID string
	active   bool
}

// capturePublisher records published events for assertions.
type capturePublisher struct {
	mu         sync.Mutex
	registered []string
	tweets     []string
	toggles    []toggleEvent
}

func (p *capturePublisher) PublishUserRegistered(_ context.Context, userID, _ string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.registered = append(p.registered, userID)
	return nil
}

func (p *capturePublisher) PublishTweetCreated(_ context.Context, tweet *domain.Tweet) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tweets = append(p.tweets, tweet.ID)
	return nil
}

func (p *capturePublisher) PublishEngagementToggled(_ context.Context, kind domain.EdgeKind, actorID, targetID string, active bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.toggles = append(p.toggles, toggleEvent{kind, actorID, targetID, active})
	return nil
}

func seedUser(t *testing.T, store *repository.MemoryStore, username string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(username+"@example.com", username, username, "hash")
	require.NoError(t, err)
	require.NoError(t, store.SaveUser(context.Background(), user))
	return user
}

func seedTweet(t *testing.T, store *repository.MemoryStore, author *domain.User, content string, createdAt time.Time) *domain.Tweet {
	t.Helper()
	tweet, err := domain.NewTweet(author.Summary(), content)
	require.NoError(t, err)
	if !createdAt.IsZero() {
		tweet.CreatedAt = createdAt
	}
	require.NoError(t, store.SaveTweet(context.Background(), tweet))
	return tweet
}
