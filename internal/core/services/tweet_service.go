package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/warblehq/warble/internal/core/domain"
	"github.com/warblehq/warble/internal/core/ports"
)

// TweetService authors tweets. The returned item carries the denormalized
// author summary and zero counts: a fresh tweet has no likes or retweets,
// and the author holds no edge to it.
type TweetService struct {
	tweets    ports.TweetRepository
	users     ports.UserRepository
	publisher ports.EventPublisher
}

func NewTweetService(tweets ports.TweetRepository, users ports.UserRepository, publisher ports.EventPublisher) *TweetService {
	return &TweetService{tweets: tweets, users: users, publisher: publisher}
}

func (s *TweetService) CreateTweet(ctx context.Context, authorID, content string) (*domain.FeedItem, error) {
	author, err := s.users.UserByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	tweet, err := domain.NewTweet(author.Summary(), content)
	if err != nil {
		return nil, err
	}

	if err := s.tweets.SaveTweet(ctx, tweet); err != nil {
		return nil, fmt.Errorf("save tweet: %w", err)
	}

	if err := s.publisher.PublishTweetCreated(ctx, tweet); err != nil {
		slog.Error("failed to publish tweet.created", "tweet_id", tweet.ID, "error", err)
	}

	return &domain.FeedItem{Tweet: *tweet}, nil
}
