package services

import (
	"context"

	"github.com/warblehq/warble/internal/core/domain"
	"github.com/warblehq/warble/internal/core/ports"
)

// FeedService assembles timelines. Counts and viewer flags are computed
// per tweet from the live edge sets, so they cannot drift from the edges;
// each tweet is enriched independently and may observe a slightly
// different snapshot, which is acceptable across entities.
type FeedService struct {
	tweets ports.TweetRepository
	users  ports.UserRepository
	edges  ports.EngagementRepository
}

func NewFeedService(tweets ports.TweetRepository, users ports.UserRepository, edges ports.EngagementRepository) *FeedService {
	return &FeedService{tweets: tweets, users: users, edges: edges}
}

func (s *FeedService) ListGlobal(ctx context.Context, viewer domain.Viewer) ([]domain.FeedItem, error) {
	tweets, err := s.tweets.ListTweets(ctx, ports.TweetFilter{})
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, tweets, viewer)
}

func (s *FeedService) ListByUser(ctx context.Context, username string, viewer domain.Viewer) ([]domain.FeedItem, error) {
	user, err := s.users.UserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	tweets, err := s.tweets.ListTweets(ctx, ports.TweetFilter{AuthorID: user.ID})
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, tweets, viewer)
}

func (s *FeedService) enrich(ctx context.Context, tweets []domain.Tweet, viewer domain.Viewer) ([]domain.FeedItem, error) {
	viewerID, authenticated := viewer.ID()

	items := make([]domain.FeedItem, 0, len(tweets))
	for _, tweet := range tweets {
		item := domain.FeedItem{Tweet: tweet}

		var err error
		if item.LikeCount, err = s.edges.CountEdgesByTarget(ctx, domain.EdgeLike, tweet.ID); err != nil {
			return nil, err
		}
		if item.RetweetCount, err = s.edges.CountEdgesByTarget(ctx, domain.EdgeRetweet, tweet.ID); err != nil {
			return nil, err
		}

		// Anonymous viewers see no personalized state; both flags stay false.
		if authenticated {
			if item.IsLiked, err = s.edges.EdgeExists(ctx, domain.EdgeLike, viewerID, tweet.ID); err != nil {
				return nil, err
			}
			if item.IsRetweeted, err = s.edges.EdgeExists(ctx, domain.EdgeRetweet, viewerID, tweet.ID); err != nil {
				return nil, err
			}
		}

		items = append(items, item)
	}
	return items, nil
}
