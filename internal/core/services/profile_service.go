package services

import (
	"context"

	"github.com/warblehq/warble/internal/core/domain"
	"github.com/warblehq/warble/internal/core/ports"
)

// ProfileService aggregates a user's public page. All counts are edge-set
// cardinalities computed at read time.
type ProfileService struct {
	users  ports.UserRepository
	tweets ports.TweetRepository
	edges  ports.EngagementRepository
}

func NewProfileService(users ports.UserRepository, tweets ports.TweetRepository, edges ports.EngagementRepository) *ProfileService {
	return &ProfileService{users: users, tweets: tweets, edges: edges}
}

func (s *ProfileService) GetProfile(ctx context.Context, username string, viewer domain.Viewer) (*domain.Profile, error) {
	user, err := s.users.UserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Bio:         user.Bio,
		Avatar:      user.Avatar,
		CreatedAt:   user.CreatedAt,
	}

	if profile.TweetCount, err = s.tweets.CountTweetsByAuthor(ctx, user.ID); err != nil {
		return nil, err
	}
	if profile.FollowerCount, err = s.edges.CountEdgesByTarget(ctx, domain.EdgeFollow, user.ID); err != nil {
		return nil, err
	}
	if profile.FollowingCount, err = s.edges.CountEdgesByActor(ctx, domain.EdgeFollow, user.ID); err != nil {
		return nil, err
	}

	// A viewer on their own profile is never "following themselves"; the
	// edge set is not even consulted.
	if viewerID, ok := viewer.ID(); ok && viewerID != user.ID {
		if profile.IsFollowing, err = s.edges.EdgeExists(ctx, domain.EdgeFollow, viewerID, user.ID); err != nil {
			return nil, err
		}
	}

	return profile, nil
}
