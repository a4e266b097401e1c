package ports

import (
	"context"
	"time"

	"github.com/warblehq/warble/internal/core/domain"
)

// Command structs keep the signatures stable when optional fields grow.

type RegisterCmd struct {
	Email       string
	Username    string
	DisplayName string
	Password    string
}

type LoginCmd struct {
	Email    string
	Password string
}

// UpdateProfileCmd uses pointers so "absent" and "set to empty" stay
// distinguishable per field.
type UpdateProfileCmd struct {
	UserID      string
	DisplayName *string
	Bio         *string
	Avatar      *string
}

type AuthResponse struct {
	User        *domain.User
	AccessToken string
	ExpiresIn   time.Duration
}

// IdentityService is the driving port for accounts and credentials.
type IdentityService interface {
	Register(ctx context.Context, cmd RegisterCmd) (*AuthResponse, error)
	Login(ctx context.Context, cmd LoginCmd) (*AuthResponse, error)

	// ValidateToken verifies a bearer token and returns the caller's user id.
	ValidateToken(ctx context.Context, token string) (string, error)

	UpdateProfile(ctx context.Context, cmd UpdateProfileCmd) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}

// TweetService authors tweets on behalf of an authenticated caller.
type TweetService interface {
	CreateTweet(ctx context.Context, authorID, content string) (*domain.FeedItem, error)
}

// EngagementService flips edge membership and reports the resulting state:
// true when the edge now exists, false when it was removed.
type EngagementService interface {
	ToggleLike(ctx context.Context, actorID, tweetID string) (bool, error)
	ToggleRetweet(ctx context.Context, actorID, tweetID string) (bool, error)
	ToggleFollow(ctx context.Context, actorID, targetUserID string) (bool, error)
}

// FeedService assembles newest-first timelines annotated for the viewer.
type FeedService interface {
	ListGlobal(ctx context.Context, viewer domain.Viewer) ([]domain.FeedItem, error)
	ListByUser(ctx context.Context, username string, viewer domain.Viewer) ([]domain.FeedItem, error)
}

// ProfileService aggregates a user's public page for the viewer.
type ProfileService interface {
	GetProfile(ctx context.Context, username string, viewer domain.Viewer) (*domain.Profile, error)
}
