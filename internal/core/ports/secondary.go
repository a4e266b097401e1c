package ports

import (
	"context"
	"time"

	"github.com/warblehq/warble/internal/core/domain"
)

// UserRepository persists accounts. SaveUser translates uniqueness
// violations into domain.ErrEmailTaken / domain.ErrUsernameTaken; lookups
// return domain.ErrUserNotFound when nothing matches.
type UserRepository interface {
	SaveUser(ctx context.Context, user *domain.User) error
	UpdateUser(ctx context.Context, user *domain.User) error
	UserByID(ctx context.Context, id string) (*domain.User, error)
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	UserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// TweetFilter narrows ListTweets; the zero value selects everything.
type TweetFilter struct {
	AuthorID string
}

// TweetRepository persists tweets. ListTweets returns newest first with a
// stable total order: ties on the creation timestamp fall back to
// insertion order.
type TweetRepository interface {
	SaveTweet(ctx context.Context, tweet *domain.Tweet) error
	ListTweets(ctx context.Context, filter TweetFilter) ([]domain.Tweet, error)
	CountTweetsByAuthor(ctx context.Context, authorID string) (int, error)
}

// EngagementRepository owns the edge sets. CreateEdge and DeleteEdge are
// each a single atomic statement against the store: CreateEdge fails with
// domain.ErrEdgeExists when the edge is already present (and with
// domain.ErrTweetNotFound / domain.ErrUserNotFound when the target does
// not exist), DeleteEdge fails with domain.ErrEdgeNotFound when there is
// nothing to delete. The toggle loop in the engagement service is built on
// exactly these two conditional operations.
type EngagementRepository interface {
	CreateEdge(ctx context.Context, kind domain.EdgeKind, actorID, targetID string) error
	DeleteEdge(ctx context.Context, kind domain.EdgeKind, actorID, targetID string) error
	EdgeExists(ctx context.Context, kind domain.EdgeKind, actorID, targetID string) (bool, error)

	// CountEdgesByTarget counts edges pointing at targetID (likes of a
	// tweet, followers of a user); CountEdgesByActor counts edges leaving
	// actorID (a user's following count).
	CountEdgesByTarget(ctx context.Context, kind domain.EdgeKind, targetID string) (int, error)
	CountEdgesByActor(ctx context.Context, kind domain.EdgeKind, actorID string) (int, error)
}

// EventPublisher notifies the outside world. Publishing is best effort:
// services log failures but never fail the caller's request over them.
type EventPublisher interface {
	PublishUserRegistered(ctx context.Context, userID, email string) error
	PublishTweetCreated(ctx context.Context, tweet *domain.Tweet) error
	PublishEngagementToggled(ctx context.Context, kind domain.EdgeKind, actorID, targetID string, active bool) error
}

// PasswordHasher abstracts the hashing algorithm.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenProvider mints and verifies bearer tokens.
type TokenProvider interface {
	Generate(user *domain.User) (string, error)
	Validate(token string) (userID string, err error)
	TTL() time.Duration
}
