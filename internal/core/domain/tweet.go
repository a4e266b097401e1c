package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const MaxTweetLength = 280

// Tweet is immutable after creation: no edit, no delete.
type Tweet struct {
	ID        string
	Content   string
	Author    UserSummary
	CreatedAt time.Time
}

func NewTweet(author UserSummary, content string) (*Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > MaxTweetLength {
		return nil, ErrContentTooLong
	}
	return &Tweet{
		ID:        uuid.NewString(),
		Content:   content,
		Author:    author,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// FeedItem is a tweet as a viewer sees it: aggregate counts plus the
// viewer's own relationship flags. Counts and flags are derived from the
// live edge sets on every read, never stored.
type FeedItem struct {
	Tweet
	LikeCount    int
	RetweetCount int
	IsLiked      bool
	IsRetweeted  bool
}

// Profile is a user's public page: attributes plus derived counts and the
// viewer's follow relationship.
type Profile struct {
	ID             string
	Username       string
	DisplayName    string
	Bio            string
	Avatar         string
	CreatedAt      time.Time
	TweetCount     int
	FollowerCount  int
	FollowingCount int
	IsFollowing    bool
}
