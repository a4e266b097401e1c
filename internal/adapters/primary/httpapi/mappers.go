package httpapi

import (
	"time"

	"github.com/warblehq/warble/internal/core/domain"
	"github.com/warblehq/warble/internal/core/ports"
)

type userJSON struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	Bio         string    `json:"bio,omitempty"`
	Avatar      string    `json:"avatar,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type authorJSON struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Avatar      string `json:"avatar,omitempty"`
}

type tweetJSON struct {
	ID           string     `json:"id"`
	Content      string     `json:"content"`
	Author       authorJSON `json:"author"`
	CreatedAt    time.Time  `json:"createdAt"`
	LikeCount    int        `json:"likeCount"`
	RetweetCount int        `json:"retweetCount"`
	IsLiked      bool       `json:"isLiked"`
	IsRetweeted  bool       `json:"isRetweeted"`
}

type profileJSON struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	DisplayName    string    `json:"displayName"`
	Bio            string    `json:"bio,omitempty"`
	Avatar         string    `json:"avatar,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	TweetCount     int       `json:"tweetCount"`
	FollowerCount  int       `json:"followerCount"`
	FollowingCount int       `json:"followingCount"`
	IsFollowing    bool      `json:"isFollowing"`
}

type authJSON struct {
	User        userJSON `json:"user"`
	AccessToken string   `json:"accessToken"`
	ExpiresIn   int64    `json:"expiresIn"`
}

func toUserJSON(u *domain.User) userJSON {
	return userJSON{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Bio:         u.Bio,
		Avatar:      u.Avatar,
		CreatedAt:   u.CreatedAt,
	}
}

func toAuthJSON(resp *ports.AuthResponse) authJSON {
	return authJSON{
		User:        toUserJSON(resp.User),
		AccessToken: resp.AccessToken,
		ExpiresIn:   int64(resp.ExpiresIn.Seconds()),
	}
}

func toTweetJSON(item domain.FeedItem) tweetJSON {
	return tweetJSON{
		ID:      item.ID,
		Content: item.Content,
		Author: authorJSON{
			ID:          item.Author.ID,
			Username:    item.Author.Username,
			DisplayName: item.Author.DisplayName,
			Avatar:      item.Author.Avatar,
		},
		CreatedAt:    item.CreatedAt,
		LikeCount:    item.LikeCount,
		RetweetCount: item.RetweetCount,
		IsLiked:      item.IsLiked,
		IsRetweeted:  item.IsRetweeted,
	}
}

func toTweetListJSON(items []domain.FeedItem) []tweetJSON {
	out := make([]tweetJSON, len(items))
	for i, item := range items {
		out[i] = toTweetJSON(item)
	}
	return out
}

func toProfileJSON(p *domain.Profile) profileJSON {
	return profileJSON{
		ID:             p.ID,
		Username:       p.Username,
		DisplayName:    p.DisplayName,
		Bio:            p.Bio,
		Avatar:         p.Avatar,
		CreatedAt:      p.CreatedAt,
		TweetCount:     p.TweetCount,
		FollowerCount:  p.FollowerCount,
		FollowingCount: p.FollowingCount,
		IsFollowing:    p.IsFollowing,
	}
}
