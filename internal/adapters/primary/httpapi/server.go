// Package httpapi is the primary adapter: a JSON HTTP surface over the
// core services, with bearer-token authentication resolving each request
// to an authenticated or anonymous viewer.
package httpapi

import (
	"net/http"

	"github.com/rs/cors"
	"github.com/warblehq/warble/internal/core/ports"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	identity   ports.IdentityService
	tweets     ports.TweetService
	engagement ports.EngagementService
	feed       ports.FeedService
	profiles   ports.ProfileService
}

func NewServer(
	identity ports.IdentityService,
	tweets ports.TweetService,
	engagement ports.EngagementService,
	feed ports.FeedService,
	profiles ports.ProfileService,
) *Server {
	return &Server{
		identity:   identity,
		tweets:     tweets,
		engagement: engagement,
		feed:       feed,
		profiles:   profiles,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/signup", s.handleSignUp)
	mux.HandleFunc("POST /api/auth/signin", s.handleSignIn)
	mux.HandleFunc("PATCH /api/auth/profile", s.handleUpdateProfile)

	mux.HandleFunc("POST /api/tweets", s.handleCreateTweet)
	mux.HandleFunc("GET /api/tweets", s.handleListFeed)
	mux.HandleFunc("POST /api/tweets/{id}/like", s.handleToggleLike)
	mux.HandleFunc("POST /api/tweets/{id}/retweet", s.handleToggleRetweet)

	mux.HandleFunc("GET /api/users/{username}", s.handleGetProfile)
	mux.HandleFunc("GET /api/users/{username}/tweets", s.handleListUserTweets)
	mux.HandleFunc("POST /api/users/{id}/follow", s.handleToggleFollow)

	var handler http.Handler = s.viewerMiddleware(mux)
	handler = cors.AllowAll().Handler(handler)
	return otelhttp.NewHandler(handler, "warble.http")
}
