package httpapi

import (
	"net/http"
)

type createTweetRequest struct {
	Content string `json:"content"`
}

type toggleLikeResponse struct {
	Liked bool `json:"liked"`
}

type toggleRetweetResponse struct {
	Retweeted bool `json:"retweeted"`
}

func (s *Server) handleCreateTweet(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req createTweetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := s.tweets.CreateTweet(r.Context(), actorID, req.Content)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTweetJSON(*item))
}

func (s *Server) handleListFeed(w http.ResponseWriter, r *http.Request) {
	items, err := s.feed.ListGlobal(r.Context(), viewerFrom(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTweetListJSON(items))
}

func (s *Server) handleListUserTweets(w http.ResponseWriter, r *http.Request) {
	items, err := s.feed.ListByUser(r.Context(), r.PathValue("username"), viewerFrom(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTweetListJSON(items))
}

func (s *Server) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}

	liked, err := s.engagement.ToggleLike(r.Context(), actorID, r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toggleLikeResponse{Liked: liked})
}

func (s *Server) handleToggleRetweet(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}

	retweeted, err := s.engagement.ToggleRetweet(r.Context(), actorID, r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toggleRetweetResponse{Retweeted: retweeted})
}
