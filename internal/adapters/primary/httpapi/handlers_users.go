package httpapi

import (
	"net/http"
)

type toggleFollowResponse struct {
	Following bool `json:"following"`
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.profiles.GetProfile(r.Context(), r.PathValue("username"), viewerFrom(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileJSON(profile))
}

func (s *Server) handleToggleFollow(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}

	following, err := s.engagement.ToggleFollow(r.Context(), actorID, r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toggleFollowResponse{Following: following})
}
