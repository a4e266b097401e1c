package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/warblehq/warble/internal/core/domain"
	"github.com/warblehq/warble/internal/core/ports"
)

// maxFlipAttempts bounds the toggle retry loop. An attempt only repeats
// when both the conditional insert and the conditional delete lost to
// concurrent toggles on the same edge, so 3 is already generous.
const maxFlipAttempts = 3

// EngagementService flips like/retweet/follow edges. The edge is a
// two-state machine over {absent, present}; a toggle is one atomic flip
// whose atomicity comes from the store's uniqueness constraint, not from
// a read-check.
type EngagementService struct {
	edges     ports.EngagementRepository
	publisher ports.EventPublisher
}

func NewEngagementService(edges ports.EngagementRepository, publisher ports.EventPublisher) *EngagementService {
	return &EngagementService{edges: edges, publisher: publisher}
}

func (s *EngagementService) ToggleLike(ctx context.Context, actorID, tweetID string) (bool, error) {
	return s.toggle(ctx, domain.EdgeLike, actorID, tweetID)
}

func (s *EngagementService) ToggleRetweet(ctx context.Context, actorID, tweetID string) (bool, error) {
	return s.toggle(ctx, domain.EdgeRetweet, actorID, tweetID)
}

func (s *EngagementService) ToggleFollow(ctx context.Context, actorID, targetUserID string) (bool, error) {
	// Rejected before any storage access, regardless of prior edge state.
	if actorID == targetUserID {
		return false, domain.ErrSelfFollow
	}
	return s.toggle(ctx, domain.EdgeFollow, actorID, targetUserID)
}

// toggle runs the flip loop: try to create the edge; if it already exists,
// try to delete it; if the delete finds nothing, another toggle removed it
// between the two statements and the flip starts over. ErrEdgeExists and
// ErrEdgeNotFound are never surfaced to callers, they are the opposite
// branch of the toggle.
func (s *EngagementService) toggle(ctx context.Context, kind domain.EdgeKind, actorID, targetID string) (bool, error) {
	for attempt := 0; attempt < maxFlipAttempts; attempt++ {
		err := s.edges.CreateEdge(ctx, kind, actorID, targetID)
		if err == nil {
			s.publishToggled(ctx, kind, actorID, targetID, true)
			return true, nil
		}
		if !errors.Is(err, domain.ErrEdgeExists) {
			return false, err
		}

		err = s.edges.DeleteEdge(ctx, kind, actorID, targetID)
		if err == nil {
			s.publishToggled(ctx, kind, actorID, targetID, false)
			return false, nil
		}
		if !errors.Is(err, domain.ErrEdgeNotFound) {
			return false, err
		}
	}
	return false, domain.ErrConflict
}

func (s *EngagementService) publishToggled(ctx context.Context, kind domain.EdgeKind, actorID, targetID string, active bool) {
	if err := s.publisher.PublishEngagementToggled(ctx, kind, actorID, targetID, active); err != nil {
		slog.Error("failed to publish engagement event", "kind", kind, "error", err)
	}
}
