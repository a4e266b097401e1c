package eventbroker

import (
	"context"

	"github.com/warblehq/warble/internal/core/domain"
)

// NoopPublisher discards all events. Used when no NATS URL is configured,
// e.g. local runs against the in-memory store.
type NoopPublisher struct{}

func NewNoopPublisher() NoopPublisher {
	return NoopPublisher{}
}

func (NoopPublisher) PublishUserRegistered(context.Context, string, string) error {
	return nil
}

func (NoopPublisher) PublishTweetCreated(context.Context, *domain.Tweet) error {
	return nil
}

func (NoopPublisher) PublishEngagementToggled(context.Context, domain.EdgeKind, string, string, bool) error {
	return nil
}
