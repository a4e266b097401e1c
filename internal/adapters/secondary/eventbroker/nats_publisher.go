package eventbroker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/warblehq/warble/internal/core/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

const (
	subjectUserRegistered    = "user.registered"
	subjectTweetCreated      = "tweet.created"
	subjectEngagementToggled = "engagement.toggled"
)

type NatsPublisher struct {
	nc *nats.Conn
}

func NewNatsPublisher(nc *nats.Conn) *NatsPublisher {
	return &NatsPublisher{nc: nc}
}

type userRegisteredEvent struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type tweetCreatedEvent struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type engagementToggledEvent struct {
	Kind     string `json:"kind"`
	ActorID  string `json:"actor_id"`
	TargetID string `json:"target_id"`
	Active   bool   `json:"active"`
}

func (p *NatsPublisher) PublishUserRegistered(ctx context.Context, userID, email string) error {
	return p.publish(ctx, subjectUserRegistered, userRegisteredEvent{UserID: userID, Email: email})
}

func (p *NatsPublisher) PublishTweetCreated(ctx context.Context, tweet *domain.Tweet) error {
	return p.publish(ctx, subjectTweetCreated, tweetCreatedEvent{
		ID:        tweet.ID,
		AuthorID:  tweet.Author.ID,
		Content:   tweet.Content,
		CreatedAt: tweet.CreatedAt,
	})
}

func (p *NatsPublisher) PublishEngagementToggled(ctx context.Context, kind domain.EdgeKind, actorID, targetID string, active bool) error {
	return p.publish(ctx, subjectEngagementToggled, engagementToggledEvent{
		Kind:     string(kind),
		ActorID:  actorID,
		TargetID: targetID,
		Active:   active,
	})
}

// publish serializes the event and carries the trace context in the NATS
// headers so downstream consumers join the request's trace.
func (p *NatsPublisher) publish(ctx context.Context, subject string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", subject, err)
	}

	msg := &nats.Msg{
		Subject: subject,
		Data:    data,
		Header:  nats.Header{},
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(msg.Header))

	return p.nc.PublishMsg(msg)
}
