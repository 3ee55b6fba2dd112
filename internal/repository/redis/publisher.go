package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"africahub/domain"

	"github.com/redis/go-redis/v9"
)

const recommendationEvent = "recommendation_update"

// streamEnvelope is the wire format on the per-user channel. Subscribers
// switch on the event name.
type streamEnvelope struct {
	Event   string                      `json:"event"`
	Payload domain.RecommendationUpdate `json:"payload"`
}

// RecommendationPublisher broadcasts scored batches over Redis pub/sub.
// Each user gets their own channel so frontend subscriptions stay scoped to
// one stream.
type RecommendationPublisher struct {
	client *redis.Client
}

func NewRecommendationPublisher(client *redis.Client) *RecommendationPublisher {
	return &RecommendationPublisher{
		client: client,
	}
}

// ChannelForUser returns the pub/sub channel name for one user's stream.
func ChannelForUser(userID string) string {
	return fmt.Sprintf("recommendations-%s", userID)
}

func (p *RecommendationPublisher) PublishUpdate(ctx context.Context, userID string, update domain.RecommendationUpdate) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	envelope := streamEnvelope{
		Event:   recommendationEvent,
		Payload: update,
	}

	raw, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendation update: %w", err)
	}

	if err := p.client.Publish(ctx, ChannelForUser(userID), raw).Err(); err != nil {
		return fmt.Errorf("failed to publish recommendation update: %w", err)
	}

	return nil
}
