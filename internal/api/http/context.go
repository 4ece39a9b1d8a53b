package http

import (
	"context"
	"fmt"

	"jobboard-backend/internal/domain"
)

type actorKey struct{}

// WithActor stores the authenticated caller on the request context
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the caller placed by the auth middleware.
func ActorFromContext(ctx context.Context) (domain.Actor, error) {
	actor, ok := ctx.Value(actorKey{}).(domain.Actor)
	if !ok {
		return domain.Actor{}, fmt.Errorf("no authenticated user: %w", errUnauthenticated)
	}
	return actor, nil
}

// OptionalActor returns nil on routes that allow anonymous callers
func OptionalActor(ctx context.Context) *domain.Actor {
	actor, ok := ctx.Value(actorKey{}).(domain.Actor)
	if !ok {
		return nil
	}
	return &actor
}
