package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/tbourn/biztime-api/internal/events"
)

// publish emits ev best-effort. The request may already be finishing, so the
// publish is detached from ctx cancellation while keeping its values.
func publish(ctx context.Context, p events.Publisher, typ string, data any) {
	if p == nil {
		return
	}
	if err := p.Publish(context.WithoutCancel(ctx), events.New(typ, data)); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("event", typ).Msg("event publish failed")
	}
}
