package format

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-content/internal/entities"
)

// Event types published on the bus after a run. The event source is the
// record; failed files carry a record holding only the path and kind.
const (
	EventRecordChanged = "content.record.changed"
	EventRecordFailed  = "content.record.failed"
)

func (o *orchestrator) publish(ctx context.Context, eventType string, rec *entities.Record) {
	if err := o.eventBus.Publish(ctx, events.NewGameEvent(eventType, rec, nil)); err != nil {
		slog.WarnContext(ctx, "failed to publish event",
			"type", eventType,
			"path", rec.Path,
			"error", err)
	}
}

// RecordFromEvent returns the record an event was published for
func RecordFromEvent(e events.Event) (*entities.Record, bool) {
	rec, ok := e.Source().(*entities.Record)
	return rec, ok
}
