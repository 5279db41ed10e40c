package audit

import (
	"context"

	"fx-backoffice-be/internal/pkg/logger"
	"fx-backoffice-be/pkg/events"
	"fx-backoffice-be/pkg/nats"
)

// Recorder mirrors wallet-affecting events onto the NATS audit stream.
// A nil inner publisher (NATS not configured or unreachable) makes every
// call a logged no-op so custody operations never depend on the bus.
type Recorder struct {
	publisher *nats.Publisher
	log       logger.ILogger
}

func NewRecorder(publisher *nats.Publisher, log logger.ILogger) *Recorder {
	return &Recorder{publisher: publisher, log: log}
}

func (r *Recorder) Record(ctx context.Context, eventType string, data map[string]interface{}) {
	if r == nil || r.publisher == nil {
		return
	}
	event := events.NewEvent(eventType, data)
	if err := r.publisher.Publish(ctx, event); err != nil {
		r.log.Warn("audit", "failed to publish audit event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}
