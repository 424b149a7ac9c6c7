package queue

import (
	"context"

	"github.com/carbase/carbase/internal/application/ports"
)

// NoopEnqueuer is a no-op enqueuer when Redis/Asynq is not configured.
type NoopEnqueuer struct{}

func NewNoopEnqueuer() *NoopEnqueuer {
	return &NoopEnqueuer{}
}

func (q *NoopEnqueuer) EnqueueAuditEvent(ctx context.Context, event ports.AuditEvent) error {
	return nil
}

var _ ports.TaskEnqueuer = (*NoopEnqueuer)(nil)
