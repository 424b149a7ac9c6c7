package ports

import "context"

// TaskEnqueuer enqueues async tasks (webhook delivery).
type TaskEnqueuer interface {
	EnqueueAuditEvent(ctx context.Context, event AuditEvent) error
}
