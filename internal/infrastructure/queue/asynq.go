package queue

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/carbase/carbase/internal/application/ports"
)

const (
	TypeAuditEvent = "audit:emit"
)

// TaskEnqueuer pushes audit events onto the asynq queue for asynchronous
// webhook delivery. Enqueue failures are logged and returned but never block
// the originating request path.
type TaskEnqueuer struct {
	client *asynq.Client
	log    zerolog.Logger
}

func NewAsynqEnqueuer(redisOpt asynq.RedisClientOpt, log zerolog.Logger) (*TaskEnqueuer, error) {
	client := asynq.NewClient(redisOpt)
	return &TaskEnqueuer{client: client, log: log}, nil
}

func (q *TaskEnqueuer) Close() error {
	return q.client.Close()
}

func (q *TaskEnqueuer) EnqueueAuditEvent(ctx context.Context, event ports.AuditEvent) error {
	payload, _ := json.Marshal(event)
	task := asynq.NewTask(TypeAuditEvent, payload)
	_, err := q.client.EnqueueContext(ctx, task)
	if err != nil {
		q.log.Warn().Err(err).Str("event", event.Event).Msg("enqueue audit event failed")
		return err
	}
	return nil
}

var _ ports.TaskEnqueuer = (*TaskEnqueuer)(nil)
