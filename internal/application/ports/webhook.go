package ports

import "context"

// AuditEvent is a single record-mutation event for logging or webhooks.
type AuditEvent struct {
	Event     string // event type: vehicle.created, vehicle.updated, vehicle.deleted
	VehicleID string
	Plate     string
	IP        string
	Success   bool
	Err       string
}

// WebhookEmitter sends audit events to an external endpoint.
type WebhookEmitter interface {
	Emit(ctx context.Context, event AuditEvent) error
}
