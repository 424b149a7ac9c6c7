package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/carbase/carbase/internal/application/ports"
)

// AuditLog logs record-mutation events (vehicle id, plate, IP).
func AuditLog(log zerolog.Logger, r *http.Request, event, vehicleID, plate string, success bool, errMsg string) {
	ev := log.Info()
	if !success {
		ev = log.Warn()
	}
	ev.
		Str("event", event).
		Str("vehicle_id", vehicleID).
		Str("plate", plate).
		Str("ip", getClientIP(r)).
		Str("request_id", middleware.GetReqID(r.Context())).
		Bool("success", success)
	if errMsg != "" {
		ev.Str("error", errMsg)
	}
	ev.Msg("record_audit")
}

// AuditEmit logs the event and, if enqueuer is non-nil, queues it for
// asynchronous webhook delivery. Enqueue failures are swallowed here; the
// mutation already committed and must not fail on audit plumbing.
func AuditEmit(log zerolog.Logger, r *http.Request, enqueuer ports.TaskEnqueuer, event, vehicleID, plate string, success bool, errMsg string) {
	AuditLog(log, r, event, vehicleID, plate, success, errMsg)
	if enqueuer != nil {
		_ = enqueuer.EnqueueAuditEvent(r.Context(), ports.AuditEvent{
			Event:     event,
			VehicleID: vehicleID,
			Plate:     plate,
			IP:        getClientIP(r),
			Success:   success,
			Err:       errMsg,
		})
	}
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	return r.RemoteAddr
}
