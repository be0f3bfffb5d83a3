// Package observability provides audit event helpers for the throttle module.
package observability

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"pacer/pkg/requestcontext"
)

// Event captures a rotation-relevant coordinator decision. Keep it
// transport-agnostic so sinks can fan out (log files, ops pipelines).
type Event struct {
	ID         uuid.UUID
	OccurredAt time.Time
	// Action is the event name, e.g. "account_cooldown_started".
	Action string
	// Subject is the account or session the decision concerns.
	Subject string
	Fields  map[string]any
}

const (
	EventCooldownStarted = "account_cooldown_started"
	EventAccountReset    = "account_reset"
	EventWarmupExhausted = "warmup_exhausted"
)

// Publisher emits audit events for decisions the caller acts on.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
}

// LogAudit logs a decision event to the structured logger and, if available,
// the audit publisher. Publisher failures are logged, never propagated: audit
// is advisory and must not change coordination outcomes.
func LogAudit(ctx context.Context, logger *slog.Logger, publisher Publisher, action, subject string, attrList ...any) {
	args := append(attrList, "event", action, "subject", subject, "log_type", "audit")
	if logger != nil {
		logger.InfoContext(ctx, action, args...)
	}

	if publisher == nil {
		return
	}

	fields := make(map[string]any, len(attrList)/2)
	for i := 0; i+1 < len(attrList); i += 2 {
		if key, ok := attrList[i].(string); ok {
			fields[key] = attrList[i+1]
		}
	}

	event := Event{
		ID:         uuid.New(),
		OccurredAt: requestcontext.Now(ctx),
		Action:     action,
		Subject:    subject,
		Fields:     fields,
	}
	if err := publisher.Emit(ctx, event); err != nil && logger != nil {
		logger.WarnContext(ctx, "audit_emit_failed", "action", action, "error", err)
	}
}
