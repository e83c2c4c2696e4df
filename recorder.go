package telemetry

import (
	"context"
	"errors"
	"log/slog"

	"github.com/fogfish/opts"
	"github.com/google/uuid"

	"github.com/modelfetch/telemetry/pkg/slogx"
)

// Sink is the transport collaborator that takes ownership of encoded event
// bytes. Delivery, batching and retry policy live behind this boundary, not
// in this package.
type Sink interface {
	Deliver(ctx context.Context, event []byte) error
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(ctx context.Context, event []byte) error

func (f SinkFunc) Deliver(ctx context.Context, event []byte) error {
	return f(ctx, event)
}

// Recorder encodes finished events and hands the bytes to a Sink. It makes
// no decisions about when to log; callers do.
type Recorder struct {
	Sink       Sink
	SystemInfo *SystemInfo
	Log        *slog.Logger
}

// WithLogger overrides the slog logger used for recorder diagnostics.
var WithLogger = opts.ForName[Recorder, *slog.Logger]("Log")

// WithSystemInfo sets a default SystemInfo that gets attached to every
// recorded event that does not already carry one.
func WithSystemInfo(info SystemInfo) opts.Option[Recorder] {
	return opts.Type[Recorder](func(r *Recorder) error {
		r.SystemInfo = &info
		return nil
	})
}

// NewRecorder builds a Recorder delivering to sink.
func NewRecorder(sink Sink, options ...opts.Option[Recorder]) (*Recorder, error) {
	if sink == nil {
		return nil, errors.New("recorder requires a sink")
	}

	r := &Recorder{Sink: sink, Log: slog.Default()}
	if err := opts.Apply(r, options); err != nil {
		return nil, err
	}
	return r, nil
}

// Record encodes the event and delivers the bytes to the sink. When the
// recorder carries a default SystemInfo and the event has none, the default
// is attached to a derived copy; the caller's event is never modified.
func (r *Recorder) Record(ctx context.Context, event LogEvent) error {
	if r.SystemInfo != nil {
		if _, ok := event.SystemInfo(); !ok {
			derived, err := event.WithSystemInfo(*r.SystemInfo)
			if err != nil {
				return err
			}
			event = derived
		}
	}

	payload, err := Encode(event)
	if err != nil {
		r.Log.ErrorContext(ctx, "encoding telemetry event failed",
			slogx.Error(err),
			slogx.Stringer("event_name", event.EventName()),
		)
		return err
	}

	deliveryID := uuid.New()
	r.Log.DebugContext(ctx, "delivering telemetry event",
		slog.String("delivery_id", deliveryID.String()),
		slogx.Stringer("event_name", event.EventName()),
		slog.Int("size_bytes", len(payload)),
	)

	if err := r.Sink.Deliver(ctx, payload); err != nil {
		r.Log.ErrorContext(ctx, "delivering telemetry event failed",
			slog.String("delivery_id", deliveryID.String()),
			slogx.Error(err),
		)
		return err
	}
	return nil
}
