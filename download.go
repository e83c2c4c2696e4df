package telemetry

import "github.com/modelfetch/telemetry/pkg/optional"

// ModelDownloadLogEvent records the outcome of a single model download
// attempt. The counter fields default to zero and the error code to
// ErrorCodeUnknown, so a partially populated event still encodes a complete
// record; only the model options are required.
type ModelDownloadLogEvent struct {
	errorCode               ErrorCode
	downloadStatus          DownloadStatus
	downloadFailureStatus   int
	roughDownloadDurationMs int64
	exactDownloadDurationMs int64
	modelOptions            ModelOptions
	valid                   bool
}

func (e ModelDownloadLogEvent) ErrorCode() ErrorCode           { return e.errorCode }
func (e ModelDownloadLogEvent) DownloadStatus() DownloadStatus { return e.downloadStatus }
func (e ModelDownloadLogEvent) DownloadFailureStatus() int     { return e.downloadFailureStatus }
func (e ModelDownloadLogEvent) RoughDownloadDurationMs() int64 { return e.roughDownloadDurationMs }
func (e ModelDownloadLogEvent) ExactDownloadDurationMs() int64 { return e.exactDownloadDurationMs }
func (e ModelDownloadLogEvent) ModelOptions() ModelOptions     { return e.modelOptions }

// ModelDownloadLogEventBuilder accumulates download event fields until Build
// validates them. The defaulted fields are plain values seeded by the
// factory; only modelOptions carries a presence flag, since it has no
// default and must block Build when absent.
type ModelDownloadLogEventBuilder struct {
	errorCode               ErrorCode
	downloadStatus          DownloadStatus
	downloadFailureStatus   int
	roughDownloadDurationMs int64
	exactDownloadDurationMs int64
	modelOptions            optional.Value[ModelOptions]
}

// NewModelDownloadLogEventBuilder returns a builder pre-seeded with the
// entity defaults: ErrorCodeUnknown, DownloadStatusUnknown, and zeroed
// failure status and durations.
func NewModelDownloadLogEventBuilder() *ModelDownloadLogEventBuilder {
	return &ModelDownloadLogEventBuilder{
		errorCode:      ErrorCodeUnknown,
		downloadStatus: DownloadStatusUnknown,
	}
}

func (b *ModelDownloadLogEventBuilder) SetErrorCode(code ErrorCode) *ModelDownloadLogEventBuilder {
	b.errorCode = code
	return b
}

func (b *ModelDownloadLogEventBuilder) SetDownloadStatus(status DownloadStatus) *ModelDownloadLogEventBuilder {
	b.downloadStatus = status
	return b
}

func (b *ModelDownloadLogEventBuilder) SetDownloadFailureStatus(status int) *ModelDownloadLogEventBuilder {
	b.downloadFailureStatus = status
	return b
}

func (b *ModelDownloadLogEventBuilder) SetRoughDownloadDurationMs(ms int64) *ModelDownloadLogEventBuilder {
	b.roughDownloadDurationMs = ms
	return b
}

func (b *ModelDownloadLogEventBuilder) SetExactDownloadDurationMs(ms int64) *ModelDownloadLogEventBuilder {
	b.exactDownloadDurationMs = ms
	return b
}

func (b *ModelDownloadLogEventBuilder) SetModelOptions(options ModelOptions) *ModelDownloadLogEventBuilder {
	b.modelOptions.Set(options)
	return b
}

// Build returns an immutable ModelDownloadLogEvent, or a *MissingFieldError
// when the model options were never set.
func (b *ModelDownloadLogEventBuilder) Build() (ModelDownloadLogEvent, error) {
	options, ok := b.modelOptions.Get()
	if !ok {
		return ModelDownloadLogEvent{}, missingField("ModelDownloadLogEvent", "modelOptions")
	}

	return ModelDownloadLogEvent{
		errorCode:               b.errorCode,
		downloadStatus:          b.downloadStatus,
		downloadFailureStatus:   b.downloadFailureStatus,
		roughDownloadDurationMs: b.roughDownloadDurationMs,
		exactDownloadDurationMs: b.exactDownloadDurationMs,
		modelOptions:            options,
		valid:                   true,
	}, nil
}
