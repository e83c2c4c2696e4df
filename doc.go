// Package telemetry implements the immutable event model and the JSON wire
// encoding for model-download telemetry, as consumed by the backend logging
// pipeline.
//
// Design decisions:
//   - Immutable values: entities are constructed only through validating
//     builders; once built they are safe to share across goroutines
//   - Deferred validation: setters are total and store anything, Build checks
//     required fields in one place and fails with a typed MissingFieldError
//   - Explicit presence: optional fields track set-ness with a presence flag
//     (pkg/optional), never a sentinel, so the encoder can omit unset fields
//     instead of encoding null or zero placeholders
//   - Deterministic wire form: MarshalJSON appends fields in contract order
//     with sjson, so the same event always encodes to identical bytes
//   - Closed enumerations: event names, error codes, download statuses and
//     model types are named-int types whose numeric values (including gaps)
//     are the backend contract
//
// Entities compose leaf-first: ModelInfo -> ModelOptions ->
// ModelDownloadLogEvent -> LogEvent, with SystemInfo attachable at the top
// level either at build time or afterwards through LogEvent.WithSystemInfo.
//
// Example usage:
//
//	info, err := telemetry.NewModelInfoBuilder().
//	    SetName("mobilenet_v1").
//	    SetHash("abc123").
//	    Build()
//	if err != nil { ... }
//
//	options, err := telemetry.NewModelOptionsBuilder().SetModelInfo(info).Build()
//	download, err := telemetry.NewModelDownloadLogEventBuilder().
//	    SetErrorCode(telemetry.ErrorCodeNone).
//	    SetDownloadStatus(telemetry.DownloadStatusSucceeded).
//	    SetModelOptions(options).
//	    Build()
//	event, err := telemetry.NewLogEventBuilder().
//	    SetEventName(telemetry.EventNameModelDownload).
//	    SetModelDownloadLogEvent(download).
//	    Build()
//
//	payload, err := telemetry.Encode(event)
//
// Delivery of the encoded bytes belongs to a transport collaborator behind
// the Sink interface; this package only shapes and encodes the record.
package telemetry
