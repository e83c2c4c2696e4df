package telemetry

import "fmt"

// The enumerations below are a wire contract shared with the backend logging
// pipeline. Values are encoded as their underlying integers and must never be
// renumbered or reused; gaps between values are contractual, not accidental.

// EventName identifies the kind of occurrence a LogEvent describes.
type EventName int

const (
	EventNameUnknown       EventName = 0
	EventNameModelDownload EventName = 100
	EventNameModelUpdate   EventName = 101
)

// Valid reports whether e is one of the closed set of event names.
func (e EventName) Valid() bool {
	switch e {
	case EventNameUnknown, EventNameModelDownload, EventNameModelUpdate:
		return true
	}
	return false
}

func (e EventName) String() string {
	switch e {
	case EventNameUnknown:
		return "UNKNOWN_EVENT"
	case EventNameModelDownload:
		return "MODEL_DOWNLOAD"
	case EventNameModelUpdate:
		return "MODEL_UPDATE"
	default:
		return fmt.Sprintf("EventName(%d)", int(e))
	}
}

// ErrorCode classifies the outcome of a download. Codes 1-99 are reserved for
// the model inference subsystem; 100-199 belong to model downloading.
type ErrorCode int

const (
	// ErrorCodeNone means no error at all.
	ErrorCodeNone ErrorCode = 0

	// ErrorCodeDownloadFailed means the download started on a valid condition
	// but didn't finish successfully.
	ErrorCodeDownloadFailed ErrorCode = 104

	// ErrorCodeUnknown covers conditions that should never happen. A surge of
	// these on the backend means a bug on the client.
	ErrorCodeUnknown ErrorCode = 9999
)

// Valid reports whether c is one of the closed set of error codes.
func (c ErrorCode) Valid() bool {
	switch c {
	case ErrorCodeNone, ErrorCodeDownloadFailed, ErrorCodeUnknown:
		return true
	}
	return false
}

func (c ErrorCode) String() string {
	switch c {
	case ErrorCodeNone:
		return "NO_ERROR"
	case ErrorCodeDownloadFailed:
		return "DOWNLOAD_FAILED"
	case ErrorCodeUnknown:
		return "UNKNOWN_ERROR"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

// DownloadStatus tracks how far a model download got. A download is made up
// of two major stages: retrieving model info from the backend, then fetching
// the model file itself; the terminal statuses below describe the latter.
type DownloadStatus int

const (
	DownloadStatusUnknown   DownloadStatus = 0
	DownloadStatusSucceeded DownloadStatus = 7
	DownloadStatusFailed    DownloadStatus = 8
)

// Valid reports whether s is one of the closed set of download statuses.
func (s DownloadStatus) Valid() bool {
	switch s {
	case DownloadStatusUnknown, DownloadStatusSucceeded, DownloadStatusFailed:
		return true
	}
	return false
}

func (s DownloadStatus) String() string {
	switch s {
	case DownloadStatusUnknown:
		return "UNKNOWN_STATUS"
	case DownloadStatusSucceeded:
		return "SUCCEEDED"
	case DownloadStatusFailed:
		return "FAILED"
	default:
		return fmt.Sprintf("DownloadStatus(%d)", int(s))
	}
}

// ModelType describes the kind of model being downloaded. Custom is the only
// value the backend currently accepts; new values are a compatibility change.
type ModelType int

const (
	ModelTypeCustom ModelType = 1
)

// Valid reports whether t is one of the closed set of model types.
func (t ModelType) Valid() bool {
	return t == ModelTypeCustom
}

func (t ModelType) String() string {
	if t == ModelTypeCustom {
		return "CUSTOM"
	}
	return fmt.Sprintf("ModelType(%d)", int(t))
}
