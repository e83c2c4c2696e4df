package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModelOptions(t *testing.T) ModelOptions {
	t.Helper()

	info, err := NewModelInfoBuilder().SetName("mobilenet_v1").SetHash("abc123").Build()
	require.NoError(t, err)
	options, err := NewModelOptionsBuilder().SetModelInfo(info).Build()
	require.NoError(t, err)
	return options
}

func TestModelDownloadLogEventBuilder_Defaults(t *testing.T) {
	event, err := NewModelDownloadLogEventBuilder().
		SetModelOptions(testModelOptions(t)).
		Build()
	require.NoError(t, err)

	assert.Equal(t, ErrorCodeUnknown, event.ErrorCode())
	assert.Equal(t, DownloadStatusUnknown, event.DownloadStatus())
	assert.Equal(t, 0, event.DownloadFailureStatus())
	assert.EqualValues(t, 0, event.RoughDownloadDurationMs())
	assert.EqualValues(t, 0, event.ExactDownloadDurationMs())
}

func TestModelDownloadLogEventBuilder_Overrides(t *testing.T) {
	event, err := NewModelDownloadLogEventBuilder().
		SetErrorCode(ErrorCodeNone).
		SetDownloadStatus(DownloadStatusSucceeded).
		SetDownloadFailureStatus(3).
		SetRoughDownloadDurationMs(500).
		SetExactDownloadDurationMs(487).
		SetModelOptions(testModelOptions(t)).
		Build()
	require.NoError(t, err)

	assert.Equal(t, ErrorCodeNone, event.ErrorCode())
	assert.Equal(t, DownloadStatusSucceeded, event.DownloadStatus())
	assert.Equal(t, 3, event.DownloadFailureStatus())
	assert.EqualValues(t, 500, event.RoughDownloadDurationMs())
	assert.EqualValues(t, 487, event.ExactDownloadDurationMs())
}

func TestModelDownloadLogEventBuilder_MissingModelOptions(t *testing.T) {
	event, err := NewModelDownloadLogEventBuilder().
		SetErrorCode(ErrorCodeNone).
		Build()

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "ModelDownloadLogEvent", missing.Entity)
	assert.Equal(t, "modelOptions", missing.Field)
	assert.Zero(t, event)
}
