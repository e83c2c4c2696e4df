package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSystemInfo(t *testing.T) SystemInfo {
	t.Helper()

	info, err := NewSystemInfoBuilder().
		SetAppID("app-id").
		SetAppVersion("1.0.0").
		SetAPIKey("api-key").
		SetFirebaseProjectID("my-project").
		Build()
	require.NoError(t, err)
	return info
}

func TestLogEventBuilder_Build(t *testing.T) {
	event, err := NewLogEventBuilder().
		SetEventName(EventNameModelDownload).
		Build()
	require.NoError(t, err)

	assert.Equal(t, EventNameModelDownload, event.EventName())
	_, hasInfo := event.SystemInfo()
	assert.False(t, hasInfo)
	_, hasDownload := event.ModelDownloadLogEvent()
	assert.False(t, hasDownload)
}

func TestLogEventBuilder_MissingEventName(t *testing.T) {
	event, err := NewLogEventBuilder().
		SetSystemInfo(testSystemInfo(t)).
		Build()

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "LogEvent", missing.Entity)
	assert.Equal(t, "eventName", missing.Field)
	assert.Zero(t, event)
}

func TestLogEventBuilder_UnknownEventNameIsStillSet(t *testing.T) {
	// EventNameUnknown shares the int zero value; an explicit set must be
	// distinguishable from never setting the field.
	event, err := NewLogEventBuilder().
		SetEventName(EventNameUnknown).
		Build()
	require.NoError(t, err)
	assert.Equal(t, EventNameUnknown, event.EventName())
}

func TestLogEventBuilder_NestedObjects(t *testing.T) {
	download, err := NewModelDownloadLogEventBuilder().
		SetModelOptions(testModelOptions(t)).
		Build()
	require.NoError(t, err)

	event, err := NewLogEventBuilder().
		SetEventName(EventNameModelDownload).
		SetSystemInfo(testSystemInfo(t)).
		SetModelDownloadLogEvent(download).
		Build()
	require.NoError(t, err)

	gotInfo, ok := event.SystemInfo()
	require.True(t, ok)
	assert.Equal(t, testSystemInfo(t), gotInfo)

	gotDownload, ok := event.ModelDownloadLogEvent()
	require.True(t, ok)
	assert.Equal(t, download, gotDownload)
}

func TestLogEvent_WithSystemInfo(t *testing.T) {
	original, err := NewLogEventBuilder().
		SetEventName(EventNameModelDownload).
		Build()
	require.NoError(t, err)

	info := testSystemInfo(t)
	derived, err := original.WithSystemInfo(info)
	require.NoError(t, err)

	gotInfo, ok := derived.SystemInfo()
	require.True(t, ok)
	assert.Equal(t, info, gotInfo)
	assert.Equal(t, original.EventName(), derived.EventName())

	// The original stays untouched.
	_, ok = original.SystemInfo()
	assert.False(t, ok)
}

func TestLogEvent_WithSystemInfoReplaces(t *testing.T) {
	first := testSystemInfo(t)
	event, err := NewLogEventBuilder().
		SetEventName(EventNameModelUpdate).
		SetSystemInfo(first).
		Build()
	require.NoError(t, err)

	second, err := NewSystemInfoBuilder().
		SetAppID("other-app").
		SetAppVersion("2.0.0").
		SetAPIKey("other-key").
		SetFirebaseProjectID("other-project").
		Build()
	require.NoError(t, err)

	derived, err := event.WithSystemInfo(second)
	require.NoError(t, err)

	gotInfo, ok := derived.SystemInfo()
	require.True(t, ok)
	assert.Equal(t, second, gotInfo)

	gotInfo, ok = event.SystemInfo()
	require.True(t, ok)
	assert.Equal(t, first, gotInfo)
}

func TestLogEvent_WithSystemInfoOnZeroEvent(t *testing.T) {
	var event LogEvent
	_, err := event.WithSystemInfo(testSystemInfo(t))

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "eventName", missing.Field)
}

func TestLogEvent_ToBuilderCarriesAllFields(t *testing.T) {
	download, err := NewModelDownloadLogEventBuilder().
		SetDownloadStatus(DownloadStatusFailed).
		SetModelOptions(testModelOptions(t)).
		Build()
	require.NoError(t, err)

	original, err := NewLogEventBuilder().
		SetEventName(EventNameModelDownload).
		SetModelDownloadLogEvent(download).
		Build()
	require.NoError(t, err)

	derived, err := original.ToBuilder().SetEventName(EventNameModelUpdate).Build()
	require.NoError(t, err)

	assert.Equal(t, EventNameModelUpdate, derived.EventName())
	gotDownload, ok := derived.ModelDownloadLogEvent()
	require.True(t, ok)
	assert.Equal(t, download, gotDownload)

	assert.Equal(t, EventNameModelDownload, original.EventName())
}
