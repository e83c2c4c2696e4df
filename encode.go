package telemetry

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var emptyObject = []byte(`{}`)

// Encode transforms a finalized LogEvent into its UTF-8 JSON wire form.
// Encoding is pure and deterministic: the same event always yields
// byte-identical output, with fields in the order the backend contract
// fixes. A LogEvent that never went through a validating builder fails with
// *EncodingError instead of emitting an incomplete record.
func Encode(event LogEvent) ([]byte, error) {
	if !event.valid {
		return nil, &EncodingError{Entity: "LogEvent"}
	}
	return json.Marshal(event)
}

// JSONTransformer returns the encoding step as a function value, for handing
// to a transport collaborator that wants a LogEvent-to-bytes transformer.
func JSONTransformer() func(LogEvent) ([]byte, error) {
	return Encode
}

// Decode parses wire-format bytes back into a LogEvent, validating required
// fields the same way the builders do.
func Decode(data []byte) (LogEvent, error) {
	var evt LogEvent
	if err := evt.UnmarshalJSON(data); err != nil {
		return LogEvent{}, err
	}
	return evt, nil
}

// MarshalJSON implements custom JSON marshaling for LogEvent. Absent nested
// objects are omitted entirely, never encoded as null.
func (e LogEvent) MarshalJSON() ([]byte, error) {
	if !e.valid {
		return nil, &EncodingError{Entity: "LogEvent"}
	}

	result, err := sjson.SetBytes(emptyObject, "event_name", int(e.eventName))
	if err != nil {
		return nil, err
	}

	if e.systemInfo != nil {
		info, err := json.Marshal(*e.systemInfo)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal system_info: %w", err)
		}
		result, err = sjson.SetRawBytes(result, "system_info", info)
		if err != nil {
			return nil, err
		}
	}

	if e.download != nil {
		download, err := json.Marshal(*e.download)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal model_download_log_event: %w", err)
		}
		result, err = sjson.SetRawBytes(result, "model_download_log_event", download)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// UnmarshalJSON implements custom JSON unmarshaling for LogEvent.
func (e *LogEvent) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid json: %s", data)
	}

	name := gjson.GetBytes(data, "event_name")
	if !name.Exists() {
		return fmt.Errorf("missing required field 'event_name'")
	}
	e.eventName = EventName(name.Int())

	e.systemInfo = nil
	if info := gjson.GetBytes(data, "system_info"); info.Exists() {
		var parsed SystemInfo
		if err := parsed.UnmarshalJSON([]byte(info.Raw)); err != nil {
			return fmt.Errorf("invalid system_info: %w", err)
		}
		e.systemInfo = &parsed
	}

	e.download = nil
	if download := gjson.GetBytes(data, "model_download_log_event"); download.Exists() {
		var parsed ModelDownloadLogEvent
		if err := parsed.UnmarshalJSON([]byte(download.Raw)); err != nil {
			return fmt.Errorf("invalid model_download_log_event: %w", err)
		}
		e.download = &parsed
	}

	e.valid = true
	return nil
}

// MarshalJSON implements custom JSON marshaling for SystemInfo.
func (s SystemInfo) MarshalJSON() ([]byte, error) {
	if !s.valid {
		return nil, &EncodingError{Entity: "SystemInfo"}
	}

	result, err := sjson.SetBytes(emptyObject, "app_id", s.appID)
	if err != nil {
		return nil, err
	}
	result, err = sjson.SetBytes(result, "app_version", s.appVersion)
	if err != nil {
		return nil, err
	}
	result, err = sjson.SetBytes(result, "api_key", s.apiKey)
	if err != nil {
		return nil, err
	}
	return sjson.SetBytes(result, "firebase_project_id", s.firebaseProjectID)
}

// UnmarshalJSON implements custom JSON unmarshaling for SystemInfo.
func (s *SystemInfo) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid json: %s", data)
	}

	b := NewSystemInfoBuilder()
	for _, field := range []struct {
		key string
		set func(string)
	}{
		{"app_id", func(v string) { b.SetAppID(v) }},
		{"app_version", func(v string) { b.SetAppVersion(v) }},
		{"api_key", func(v string) { b.SetAPIKey(v) }},
		{"firebase_project_id", func(v string) { b.SetFirebaseProjectID(v) }},
	} {
		value := gjson.GetBytes(data, field.key)
		if !value.Exists() {
			return fmt.Errorf("missing required field '%s'", field.key)
		}
		field.set(value.String())
	}

	parsed, err := b.Build()
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalJSON implements custom JSON marshaling for ModelDownloadLogEvent.
// All scalar fields are always present on the wire; they carry eager
// defaults, not optional semantics.
func (e ModelDownloadLogEvent) MarshalJSON() ([]byte, error) {
	if !e.valid {
		return nil, &EncodingError{Entity: "ModelDownloadLogEvent"}
	}

	result, err := sjson.SetBytes(emptyObject, "error_code", int(e.errorCode))
	if err != nil {
		return nil, err
	}
	result, err = sjson.SetBytes(result, "download_status", int(e.downloadStatus))
	if err != nil {
		return nil, err
	}
	result, err = sjson.SetBytes(result, "download_failure_status", e.downloadFailureStatus)
	if err != nil {
		return nil, err
	}
	result, err = sjson.SetBytes(result, "rough_download_duration_ms", e.roughDownloadDurationMs)
	if err != nil {
		return nil, err
	}
	result, err = sjson.SetBytes(result, "exact_download_duration_ms", e.exactDownloadDurationMs)
	if err != nil {
		return nil, err
	}

	options, err := json.Marshal(e.modelOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal model_options: %w", err)
	}
	return sjson.SetRawBytes(result, "model_options", options)
}

// UnmarshalJSON implements custom JSON unmarshaling for ModelDownloadLogEvent.
// Scalar fields absent from the input fall back to the factory defaults.
func (e *ModelDownloadLogEvent) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid json: %s", data)
	}

	b := NewModelDownloadLogEventBuilder()
	if code := gjson.GetBytes(data, "error_code"); code.Exists() {
		b.SetErrorCode(ErrorCode(code.Int()))
	}
	if status := gjson.GetBytes(data, "download_status"); status.Exists() {
		b.SetDownloadStatus(DownloadStatus(status.Int()))
	}
	if status := gjson.GetBytes(data, "download_failure_status"); status.Exists() {
		b.SetDownloadFailureStatus(int(status.Int()))
	}
	if ms := gjson.GetBytes(data, "rough_download_duration_ms"); ms.Exists() {
		b.SetRoughDownloadDurationMs(ms.Int())
	}
	if ms := gjson.GetBytes(data, "exact_download_duration_ms"); ms.Exists() {
		b.SetExactDownloadDurationMs(ms.Int())
	}

	options := gjson.GetBytes(data, "model_options")
	if !options.Exists() {
		return fmt.Errorf("missing required field 'model_options'")
	}
	var parsed ModelOptions
	if err := parsed.UnmarshalJSON([]byte(options.Raw)); err != nil {
		return fmt.Errorf("invalid model_options: %w", err)
	}
	b.SetModelOptions(parsed)

	built, err := b.Build()
	if err != nil {
		return err
	}
	*e = built
	return nil
}

// MarshalJSON implements custom JSON marshaling for ModelOptions.
func (m ModelOptions) MarshalJSON() ([]byte, error) {
	if !m.valid {
		return nil, &EncodingError{Entity: "ModelOptions"}
	}

	info, err := json.Marshal(m.modelInfo)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal model_info: %w", err)
	}
	return sjson.SetRawBytes(emptyObject, "model_info", info)
}

// UnmarshalJSON implements custom JSON unmarshaling for ModelOptions.
func (m *ModelOptions) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid json: %s", data)
	}

	info := gjson.GetBytes(data, "model_info")
	if !info.Exists() {
		return fmt.Errorf("missing required field 'model_info'")
	}
	var parsed ModelInfo
	if err := parsed.UnmarshalJSON([]byte(info.Raw)); err != nil {
		return fmt.Errorf("invalid model_info: %w", err)
	}

	built, err := NewModelOptionsBuilder().SetModelInfo(parsed).Build()
	if err != nil {
		return err
	}
	*m = built
	return nil
}

// MarshalJSON implements custom JSON marshaling for ModelInfo.
func (m ModelInfo) MarshalJSON() ([]byte, error) {
	if !m.valid {
		return nil, &EncodingError{Entity: "ModelInfo"}
	}

	result, err := sjson.SetBytes(emptyObject, "name", m.name)
	if err != nil {
		return nil, err
	}
	result, err = sjson.SetBytes(result, "hash", m.hash)
	if err != nil {
		return nil, err
	}
	return sjson.SetBytes(result, "model_type", int(m.modelType))
}

// UnmarshalJSON implements custom JSON unmarshaling for ModelInfo.
func (m *ModelInfo) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid json: %s", data)
	}

	name := gjson.GetBytes(data, "name")
	if !name.Exists() {
		return fmt.Errorf("missing required field 'name'")
	}
	hash := gjson.GetBytes(data, "hash")
	if !hash.Exists() {
		return fmt.Errorf("missing required field 'hash'")
	}

	b := NewModelInfoBuilder().SetName(name.String()).SetHash(hash.String())
	if modelType := gjson.GetBytes(data, "model_type"); modelType.Exists() {
		b.SetModelType(ModelType(modelType.Int()))
	}

	built, err := b.Build()
	if err != nil {
		return err
	}
	*m = built
	return nil
}
