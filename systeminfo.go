package telemetry

import "github.com/modelfetch/telemetry/pkg/optional"

// SystemInfo identifies the application a telemetry event originates from.
// Values are immutable once built; construct them with NewSystemInfoBuilder.
type SystemInfo struct {
	appID             string
	appVersion        string
	apiKey            string
	firebaseProjectID string
	valid             bool
}

func (s SystemInfo) AppID() string             { return s.appID }
func (s SystemInfo) AppVersion() string        { return s.appVersion }
func (s SystemInfo) APIKey() string            { return s.apiKey }
func (s SystemInfo) FirebaseProjectID() string { return s.firebaseProjectID }

// SystemInfoBuilder accumulates SystemInfo fields until Build validates them.
// All four fields are required; none has a default.
type SystemInfoBuilder struct {
	appID             optional.Value[string]
	appVersion        optional.Value[string]
	apiKey            optional.Value[string]
	firebaseProjectID optional.Value[string]
}

// NewSystemInfoBuilder returns a fresh builder with no fields set.
func NewSystemInfoBuilder() *SystemInfoBuilder {
	return &SystemInfoBuilder{}
}

func (b *SystemInfoBuilder) SetAppID(appID string) *SystemInfoBuilder {
	b.appID.Set(appID)
	return b
}

func (b *SystemInfoBuilder) SetAppVersion(appVersion string) *SystemInfoBuilder {
	b.appVersion.Set(appVersion)
	return b
}

func (b *SystemInfoBuilder) SetAPIKey(apiKey string) *SystemInfoBuilder {
	b.apiKey.Set(apiKey)
	return b
}

func (b *SystemInfoBuilder) SetFirebaseProjectID(projectID string) *SystemInfoBuilder {
	b.firebaseProjectID.Set(projectID)
	return b
}

// Build returns an immutable SystemInfo holding the current field values, or
// a *MissingFieldError naming the first required field that is unset or
// empty. No value is produced on failure.
func (b *SystemInfoBuilder) Build() (SystemInfo, error) {
	appID, ok := b.appID.Get()
	if !ok || appID == "" {
		return SystemInfo{}, missingField("SystemInfo", "appId")
	}
	appVersion, ok := b.appVersion.Get()
	if !ok || appVersion == "" {
		return SystemInfo{}, missingField("SystemInfo", "appVersion")
	}
	apiKey, ok := b.apiKey.Get()
	if !ok || apiKey == "" {
		return SystemInfo{}, missingField("SystemInfo", "apiKey")
	}
	projectID, ok := b.firebaseProjectID.Get()
	if !ok || projectID == "" {
		return SystemInfo{}, missingField("SystemInfo", "firebaseProjectId")
	}

	return SystemInfo{
		appID:             appID,
		appVersion:        appVersion,
		apiKey:            apiKey,
		firebaseProjectID: projectID,
		valid:             true,
	}, nil
}
