package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemInfoBuilder_Build(t *testing.T) {
	info, err := NewSystemInfoBuilder().
		SetAppID("1:1234567890:android:abcdef").
		SetAppVersion("1.2.3").
		SetAPIKey("api-key").
		SetFirebaseProjectID("my-project").
		Build()
	require.NoError(t, err)

	assert.Equal(t, "1:1234567890:android:abcdef", info.AppID())
	assert.Equal(t, "1.2.3", info.AppVersion())
	assert.Equal(t, "api-key", info.APIKey())
	assert.Equal(t, "my-project", info.FirebaseProjectID())
}

func TestSystemInfoBuilder_MissingFields(t *testing.T) {
	complete := func() *SystemInfoBuilder {
		return NewSystemInfoBuilder().
			SetAppID("app-id").
			SetAppVersion("1.0.0").
			SetAPIKey("api-key").
			SetFirebaseProjectID("my-project")
	}

	tests := []struct {
		name      string
		builder   *SystemInfoBuilder
		wantField string
	}{
		{
			name:      "nothing set",
			builder:   NewSystemInfoBuilder(),
			wantField: "appId",
		},
		{
			name: "app version unset",
			builder: NewSystemInfoBuilder().
				SetAppID("app-id").
				SetAPIKey("api-key").
				SetFirebaseProjectID("my-project"),
			wantField: "appVersion",
		},
		{
			name: "api key unset",
			builder: NewSystemInfoBuilder().
				SetAppID("app-id").
				SetAppVersion("1.0.0").
				SetFirebaseProjectID("my-project"),
			wantField: "apiKey",
		},
		{
			name: "project id unset",
			builder: NewSystemInfoBuilder().
				SetAppID("app-id").
				SetAppVersion("1.0.0").
				SetAPIKey("api-key"),
			wantField: "firebaseProjectId",
		},
		{
			name:      "api key set to empty string",
			builder:   complete().SetAPIKey(""),
			wantField: "apiKey",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := tt.builder.Build()

			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, "SystemInfo", missing.Entity)
			assert.Equal(t, tt.wantField, missing.Field)
			assert.Zero(t, info)
		})
	}
}

func TestSystemInfoBuilder_SetterOverwrites(t *testing.T) {
	info, err := NewSystemInfoBuilder().
		SetAppID("first").
		SetAppID("second").
		SetAppVersion("1.0.0").
		SetAPIKey("api-key").
		SetFirebaseProjectID("my-project").
		Build()
	require.NoError(t, err)
	assert.Equal(t, "second", info.AppID())
}
