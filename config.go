package telemetry

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type systemInfoEnv struct {
	AppID             string `env:"FIREBASE_APP_ID"`
	AppVersion        string `env:"FIREBASE_APP_VERSION"`
	APIKey            string `env:"FIREBASE_API_KEY"`
	FirebaseProjectID string `env:"FIREBASE_PROJECT_ID"`
}

// SystemInfoFromEnv builds a SystemInfo from the FIREBASE_* environment
// variables, loading a .env file first when one is present. Variables that
// are missing or empty surface as the builder's *MissingFieldError.
func SystemInfoFromEnv() (SystemInfo, error) {
	// Attempt to load .env for local development.
	_ = godotenv.Load()

	var cfg systemInfoEnv
	if err := env.Parse(&cfg); err != nil {
		return SystemInfo{}, err
	}

	return NewSystemInfoBuilder().
		SetAppID(cfg.AppID).
		SetAppVersion(cfg.AppVersion).
		SetAPIKey(cfg.APIKey).
		SetFirebaseProjectID(cfg.FirebaseProjectID).
		Build()
}
