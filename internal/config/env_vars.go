package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	portEnvVar        = "PORT"
	appNameVar        = "APP_NAME"
	baseURLVar        = "BASE_URL"
	sessionFileVar    = "SESSION_FILE"
	dotEnvFileDefault = ".env"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

// LoadDotEnv loads a .env file if one exists. Missing files are not an error
// so containers configured purely through the environment keep working.
func LoadDotEnv() {
	if _, err := os.Stat(dotEnvFileDefault); err != nil {
		return
	}
	_ = godotenv.Load(dotEnvFileDefault)
}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "8080")
	if port != "" && port[0] != ':' {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "UniGuide")
}

// GetBaseURL returns the public base URL of this portal (e.g.
// "https://app.uniguide.example"). Used to build the OAuth redirect URI.
func (EnvVars) GetBaseURL() string {
	return GetEnv(baseURLVar, "http://localhost:8080")
}

// GetSessionFile returns the path of the durable session side-channel.
func (EnvVars) GetSessionFile() string {
	return GetEnv(sessionFileVar, "./data/sessions.json")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
