package config

type Config interface {
	EnvConfig
	BackendConfig
	OAuthConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetBaseURL() string
	GetSessionFile() string
	GetEnv() string
}

type BackendConfig interface {
	GetAPIBaseURL() string
}

type mainConfig struct {
	EnvVars
	Backend
	OAuth
}

func New() Config {
	return mainConfig{}
}
