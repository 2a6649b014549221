package config

type Config interface {
	EnvConfig
	ProviderConfig
	SessionConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetBaseURL() string
	GetEnv() string
}

type mainConfig struct {
	EnvVars
	Provider
	Session
}

func New() Config {
	return mainConfig{}
}
