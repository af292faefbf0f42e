package configs

type Logger struct {
	AppName string `env:"LOGGER_APP_NAME" envDefault:"citizen_policy_platform"`
	URL     string `env:"LOGGER_LOKI_URL"`
}
