package configs

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type PolicyStateServiceConfig struct {
	App      App
	Logger   Logger
	DB       DB
	Platform Platform
	Notifier Notifier
}

func LoadPolicyStateServiceConfig() (PolicyStateServiceConfig, error) {
	var config PolicyStateServiceConfig

	if err := env.Parse(&config); err != nil {
		return PolicyStateServiceConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Platform.Validate(); err != nil {
		return PolicyStateServiceConfig{}, fmt.Errorf("invalid platform config: %w", err)
	}

	return config, nil
}
