package config

import (
	"github.com/caarlos0/env/v11"
	pkgerrors "github.com/pkg/errors"
)

// Env holds overrides read from the environment. They take precedence over
// the config file and are never written back to it.
type Env struct {
	Catalog  string `env:"GRIND_CATALOG"`
	Listen   string `env:"GRIND_LISTEN"`
	Language string `env:"GRIND_LANGUAGE"`
}

// ParseEnv loads overrides from environment variables.
func ParseEnv() (*Env, error) {
	e := &Env{}
	if err := env.Parse(e); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to parse environment")
	}
	return e, nil
}
