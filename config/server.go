package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ServerConfig is the runtime configuration of the network host binary.
// Values come from the environment; flags in cmd/gauntletd override them.
type ServerConfig struct {
	Port           uint   `env:"GAUNTLET_PORT" envDefault:"7373"`
	TickRate       int    `env:"GAUNTLET_TICKRATE" envDefault:"20"`
	SessionSeconds int    `env:"GAUNTLET_SESSION_SECONDS" envDefault:"120"`
	Name           string `env:"GAUNTLET_NAME" envDefault:"Gauntlet Server"`
	CoursePath     string `env:"GAUNTLET_COURSE" envDefault:""` // TMX course file, empty = built-in layout
}

// LoadServer reads server configuration from the environment.
func LoadServer() (ServerConfig, error) {
	var c ServerConfig
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("parse server env: %w", err)
	}
	return c, nil
}
