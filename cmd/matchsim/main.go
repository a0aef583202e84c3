// Package main runs bot matches against the game core for smoke testing.
// Configuration comes from DICETABLE_SIM_* environment variables.
package main

import (
	"os"

	"github.com/louisbranch/dicetable/internal/cmd/matchsim"
	"github.com/louisbranch/dicetable/internal/platform/config"
)

func main() {
	var cfg matchsim.Config
	if err := config.ParseEnv(&cfg); err != nil {
		config.Exitf("matchsim: %v", err)
	}

	if err := matchsim.Run(cfg, os.Stdout); err != nil {
		config.Exitf("matchsim: %v", err)
	}
}
