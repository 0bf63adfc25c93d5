//go:build android

package main

import (
	"os"

	"github.com/charmbracelet/log"

	"particlefield/internal/app"
	"particlefield/internal/config"
)

func main() {
	cfg := config.Default()
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		log.Warn("ignoring environment overrides", "err", err)
		cfg = config.Default()
	}
	app.RunAndroid(cfg, log.Default())
}
