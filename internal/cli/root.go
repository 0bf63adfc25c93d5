// Package cli implements the particlefield command line. It resolves
// configuration from file, environment and flags, builds the logger and
// hands both to a Runner that owns the window.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"particlefield/internal/config"
)

// DefaultConfigFile is read from the working directory when --config is not given.
const DefaultConfigFile = "particlefield.toml"

// Runner starts the animation with a resolved, validated config and blocks
// until it ends or ctx is cancelled.
type Runner func(ctx context.Context, cfg config.Config, logger *log.Logger) error

type options struct {
	configPath string
	image      string
	seed       uint64
	width      int
	height     int
	fullscreen bool
	sound      bool
	verbose    bool
}

// NewRootCmd builds the root command. getenv supplies environment
// overrides and stderr receives log output.
func NewRootCmd(run Runner, getenv func(string) string, stderr io.Writer) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:          "particlefield",
		Short:        "Render an image as a field of particles that scatter from the cursor",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(stderr, level)

			cfg, err := resolveConfig(cmd, &opts, getenv, logger)
			if err != nil {
				return err
			}
			logger.Debug("config resolved",
				"image", cfg.Image.Path,
				"window", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height),
				"fullscreen", cfg.Window.Fullscreen,
				"sound", cfg.Audio.Enabled,
				"seed", cfg.Seed,
			)
			return run(cmd.Context(), cfg, logger)
		},
	}

	f := root.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "path to a TOML config file (default ./"+DefaultConfigFile+" if present)")
	f.StringVarP(&opts.image, "image", "i", "", "source image path (png, jpeg, gif, bmp, webp, tiff)")
	f.Uint64Var(&opts.seed, "seed", 0, "particle sampling seed (0 = clock)")
	f.IntVar(&opts.width, "width", 0, "initial window width")
	f.IntVar(&opts.height, "height", 0, "initial window height")
	f.BoolVar(&opts.fullscreen, "fullscreen", false, "cover the primary monitor")
	f.BoolVar(&opts.sound, "sound", false, "play a chime when particles scatter")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	return root
}

// Execute runs the command line against os.Args.
func Execute(ctx context.Context, run Runner) error {
	return NewRootCmd(run, os.Getenv, os.Stderr).ExecuteContext(ctx)
}

// resolveConfig layers defaults, config file, environment and explicitly
// set flags, in that order, then validates the result.
func resolveConfig(cmd *cobra.Command, opts *options, getenv func(string) string, logger *log.Logger) (config.Config, error) {
	cfg := config.Default()

	path := opts.configPath
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		} else if !errors.Is(err, fs.ErrNotExist) {
			return config.Config{}, fmt.Errorf("stat %s: %w", DefaultConfigFile, err)
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
		logger.Debug("loaded config file", "path", path)
	}

	if err := cfg.ApplyEnv(getenv); err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("image") {
		cfg.Image.Path = opts.image
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("width") {
		cfg.Window.Width = opts.width
	}
	if flags.Changed("height") {
		cfg.Window.Height = opts.height
	}
	if flags.Changed("fullscreen") {
		cfg.Window.Fullscreen = opts.fullscreen
	}
	if flags.Changed("sound") {
		cfg.Audio.Enabled = opts.sound
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
