// Package cli implements the gridpath command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridpath/internal/config"
	"github.com/matzehuels/gridpath/pkg/buildinfo"
	"github.com/matzehuels/gridpath/pkg/cache"
	"github.com/matzehuels/gridpath/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and default file names.
const appName = "gridpath"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string // --config flag
	usedPath   string // file the config was read from, if any
	verbose    bool
	out        io.Writer
}

// New creates a new CLI instance with a default logger and built-in config.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
		out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetVerbose forces debug logging regardless of the config file.
func (c *CLI) SetVerbose(v bool) {
	c.verbose = v
	if v {
		c.SetLogLevel(LogDebug)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running the root command without a subcommand starts the interactive board.
func (c *CLI) RootCommand() *cobra.Command {
	play := c.playCommand()

	root := &cobra.Command{
		Use:   appName + " [map-file]",
		Short: "gridpath finds shortest paths on a grid you draw",
		Long: `gridpath is an interactive shortest-path playground. Draw obstacles, place a
start and an end cell, and watch Dijkstra's algorithm flood the board.

Run without arguments for the terminal board, or use "gridpath solve" to solve
a text map headlessly and export it as text, DOT, SVG, PNG or JSON.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		Args:              play.Args,
		RunE:              play.RunE,
		PersistentPreRunE: c.loadConfig,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/gridpath/config.toml)")
	root.Flags().AddFlagSet(play.Flags())

	// Register all subcommands
	root.AddCommand(play)
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file and applies its log level, then registers
// the log-backed observability hooks.
func (c *CLI) loadConfig(cmd *cobra.Command, _ []string) error {
	var (
		cfg config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.Load(c.configPath)
		c.usedPath = c.configPath
	} else {
		cfg, c.usedPath, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}
	c.Config = cfg

	if !c.verbose {
		c.SetLogLevel(cfg.LogLevel())
	}
	c.Logger.Debug("config loaded", "path", c.usedPath)

	registerHooks(c.Logger)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// cacheDir returns the artifact cache directory using the XDG standard
// (~/.cache/gridpath).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// openCache returns the artifact cache for a solve run. Caching is off when
// disabled in config or by flag, and falls back to off if the directory
// cannot be created.
func (c *CLI) openCache(noCache bool) cache.Cache {
	if noCache || !c.Config.Cache.Enabled {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err == nil {
		var fc *cache.FileCache
		if fc, err = cache.NewFileCache(dir); err == nil {
			return fc
		}
	}
	c.Logger.Warn("artifact cache disabled", "err", err)
	return cache.NewNullCache()
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}
