// Package cli implements the solis command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Azmathzahask/SOLIS/pkg/buildinfo"
	"github.com/Azmathzahask/SOLIS/pkg/cache"
	"github.com/Azmathzahask/SOLIS/pkg/errors"
	"github.com/Azmathzahask/SOLIS/pkg/habitat"
	"github.com/Azmathzahask/SOLIS/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "solis"

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
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "solis",
		Short:        "SOLIS lays out functional systems inside a habitat shell",
		Long:         `SOLIS is a habitat layout designer: pick a parametric shell (cylinder, sphere, cube, torus), compute its geometry metrics, auto-arrange onboard systems inside it, and persist the layout as a small JSON document.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// The logger rides the context so command helpers can log
			// without threading the CLI struct through.
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.metricsCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.designCommand())
	root.AddCommand(c.storeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Backend Factories
// =============================================================================

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// newStore creates the layout store selected by the config.
// An empty or "file" backend uses the local file store.
func newStore(ctx context.Context, cfg Config) (store.LayoutStore, error) {
	switch cfg.Store.Backend {
	case "", storeBackendFile:
		return store.NewFileStore(cfg.Store.Path)
	case storeBackendRedis:
		return store.NewRedisStore(ctx, store.RedisConfig{
			Addr:     cfg.Store.RedisAddr,
			Password: cfg.Store.RedisPassword,
			DB:       cfg.Store.RedisDB,
		})
	case storeBackendMongo:
		return store.NewMongoStore(ctx, store.MongoConfig{
			URI:      cfg.Store.MongoURI,
			Database: cfg.Store.MongoDatabase,
		})
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown store backend: %q (must be one of: file, redis, mongo)", cfg.Store.Backend)
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/solis/).
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

// configDir returns the config directory using XDG standard (~/.config/solis/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// =============================================================================
// Flag Parsing Helpers
// =============================================================================

// parseSystems parses a comma-separated system list into kinds, in
// canonical catalogue order. The literal "all" enables every known system.
func parseSystems(s string) ([]habitat.SystemKind, error) {
	if s == "" {
		return nil, nil
	}
	if s == "all" {
		return habitat.Kinds(), nil
	}

	var kinds []habitat.SystemKind
	for _, id := range strings.Split(s, ",") {
		k, err := habitat.ParseSystemKind(strings.TrimSpace(id))
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return habitat.CanonicalSubset(kinds), nil
}

// parseShellFlags validates the shape/radius/height flag triple shared by
// metrics and layout.
func parseShellFlags(shapeName string, radius, height float64) (habitat.Shape, habitat.Dimensions, error) {
	shape, err := habitat.ParseShape(shapeName)
	if err != nil {
		return 0, habitat.Dimensions{}, err
	}
	if err := errors.ValidateRadius(radius); err != nil {
		return 0, habitat.Dimensions{}, err
	}
	if err := errors.ValidateHeight(height); err != nil {
		return 0, habitat.Dimensions{}, err
	}
	return shape, habitat.Dimensions{Radius: radius, Height: height}, nil
}
