// Package cli implements the typetonic command-line interface.
package cli

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/typetonic/internal/config"
	"github.com/matzehuels/typetonic/pkg/buildinfo"
	"github.com/matzehuels/typetonic/pkg/cache"
	"github.com/matzehuels/typetonic/pkg/colors"
	"github.com/matzehuels/typetonic/pkg/design"
	"github.com/matzehuels/typetonic/pkg/keyboard"
	"github.com/matzehuels/typetonic/pkg/render/board/layout"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "typetonic"

	// defaultOutputBase is the output file name without extension.
	defaultOutputBase = "keyboard_design"
)

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

	configPath string
	cfg        config.Config
	catalog    *keyboard.Catalog
	schemes    *colors.Schemes
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:  newLogger(w, level),
		cfg:     config.Default(),
		catalog: keyboard.DefaultCatalog(),
		schemes: colors.DefaultSchemes(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "Typetonic designs color schemes for mechanical keyboards",
		Long:              `Typetonic generates color patterns for physical keyboard layouts, lets you recolor single keys, and exports the result as SVG, PNG or JSON.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/typetonic/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Session Factory
// =============================================================================

// sessionOpts are per-command overrides of the configured session settings.
type sessionOpts struct {
	style string
	delay time.Duration
}

// newSession creates a design session from the loaded config.
func (c *CLI) newSession(opts sessionOpts) (*design.Session, error) {
	style := c.cfg.Style
	if opts.style != "" {
		style = opts.style
	}
	return design.New(
		design.WithCatalog(c.catalog),
		design.WithGeometry(layout.WithUnit(c.cfg.Unit), layout.WithSpacing(c.cfg.Spacing)),
		design.WithStyle(style),
		design.WithPNGScale(c.cfg.PNGScale),
		design.WithEmbeddedFont(c.cfg.EmbedFont),
		design.WithStripeWidth(c.cfg.StripeWidth),
		design.WithMinLatency(opts.delay),
		design.WithCache(cache.NewMemoryCache(cache.DefaultMaxEntries)),
		design.WithLogger(c.Logger),
	)
}

// resolvePalette returns the palette named by name, or the parsed list when
// hexes is set.
func (c *CLI) resolvePalette(name, hexes string) (colors.Palette, error) {
	if strings.TrimSpace(hexes) != "" {
		return colors.ParsePaletteList(hexes)
	}
	sc, err := c.schemes.Lookup(name)
	if err != nil {
		return nil, err
	}
	return sc.Colors, nil
}
