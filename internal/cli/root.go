package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/typetonic/internal/config"
	"github.com/matzehuels/typetonic/pkg/observability"
)

// setup runs before every command. It loads the config file, registers the
// observability hooks and attaches the logger to the command context.
//
// Flags always win over the config: commands read c.cfg only for flags the
// user did not set.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}
	schemes, err := cfg.Schemes()
	if err != nil {
		return err
	}
	c.cfg, c.catalog, c.schemes = cfg, catalog, schemes

	hooks := newLogHooks(c.Logger)
	observability.SetDesignHooks(hooks)
	observability.SetCacheHooks(hooks)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	c.Logger.Debug("loaded config", "path", c.configPath, "layouts", len(cfg.Layouts), "palettes", len(cfg.Palettes))
	return nil
}

// flagOr returns the flag value when the user set it, else fallback.
func flagOr(cmd *cobra.Command, name, value, fallback string) string {
	if cmd.Flags().Changed(name) || fallback == "" {
		return value
	}
	return fallback
}
