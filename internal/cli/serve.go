package cli

import (
	"github.com/spf13/cobra"

	"github.com/Azmathzahask/SOLIS/internal/server"
)

// serveCommand creates the serve command for the layout API server.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the layout API server",
		Long: `Run the layout API server.

Serves the geometry calculator and the saved-layout store over HTTP:

  GET    /healthz
  GET    /api/v1/metrics?shape=cylinder&radius=10&height=15
  POST   /api/v1/layout            run auto-layout for a posted document
  GET    /api/v1/layouts           list saved layouts
  POST   /api/v1/layouts?name=...  save a posted document
  GET    /api/v1/layouts/{id}
  DELETE /api/v1/layouts/{id}

The store backend comes from the [store] section of the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig("")
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			s, err := newStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			return server.New(addr, s, c.Logger).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default: from config)")
	return cmd
}
