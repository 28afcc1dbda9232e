package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/textcal/internal/server"
	"github.com/matzehuels/textcal/pkg/cache"
	"github.com/matzehuels/textcal/pkg/pipeline"
)

// serveCommand serves calendars over HTTP until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve calendars over HTTP",
		Long: `Serve month, year and grid calendars as plain text.

Routes:
  GET /month/{year}/{month}
  GET /year/{year}
  GET /grid?from=YYYY-MM&months=N&cols=N&title=TEXT
  GET /healthz

Calendar routes take the query parameters start, width, marker, locale,
mark, today, holidays and year_in_title.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			if !cmd.Flags().Changed("addr") {
				cfg, err := loadConfig(c.configPath)
				if err != nil {
					return err
				}
				if cfg.Server.Addr != "" {
					addr = cfg.Server.Addr
				}
			}

			var store cache.Cache = cache.NewMemoryCache()
			if noCache {
				store = cache.NewNullCache()
			}
			defer store.Close()

			srv := server.New(pipeline.NewRunner(store, logger), logger)
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address (default from config server.addr)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the in-memory render cache")
	return cmd
}
