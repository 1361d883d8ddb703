package commands

import (
	"github.com/gin-gonic/gin"
	"github.com/ncobase/yatube/config"
	"github.com/ncobase/yatube/internal/server"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCommand(opts *options) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			e, cleanup, err := setup(ctx, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			gin.SetMode(e.config.RunMode)

			if watch {
				config.Watch(func(cfg *config.Config) {
					e.logger.SetLevel(logrus.Level(cfg.Logger.Level))
					e.logger.Info(ctx, "configuration reloaded", "level", e.logger.GetLevel().String())
				})
			}

			srv, err := server.New(ctx, e.config, e.data, e.logger)
			if err != nil {
				return err
			}
			return srv.Run(ctx)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the log level when the config file changes")
	return cmd
}
