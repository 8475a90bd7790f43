package main

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tokensmith/internal/fonts"
	"github.com/alexisbeaulieu97/tokensmith/internal/server"
)

func newServeCmd(root *rootFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the token engine as a JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.load(cmd, "server")
			if err != nil {
				return err
			}
			ctx, err := (&contextFlags{}).context(app.cfg)
			if err != nil {
				return err
			}

			gin.SetMode(gin.ReleaseMode)
			srv := server.New(server.Options{
				Addr:           firstNonEmpty(addr, app.cfg.Server.Addr),
				AllowOrigins:   app.cfg.Server.AllowOrigins,
				DefaultContext: ctx,
				Fonts:          fonts.NewCatalog(),
				Logger:         app.log,
			})
			if err := srv.Run(cmd.Context()); err != nil {
				return newCommandError("serve", firstNonEmpty(addr, app.cfg.Server.Addr), err, "Pick a free address with --addr.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default server.addr)")

	return cmd
}
