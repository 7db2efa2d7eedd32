// SPDX-License-Identifier: MIT

package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mca/config"
	"github.com/katalvlaran/mca/server"
)

func serveCmd() *cobra.Command {
	var (
		cfgPath string
		addr    string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if cfgPath != "" {
				loaded, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return server.New(cfg, log.Logger).Run(cmd.Context(), cfg.Addr)
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "", "YAML configuration file (request defaults)")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
