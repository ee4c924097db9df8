package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/DataAlgoDev/Qbit-AI-Enterprise-App/config"
	srv "github.com/DataAlgoDev/Qbit-AI-Enterprise-App/internal/server"
)

func main() {
	root := &cobra.Command{Use: "qbitd"}
	root.AddCommand(serveCMD())
	if err := root.Execute(); err != nil {
		log.Fatalf("qbitd: %v", err)
	}
}

func serveCMD() *cobra.Command {
	var addr string
	var cfgPath string
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the assistant HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = os.Getenv("QBIT_HTTP_ADDR")
			}
			return srv.Run(cfg, addr)
		},
	}
	serve.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	serve.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default searches ./config, .)")
	return serve
}
