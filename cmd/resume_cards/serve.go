package main

import (
	"fmt"

	"github.com/jonathan/resume-cards/internal/config"
	"github.com/jonathan/resume-cards/internal/server"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server that exposes classification, document storage, and authentication endpoints.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT env var, default 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	svcCfg, err := config.LoadService()
	if err != nil {
		return err
	}
	if servePort != 0 {
		svcCfg.Port = servePort
	}

	cfg := server.Config{
		Port:        svcCfg.Port,
		DatabaseURL: svcCfg.DatabaseURL,
		APIKey:      svcCfg.APIKey,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
