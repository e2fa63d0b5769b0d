package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gentle-wave/scelloo-ecommerce-api/config"
	"github.com/Gentle-wave/scelloo-ecommerce-api/internal/kernel"
	"github.com/Gentle-wave/scelloo-ecommerce-api/internal/server"
	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/cache"
	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/database"
	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/logger"
	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/migration"
)

// scelloo serve
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		mongoSink, err := logger.Setup()
		if err != nil {
			logger.Warn("mongo log sink unavailable", "error", err)
		}
		if mongoSink != nil {
			defer mongoSink.Close()
		}

		if err := database.Connect(); err != nil {
			return err
		}
		if err := migration.New(database.DB).Run(); err != nil {
			return err
		}

		// The API serves from the database alone when Redis is down.
		if err := cache.Connect(); err != nil {
			logger.Warn("cache disabled", "error", err)
		}

		r, err := kernel.Build(database.DB)
		if err != nil {
			return err
		}

		return server.Run(r.Handler())
	},
}

// scelloo route:list
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		r, err := kernel.Build(nil)
		if err != nil {
			return err
		}

		fmt.Printf("%-8s %-40s %s\n", "METHOD", "PATH", "NAME")
		for _, route := range r.Routes() {
			fmt.Printf("%-8s %-40s %s\n", route.Method, route.Path, route.Name)
		}
		return nil
	},
}
