package main

import (
	"os"

	"github.com/spf13/cobra"

	"tag/internal/interfaces/cli/migrate"
	"tag/internal/interfaces/cli/seed"
	"tag/internal/interfaces/cli/server"
)

// @title TAG API
// @version 1.0
// @description Case management for municipal legal questions.
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "tag",
		Short: "TAG - legal assistance case management",
		Long:  `TAG tracks questions raised by communes and the answers given by the legal team.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
