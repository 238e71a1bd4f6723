package cmd

import (
	"context"
	"fmt"
	"os"

	"athlete-dashboard/core/config"
	"athlete-dashboard/core/database"
	"athlete-dashboard/core/logger"
	"athlete-dashboard/core/usermeta"
	"athlete-dashboard/feature/profile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCheckOnly bool

// migrateCmd creates the schema and runs pending user meta migrations
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create tables and consolidate legacy profile data",
	Long: `Creates the users, usermeta and migration tables when missing, then applies
pending data migrations such as folding legacy athlete_* keys into the profile.`,
	Run: func(cmd *cobra.Command, args []string) {
		runMigrate(cmd.Context(), migrateCheckOnly)
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateCheckOnly, "check", false, "Only report schema differences")
	RootCmd.AddCommand(migrateCmd)
}

func runMigrate(ctx context.Context, checkOnly bool) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logg.Fatal("Failed to connect to database", zap.Error(err))
	}

	if checkOnly {
		issues, err := database.CheckSchema(db, usermeta.Models()...)
		if err != nil {
			logg.Fatal("Schema check failed", zap.Error(err))
		}
		fmt.Println("\n--- Schema Check ---")
		if len(issues) == 0 {
			fmt.Println("Schema is up to date.")
			return
		}
		for _, issue := range issues {
			fmt.Printf("  - %s\n", issue)
		}
		os.Exit(1)
	}

	ran, err := usermeta.Migrate(ctx, db, logg, profile.Migrations()...)
	if err != nil {
		logg.Fatal("Migration failed", zap.Error(err))
	}

	fmt.Println("\n--- Migrations ---")
	if len(ran) == 0 {
		fmt.Println("Nothing to apply.")
		return
	}
	for _, m := range ran {
		fmt.Printf("  %3d  %s\n", m.Version, m.Name)
	}
}
