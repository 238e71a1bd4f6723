package cmd

import (
	"context"
	"fmt"
	"os"

	"athlete-dashboard/core/config"
	"athlete-dashboard/core/database"
	"athlete-dashboard/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// featuresCmd prints the dashboard features in navigation order
var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "List dashboard features and their state",
	Long:  `Prints every registered dashboard feature in navigation order, marking disabled ones and the default.`,
	Run: func(cmd *cobra.Command, args []string) {
		runFeatures(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(featuresCmd)
}

func runFeatures(ctx context.Context) {
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

	a, err := buildApplication(ctx, cfg, logg, db)
	if err != nil {
		logg.Fatal("Failed to build application", zap.Error(err))
	}

	fmt.Println("\n--- Dashboard Features ---")
	for _, f := range a.Dashboard.Registry.All() {
		md := f.Metadata()
		status := "enabled"
		if !f.IsEnabled() {
			status = "disabled"
		}
		marker := " "
		if f.ID() == a.Dashboard.Fallback() {
			marker = "*"
		}
		fmt.Printf("%s %-12s %-4d %-9s %s\n", marker, f.ID(), md.Order, status, md.Name)
	}

	fmt.Println("\nNavigation order:")
	for i, f := range a.Dashboard.Navigation.Enabled() {
		fmt.Printf("  %d. %s\n", i+1, f.Metadata().Name)
	}
}
