package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gardenmaestro/gardenmaestro/pkg/database"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gardenmaestro",
	Short: "GardenMaestro - Garden Monitoring and Advisory System",
	Long: `GardenMaestro is a garden monitoring backend that collects sensor and
weather data for cultivated plots and produces prioritized care advice.`,
}

func main() {
	dbManager, err := database.NewDatabaseManager()
	if err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		os.Exit(1)
	}
	defer dbManager.Close()

	ctx := context.WithValue(context.Background(), "dbManager", dbManager)
	rootCmd.SetContext(ctx)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
