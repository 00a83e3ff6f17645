package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gardenmaestro/gardenmaestro/pkg/database"
	"github.com/gardenmaestro/gardenmaestro/pkg/models"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Manage garden plots",
	Long:  `Add, list, and manage garden plots.`,
}

var plotAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new plot",
	Long:  `Interactively add a new garden plot to the system.`,
	RunE:  runPlotAdd,
}

var plotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all plots",
	Long:  `Display all registered garden plots.`,
	RunE:  runPlotList,
}

var plotDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a plot",
	Long:  `Delete a registered plot from the system.`,
	RunE:  runPlotDelete,
}

func init() {
	rootCmd.AddCommand(plotCmd)
	plotCmd.AddCommand(plotAddCmd)
	plotCmd.AddCommand(plotListCmd)
	plotCmd.AddCommand(plotDeleteCmd)
}

func runPlotAdd(cmd *cobra.Command, args []string) error {
	dbManager := cmd.Context().Value("dbManager").(*database.DatabaseManager)

	reader := bufio.NewReader(os.Stdin)

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("Add New Garden Plot")
	fmt.Println(strings.Repeat("=", 60))

	// Name
	fmt.Print("Plot name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("plot name cannot be empty")
	}

	// Garden type
	fmt.Print("Garden type (outdoor/balcony/indoor/greenhouse) [outdoor]: ")
	gardenTypeStr, _ := reader.ReadString('\n')
	gardenTypeStr = strings.TrimSpace(gardenTypeStr)
	if gardenTypeStr == "" {
		gardenTypeStr = "outdoor"
	}
	gardenType := models.GardenType(gardenTypeStr)
	switch gardenType {
	case models.GardenTypeOutdoor, models.GardenTypeBalcony, models.GardenTypeIndoor, models.GardenTypeGreenhouse:
	default:
		return fmt.Errorf("invalid garden type: %s", gardenTypeStr)
	}

	// Location
	fmt.Print("Latitude: ")
	latStr, _ := reader.ReadString('\n')
	latitude, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return fmt.Errorf("invalid latitude: %w", err)
	}

	fmt.Print("Longitude: ")
	lonStr, _ := reader.ReadString('\n')
	longitude, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return fmt.Errorf("invalid longitude: %w", err)
	}

	// Experience level
	fmt.Print("Gardener experience (novice/intermediate/expert) [intermediate]: ")
	experienceStr, _ := reader.ReadString('\n')
	experienceStr = strings.TrimSpace(experienceStr)
	if experienceStr == "" {
		experienceStr = "intermediate"
	}
	experience := models.ExperienceLevel(experienceStr)
	switch experience {
	case models.ExperienceNovice, models.ExperienceIntermediate, models.ExperienceExpert:
	default:
		return fmt.Errorf("invalid experience level: %s", experienceStr)
	}

	plot := &models.Plot{
		Name:       name,
		GardenType: gardenType,
		Latitude:   latitude,
		Longitude:  longitude,
		Experience: experience,
	}

	// Optional plant assignment
	fmt.Print("Plant ID (empty to skip): ")
	plantIDStr, _ := reader.ReadString('\n')
	plantIDStr = strings.TrimSpace(plantIDStr)
	if plantIDStr != "" {
		plantID, err := uuid.Parse(plantIDStr)
		if err != nil {
			return fmt.Errorf("invalid plant id: %w", err)
		}
		if _, err := dbManager.GetPlant(cmd.Context(), plantID); err != nil {
			return fmt.Errorf("failed to look up plant: %w", err)
		}
		plot.PlantID = &plantID

		fmt.Print("Planted at (YYYY-MM-DD) [today]: ")
		plantedStr, _ := reader.ReadString('\n')
		plantedStr = strings.TrimSpace(plantedStr)
		plantedAt := time.Now().UTC()
		if plantedStr != "" {
			plantedAt, err = time.Parse("2006-01-02", plantedStr)
			if err != nil {
				return fmt.Errorf("invalid planting date: %w", err)
			}
		}
		plot.PlantedAt = &plantedAt
	}

	// Save to database
	if err := dbManager.CreatePlot(cmd.Context(), plot); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}

	fmt.Printf("\n✓ Plot created with ID: %s\n", plot.ID)
	fmt.Println(strings.Repeat("=", 60) + "\n")

	return nil
}

func runPlotDelete(cmd *cobra.Command, args []string) error {
	dbManager := cmd.Context().Value("dbManager").(*database.DatabaseManager)
	reader := bufio.NewReader(os.Stdin)

	// Get all plots
	plots, err := dbManager.ListPlots(cmd.Context())
	if err != nil {
		log.Printf("Failed to fetch plots: %v", err)
		return err
	}

	if len(plots) == 0 {
		fmt.Println("No plots registered yet.")
		return nil
	}

	// Display plots
	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println("Select Plot to Delete")
	fmt.Println(strings.Repeat("=", 80))

	for i, plot := range plots {
		fmt.Printf("[%d] %s (%s)\n", i+1, plot.Name, plot.GardenType)
	}

	// Get selection
	fmt.Print("\nEnter plot number to delete (0 to cancel): ")
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)

	var selection int
	_, err = fmt.Sscanf(input, "%d", &selection)
	if err != nil || selection < 0 || selection > len(plots) {
		fmt.Println("Invalid selection.")
		return nil
	}

	if selection == 0 {
		fmt.Println("Cancelled.")
		return nil
	}

	selectedPlot := plots[selection-1]

	// Confirmation
	fmt.Printf("\n⚠️  Are you sure you want to delete plot '%s'? (yes/no): ", selectedPlot.Name)
	confirm, _ := reader.ReadString('\n')
	confirm = strings.TrimSpace(strings.ToLower(confirm))

	if confirm != "yes" && confirm != "y" {
		fmt.Println("Cancelled.")
		return nil
	}

	// Delete plot
	if err := dbManager.DeletePlot(cmd.Context(), selectedPlot.ID); err != nil {
		log.Printf("Failed to delete plot: %v", err)
		return fmt.Errorf("failed to delete plot: %w", err)
	}

	fmt.Printf("\n✓ Plot '%s' deleted successfully!\n", selectedPlot.Name)
	fmt.Println(strings.Repeat("=", 80) + "\n")

	return nil
}

func runPlotList(cmd *cobra.Command, args []string) error {
	dbManager := cmd.Context().Value("dbManager").(*database.DatabaseManager)

	plots, err := dbManager.ListPlots(cmd.Context())
	if err != nil {
		log.Printf("Failed to fetch plots: %v", err)
		return err
	}

	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println("Registered Garden Plots")
	fmt.Println(strings.Repeat("=", 80))

	count := 0
	for _, plot := range plots {
		count++
		fmt.Printf("\n[%d] %s\n", count, plot.Name)
		fmt.Printf("    ID: %s\n", plot.ID)
		fmt.Printf("    Type: %s\n", plot.GardenType)
		if plot.PlantName != "" {
			fmt.Printf("    Plant: %s\n", plot.PlantName)
		}
		if plot.PlantedAt != nil {
			fmt.Printf("    Planted: %s\n", plot.PlantedAt.Format("2006-01-02"))
		}
	}

	if count == 0 {
		fmt.Println("No plots registered yet.")
	}

	fmt.Println("\n" + strings.Repeat("=", 80) + "\n")

	return nil
}
