// cmd/tamumuctl/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/annassetiawan/tamumu-app/internal/config"
	"github.com/annassetiawan/tamumu-app/internal/model"
	"github.com/annassetiawan/tamumu-app/internal/repository"
	"github.com/annassetiawan/tamumu-app/internal/service"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	activityCmd.Flags().StringVar(&activityAction, "action", "", "Filter by action type")
	activityCmd.Flags().IntVar(&activityLimit, "limit", 50, "Maximum entries to print")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(exportGuestsCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "tamumuctl",
	Short: "Tamumuctl is the operator CLI for the tamumu backend",
	Long:  `Tamumuctl runs schema migrations and operator tasks against the tamumu database.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run schema migrations",
	Long:  `Apply the gorm auto-migrations for all tamumu models.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := mustOpenDatabase()

		err := db.AutoMigrate(
			&model.User{},
			&model.Organization{},
			&model.Profile{},
			&model.Wedding{},
			&model.Guest{},
			&model.ActivityLog{},
		)
		if err != nil {
			log.Fatalf("Migration failed: %v", err)
		}

		fmt.Println("Migrations applied")
	},
}

var exportGuestsCmd = &cobra.Command{
	Use:   "export-guests [wedding-id]",
	Short: "Export a wedding's guest list as CSV",
	Long:  `Write the guest list of the given wedding to stdout in the dashboard CSV format.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		weddingID, err := uuid.Parse(args[0])
		if err != nil {
			log.Fatalf("Invalid wedding id: %v", err)
		}

		cfg := config.Load()
		db := mustOpenDatabase()

		weddingRepo := repository.NewWeddingRepository(db)
		guestRepo := repository.NewGuestRepository(db)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		wedding, err := weddingRepo.FindByID(ctx, weddingID)
		if err != nil {
			log.Fatalf("Loading wedding: %v", err)
		}

		guests, err := guestRepo.FindByWedding(ctx, wedding.ID)
		if err != nil {
			log.Fatalf("Loading guests: %v", err)
		}

		if verbose {
			fmt.Fprintf(os.Stderr, "Exporting %d guests for %s\n", len(guests), wedding.Slug)
		}

		fmt.Println(service.GuestsCSV(guests, wedding.Slug, cfg.BaseURL))
	},
}

var (
	activityAction string
	activityLimit  int
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Print recent activity log entries",
	Long:  `List recent authorization decisions, check-in scans and guest events, newest first.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := mustOpenDatabase()
		repo := repository.NewActivityLogRepository(db)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		logs, total, err := repo.Query(ctx, repository.QueryParams{
			ActionType: activityAction,
			Limit:      activityLimit,
		})
		if err != nil {
			log.Fatalf("Querying activity logs: %v", err)
		}

		for _, entry := range logs {
			result := "-"
			if entry.Result != nil {
				result = fmt.Sprintf("%t", *entry.Result)
			}
			fmt.Printf("%s  %-20s  %s/%s  actor=%s  result=%s\n",
				entry.Timestamp.Format(time.RFC3339),
				entry.ActionType,
				entry.EntityType,
				entry.EntityID,
				entry.ActorID,
				result,
			)
		}

		if verbose {
			fmt.Fprintf(os.Stderr, "%d of %d entries\n", len(logs), total)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tamumuctl v0.1.0")
	},
}

func mustOpenDatabase() *gorm.DB {
	cfg := config.Load()

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	logLevel := logger.Silent
	if verbose {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatalf("Connecting to database: %v", err)
	}

	return db
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
