package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kendall-kelly/kendalls-kitchen/config"
	"github.com/kendall-kelly/kendalls-kitchen/controllers"
	"github.com/kendall-kelly/kendalls-kitchen/services"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "kendalls-kitchen",
	Short: "Single-user food ordering app over a local store",
	Long: `kendalls-kitchen is an interactive food-ordering application backed by a
single local database file: browse the menu, build a cart, check out, and
inspect or edit records through the admin view. The schema is created and
seeded automatically on first run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "env file to load before reading configuration")
	rootCmd.Flags().String("db", "", "path of the store file (overrides DB_FILE)")

	viper.BindPFlags(rootCmd.Flags())
	viper.AutomaticEnv()
}

func run() error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dsn := cfg.DBFile
	if flagDB := viper.GetString("db"); flagDB != "" {
		dsn = flagDB
	}

	log.Println("Starting Kendall's Kitchen...")

	if err := config.ConnectDatabase(dsn); err != nil {
		return err
	}
	db := config.GetDB()

	if err := config.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Println("Database migration completed successfully")

	if err := services.Seed(db); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	app := controllers.NewApp(db, services.NewConsolePrompter(), cfg.DefaultPayMethod)
	app.Run()

	log.Println("Goodbye")
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
