package main

import (
	"alcyxob/fitlog/internal/seed"
	"alcyxob/fitlog/internal/storage"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	genUsers  int
	genDays   int
	genFormat string
	genOut    string
	genUpload bool
	genMongo  bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Inspect or generate seed snapshots",
}

var seedCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Load and validate the configured seed source",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		users, err := a.userService.ListUsers(cmd.Context())
		if err != nil {
			return err
		}
		workouts, err := a.workoutService.AllWorkouts(cmd.Context())
		if err != nil {
			return err
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "%s seed OK: %d users, %d workouts\n",
			cfg.Seed.Source, len(users), len(workouts))
		return nil
	},
}

var seedGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random seed snapshot",
	Long: `Generate random users and workouts ending today and write them as
users.<format> and workouts.<format> into --out.

With --upload the files are also stored in the configured S3 bucket under
seed.users_key and seed.workouts_key; give the keys the extension that
matches --format. With --mongo the users and workouts
collections of the configured database are replaced.

EXAMPLES:

  fitlog seed generate --users 20 --days 30 --out ./data
  fitlog seed generate --format yaml --out ./data --upload`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		snap, err := seed.Generate(seed.GenerateOptions{Users: genUsers, Days: genDays, Until: time.Now()})
		if err != nil {
			return err
		}

		usersPath, workoutsPath, err := seed.WriteFiles(genOut, genFormat, snap)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %d users to %s\n", len(snap.Users), usersPath)
		fmt.Fprintf(out, "Wrote %d workouts to %s\n", len(snap.Workouts), workoutsPath)

		if genUpload {
			objects, err := storage.NewS3Storage(ctx, cfg.S3)
			if err != nil {
				return err
			}
			contentType := "application/json"
			if genFormat == seed.FormatYAML {
				contentType = "application/yaml"
			}
			for path, key := range map[string]string{usersPath: cfg.Seed.UsersKey, workoutsPath: cfg.Seed.WorkoutsKey} {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				if err := objects.WriteObject(ctx, key, data, contentType); err != nil {
					return fmt.Errorf("upload %s: %w", key, err)
				}
				fmt.Fprintf(out, "Uploaded %s to s3://%s/%s\n", path, cfg.S3.BucketName, key)
			}
		}

		if genMongo {
			a := &app{}
			defer a.Close()
			store, err := a.snapshotStore(ctx, cfg)
			if err != nil {
				return err
			}
			if err := store.Replace(ctx, snap); err != nil {
				return err
			}
			if err := store.EnsureIndexes(ctx); err != nil {
				return err
			}
			fmt.Fprintf(out, "Replaced MongoDB database %s\n", cfg.Database.Name)
		}
		return nil
	},
}

func init() {
	seedGenerateCmd.Flags().IntVar(&genUsers, "users", 10, "number of users")
	seedGenerateCmd.Flags().IntVar(&genDays, "days", 14, "number of days ending today")
	seedGenerateCmd.Flags().StringVar(&genFormat, "format", seed.FormatJSON, "json or yaml")
	seedGenerateCmd.Flags().StringVarP(&genOut, "out", "o", ".", "output directory")
	seedGenerateCmd.Flags().BoolVar(&genUpload, "upload", false, "also upload to the configured S3 bucket")
	seedGenerateCmd.Flags().BoolVar(&genMongo, "mongo", false, "also replace the configured MongoDB collections")

	seedCmd.AddCommand(seedCheckCmd, seedGenerateCmd)
	rootCmd.AddCommand(seedCmd)
}
