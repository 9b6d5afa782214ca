package main

import (
	"alcyxob/fitlog/internal/domain"
	"alcyxob/fitlog/internal/query"
	"alcyxob/fitlog/internal/service"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	workoutsUser string
	workoutsDate string
	workoutsPage int
	workoutsRows bool
)

var workoutsCmd = &cobra.Command{
	Use:     "workouts",
	Aliases: []string{"w"},
	Short:   "Browse workouts, newest first",
	Long: `Show one page of workouts, filtered by user and/or date.

EXAMPLES:

  fitlog workouts                          # first page, every user
  fitlog workouts --user 1 --page 2        # second page of user 1
  fitlog workouts --date 2024-09-04 --rows # one line per exercise`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := parseWorkoutFilter(workoutsUser, workoutsDate)
		if err != nil {
			return err
		}

		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		listing, err := a.workoutService.ListWorkouts(cmd.Context(), filter, workoutsPage)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}
		printListing(cmd.OutOrStdout(), listing, workoutsRows)
		return nil
	},
}

// parseWorkoutFilter turns the flag values into a filter. An empty user or
// "all" leaves the user unconstrained.
func parseWorkoutFilter(userID, date string) (query.Filter, error) {
	var f query.Filter
	if userID != "" && userID != "all" {
		f = f.ForUser(userID)
	}
	if date != "" {
		d, err := domain.ParseDateKey(date)
		if err != nil {
			return f, err
		}
		f = f.OnDate(d)
	}
	return f, nil
}

func printListing(out io.Writer, l *service.WorkoutListing, rows bool) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	header := "All users"
	if l.Filter.UserID != nil {
		header = "User " + *l.Filter.UserID
		if l.FilterUser != nil {
			header = l.FilterUser.Name
		}
	}
	if l.Filter.Date != nil {
		header += " on " + domain.DisplayDate(domain.DateKey(*l.Filter.Date))
	}
	bold.Fprintln(out, header)

	if len(l.Page.Items) == 0 {
		fmt.Fprintln(out, "No workouts found.")
	} else if rows {
		for _, r := range l.Rows() {
			fmt.Fprintf(out, "%s %s %s %dx%d\n",
				faint.Sprint(domain.DisplayDate(r.Date)),
				padRight(nameOrID(r.UserName, r.UserID), 20),
				padRight(r.Exercise.Name, 24),
				r.Exercise.Sets, r.Exercise.Reps)
		}
	} else {
		for _, w := range l.Page.Items {
			fmt.Fprintf(out, "%s %s %d exercise(s)\n",
				faint.Sprint(domain.DisplayDate(w.Date)),
				padRight(nameOrID(l.UserNames[w.UserID], w.UserID), 20),
				len(w.Exercises))
		}
	}

	faint.Fprintf(out, "page %d of %d (%d workouts)\n", l.Page.Number, l.Page.TotalPages, l.Page.TotalItems)
}

func nameOrID(name, id string) string {
	if name == "" {
		return "#" + id
	}
	return name
}

func init() {
	workoutsCmd.Flags().StringVarP(&workoutsUser, "user", "u", "", "user id, or 'all'")
	workoutsCmd.Flags().StringVarP(&workoutsDate, "date", "d", "", "day as YYYY-MM-DD")
	workoutsCmd.Flags().IntVarP(&workoutsPage, "page", "p", 1, "1-based page number")
	workoutsCmd.Flags().BoolVar(&workoutsRows, "rows", false, "one line per exercise")
	rootCmd.AddCommand(workoutsCmd)
}
