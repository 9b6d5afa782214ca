package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var usersSearch string

var usersCmd = &cobra.Command{
	Use:     "users",
	Aliases: []string{"u"},
	Short:   "List or search users",
	Long: `List the users of the seed snapshot in stored order.

EXAMPLES:

  fitlog users                 # every user
  fitlog users --search an     # names containing "an", any case`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		users, err := a.userService.SearchUsers(cmd.Context(), usersSearch)
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(users) == 0 {
			fmt.Fprintln(out, "No users found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, u := range users {
			fmt.Fprintf(out, "%s %s\n", faint.Sprint(padRight(u.ID, 8)), u.Name)
		}
		return nil
	},
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	usersCmd.Flags().StringVarP(&usersSearch, "search", "s", "", "case-insensitive name fragment")
	rootCmd.AddCommand(usersCmd)
}
