package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/2beens/seefit/internal/db"
	"github.com/2beens/seefit/internal/hiits"
	"github.com/2beens/seefit/internal/workout"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:         "migrate",
	Short:       "Create the hiits and exercises tables if missing",
	Annotations: dbAnnotation,
	RunE: func(cmd *cobra.Command, args []string) error {
		if dbPool == nil {
			return errors.New("migrate needs a db connection")
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), timeoutFlag)
		defer cancel()

		if err := db.Migrate(ctx, dbPool); err != nil {
			return err
		}
		color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "schema up to date")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:         "seed",
	Short:       "Insert the default hiits and their exercises",
	Long:        "Insert the default hiits and their exercises. Already present hiits are kept, so it is safe to run again.",
	Annotations: dbAnnotation,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeoutFlag)
		defer cancel()

		addedHiits, addedExercises, err := hiits.Seed(ctx, store)
		if err != nil {
			return err
		}
		green := color.New(color.FgGreen)
		green.Fprintf(cmd.OutOrStdout(), "seed done: %d new hiits, %d new exercises\n", addedHiits, addedExercises)
		return nil
	},
}

var hiitsCmd = &cobra.Command{
	Use:     "hiits",
	Aliases: []string{"h"},
	Short:   "Look at stored hiits",
}

var hiitsListCmd = &cobra.Command{
	Use:         "list",
	Aliases:     []string{"ls", "l"},
	Short:       "List all hiits",
	Annotations: dbAnnotation,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeoutFlag)
		defer cancel()

		list, err := store.ListHiits(ctx)
		if err != nil {
			return fmt.Errorf("list hiits: %w", err)
		}
		printHiits(cmd.OutOrStdout(), list)
		return nil
	},
}

var hiitsPlanCmd = &cobra.Command{
	Use:         "plan <hiit-id>",
	Short:       "Show the countdown plan of a hiit",
	Args:        cobra.ExactArgs(1),
	Annotations: dbAnnotation,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeoutFlag)
		defer cancel()

		h, found, err := store.FindHiit(ctx, args[0])
		if err != nil {
			return fmt.Errorf("find hiit: %w", err)
		}
		if !found {
			return fmt.Errorf("hiit not found: %s", args[0])
		}

		exercises, err := store.ListHiitExercises(ctx, h.ID)
		if err != nil {
			return fmt.Errorf("list exercises: %w", err)
		}
		printPlan(cmd.OutOrStdout(), h, hiits.Steps(exercises))
		return nil
	},
}

var newIDCmd = &cobra.Command{
	Use:   "new-id",
	Short: "Print a new random hiit id",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), workout.GenerateID())
		return nil
	},
}

func init() {
	hiitsCmd.AddCommand(hiitsListCmd, hiitsPlanCmd)
}

func printHiits(w io.Writer, list []hiits.Hiit) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No hiits found.")
		return
	}

	faint := color.New(color.Faint)
	bold := color.New(color.Bold)
	for _, h := range list {
		kind := color.New(color.FgCyan).Sprint(h.Type)
		if h.Type == hiits.TypeCustom {
			kind = color.New(color.FgYellow).Sprint(h.Type)
		}
		fmt.Fprintf(w, "%s  %s  %s  %s\n",
			faint.Sprint(h.ID),
			padRight(kind, 8),
			bold.Sprint(h.Name),
			faint.Sprint(h.Description),
		)
	}
}

func printPlan(w io.Writer, h hiits.Hiit, steps []workout.Step) {
	bold := color.New(color.Bold)
	work := color.New(color.FgRed)
	rest := color.New(color.FgGreen)

	bold.Fprintf(w, "%s\n", h.Name)
	for _, interval := range workout.Plan(steps) {
		c := work
		if interval.Kind == workout.IntervalRest {
			c = rest
		}
		fmt.Fprintf(w, "  %s  %s  %s\n",
			workout.FormatDuration(interval.StartsAt),
			c.Sprint(padRight(string(interval.Kind), 4)),
			interval.Name+" "+interval.Display,
		)
	}
	bold.Fprintf(w, "total %s\n", workout.FormatDuration(workout.TotalDuration(steps)))
}

func padRight(s string, length int) string {
	for len(s) < length {
		s += " "
	}
	return s
}
