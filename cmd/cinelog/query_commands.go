package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cinelog/internal/config"
	"cinelog/internal/library"
	"cinelog/internal/query"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var addMissing bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search titles, including near matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(runCtx context.Context, store *library.Store, cfg *config.Config) error {
				snapshot, err := store.List(runCtx)
				if err != nil {
					return err
				}

				result := query.Search(args[0], snapshot, cfg.Search.FuzzyThreshold)
				out := cmd.OutOrStdout()

				for _, title := range result.Exact {
					fmt.Fprintf(out, "%s: %s\n", title, formatRating(snapshot[title].Rating))
				}
				if len(result.Similar) > 0 {
					heading := "Near matches:"
					if len(result.Exact) == 0 {
						heading = fmt.Sprintf("No exact match for %q. Did you mean:", args[0])
					}
					fmt.Fprintln(out, paint(text.FgYellow, heading))
					for _, match := range result.Similar {
						fmt.Fprintf(out, "%s: %s (similarity %d)\n", match.Title, formatRating(snapshot[match.Title].Rating), match.Score)
					}
				}
				if !result.Empty() {
					return nil
				}

				// One consolidated miss, one offer to add.
				fmt.Fprintln(out, paint(text.FgRed, fmt.Sprintf("The movie %q is not in the collection", args[0])))
				if !addMissing {
					fmt.Fprintln(out, "Re-run with --add to look it up and add it.")
					return nil
				}

				title := cases.Title(language.English, cases.NoLower).String(strings.TrimSpace(args[0]))
				movie, err := store.Add(runCtx, title)
				switch {
				case err == nil:
					fmt.Fprintln(out, paint(text.FgGreen, fmt.Sprintf("Added %q (%d), rated %s", movie.Title, movie.Year, formatRating(movie.Rating))))
					return nil
				case errors.Is(err, library.ErrNotFound):
					fmt.Fprintln(out, paint(text.FgRed, fmt.Sprintf("No movie found for %q", title)))
					return nil
				default:
					return err
				}
			})
		},
	}

	cmd.Flags().BoolVar(&addMissing, "add", false, "Add the searched title when nothing matches")
	return cmd
}

func newSortCommand(ctx *commandContext) *cobra.Command {
	sortCmd := &cobra.Command{
		Use:   "sort",
		Short: "List the collection in a chosen order",
	}
	sortCmd.AddCommand(newSortRatingCommand(ctx))
	sortCmd.AddCommand(newSortYearCommand(ctx))
	return sortCmd
}

func newSortRatingCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rating",
		Short: "Best-rated movies first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(runCtx context.Context, store *library.Store, cfg *config.Config) error {
				snapshot, err := store.List(runCtx)
				if err != nil {
					return err
				}
				printMovies(cmd, query.SortByRating(snapshot))
				return nil
			})
		},
	}
}

func newSortYearCommand(ctx *commandContext) *cobra.Command {
	var oldestFirst bool

	cmd := &cobra.Command{
		Use:   "year",
		Short: "Movies ordered by release year",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(runCtx context.Context, store *library.Store, cfg *config.Config) error {
				snapshot, err := store.List(runCtx)
				if err != nil {
					return err
				}
				printMovies(cmd, query.SortByYear(snapshot, !oldestFirst))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&oldestFirst, "oldest-first", false, "Show the oldest movies first")
	return cmd
}

func newFilterCommand(ctx *commandContext) *cobra.Command {
	var opts query.FilterOptions

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "List movies passing rating and year bounds",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(runCtx context.Context, store *library.Store, cfg *config.Config) error {
				snapshot, err := store.List(runCtx)
				if err != nil {
					return err
				}
				filtered := query.Filter(snapshot, opts)
				fmt.Fprintf(cmd.OutOrStdout(), "%d of %d movies match\n", len(filtered), len(snapshot))
				printMovies(cmd, query.SortByYear(filtered, false))
				return nil
			})
		},
	}

	cmd.Flags().Float64Var(&opts.MinRating, "min-rating", 0, "Minimum rating (inclusive)")
	cmd.Flags().IntVar(&opts.StartYear, "start-year", 0, "Earliest release year (inclusive)")
	cmd.Flags().IntVar(&opts.EndYear, "end-year", 0, "Latest release year (inclusive, 0 for no bound)")
	return cmd
}

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show collection rating statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(runCtx context.Context, store *library.Store, cfg *config.Config) error {
				snapshot, err := store.List(runCtx)
				if err != nil {
					return err
				}

				stats, err := query.ComputeStatistics(snapshot)
				out := cmd.OutOrStdout()
				if errors.Is(err, query.ErrEmptyCollection) {
					fmt.Fprintln(out, paint(text.FgRed, "The collection is empty; add some movies first."))
					return nil
				}
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "Average rating: %.2f\n", stats.Mean)
				fmt.Fprintf(out, "Median rating: %.2f\n", stats.Median)
				fmt.Fprintln(out, "Best:")
				for _, title := range stats.Best {
					fmt.Fprintf(out, "  %s, %s\n", title, formatRating(snapshot[title].Rating))
				}
				fmt.Fprintln(out, "Worst:")
				for _, title := range stats.Worst {
					fmt.Fprintf(out, "  %s, %s\n", title, formatRating(snapshot[title].Rating))
				}
				return nil
			})
		},
	}
}

func newRandomCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Pick a random movie for tonight",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(runCtx context.Context, store *library.Store, cfg *config.Config) error {
				snapshot, err := store.List(runCtx)
				if err != nil {
					return err
				}

				title, rating, err := query.RandomPick(snapshot)
				out := cmd.OutOrStdout()
				if errors.Is(err, query.ErrEmptyCollection) {
					fmt.Fprintln(out, paint(text.FgRed, "The collection is empty; add some movies first."))
					return nil
				}
				if err != nil {
					return err
				}

				fmt.Fprintln(out, paint(text.FgGreen, fmt.Sprintf("Your movie for tonight: %s, rated %s", title, formatRating(rating))))
				return nil
			})
		},
	}
}

func printMovies(cmd *cobra.Command, movies []library.Movie) {
	if len(movies) == 0 {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), movieTable(movies))
}
