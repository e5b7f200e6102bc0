package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"cinelog/internal/config"
	"cinelog/internal/library"
	"cinelog/internal/query"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every movie in the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(runCtx context.Context, store *library.Store, cfg *config.Config) error {
				snapshot, err := store.List(runCtx)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%d movies in the collection\n", len(snapshot))
				if len(snapshot) == 0 {
					return nil
				}

				fmt.Fprintln(out, movieTable(query.SortByYear(snapshot, false)))
				return nil
			})
		},
	}
}

func newAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title>",
		Short: "Look up a title on OMDb and add it to the collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(runCtx context.Context, store *library.Store, cfg *config.Config) error {
				movie, err := store.Add(runCtx, args[0])
				out := cmd.OutOrStdout()
				switch {
				case err == nil:
					fmt.Fprintln(out, paint(text.FgGreen, fmt.Sprintf("Added %q (%d), rated %s", movie.Title, movie.Year, formatRating(movie.Rating))))
					return nil
				case errors.Is(err, library.ErrDuplicate):
					fmt.Fprintln(out, paint(text.FgRed, fmt.Sprintf("Movie %q already exists", args[0])))
					return nil
				case errors.Is(err, library.ErrNotFound):
					fmt.Fprintln(out, paint(text.FgRed, fmt.Sprintf("No movie found for %q", args[0])))
					return nil
				default:
					return err
				}
			})
		},
	}
}

func newDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <title>",
		Short: "Delete a movie by its exact title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(runCtx context.Context, store *library.Store, cfg *config.Config) error {
				removed, err := store.Delete(runCtx, args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if removed {
					fmt.Fprintln(out, paint(text.FgGreen, fmt.Sprintf("Deleted %q", args[0])))
				} else {
					fmt.Fprintln(out, paint(text.FgRed, fmt.Sprintf("Movie %q is not in the collection", args[0])))
				}
				return nil
			})
		},
	}
}

func newRateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <title> <rating>",
		Short: "Update a movie's rating (0-10)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("%w: rating %q is not numeric", library.ErrValidation, args[1])
			}
			if err := library.ValidateRating(rating); err != nil {
				return err
			}

			return ctx.withStore(func(runCtx context.Context, store *library.Store, cfg *config.Config) error {
				updated, err := store.UpdateRating(runCtx, args[0], rating)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if updated {
					fmt.Fprintln(out, paint(text.FgGreen, fmt.Sprintf("Updated %q to %s", args[0], formatRating(rating))))
				} else {
					fmt.Fprintln(out, paint(text.FgRed, fmt.Sprintf("Movie %q is not in the collection", args[0])))
				}
				return nil
			})
		},
	}
}
