package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"cinelog/internal/config"
	"cinelog/internal/histogram"
	"cinelog/internal/library"
	"cinelog/internal/website"
)

func newHistogramCommand(ctx *commandContext) *cobra.Command {
	var savePath string

	cmd := &cobra.Command{
		Use:   "histogram",
		Short: "Show the rating distribution as a bar chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(runCtx context.Context, store *library.Store, cfg *config.Config) error {
				snapshot, err := store.List(runCtx)
				if err != nil {
					return err
				}

				buckets := histogram.Build(snapshot)
				out := cmd.OutOrStdout()
				fmt.Fprint(out, histogram.Render(buckets, stdoutIsTTY()))

				if strings.TrimSpace(savePath) != "" {
					target, err := config.ExpandPath(savePath)
					if err != nil {
						return err
					}
					if err := os.WriteFile(target, []byte(histogram.Render(buckets, false)), 0o644); err != nil {
						return fmt.Errorf("save histogram: %w", err)
					}
					fmt.Fprintln(out, paint(text.FgGreen, fmt.Sprintf("Saved histogram to %s", target)))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&savePath, "save", "", "Also write the chart to this file")
	return cmd
}

func newWebsiteCommand(ctx *commandContext) *cobra.Command {
	var outputDir string
	var siteTitle string

	cmd := &cobra.Command{
		Use:   "website",
		Short: "Generate a static HTML page for the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(runCtx context.Context, store *library.Store, cfg *config.Config) error {
				snapshot, err := store.List(runCtx)
				if err != nil {
					return err
				}

				dir := cfg.Paths.WebsiteDir
				if strings.TrimSpace(outputDir) != "" {
					if dir, err = config.ExpandPath(outputDir); err != nil {
						return err
					}
				}

				target, err := website.Generate(snapshot, dir, siteTitle)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), paint(text.FgGreen, fmt.Sprintf("Website generated at %s", target)))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (defaults to paths.website_dir)")
	cmd.Flags().StringVar(&siteTitle, "title", "", "Page heading")
	return cmd
}
