package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbctl/tmdb"
)

var trendingWindow string

// trendingCmd represents the trending command
var trendingCmd = &cobra.Command{
	Use:     "trending [movie|tv|all]",
	Short:   "List trending movies and TV shows",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runTrending,
}

func init() {
	rootCmd.AddCommand(trendingCmd)

	trendingCmd.Flags().StringVarP(&trendingWindow, "window", "w", "day", "time window (day or week)")
	trendingCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	trendingCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	trendingCmd.Flags().IntVar(&page, "page", 1, "result page")
}

func runTrending(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	window := tmdb.TimeWindow(trendingWindow)
	if window != tmdb.WindowDay && window != tmdb.WindowWeek {
		return fmt.Errorf("invalid window: %s (must be day or week)", trendingWindow)
	}

	media := "all"
	if len(args) > 0 {
		media = args[0]
	}

	compiled, err := compileFilter()
	if err != nil {
		return err
	}

	switch media {
	case "movie":
		results, err := client.Trending.Movies(ctx, window, "", page)
		if err != nil {
			return fmt.Errorf("failed to fetch trending movies: %w", err)
		}
		results.Results, err = matching(compiled, results.Results)
		if err != nil {
			return err
		}
		renderMoviePage(results)

	case "tv":
		results, err := client.Trending.TV(ctx, window, "", page)
		if err != nil {
			return fmt.Errorf("failed to fetch trending TV shows: %w", err)
		}
		results.Results, err = matching(compiled, results.Results)
		if err != nil {
			return err
		}
		renderTVPage(results)

	case "all":
		results, err := client.Trending.All(ctx, window, "", page)
		if err != nil {
			return fmt.Errorf("failed to fetch trending media: %w", err)
		}
		results.Results, err = matching(compiled, results.Results)
		if err != nil {
			return err
		}
		renderMultiPage(results)

	default:
		return fmt.Errorf("unknown media type: %s (must be movie, tv or all)", media)
	}

	return nil
}
