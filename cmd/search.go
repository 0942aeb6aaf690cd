package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbctl/filter"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [movie|tv|person|multi] <query>",
	Short: "Search for movies, TV shows or people",
	Long: `Search TMDb by title or name. The first argument selects the media
type; the rest form the query. Results can be narrowed with --filter or a
--preset from the config file.`,
	Args:    cobra.MinimumNArgs(2),
	PreRunE: initializeApp,
	RunE:    runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	searchCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	searchCmd.Flags().IntVar(&page, "page", 1, "result page")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	media := args[0]
	query := strings.Join(args[1:], " ")

	compiled, err := compileFilter()
	if err != nil {
		return err
	}

	switch media {
	case "movie":
		results, err := client.Search.Movies(ctx, query, "", page)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		results.Results, err = matching(compiled, results.Results)
		if err != nil {
			return err
		}
		renderMoviePage(results)
		printPageFooter(results.Page, results.TotalPages, results.TotalResults)

	case "tv":
		results, err := client.Search.TV(ctx, query, "", page)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		results.Results, err = matching(compiled, results.Results)
		if err != nil {
			return err
		}
		renderTVPage(results)
		printPageFooter(results.Page, results.TotalPages, results.TotalResults)

	case "person":
		results, err := client.Search.People(ctx, query, "", page)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		results.Results, err = matching(compiled, results.Results)
		if err != nil {
			return err
		}
		renderPersonPage(results)
		printPageFooter(results.Page, results.TotalPages, results.TotalResults)

	case "multi":
		results, err := client.Search.Multi(ctx, query, "", page)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		results.Results, err = matching(compiled, results.Results)
		if err != nil {
			return err
		}
		renderMultiPage(results)
		printPageFooter(results.Page, results.TotalPages, results.TotalResults)

	default:
		return fmt.Errorf("unknown media type: %s (must be movie, tv, person or multi)", media)
	}

	return nil
}

// matching keeps the items accepted by the compiled filter. A nil filter
// keeps everything.
func matching[T any](compiled filter.CompiledFilter, items []T) ([]T, error) {
	if compiled == nil {
		return items, nil
	}

	kept := items[:0]
	for _, item := range items {
		ok, err := compiled.Match(item)
		if err != nil {
			return nil, fmt.Errorf("filter failed: %w", err)
		}
		if ok {
			kept = append(kept, item)
		}
	}
	return kept, nil
}

func printPageFooter(page, totalPages, totalResults int) {
	fmt.Printf("Page %d of %d (%d results)\n", page, totalPages, totalResults)
}
