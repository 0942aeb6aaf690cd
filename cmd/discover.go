package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbctl/tmdb"
)

var (
	discoverYear      int
	discoverGenres    []int
	discoverMinRating float64
	discoverSortBy    string
)

// discoverCmd represents the discover command
var discoverCmd = &cobra.Command{
	Use:   "discover [movie|tv]",
	Short: "Browse movies or TV shows by criteria",
	Long: `Browse the TMDb catalogue by year, genre and rating instead of by
title. Genre IDs can be listed with "tmdbctl genres".`,
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runDiscover,
}

// genresCmd represents the genres command
var genresCmd = &cobra.Command{
	Use:     "genres [movie|tv]",
	Short:   "List the official genres and their IDs",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runGenres,
}

func init() {
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(genresCmd)

	discoverCmd.Flags().IntVar(&discoverYear, "year", 0, "release year")
	discoverCmd.Flags().IntSliceVar(&discoverGenres, "genres", nil, "genre IDs")
	discoverCmd.Flags().Float64Var(&discoverMinRating, "min-rating", 0, "minimum vote average")
	discoverCmd.Flags().StringVar(&discoverSortBy, "sort", "popularity.desc", "sort order")
	discoverCmd.Flags().IntVar(&page, "page", 1, "result page")
}

func runDiscover(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	switch args[0] {
	case "movie":
		results, err := client.Discover.Movies(ctx, tmdb.DiscoverMoviesOptions{
			Region:             cfg.TMDb.Region,
			SortBy:             discoverSortBy,
			Page:               page,
			PrimaryReleaseYear: discoverYear,
			WithGenres:         discoverGenres,
			VoteAverageGTE:     discoverMinRating,
		})
		if err != nil {
			return fmt.Errorf("discover failed: %w", err)
		}
		renderMoviePage(results)
		printPageFooter(results.Page, results.TotalPages, results.TotalResults)

	case "tv":
		results, err := client.Discover.TV(ctx, tmdb.DiscoverTVOptions{
			SortBy:         discoverSortBy,
			Page:           page,
			FirstAirYear:   discoverYear,
			WithGenres:     discoverGenres,
			VoteAverageGTE: discoverMinRating,
		})
		if err != nil {
			return fmt.Errorf("discover failed: %w", err)
		}
		renderTVPage(results)
		printPageFooter(results.Page, results.TotalPages, results.TotalResults)

	default:
		return fmt.Errorf("unknown media type: %s (must be movie or tv)", args[0])
	}

	return nil
}

func runGenres(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	media := "movie"
	if len(args) > 0 {
		media = args[0]
	}

	var (
		list *tmdb.GenreList
		err  error
	)
	switch media {
	case "movie":
		list, err = client.Genres.Movies(ctx, "")
	case "tv":
		list, err = client.Genres.TV(ctx, "")
	default:
		return fmt.Errorf("unknown media type: %s (must be movie or tv)", media)
	}
	if err != nil {
		return fmt.Errorf("failed to fetch genres: %w", err)
	}

	for _, genre := range list.Genres {
		fmt.Printf("%5d  %s\n", genre.ID, genre.Name)
	}
	return nil
}
