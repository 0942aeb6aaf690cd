package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var movieFull bool

// movieCmd represents the movie command
var movieCmd = &cobra.Command{
	Use:   "movie <id>",
	Short: "Show details for a movie",
	Long: `Show details for a movie by its TMDb ID. With --full the cast,
images and videos are fetched as well, in parallel.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runMovie,
}

func init() {
	rootCmd.AddCommand(movieCmd)

	movieCmd.Flags().BoolVar(&movieFull, "full", false, "also fetch credits, images and videos")
}

func runMovie(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid movie ID: %s", args[0])
	}

	movie, err := client.Movies.Details(ctx, id, "")
	if err != nil {
		return fmt.Errorf("failed to fetch movie: %w", err)
	}

	fmt.Printf("%s (%s)\n", movie.Title, movie.ReleaseDate)
	if movie.Tagline != "" {
		fmt.Printf("“%s”\n", movie.Tagline)
	}
	fmt.Println(strings.Repeat("━", 60))
	fmt.Printf("Rating:   %.1f (%d votes)\n", movie.VoteAverage, movie.VoteCount)
	fmt.Printf("Runtime:  %d min\n", movie.Runtime)
	fmt.Printf("Genres:   %s\n", genreNames(movie.Genres))
	fmt.Printf("Overview: %s\n", movie.Overview)

	if !movieFull {
		return nil
	}

	extras, err := client.Movies.ExtrasFor(ctx, id, "")
	if err != nil {
		return fmt.Errorf("failed to fetch movie extras: %w", err)
	}

	fmt.Println()
	t := newTable(table.Row{"Actor", "Character"})
	for i, member := range extras.Credits.Cast {
		if i >= 10 {
			break
		}
		t.AppendRow(table.Row{member.Name, member.Character})
	}
	t.Render()

	fmt.Printf("\nImages: %d posters, %d backdrops\n", len(extras.Images.Posters), len(extras.Images.Backdrops))
	for _, video := range extras.Videos.Results {
		if video.Type == "Trailer" && video.Site == "YouTube" {
			fmt.Printf("Trailer: https://youtu.be/%s\n", video.Key)
		}
	}

	return nil
}
