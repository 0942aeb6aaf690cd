package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	seasonNumber  int
	episodeNumber int
)

// tvCmd represents the tv command
var tvCmd = &cobra.Command{
	Use:   "tv <id>",
	Short: "Show details for a TV series, season or episode",
	Long: `Show details for a TV series by its TMDb ID. With --season the
season's episode list is shown instead; adding --episode narrows to one
episode.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runTV,
}

func init() {
	rootCmd.AddCommand(tvCmd)

	tvCmd.Flags().IntVarP(&seasonNumber, "season", "s", 0, "season number")
	tvCmd.Flags().IntVarP(&episodeNumber, "episode", "e", 0, "episode number (requires --season)")
}

func runTV(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid series ID: %s", args[0])
	}

	if episodeNumber > 0 && seasonNumber == 0 {
		return fmt.Errorf("--episode requires --season")
	}

	switch {
	case episodeNumber > 0:
		episode, err := client.Episodes.Details(ctx, id, seasonNumber, episodeNumber, "")
		if err != nil {
			return fmt.Errorf("failed to fetch episode: %w", err)
		}
		fmt.Printf("S%02dE%02d — %s (%s)\n", episode.SeasonNumber, episode.EpisodeNumber, episode.Name, episode.AirDate)
		fmt.Println(strings.Repeat("━", 60))
		fmt.Printf("Rating:   %.1f (%d votes)\n", episode.VoteAverage, episode.VoteCount)
		fmt.Printf("Runtime:  %d min\n", episode.Runtime)
		fmt.Printf("Overview: %s\n", episode.Overview)

	case seasonNumber > 0:
		season, err := client.Seasons.Details(ctx, id, seasonNumber, "")
		if err != nil {
			return fmt.Errorf("failed to fetch season: %w", err)
		}
		fmt.Printf("%s (%s)\n", season.Name, season.AirDate)
		t := newTable(table.Row{"#", "Title", "Aired", "Rating"})
		for _, episode := range season.Episodes {
			t.AppendRow(table.Row{episode.EpisodeNumber, episode.Name, episode.AirDate, episode.VoteAverage})
		}
		t.Render()

	default:
		series, err := client.TV.Details(ctx, id, "")
		if err != nil {
			return fmt.Errorf("failed to fetch series: %w", err)
		}
		fmt.Printf("%s (%s – %s)\n", series.Name, series.FirstAirDate, series.LastAirDate)
		fmt.Println(strings.Repeat("━", 60))
		fmt.Printf("Status:   %s\n", series.Status)
		fmt.Printf("Seasons:  %d (%d episodes)\n", series.NumberOfSeasons, series.NumberOfEpisodes)
		fmt.Printf("Rating:   %.1f (%d votes)\n", series.VoteAverage, series.VoteCount)
		fmt.Printf("Genres:   %s\n", genreNames(series.Genres))
		fmt.Printf("Overview: %s\n", series.Overview)
	}

	return nil
}
