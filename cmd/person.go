package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var personCredits bool

// personCmd represents the person command
var personCmd = &cobra.Command{
	Use:     "person <id>",
	Short:   "Show details for a person",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runPerson,
}

func init() {
	rootCmd.AddCommand(personCmd)

	personCmd.Flags().BoolVar(&personCredits, "credits", false, "also list movie and TV credits")
}

func runPerson(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid person ID: %s", args[0])
	}

	person, err := client.People.Details(ctx, id, "")
	if err != nil {
		return fmt.Errorf("failed to fetch person: %w", err)
	}

	fmt.Println(person.Name)
	fmt.Println(strings.Repeat("━", 60))
	fmt.Printf("Known for: %s\n", person.KnownForDepartment)
	if person.Birthday != "" {
		fmt.Printf("Born:      %s", person.Birthday)
		if person.PlaceOfBirth != "" {
			fmt.Printf(" in %s", person.PlaceOfBirth)
		}
		fmt.Println()
	}
	if person.Deathday != "" {
		fmt.Printf("Died:      %s\n", person.Deathday)
	}
	if person.Biography != "" {
		fmt.Printf("Biography: %s\n", person.Biography)
	}

	if !personCredits {
		return nil
	}

	credits, err := client.People.CombinedCredits(ctx, id, "")
	if err != nil {
		return fmt.Errorf("failed to fetch credits: %w", err)
	}

	fmt.Println()
	t := newTable(table.Row{"Type", "Title", "Role", "Released"})
	for _, entry := range credits.Cast {
		title := entry.Title
		if title == "" {
			title = entry.Name
		}
		date := entry.ReleaseDate
		if date == "" {
			date = entry.FirstAirDate
		}
		t.AppendRow(table.Row{entry.MediaType, title, entry.Character, date})
	}
	t.Render()

	return nil
}
