package cmd

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/s0up4200/tmdbctl/tmdb"
)

func genreNames(genres []tmdb.Genre) string {
	names := make([]string, len(genres))
	for i, g := range genres {
		names[i] = g.Name
	}
	return strings.Join(names, ", ")
}

func newTable(header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(header)
	return t
}

func renderMoviePage(page *tmdb.Page[tmdb.MovieListItem]) {
	t := newTable(table.Row{"ID", "Title", "Released", "Rating", "Votes"})
	for _, m := range page.Results {
		t.AppendRow(table.Row{m.ID, m.Title, m.ReleaseDate, m.VoteAverage, m.VoteCount})
	}
	t.Render()
}

func renderTVPage(page *tmdb.Page[tmdb.TVListItem]) {
	t := newTable(table.Row{"ID", "Name", "First aired", "Rating", "Votes"})
	for _, s := range page.Results {
		t.AppendRow(table.Row{s.ID, s.Name, s.FirstAirDate, s.VoteAverage, s.VoteCount})
	}
	t.Render()
}

func renderPersonPage(page *tmdb.Page[tmdb.PersonListItem]) {
	t := newTable(table.Row{"ID", "Name", "Known for", "Popularity"})
	for _, p := range page.Results {
		t.AppendRow(table.Row{p.ID, p.Name, p.KnownForDepartment, p.Popularity})
	}
	t.Render()
}

func renderMultiPage(page *tmdb.Page[tmdb.MultiListItem]) {
	t := newTable(table.Row{"ID", "Type", "Title", "Released", "Rating"})
	for _, item := range page.Results {
		title := item.Title
		if title == "" {
			title = item.Name
		}
		date := item.ReleaseDate
		if date == "" {
			date = item.FirstAirDate
		}
		t.AppendRow(table.Row{item.ID, item.MediaType, title, date, item.VoteAverage})
	}
	t.Render()
}
