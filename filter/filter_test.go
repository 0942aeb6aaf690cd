package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/tmdbctl/tmdb"
)

func TestCompile(t *testing.T) {
	compiler := NewCompiler()

	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{name: "simple comparison", expression: "VoteAverage >= 7.5"},
		{name: "boolean combination", expression: `Year > 1990 && Language == "en"`},
		{name: "helper functions", expression: `lower(Title) == "club"`},
		{name: "substring operator", expression: `lower(Title) contains "club"`},
		{name: "genre membership", expression: "18 in GenreIDs"},
		{name: "empty", expression: "", wantErr: true},
		{name: "whitespace only", expression: "   ", wantErr: true},
		{name: "syntax error", expression: "VoteAverage >=", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compiled, err := compiler.Compile(tt.expression)
			if tt.wantErr {
				var compErr *CompilationError
				require.ErrorAs(t, err, &compErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, compiled.Expression())
		})
	}
}

func TestCompileCaching(t *testing.T) {
	compiler := NewCompiler(WithCacheSize(8))

	first, err := compiler.Compile("VoteAverage > 5")
	require.NoError(t, err)

	second, err := compiler.Compile("VoteAverage > 5")
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestMatchMovie(t *testing.T) {
	movie := tmdb.MovieListItem{
		ID:               550,
		Title:            "Fight Club",
		OriginalLanguage: "en",
		ReleaseDate:      "1999-10-15",
		VoteAverage:      8.4,
		VoteCount:        27000,
		Popularity:       61.4,
		GenreIDs:         []int{18, 53},
	}

	tests := []struct {
		expression string
		want       bool
	}{
		{"VoteAverage >= 8", true},
		{"VoteAverage >= 9", false},
		{"Year == 1999", true},
		{"Year < 1990", false},
		{`lower(Title) contains "fight"`, true},
		{`lower(Title) contains "club house"`, false},
		{"18 in GenreIDs", true},
		{"99 in GenreIDs", false},
		{`Language == "en" && VoteCount > 1000`, true},
		{"!Adult", true},
	}

	compiler := NewCompiler()
	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			compiled, err := compiler.Compile(tt.expression)
			require.NoError(t, err)

			matched, err := compiled.Match(movie)
			require.NoError(t, err)
			assert.Equal(t, tt.want, matched)
		})
	}
}

func TestMatchTVUsesNameAsTitle(t *testing.T) {
	show := tmdb.TVListItem{
		ID:           1399,
		Name:         "Game of Thrones",
		FirstAirDate: "2011-04-17",
		VoteAverage:  8.5,
	}

	compiler := NewCompiler()
	compiled, err := compiler.Compile(`Title contains "Thrones" && Year == 2011`)
	require.NoError(t, err)

	matched, err := compiled.Match(show)
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestMatchMultiFallsBackToName(t *testing.T) {
	item := tmdb.MultiListItem{
		ID:           1399,
		Name:         "Game of Thrones",
		MediaType:    "tv",
		FirstAirDate: "2011-04-17",
	}

	compiler := NewCompiler()
	compiled, err := compiler.Compile(`MediaType == "tv" && Title == "Game of Thrones"`)
	require.NoError(t, err)

	matched, err := compiled.Match(item)
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestMatchPerson(t *testing.T) {
	person := tmdb.PersonListItem{
		ID:                 287,
		Name:               "Brad Pitt",
		KnownForDepartment: "Acting",
		Popularity:         71.3,
	}

	tests := []struct {
		expression string
		want       bool
	}{
		{`Name contains "Pitt"`, true},
		{`lower(Title) contains "brad"`, true},
		{`KnownFor == "Acting" && Popularity > 50`, true},
		{`KnownFor == "Directing"`, false},
	}

	compiler := NewCompiler()
	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			compiled, err := compiler.Compile(tt.expression)
			require.NoError(t, err)

			matched, err := compiled.Match(person)
			require.NoError(t, err)
			assert.Equal(t, tt.want, matched)
		})
	}
}

func TestMatchUnsupportedType(t *testing.T) {
	compiler := NewCompiler()
	compiled, err := compiler.Compile("VoteAverage > 5")
	require.NoError(t, err)

	_, err = compiled.Match(42)

	var evalErr *EvaluationError
	require.ErrorAs(t, err, &evalErr)
}

func TestYearOf(t *testing.T) {
	assert.Equal(t, 1999, yearOf("1999-10-15"))
	assert.Equal(t, 0, yearOf(""))
	assert.Equal(t, 0, yearOf("n/a"))
}
