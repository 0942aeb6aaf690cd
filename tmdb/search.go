package tmdb

import "context"

// MultiListItem is an entry in multi-search pages. Title/Name and the date
// fields are populated depending on MediaType.
type MultiListItem struct {
	ID               int     `json:"id"`
	Adult            bool    `json:"adult"`
	BackdropPath     string  `json:"backdrop_path"`
	FirstAirDate     string  `json:"first_air_date,omitempty"`
	GenreIDs         []int   `json:"genre_ids,omitempty"`
	MediaType        string  `json:"media_type"`
	Name             string  `json:"name,omitempty"`
	OriginalLanguage string  `json:"original_language,omitempty"`
	Overview         string  `json:"overview"`
	Popularity       float64 `json:"popularity"`
	PosterPath       string  `json:"poster_path"`
	ProfilePath      string  `json:"profile_path,omitempty"`
	ReleaseDate      string  `json:"release_date,omitempty"`
	Title            string  `json:"title,omitempty"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
}

var (
	searchMovies = get("/search/movie")
	searchTV     = get("/search/tv")
	searchPeople = get("/search/person")
	searchMulti  = get("/search/multi")
)

// SearchService wraps the search endpoints.
type SearchService struct {
	client *Client
}

// Movies searches for movies by title.
func (s *SearchService) Movies(ctx context.Context, query, language string, page int) (*Page[MovieListItem], error) {
	language = s.client.defaultLanguage(language)
	s.client.logger.Debug().Str("query", query).Str("language", language).Int("page", page).Msg("Searching movies")

	var results Page[MovieListItem]
	req := searchMovies.request(nil, withQuery(query), withLanguage(language), withPage(page))
	if err := s.client.do(ctx, req, &results); err != nil {
		s.client.logger.Error().Err(err).Str("query", query).Msg("Failed to search movies")
		return nil, err
	}
	return &results, nil
}

// TV searches for TV series by name.
func (s *SearchService) TV(ctx context.Context, query, language string, page int) (*Page[TVListItem], error) {
	language = s.client.defaultLanguage(language)
	s.client.logger.Debug().Str("query", query).Str("language", language).Int("page", page).Msg("Searching TV series")

	var results Page[TVListItem]
	req := searchTV.request(nil, withQuery(query), withLanguage(language), withPage(page))
	if err := s.client.do(ctx, req, &results); err != nil {
		s.client.logger.Error().Err(err).Str("query", query).Msg("Failed to search TV series")
		return nil, err
	}
	return &results, nil
}

// People searches for people by name.
func (s *SearchService) People(ctx context.Context, query, language string, page int) (*Page[PersonListItem], error) {
	language = s.client.defaultLanguage(language)
	s.client.logger.Debug().Str("query", query).Int("page", page).Msg("Searching people")

	var results Page[PersonListItem]
	req := searchPeople.request(nil, withQuery(query), withLanguage(language), withPage(page))
	if err := s.client.do(ctx, req, &results); err != nil {
		s.client.logger.Error().Err(err).Str("query", query).Msg("Failed to search people")
		return nil, err
	}
	return &results, nil
}

// Multi searches movies, TV series and people in one call.
func (s *SearchService) Multi(ctx context.Context, query, language string, page int) (*Page[MultiListItem], error) {
	language = s.client.defaultLanguage(language)
	s.client.logger.Debug().Str("query", query).Int("page", page).Msg("Searching all media")

	var results Page[MultiListItem]
	req := searchMulti.request(nil, withQuery(query), withLanguage(language), withPage(page))
	if err := s.client.do(ctx, req, &results); err != nil {
		s.client.logger.Error().Err(err).Str("query", query).Msg("Failed to search all media")
		return nil, err
	}
	return &results, nil
}
