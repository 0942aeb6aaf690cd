package tmdb

import (
	"context"
	"strconv"
	"strings"
)

// DiscoverMoviesOptions filters a movie discover call. Zero values mean
// "not set" and are omitted from the query.
type DiscoverMoviesOptions struct {
	Language           string
	Region             string
	SortBy             string
	Page               int
	PrimaryReleaseYear int
	WithGenres         []int
	VoteAverageGTE     float64
	VoteCountGTE       int
}

func (o DiscoverMoviesOptions) params(c *Client) []QueryParam {
	params := []QueryParam{
		withLanguage(c.defaultLanguage(o.Language)),
		withRegion(o.Region),
		{Key: "sort_by", Value: o.SortBy},
		withPage(o.Page),
	}
	if o.PrimaryReleaseYear > 0 {
		params = append(params, QueryParam{Key: "primary_release_year", Value: strconv.Itoa(o.PrimaryReleaseYear)})
	}
	params = append(params, genreParam(o.WithGenres))
	if o.VoteAverageGTE > 0 {
		params = append(params, QueryParam{Key: "vote_average.gte", Value: strconv.FormatFloat(o.VoteAverageGTE, 'f', -1, 64)})
	}
	if o.VoteCountGTE > 0 {
		params = append(params, QueryParam{Key: "vote_count.gte", Value: strconv.Itoa(o.VoteCountGTE)})
	}
	return params
}

// DiscoverTVOptions filters a TV discover call.
type DiscoverTVOptions struct {
	Language       string
	SortBy         string
	Page           int
	FirstAirYear   int
	WithGenres     []int
	VoteAverageGTE float64
}

func (o DiscoverTVOptions) params(c *Client) []QueryParam {
	params := []QueryParam{
		withLanguage(c.defaultLanguage(o.Language)),
		{Key: "sort_by", Value: o.SortBy},
		withPage(o.Page),
	}
	if o.FirstAirYear > 0 {
		params = append(params, QueryParam{Key: "first_air_date_year", Value: strconv.Itoa(o.FirstAirYear)})
	}
	params = append(params, genreParam(o.WithGenres))
	if o.VoteAverageGTE > 0 {
		params = append(params, QueryParam{Key: "vote_average.gte", Value: strconv.FormatFloat(o.VoteAverageGTE, 'f', -1, 64)})
	}
	return params
}

func genreParam(ids []int) QueryParam {
	if len(ids) == 0 {
		return QueryParam{}
	}
	joined := make([]string, len(ids))
	for i, id := range ids {
		joined[i] = strconv.Itoa(id)
	}
	return QueryParam{Key: "with_genres", Value: strings.Join(joined, ",")}
}

var (
	discoverMovies = get("/discover/movie")
	discoverTV     = get("/discover/tv")
)

// DiscoverService wraps the discover endpoints.
type DiscoverService struct {
	client *Client
}

// Movies lists movies matching the given filters.
func (s *DiscoverService) Movies(ctx context.Context, opts DiscoverMoviesOptions) (*Page[MovieListItem], error) {
	s.client.logger.Debug().Int("page", opts.Page).Str("sort_by", opts.SortBy).Msg("Discovering movies")

	var results Page[MovieListItem]
	if err := s.client.do(ctx, discoverMovies.request(nil, opts.params(s.client)...), &results); err != nil {
		s.client.logger.Error().Err(err).Msg("Failed to discover movies")
		return nil, err
	}
	return &results, nil
}

// TV lists TV series matching the given filters.
func (s *DiscoverService) TV(ctx context.Context, opts DiscoverTVOptions) (*Page[TVListItem], error) {
	s.client.logger.Debug().Int("page", opts.Page).Str("sort_by", opts.SortBy).Msg("Discovering TV series")

	var results Page[TVListItem]
	if err := s.client.do(ctx, discoverTV.request(nil, opts.params(s.client)...), &results); err != nil {
		s.client.logger.Error().Err(err).Msg("Failed to discover TV series")
		return nil, err
	}
	return &results, nil
}
