package tmdb

import "context"

var (
	movieGenres = get("/genre/movie/list")
	tvGenres    = get("/genre/tv/list")
)

// GenresService wraps the genre list endpoints.
type GenresService struct {
	client *Client
}

// Movies fetches the official list of movie genres.
func (s *GenresService) Movies(ctx context.Context, language string) (*GenreList, error) {
	language = s.client.defaultLanguage(language)
	s.client.logger.Debug().Str("language", language).Msg("Fetching movie genres")

	var list GenreList
	if err := s.client.do(ctx, movieGenres.request(nil, withLanguage(language)), &list); err != nil {
		s.client.logger.Error().Err(err).Msg("Failed to fetch movie genres")
		return nil, err
	}
	return &list, nil
}

// TV fetches the official list of TV genres.
func (s *GenresService) TV(ctx context.Context, language string) (*GenreList, error) {
	language = s.client.defaultLanguage(language)
	s.client.logger.Debug().Str("language", language).Msg("Fetching TV genres")

	var list GenreList
	if err := s.client.do(ctx, tvGenres.request(nil, withLanguage(language)), &list); err != nil {
		s.client.logger.Error().Err(err).Msg("Failed to fetch TV genres")
		return nil, err
	}
	return &list, nil
}
