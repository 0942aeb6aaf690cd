package tmdb

import "context"

// Season is the response of GET /tv/{id}/season/{n}.
type Season struct {
	ID           int       `json:"id"`
	AirDate      string    `json:"air_date"`
	Episodes     []Episode `json:"episodes"`
	Name         string    `json:"name"`
	Overview     string    `json:"overview"`
	PosterPath   string    `json:"poster_path"`
	SeasonNumber int       `json:"season_number"`
	VoteAverage  float64   `json:"vote_average"`
}

var (
	seasonDetails = get("/tv/%d/season/%d")
	seasonImages  = get("/tv/%d/season/%d/images")
)

// SeasonsService wraps the TV season endpoints.
type SeasonsService struct {
	client *Client
}

// Details fetches a season of a TV series, including its episodes.
func (s *SeasonsService) Details(ctx context.Context, seriesID, seasonNumber int, language string) (*Season, error) {
	language = s.client.defaultLanguage(language)
	s.client.logger.Debug().
		Int("series_id", seriesID).
		Int("season", seasonNumber).
		Str("language", language).
		Msg("Fetching TV season details")

	var season Season
	if err := s.client.do(ctx, seasonDetails.request(args(seriesID, seasonNumber), withLanguage(language)), &season); err != nil {
		s.client.logger.Error().Err(err).Int("series_id", seriesID).Int("season", seasonNumber).Msg("Failed to fetch TV season details")
		return nil, err
	}
	return &season, nil
}

// Images fetches the image collection of a season.
func (s *SeasonsService) Images(ctx context.Context, seriesID, seasonNumber int, locales []string) (*ImageCollection, error) {
	locales = s.client.defaultLocales(locales)
	s.client.logger.Debug().
		Int("series_id", seriesID).
		Int("season", seasonNumber).
		Strs("locales", locales).
		Msg("Fetching TV season images")

	var images ImageCollection
	if err := s.client.do(ctx, seasonImages.request(args(seriesID, seasonNumber), withImageLanguages(locales)), &images); err != nil {
		s.client.logger.Error().Err(err).Int("series_id", seriesID).Int("season", seasonNumber).Msg("Failed to fetch TV season images")
		return nil, err
	}
	return &images, nil
}
