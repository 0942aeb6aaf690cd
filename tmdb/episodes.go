package tmdb

import "context"

// Episode is the response of GET /tv/{id}/season/{n}/episode/{n}.
type Episode struct {
	ID             int          `json:"id"`
	AirDate        string       `json:"air_date"`
	Crew           []CrewMember `json:"crew"`
	EpisodeNumber  int          `json:"episode_number"`
	EpisodeType    string       `json:"episode_type"`
	GuestStars     []CastMember `json:"guest_stars"`
	Name           string       `json:"name"`
	Overview       string       `json:"overview"`
	ProductionCode string       `json:"production_code"`
	Runtime        int          `json:"runtime"`
	SeasonNumber   int          `json:"season_number"`
	ShowID         int          `json:"show_id"`
	StillPath      string       `json:"still_path"`
	VoteAverage    float64      `json:"vote_average"`
	VoteCount      int          `json:"vote_count"`
}

var (
	episodeDetails = get("/tv/%d/season/%d/episode/%d")
	episodeImages  = get("/tv/%d/season/%d/episode/%d/images")
)

// EpisodesService wraps the TV episode endpoints.
type EpisodesService struct {
	client *Client
}

// Details fetches a single episode.
func (s *EpisodesService) Details(ctx context.Context, seriesID, seasonNumber, episodeNumber int, language string) (*Episode, error) {
	language = s.client.defaultLanguage(language)
	s.client.logger.Debug().
		Int("series_id", seriesID).
		Int("season", seasonNumber).
		Int("episode", episodeNumber).
		Msg("Fetching TV episode details")

	var episode Episode
	req := episodeDetails.request(args(seriesID, seasonNumber, episodeNumber), withLanguage(language))
	if err := s.client.do(ctx, req, &episode); err != nil {
		s.client.logger.Error().Err(err).
			Int("series_id", seriesID).
			Int("season", seasonNumber).
			Int("episode", episodeNumber).
			Msg("Failed to fetch TV episode details")
		return nil, err
	}
	return &episode, nil
}

// Images fetches the still images of an episode.
func (s *EpisodesService) Images(ctx context.Context, seriesID, seasonNumber, episodeNumber int, locales []string) (*ImageCollection, error) {
	locales = s.client.defaultLocales(locales)
	s.client.logger.Debug().
		Int("series_id", seriesID).
		Int("season", seasonNumber).
		Int("episode", episodeNumber).
		Msg("Fetching TV episode images")

	var images ImageCollection
	req := episodeImages.request(args(seriesID, seasonNumber, episodeNumber), withImageLanguages(locales))
	if err := s.client.do(ctx, req, &images); err != nil {
		s.client.logger.Error().Err(err).
			Int("series_id", seriesID).
			Int("season", seasonNumber).
			Int("episode", episodeNumber).
			Msg("Failed to fetch TV episode images")
		return nil, err
	}
	return &images, nil
}
