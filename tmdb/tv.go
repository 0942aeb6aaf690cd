package tmdb

import "context"

// TVSeries is the response of GET /tv/{id}.
type TVSeries struct {
	ID                  int                 `json:"id"`
	Adult               bool                `json:"adult"`
	BackdropPath        string              `json:"backdrop_path"`
	EpisodeRunTime      []int               `json:"episode_run_time"`
	FirstAirDate        string              `json:"first_air_date"`
	Genres              []Genre             `json:"genres"`
	Homepage            string              `json:"homepage"`
	InProduction        bool                `json:"in_production"`
	Languages           []string            `json:"languages"`
	LastAirDate         string              `json:"last_air_date"`
	Name                string              `json:"name"`
	Networks            []ProductionCompany `json:"networks"`
	NumberOfEpisodes    int                 `json:"number_of_episodes"`
	NumberOfSeasons     int                 `json:"number_of_seasons"`
	OriginCountry       []string            `json:"origin_country"`
	OriginalLanguage    string              `json:"original_language"`
	OriginalName        string              `json:"original_name"`
	Overview            string              `json:"overview"`
	Popularity          float64             `json:"popularity"`
	PosterPath          string              `json:"poster_path"`
	ProductionCompanies []ProductionCompany `json:"production_companies"`
	Seasons             []SeasonListItem    `json:"seasons"`
	SpokenLanguages     []SpokenLanguage    `json:"spoken_languages"`
	Status              string              `json:"status"`
	Tagline             string              `json:"tagline"`
	Type                string              `json:"type"`
	VoteAverage         float64             `json:"vote_average"`
	VoteCount           int                 `json:"vote_count"`
}

// SeasonListItem is a season summary inside a series response.
type SeasonListItem struct {
	ID           int     `json:"id"`
	AirDate      string  `json:"air_date"`
	EpisodeCount int     `json:"episode_count"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	SeasonNumber int     `json:"season_number"`
	VoteAverage  float64 `json:"vote_average"`
}

// TVListItem is a series entry in search, discover and trending pages.
type TVListItem struct {
	ID               int      `json:"id"`
	Adult            bool     `json:"adult"`
	BackdropPath     string   `json:"backdrop_path"`
	FirstAirDate     string   `json:"first_air_date"`
	GenreIDs         []int    `json:"genre_ids"`
	Name             string   `json:"name"`
	OriginCountry    []string `json:"origin_country"`
	OriginalLanguage string   `json:"original_language"`
	OriginalName     string   `json:"original_name"`
	Overview         string   `json:"overview"`
	Popularity       float64  `json:"popularity"`
	PosterPath       string   `json:"poster_path"`
	VoteAverage      float64  `json:"vote_average"`
	VoteCount        int      `json:"vote_count"`
}

var (
	tvDetails = get("/tv/%d")
	tvCredits = get("/tv/%d/credits")
	tvImages  = get("/tv/%d/images")
	tvVideos  = get("/tv/%d/videos")
)

// TVService wraps the TV series endpoints.
type TVService struct {
	client *Client
}

// Details fetches TV series details.
func (s *TVService) Details(ctx context.Context, id int, language string) (*TVSeries, error) {
	language = s.client.defaultLanguage(language)
	s.client.logger.Debug().Int("series_id", id).Str("language", language).Msg("Fetching TV series details")

	var series TVSeries
	if err := s.client.do(ctx, tvDetails.request(args(id), withLanguage(language)), &series); err != nil {
		s.client.logger.Error().Err(err).Int("series_id", id).Msg("Failed to fetch TV series details")
		return nil, err
	}
	return &series, nil
}

// Credits fetches the cast and crew of a TV series.
func (s *TVService) Credits(ctx context.Context, id int, language string) (*Credits, error) {
	language = s.client.defaultLanguage(language)
	s.client.logger.Debug().Int("series_id", id).Msg("Fetching TV series credits")

	var credits Credits
	if err := s.client.do(ctx, tvCredits.request(args(id), withLanguage(language)), &credits); err != nil {
		s.client.logger.Error().Err(err).Int("series_id", id).Msg("Failed to fetch TV series credits")
		return nil, err
	}
	return &credits, nil
}

// Images fetches the image collection of a TV series.
func (s *TVService) Images(ctx context.Context, id int, locales []string) (*ImageCollection, error) {
	locales = s.client.defaultLocales(locales)
	s.client.logger.Debug().Int("series_id", id).Strs("locales", locales).Msg("Fetching TV series images")

	var images ImageCollection
	if err := s.client.do(ctx, tvImages.request(args(id), withImageLanguages(locales)), &images); err != nil {
		s.client.logger.Error().Err(err).Int("series_id", id).Msg("Failed to fetch TV series images")
		return nil, err
	}
	return &images, nil
}

// Videos fetches the video collection of a TV series.
func (s *TVService) Videos(ctx context.Context, id int, language string) (*VideoCollection, error) {
	language = s.client.defaultLanguage(language)
	s.client.logger.Debug().Int("series_id", id).Msg("Fetching TV series videos")

	var videos VideoCollection
	if err := s.client.do(ctx, tvVideos.request(args(id), withLanguage(language)), &videos); err != nil {
		s.client.logger.Error().Err(err).Int("series_id", id).Msg("Failed to fetch TV series videos")
		return nil, err
	}
	return &videos, nil
}
