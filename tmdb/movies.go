package tmdb

import "context"

// Movie is the response of GET /movie/{id}.
type Movie struct {
	ID                  int                 `json:"id"`
	Adult               bool                `json:"adult"`
	BackdropPath        string              `json:"backdrop_path"`
	Budget              int64               `json:"budget"`
	Genres              []Genre             `json:"genres"`
	Homepage            string              `json:"homepage"`
	IMDbID              string              `json:"imdb_id"`
	OriginalLanguage    string              `json:"original_language"`
	OriginalTitle       string              `json:"original_title"`
	Overview            string              `json:"overview"`
	Popularity          float64             `json:"popularity"`
	PosterPath          string              `json:"poster_path"`
	ProductionCompanies []ProductionCompany `json:"production_companies"`
	ReleaseDate         string              `json:"release_date"`
	Revenue             int64               `json:"revenue"`
	Runtime             int                 `json:"runtime"`
	SpokenLanguages     []SpokenLanguage    `json:"spoken_languages"`
	Status              string              `json:"status"`
	Tagline             string              `json:"tagline"`
	Title               string              `json:"title"`
	VoteAverage         float64             `json:"vote_average"`
	VoteCount           int                 `json:"vote_count"`
}

// MovieListItem is a movie entry in search, discover and trending pages.
type MovieListItem struct {
	ID               int     `json:"id"`
	Adult            bool    `json:"adult"`
	BackdropPath     string  `json:"backdrop_path"`
	GenreIDs         []int   `json:"genre_ids"`
	OriginalLanguage string  `json:"original_language"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	Popularity       float64 `json:"popularity"`
	PosterPath       string  `json:"poster_path"`
	ReleaseDate      string  `json:"release_date"`
	Title            string  `json:"title"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
}

var (
	movieDetails         = get("/movie/%d")
	movieCredits         = get("/movie/%d/credits")
	movieImages          = get("/movie/%d/images")
	movieVideos          = get("/movie/%d/videos")
	movieRecommendations = get("/movie/%d/recommendations")
	movieSimilar         = get("/movie/%d/similar")
)

// MoviesService wraps the movie endpoints.
type MoviesService struct {
	client *Client
}

// Details fetches movie details. An empty language falls back to the
// client's default.
func (s *MoviesService) Details(ctx context.Context, id int, language string) (*Movie, error) {
	language = s.client.defaultLanguage(language)
	s.client.logger.Debug().Int("movie_id", id).Str("language", language).Msg("Fetching movie details")

	var movie Movie
	if err := s.client.do(ctx, movieDetails.request(args(id), withLanguage(language)), &movie); err != nil {
		s.client.logger.Error().Err(err).Int("movie_id", id).Msg("Failed to fetch movie details")
		return nil, err
	}
	return &movie, nil
}

// Credits fetches the cast and crew of a movie.
func (s *MoviesService) Credits(ctx context.Context, id int, language string) (*Credits, error) {
	language = s.client.defaultLanguage(language)
	s.client.logger.Debug().Int("movie_id", id).Msg("Fetching movie credits")

	var credits Credits
	if err := s.client.do(ctx, movieCredits.request(args(id), withLanguage(language)), &credits); err != nil {
		s.client.logger.Error().Err(err).Int("movie_id", id).Msg("Failed to fetch movie credits")
		return nil, err
	}
	return &credits, nil
}

// Images fetches the image collection of a movie, filtered to the primary
// subtags of the given locales. With no locales the client's default
// language is used; with no default either, the filter is omitted.
func (s *MoviesService) Images(ctx context.Context, id int, locales []string) (*ImageCollection, error) {
	locales = s.client.defaultLocales(locales)
	s.client.logger.Debug().Int("movie_id", id).Strs("locales", locales).Msg("Fetching movie images")

	var images ImageCollection
	if err := s.client.do(ctx, movieImages.request(args(id), withImageLanguages(locales)), &images); err != nil {
		s.client.logger.Error().Err(err).Int("movie_id", id).Msg("Failed to fetch movie images")
		return nil, err
	}
	return &images, nil
}

// Videos fetches the video collection of a movie.
func (s *MoviesService) Videos(ctx context.Context, id int, language string) (*VideoCollection, error) {
	language = s.client.defaultLanguage(language)
	s.client.logger.Debug().Int("movie_id", id).Msg("Fetching movie videos")

	var videos VideoCollection
	if err := s.client.do(ctx, movieVideos.request(args(id), withLanguage(language)), &videos); err != nil {
		s.client.logger.Error().Err(err).Int("movie_id", id).Msg("Failed to fetch movie videos")
		return nil, err
	}
	return &videos, nil
}

// Recommendations fetches recommended movies for a movie.
func (s *MoviesService) Recommendations(ctx context.Context, id int, language string, page int) (*Page[MovieListItem], error) {
	language = s.client.defaultLanguage(language)
	s.client.logger.Debug().Int("movie_id", id).Int("page", page).Msg("Fetching movie recommendations")

	var results Page[MovieListItem]
	if err := s.client.do(ctx, movieRecommendations.request(args(id), withLanguage(language), withPage(page)), &results); err != nil {
		s.client.logger.Error().Err(err).Int("movie_id", id).Msg("Failed to fetch movie recommendations")
		return nil, err
	}
	return &results, nil
}

// Similar fetches movies similar to a movie.
func (s *MoviesService) Similar(ctx context.Context, id int, language string, page int) (*Page[MovieListItem], error) {
	language = s.client.defaultLanguage(language)
	s.client.logger.Debug().Int("movie_id", id).Int("page", page).Msg("Fetching similar movies")

	var results Page[MovieListItem]
	if err := s.client.do(ctx, movieSimilar.request(args(id), withLanguage(language), withPage(page)), &results); err != nil {
		s.client.logger.Error().Err(err).Int("movie_id", id).Msg("Failed to fetch similar movies")
		return nil, err
	}
	return &results, nil
}
