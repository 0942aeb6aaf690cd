package tmdb

import "context"

// TimeWindow selects the trending aggregation period.
type TimeWindow string

const (
	WindowDay  TimeWindow = "day"
	WindowWeek TimeWindow = "week"
)

var (
	trendingAll    = get("/trending/all/%s")
	trendingMovies = get("/trending/movie/%s")
	trendingTV     = get("/trending/tv/%s")
)

// TrendingService wraps the trending endpoints.
type TrendingService struct {
	client *Client
}

// All fetches trending movies, TV series and people for the window.
func (s *TrendingService) All(ctx context.Context, window TimeWindow, language string, page int) (*Page[MultiListItem], error) {
	language = s.client.defaultLanguage(language)
	s.client.logger.Debug().Str("window", string(window)).Int("page", page).Msg("Fetching trending media")

	var results Page[MultiListItem]
	req := trendingAll.request(args(string(window)), withLanguage(language), withPage(page))
	if err := s.client.do(ctx, req, &results); err != nil {
		s.client.logger.Error().Err(err).Str("window", string(window)).Msg("Failed to fetch trending media")
		return nil, err
	}
	return &results, nil
}

// Movies fetches trending movies for the window.
func (s *TrendingService) Movies(ctx context.Context, window TimeWindow, language string, page int) (*Page[MovieListItem], error) {
	language = s.client.defaultLanguage(language)
	s.client.logger.Debug().Str("window", string(window)).Int("page", page).Msg("Fetching trending movies")

	var results Page[MovieListItem]
	req := trendingMovies.request(args(string(window)), withLanguage(language), withPage(page))
	if err := s.client.do(ctx, req, &results); err != nil {
		s.client.logger.Error().Err(err).Str("window", string(window)).Msg("Failed to fetch trending movies")
		return nil, err
	}
	return &results, nil
}

// TV fetches trending TV series for the window.
func (s *TrendingService) TV(ctx context.Context, window TimeWindow, language string, page int) (*Page[TVListItem], error) {
	language = s.client.defaultLanguage(language)
	s.client.logger.Debug().Str("window", string(window)).Int("page", page).Msg("Fetching trending TV series")

	var results Page[TVListItem]
	req := trendingTV.request(args(string(window)), withLanguage(language), withPage(page))
	if err := s.client.do(ctx, req, &results); err != nil {
		s.client.logger.Error().Err(err).Str("window", string(window)).Msg("Failed to fetch trending TV series")
		return nil, err
	}
	return &results, nil
}
