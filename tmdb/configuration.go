package tmdb

import "context"

// APIConfiguration is the response of GET /configuration: image base URLs
// and the size variants available for each image kind.
type APIConfiguration struct {
	ChangeKeys []string `json:"change_keys"`
	Images     struct {
		BaseURL       string   `json:"base_url"`
		SecureBaseURL string   `json:"secure_base_url"`
		BackdropSizes []string `json:"backdrop_sizes"`
		LogoSizes     []string `json:"logo_sizes"`
		PosterSizes   []string `json:"poster_sizes"`
		ProfileSizes  []string `json:"profile_sizes"`
		StillSizes    []string `json:"still_sizes"`
	} `json:"images"`
}

// Language is one entry of GET /configuration/languages.
type Language struct {
	ISO6391     string `json:"iso_639_1"`
	EnglishName string `json:"english_name"`
	Name        string `json:"name"`
}

var (
	configurationDetails   = get("/configuration")
	configurationLanguages = get("/configuration/languages")
)

// ConfigurationService wraps the configuration endpoints.
type ConfigurationService struct {
	client *Client
}

// Details fetches the API configuration.
func (s *ConfigurationService) Details(ctx context.Context) (*APIConfiguration, error) {
	s.client.logger.Debug().Msg("Fetching API configuration")

	var cfg APIConfiguration
	if err := s.client.do(ctx, configurationDetails.request(nil), &cfg); err != nil {
		s.client.logger.Error().Err(err).Msg("Failed to fetch API configuration")
		return nil, err
	}
	return &cfg, nil
}

// Languages fetches the list of languages the API knows about.
func (s *ConfigurationService) Languages(ctx context.Context) ([]Language, error) {
	s.client.logger.Debug().Msg("Fetching API languages")

	var languages []Language
	if err := s.client.do(ctx, configurationLanguages.request(nil), &languages); err != nil {
		s.client.logger.Error().Err(err).Msg("Failed to fetch API languages")
		return nil, err
	}
	return languages, nil
}
