package tmdb

import "context"

// Person is the response of GET /person/{id}.
type Person struct {
	ID                 int      `json:"id"`
	Adult              bool     `json:"adult"`
	AlsoKnownAs        []string `json:"also_known_as"`
	Biography          string   `json:"biography"`
	Birthday           string   `json:"birthday"`
	Deathday           string   `json:"deathday"`
	Gender             int      `json:"gender"`
	Homepage           string   `json:"homepage"`
	IMDbID             string   `json:"imdb_id"`
	KnownForDepartment string   `json:"known_for_department"`
	Name               string   `json:"name"`
	PlaceOfBirth       string   `json:"place_of_birth"`
	Popularity         float64  `json:"popularity"`
	ProfilePath        string   `json:"profile_path"`
}

// PersonListItem is a person entry in search pages.
type PersonListItem struct {
	ID                 int     `json:"id"`
	Adult              bool    `json:"adult"`
	Gender             int     `json:"gender"`
	KnownForDepartment string  `json:"known_for_department"`
	Name               string  `json:"name"`
	Popularity         float64 `json:"popularity"`
	ProfilePath        string  `json:"profile_path"`
}

// CombinedCreditEntry is one movie or TV credit of a person.
type CombinedCreditEntry struct {
	ID            int     `json:"id"`
	Character     string  `json:"character"`
	CreditID      string  `json:"credit_id"`
	Department    string  `json:"department"`
	FirstAirDate  string  `json:"first_air_date"`
	Job           string  `json:"job"`
	MediaType     string  `json:"media_type"`
	Name          string  `json:"name"`
	Overview      string  `json:"overview"`
	Popularity    float64 `json:"popularity"`
	PosterPath    string  `json:"poster_path"`
	ReleaseDate   string  `json:"release_date"`
	Title         string  `json:"title"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	EpisodeCount  int     `json:"episode_count"`
	OriginalName  string  `json:"original_name"`
	OriginalTitle string  `json:"original_title"`
}

// CombinedCredits wraps the movie and TV credits of a person.
type CombinedCredits struct {
	ID   int                   `json:"id"`
	Cast []CombinedCreditEntry `json:"cast"`
	Crew []CombinedCreditEntry `json:"crew"`
}

// ProfileCollection groups the profile images of a person.
type ProfileCollection struct {
	ID       int     `json:"id"`
	Profiles []Image `json:"profiles"`
}

var (
	personDetails         = get("/person/%d")
	personCombinedCredits = get("/person/%d/combined_credits")
	personImages          = get("/person/%d/images")
)

// PeopleService wraps the person endpoints.
type PeopleService struct {
	client *Client
}

// Details fetches person details.
func (s *PeopleService) Details(ctx context.Context, id int, language string) (*Person, error) {
	language = s.client.defaultLanguage(language)
	s.client.logger.Debug().Int("person_id", id).Str("language", language).Msg("Fetching person details")

	var person Person
	if err := s.client.do(ctx, personDetails.request(args(id), withLanguage(language)), &person); err != nil {
		s.client.logger.Error().Err(err).Int("person_id", id).Msg("Failed to fetch person details")
		return nil, err
	}
	return &person, nil
}

// CombinedCredits fetches a person's movie and TV credits.
func (s *PeopleService) CombinedCredits(ctx context.Context, id int, language string) (*CombinedCredits, error) {
	language = s.client.defaultLanguage(language)
	s.client.logger.Debug().Int("person_id", id).Msg("Fetching person combined credits")

	var credits CombinedCredits
	if err := s.client.do(ctx, personCombinedCredits.request(args(id), withLanguage(language)), &credits); err != nil {
		s.client.logger.Error().Err(err).Int("person_id", id).Msg("Failed to fetch person combined credits")
		return nil, err
	}
	return &credits, nil
}

// Images fetches the profile images of a person. Profiles are not
// language-filtered, so no locale handling applies here.
func (s *PeopleService) Images(ctx context.Context, id int) (*ProfileCollection, error) {
	s.client.logger.Debug().Int("person_id", id).Msg("Fetching person images")

	var profiles ProfileCollection
	if err := s.client.do(ctx, personImages.request(args(id)), &profiles); err != nil {
		s.client.logger.Error().Err(err).Int("person_id", id).Msg("Failed to fetch person images")
		return nil, err
	}
	return &profiles, nil
}
