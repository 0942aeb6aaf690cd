package tmdb

// Page is one page of a list response.
type Page[T any] struct {
	Page         int `json:"page"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
	Results      []T `json:"results"`
}

// Genre is a movie/TV genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GenreList is the response of the genre list endpoints.
type GenreList struct {
	Genres []Genre `json:"genres"`
}

// Image is a single poster, backdrop, logo or still.
type Image struct {
	AspectRatio float64 `json:"aspect_ratio"`
	FilePath    string  `json:"file_path"`
	Height      int     `json:"height"`
	Width       int     `json:"width"`
	ISO6391     string  `json:"iso_639_1"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
}

// ImageCollection groups the images of one resource.
type ImageCollection struct {
	ID        int     `json:"id"`
	Backdrops []Image `json:"backdrops"`
	Logos     []Image `json:"logos"`
	Posters   []Image `json:"posters"`
	Stills    []Image `json:"stills"`
}

// Video is a trailer, teaser, clip or featurette.
type Video struct {
	ID          string `json:"id"`
	ISO6391     string `json:"iso_639_1"`
	ISO31661    string `json:"iso_3166_1"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Official    bool   `json:"official"`
	PublishedAt string `json:"published_at"`
	Site        string `json:"site"`
	Size        int    `json:"size"`
	Type        string `json:"type"`
}

// VideoCollection groups the videos of one resource.
type VideoCollection struct {
	ID      int     `json:"id"`
	Results []Video `json:"results"`
}

// CastMember is a single cast credit.
type CastMember struct {
	ID          int     `json:"id"`
	Adult       bool    `json:"adult"`
	CastID      int     `json:"cast_id"`
	Character   string  `json:"character"`
	CreditID    string  `json:"credit_id"`
	Gender      int     `json:"gender"`
	Name        string  `json:"name"`
	Order       int     `json:"order"`
	Popularity  float64 `json:"popularity"`
	ProfilePath string  `json:"profile_path"`
}

// CrewMember is a single crew credit.
type CrewMember struct {
	ID          int     `json:"id"`
	Adult       bool    `json:"adult"`
	CreditID    string  `json:"credit_id"`
	Department  string  `json:"department"`
	Gender      int     `json:"gender"`
	Job         string  `json:"job"`
	Name        string  `json:"name"`
	Popularity  float64 `json:"popularity"`
	ProfilePath string  `json:"profile_path"`
}

// Credits wraps the cast and crew of one resource.
type Credits struct {
	ID   int          `json:"id"`
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// ProductionCompany is a studio attached to a movie or series.
type ProductionCompany struct {
	ID            int    `json:"id"`
	LogoPath      string `json:"logo_path"`
	Name          string `json:"name"`
	OriginCountry string `json:"origin_country"`
}

// SpokenLanguage is a language attached to a movie or series.
type SpokenLanguage struct {
	EnglishName string `json:"english_name"`
	ISO6391     string `json:"iso_639_1"`
	Name        string `json:"name"`
}
