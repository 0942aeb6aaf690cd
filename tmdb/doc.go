// Package tmdb provides a client for The Movie Database (TMDb) API v3.
//
// The package is built around three layers:
//
//   - Request: an immutable descriptor of one API call (path, ordered query
//     parameters, method, headers, optional body), built by a table-driven
//     endpoint routine shared by every resource family
//   - Client: executes descriptors against the configured base URL with the
//     configured credentials and decodes the JSON response into a typed model
//   - Services: per-resource facades (Movies, TV, Seasons, Episodes, People,
//     Search, Discover, Trending, Configuration, Genres) that build the
//     descriptor, inject the default language when the caller omits one, and
//     log each call through the injected logger
//
// # Usage
//
// Create a client with a bearer token or API key:
//
//	client, err := tmdb.NewClient(
//		tmdb.WithBearerToken("your-read-access-token"),
//		tmdb.WithLanguage("en-GB"),
//		tmdb.WithLogger(logger),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	movie, err := client.Movies.Details(ctx, 550, "")
//	images, err := client.Movies.Images(ctx, 550, []string{"en-GB", "fr"})
//
// # Error Handling
//
// The client is the sole failure origin. It returns exactly one of:
//
//   - *NetworkError: transport-level failure, wrapping the cause
//   - *HTTPError: non-2xx status, carrying the code and raw body
//   - *DecodingError: undecodable 2xx body, naming the target model
//   - the bare context error when the caller cancelled the call
//
// Services log failures and return them unchanged, so errors.As against
// these types works at any layer.
//
// # Concurrency
//
// A Client holds no per-call state and is safe for arbitrary concurrent
// use. Cancellation of the caller's context aborts the in-flight request.
package tmdb
