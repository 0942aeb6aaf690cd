package tmdb

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency caps how many requests the batch helpers keep in
// flight at once.
const DefaultConcurrency = 10

// DetailsMany fetches details for several movies concurrently. Results keep
// the order of ids; the first failure cancels the remaining fetches.
func (s *MoviesService) DetailsMany(ctx context.Context, ids []int, language string) ([]*Movie, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultConcurrency)

	movies := make([]*Movie, len(ids))
	for i, id := range ids {
		g.Go(func() error {
			movie, err := s.Details(ctx, id, language)
			if err != nil {
				return fmt.Errorf("movie %d: %w", id, err)
			}
			movies[i] = movie
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return movies, nil
}

// MovieExtras bundles the secondary movie resources fetched by ExtrasFor.
type MovieExtras struct {
	Credits *Credits
	Images  *ImageCollection
	Videos  *VideoCollection
}

// ExtrasFor fetches credits, images and videos of a movie concurrently.
func (s *MoviesService) ExtrasFor(ctx context.Context, id int, language string) (*MovieExtras, error) {
	g, ctx := errgroup.WithContext(ctx)

	var extras MovieExtras
	g.Go(func() error {
		credits, err := s.Credits(ctx, id, language)
		extras.Credits = credits
		return err
	})
	g.Go(func() error {
		images, err := s.Images(ctx, id, nil)
		extras.Images = images
		return err
	})
	g.Go(func() error {
		videos, err := s.Videos(ctx, id, language)
		extras.Videos = videos
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &extras, nil
}
