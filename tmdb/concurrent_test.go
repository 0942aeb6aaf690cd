package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailsMany(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id int
		fmt.Sscanf(r.URL.Path, "/movie/%d", &id)
		// Stagger responses so completion order differs from request order.
		time.Sleep(time.Duration(id%3) * 10 * time.Millisecond)
		json.NewEncoder(w).Encode(Movie{ID: id, Title: fmt.Sprintf("Movie %d", id)})
	}))

	ids := []int{11, 12, 13, 14, 15}
	movies, err := client.Movies.DetailsMany(context.Background(), ids, "")
	require.NoError(t, err)
	require.Len(t, movies, len(ids))

	for i, id := range ids {
		assert.Equal(t, id, movies[i].ID)
	}
}

func TestDetailsManyEmpty(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))

	movies, err := client.Movies.DetailsMany(context.Background(), nil, "")
	require.NoError(t, err)
	assert.Nil(t, movies)
}

func TestDetailsManyPropagatesFailure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/movie/13" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"status_message":"not found"}`))
			return
		}
		json.NewEncoder(w).Encode(Movie{ID: 11})
	}))

	_, err := client.Movies.DetailsMany(context.Background(), []int{11, 13}, "")
	require.Error(t, err)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.True(t, httpErr.IsNotFound())
}

func TestExtrasFor(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/movie/550/credits":
			json.NewEncoder(w).Encode(Credits{ID: 550, Cast: []CastMember{{Name: "Edward Norton"}}})
		case "/movie/550/images":
			json.NewEncoder(w).Encode(ImageCollection{ID: 550, Posters: []Image{{FilePath: "/poster.jpg"}}})
		case "/movie/550/videos":
			json.NewEncoder(w).Encode(VideoCollection{ID: 550, Results: []Video{{Type: "Trailer"}}})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	extras, err := client.Movies.ExtrasFor(context.Background(), 550, "")
	require.NoError(t, err)
	require.NotNil(t, extras.Credits)
	require.NotNil(t, extras.Images)
	require.NotNil(t, extras.Videos)
	assert.Equal(t, "Edward Norton", extras.Credits.Cast[0].Name)
	assert.Equal(t, "/poster.jpg", extras.Images.Posters[0].FilePath)
}
