package tmdb

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndpointRequest(t *testing.T) {
	tests := []struct {
		name     string
		endpoint endpoint
		ids      []any
		params   []QueryParam
		wantPath string
	}{
		{
			name:     "movie images",
			endpoint: get("/movie/%d/images"),
			ids:      args(550),
			wantPath: "/movie/550/images",
		},
		{
			name:     "season details",
			endpoint: get("/tv/%d/season/%d"),
			ids:      args(1399, 2),
			wantPath: "/tv/1399/season/2",
		},
		{
			name:     "episode images",
			endpoint: get("/tv/%d/season/%d/episode/%d/images"),
			ids:      args(1399, 2, 10),
			wantPath: "/tv/1399/season/2/episode/10/images",
		},
		{
			name:     "no identifiers",
			endpoint: get("/search/movie"),
			wantPath: "/search/movie",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.endpoint.request(tt.ids, tt.params...)
			assert.Equal(t, tt.wantPath, req.Path)
			assert.Equal(t, http.MethodGet, req.Method)
		})
	}
}

func TestEndpointRequestDefaults(t *testing.T) {
	req := get("/movie/%d").request(args(11))

	// Zero filters produce an empty mapping, not a nil one.
	assert.NotNil(t, req.Query)
	assert.Empty(t, req.Query)
	assert.Empty(t, req.Headers)
	assert.Nil(t, req.Body)
	assert.Equal(t, http.MethodGet, req.Method)
}

func TestEndpointRequestSkipsEmptyParams(t *testing.T) {
	req := get("/movie/%d").request(args(11),
		withLanguage(""),
		withPage(0),
		withLanguage("en"),
		withRegion("GB"),
		QueryParam{},
	)

	assert.Equal(t, []QueryParam{
		{Key: "language", Value: "en"},
		{Key: "region", Value: "GB"},
	}, req.Query)
}

func TestQueryParamOrder(t *testing.T) {
	req := get("/discover/movie").request(nil,
		withLanguage("en"),
		QueryParam{Key: "sort_by", Value: "popularity.desc"},
		withPage(3),
	)

	assert.Equal(t, []QueryParam{
		{Key: "language", Value: "en"},
		{Key: "sort_by", Value: "popularity.desc"},
		{Key: "page", Value: "3"},
	}, req.Query)
}

func TestWithImageLanguages(t *testing.T) {
	assert.Equal(t, QueryParam{}, withImageLanguages(nil))

	p := withImageLanguages([]string{"en-GB", "fr"})
	assert.Equal(t, "include_image_language", p.Key)
	assert.Equal(t, "en,fr", p.Value)
}

func TestWithAppend(t *testing.T) {
	p := withAppend("credits", "videos")
	assert.Equal(t, "append_to_response", p.Key)
	assert.Equal(t, "credits,videos", p.Value)
}
