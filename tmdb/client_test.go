package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts = append([]Option{
		WithBaseURL(server.URL),
		WithBearerToken("test-token"),
	}, opts...)

	client, err := NewClient(opts...)
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{
			name: "bearer token",
			opts: []Option{WithBearerToken("token")},
		},
		{
			name: "api key",
			opts: []Option{WithAPIKey("key")},
		},
		{
			name:    "no credentials",
			wantErr: ErrMissingCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.opts...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client.Movies)
			assert.NotNil(t, client.Search)
			assert.NotNil(t, client.Configuration)
		})
	}
}

func TestClientOptions(t *testing.T) {
	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient(WithAPIKey("key"), WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		custom := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient(WithAPIKey("key"), WithHTTPClient(custom))
		require.NoError(t, err)
		assert.Equal(t, custom, client.httpClient)
	})

	t.Run("base url trailing slash trimmed", func(t *testing.T) {
		client, err := NewClient(WithAPIKey("key"), WithBaseURL("http://localhost:8080/"))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", client.baseURL)
	})
}

func TestRequestURLPreservesQueryOrder(t *testing.T) {
	client, err := NewClient(WithBearerToken("token"), WithBaseURL("https://example.com"))
	require.NoError(t, err)

	url := client.requestURL(Request{
		Path: "/discover/movie",
		Query: []QueryParam{
			{Key: "language", Value: "en-GB"},
			{Key: "sort_by", Value: "popularity.desc"},
			{Key: "page", Value: "2"},
		},
	})

	assert.Equal(t, "https://example.com/discover/movie?language=en-GB&sort_by=popularity.desc&page=2", url)
}

func TestRequestURLAPIKeyLast(t *testing.T) {
	client, err := NewClient(WithAPIKey("secret"), WithBaseURL("https://example.com"))
	require.NoError(t, err)

	url := client.requestURL(Request{
		Path:  "/movie/550",
		Query: []QueryParam{{Key: "language", Value: "en"}},
	})

	assert.Equal(t, "https://example.com/movie/550?language=en&api_key=secret", url)
}

func TestDoSendsAuthAndHeaders(t *testing.T) {
	var gotAuth, gotAccept, gotCustom string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotCustom = r.Header.Get("Accept-Language")
		json.NewEncoder(w).Encode(map[string]any{"id": 1})
	}))

	var dst struct {
		ID int `json:"id"`
	}
	err := client.do(context.Background(), Request{
		Method:  http.MethodGet,
		Path:    "/movie/1",
		Headers: map[string]string{"Accept-Language": "fr"},
	}, &dst)

	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "fr", gotCustom)
	assert.Equal(t, 1, dst.ID)
}

func TestDoHTTPError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status_message":"not found"}`))
	}))

	err := client.do(context.Background(), Request{Method: http.MethodGet, Path: "/movie/0"}, &Movie{})

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Contains(t, httpErr.Body, "not found")
	assert.True(t, httpErr.IsNotFound())
	assert.False(t, httpErr.IsUnauthorized())
}

func TestDoDecodingError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "not a number"`))
	}))

	err := client.do(context.Background(), Request{Method: http.MethodGet, Path: "/movie/550"}, &Movie{})

	var decErr *DecodingError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, "tmdb.Movie", decErr.Target)
	assert.Error(t, decErr.Unwrap())
}

func TestDoNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client, err := NewClient(WithBaseURL(server.URL), WithBearerToken("token"))
	require.NoError(t, err)

	err = client.do(context.Background(), Request{Method: http.MethodGet, Path: "/movie/550"}, &Movie{})

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Error(t, netErr.Unwrap())
	assert.False(t, IsCancellation(err))
}

func TestDoCancellation(t *testing.T) {
	started := make(chan struct{})
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	err := client.do(ctx, Request{Method: http.MethodGet, Path: "/movie/550"}, &Movie{})

	require.ErrorIs(t, err, context.Canceled)
	assert.True(t, IsCancellation(err))

	var netErr *NetworkError
	assert.False(t, errors.As(err, &netErr))
}

func TestDoConcurrent(t *testing.T) {
	// Later requests answer sooner, so responses arrive out of order.
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id int
		fmt.Sscanf(r.URL.Path, "/movie/%d", &id)
		time.Sleep(time.Duration(20-id) * time.Millisecond)
		json.NewEncoder(w).Encode(map[string]any{"id": id})
	}))

	const n = 20
	results := make([]int, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var movie Movie
			err := client.do(context.Background(), Request{Method: http.MethodGet, Path: fmt.Sprintf("/movie/%d", i)}, &movie)
			assert.NoError(t, err)
			results[i] = movie.ID
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		assert.Equal(t, i, results[i])
	}
}

func TestTestConnection(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/configuration", r.URL.Path)
		json.NewEncoder(w).Encode(APIConfiguration{})
	}))

	require.NoError(t, client.TestConnection(context.Background()))
}

func TestTestConnectionUnauthorized(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status_message":"invalid token"}`))
	}))

	err := client.TestConnection(context.Background())

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.True(t, httpErr.IsUnauthorized())
}
