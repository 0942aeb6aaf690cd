package tmdb

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// QueryParam is a single URL query parameter. Parameters are kept as an
// ordered slice rather than a url.Values map so the encoded query string
// preserves the order the builder produced.
type QueryParam struct {
	Key   string
	Value string
}

// Request describes one API call independent of transport: the resolved
// path, the query parameters in order, the HTTP method, any extra headers
// and an optional JSON body. Requests are built fresh per call and never
// mutated afterwards.
type Request struct {
	Method  string
	Path    string
	Query   []QueryParam
	Headers map[string]string
	Body    []byte
}

// endpoint is a path template plus method. Every resource family shares the
// same construction routine; only the template and identifiers differ.
type endpoint struct {
	method   string
	template string
}

func get(template string) endpoint {
	return endpoint{method: http.MethodGet, template: template}
}

// request substitutes the identifiers into the path template and collects
// the non-empty query parameters in order. Parameters whose value is empty
// are dropped entirely rather than sent as blank keys.
func (e endpoint) request(ids []any, params ...QueryParam) Request {
	r := Request{
		Method: e.method,
		Path:   fmt.Sprintf(e.template, ids...),
		Query:  make([]QueryParam, 0, len(params)),
	}
	for _, p := range params {
		if p.Key == "" || p.Value == "" {
			continue
		}
		r.Query = append(r.Query, p)
	}
	return r
}

// args wraps endpoint identifiers for endpoint.request.
func args(ids ...any) []any {
	return ids
}

func withLanguage(language string) QueryParam {
	return QueryParam{Key: "language", Value: language}
}

func withRegion(region string) QueryParam {
	return QueryParam{Key: "region", Value: region}
}

func withPage(page int) QueryParam {
	if page <= 0 {
		return QueryParam{}
	}
	return QueryParam{Key: "page", Value: strconv.Itoa(page)}
}

func withQuery(query string) QueryParam {
	return QueryParam{Key: "query", Value: query}
}

// withImageLanguages builds the include_image_language parameter from a
// list of locale identifiers. The value is the comma-joined list of primary
// language subtags in input order; locales with no parsable subtag render
// as the literal token "null", which the API treats as "no language set".
func withImageLanguages(locales []string) QueryParam {
	if len(locales) == 0 {
		return QueryParam{}
	}
	return QueryParam{Key: "include_image_language", Value: imageLanguages(locales)}
}

func withAppend(resources ...string) QueryParam {
	return QueryParam{Key: "append_to_response", Value: strings.Join(resources, ",")}
}
