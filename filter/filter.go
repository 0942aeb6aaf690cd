// Package filter compiles boolean expressions for narrowing search,
// discover and trending results client-side.
//
// Expressions use the expr language over the fields of a result item, e.g.
//
//	VoteAverage >= 7.5 && Year > 1990 && lower(Title) contains "club"
//	18 in GenreIDs && Language == "en"
//
// Compiled programs are cached, so presets evaluated across pages compile
// once.
package filter

import (
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/s0up4200/tmdbctl/tmdb"
)

const defaultCacheSize = 64

// CompiledFilter evaluates one compiled expression against result items.
type CompiledFilter interface {
	// Match reports whether the item satisfies the expression. Supported
	// items are tmdb.MovieListItem, tmdb.TVListItem, tmdb.MultiListItem
	// and tmdb.PersonListItem.
	Match(item any) (bool, error)
	// Expression returns the source expression.
	Expression() string
}

// Compiler compiles filter expressions.
type Compiler interface {
	Compile(expression string) (CompiledFilter, error)
}

// Option configures a compiler.
type Option func(*exprCompiler)

// WithCacheSize overrides the compiled-program cache size.
func WithCacheSize(size int) Option {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cacheSize = size
		}
	}
}

// NewCompiler creates an expr-based filter compiler.
func NewCompiler(opts ...Option) Compiler {
	c := &exprCompiler{
		cacheSize: defaultCacheSize,
	}
	for _, opt := range opts {
		opt(c)
	}

	// Size is validated above, so New cannot fail.
	c.cache, _ = lru.New[string, CompiledFilter](c.cacheSize)

	return c
}

type exprCompiler struct {
	cacheSize int
	cache     *lru.Cache[string, CompiledFilter]
}

// Compile compiles an expression into an executable filter.
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	if cached, ok := c.cache.Get(expression); ok {
		return cached, nil
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // result fields are bound at evaluation time
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	compiled := &exprFilter{expression: expression, program: program}
	c.cache.Add(expression, compiled)

	return compiled, nil
}

type exprFilter struct {
	expression string
	program    *vm.Program
}

func (f *exprFilter) Expression() string {
	return f.expression
}

func (f *exprFilter) Match(item any) (bool, error) {
	env := envFor(item)
	if env == nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Reason:     "unsupported item type",
		}
	}
	for name, fn := range helperFunctions() {
		env[name] = fn
	}

	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Reason:     "failed to evaluate expression",
			Err:        err,
		}
	}

	matched, ok := out.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			Reason:     "expression did not evaluate to a boolean",
		}
	}
	return matched, nil
}

// Substring matching is covered by expr's built-in contains operator, so no
// helper may shadow that name.
func helperFunctions() map[string]any {
	return map[string]any{
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}

// envFor maps a result item to the variables an expression may reference.
// TV items expose their name as both Name and Title so presets work across
// media types.
func envFor(item any) map[string]any {
	env := make(map[string]any, 16)

	switch v := item.(type) {
	case tmdb.MovieListItem:
		env["Title"] = v.Title
		env["OriginalTitle"] = v.OriginalTitle
		env["Year"] = yearOf(v.ReleaseDate)
		env["VoteAverage"] = v.VoteAverage
		env["VoteCount"] = v.VoteCount
		env["Popularity"] = v.Popularity
		env["GenreIDs"] = v.GenreIDs
		env["Language"] = v.OriginalLanguage
		env["Adult"] = v.Adult
	case tmdb.TVListItem:
		env["Title"] = v.Name
		env["Name"] = v.Name
		env["OriginalTitle"] = v.OriginalName
		env["Year"] = yearOf(v.FirstAirDate)
		env["VoteAverage"] = v.VoteAverage
		env["VoteCount"] = v.VoteCount
		env["Popularity"] = v.Popularity
		env["GenreIDs"] = v.GenreIDs
		env["Language"] = v.OriginalLanguage
		env["Adult"] = v.Adult
	case tmdb.MultiListItem:
		title := v.Title
		if title == "" {
			title = v.Name
		}
		date := v.ReleaseDate
		if date == "" {
			date = v.FirstAirDate
		}
		env["Title"] = title
		env["Name"] = v.Name
		env["MediaType"] = v.MediaType
		env["Year"] = yearOf(date)
		env["VoteAverage"] = v.VoteAverage
		env["VoteCount"] = v.VoteCount
		env["Popularity"] = v.Popularity
		env["GenreIDs"] = v.GenreIDs
		env["Language"] = v.OriginalLanguage
		env["Adult"] = v.Adult
	case tmdb.PersonListItem:
		env["Title"] = v.Name
		env["Name"] = v.Name
		env["KnownFor"] = v.KnownForDepartment
		env["Popularity"] = v.Popularity
		env["Gender"] = v.Gender
		env["Adult"] = v.Adult
	default:
		return nil
	}

	return env
}

// yearOf extracts the year from an API date string (YYYY-MM-DD). Missing or
// malformed dates yield 0.
func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}
