package tmdb

import (
	"strings"

	"golang.org/x/text/language"
)

// nullLanguage is the token the API expects for entries with no language.
// Locales that cannot be resolved to a language subtag are rendered as this
// literal so list positions are preserved.
const nullLanguage = "null"

// primarySubtag extracts the language portion of a locale identifier,
// excluding region and script qualifiers: "en-GB" yields "en". It returns
// the empty string when the locale has no recognizable language subtag.
func primarySubtag(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	base, conf := tag.Base()
	if conf == language.No {
		return ""
	}
	return strings.ToLower(base.String())
}

// imageLanguages comma-joins the primary subtags of the given locales,
// preserving input order and duplicates. Unresolvable entries become the
// literal "null" token at their position.
func imageLanguages(locales []string) string {
	subtags := make([]string, len(locales))
	for i, locale := range locales {
		subtag := primarySubtag(locale)
		if subtag == "" {
			subtag = nullLanguage
		}
		subtags[i] = subtag
	}
	return strings.Join(subtags, ",")
}
