package tmdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimarySubtag(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"en", "en"},
		{"en-GB", "en"},
		{"en_US", "en"},
		{"fr", "fr"},
		{"pt-BR", "pt"},
		{"de-DE", "de"},
		{"", ""},
		{"123", ""},
		{"!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, primarySubtag(tt.locale))
		})
	}
}

func TestImageLanguages(t *testing.T) {
	tests := []struct {
		name    string
		locales []string
		want    string
	}{
		{
			name:    "region qualifiers stripped",
			locales: []string{"en-GB", "fr"},
			want:    "en,fr",
		},
		{
			name:    "unresolvable locale renders as null in place",
			locales: []string{"en", "123", "de-AT"},
			want:    "en,null,de",
		},
		{
			name:    "duplicates preserved in order",
			locales: []string{"fr", "fr", "en-US"},
			want:    "fr,fr,en",
		},
		{
			name:    "empty entry renders as null",
			locales: []string{""},
			want:    "null",
		},
		{
			name: "no locales",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, imageLanguages(tt.locales))
		})
	}
}
