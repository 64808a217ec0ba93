package github_test

import (
	"testing"

	"github.com/epdisplay/release/pkg/infra/github"
	"github.com/m-mizutani/gt"
)

func TestParseRepo(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		owner string
		repo  string
	}{
		{
			name:  "HTTPS with .git",
			url:   "https://github.com/epdisplay/epaper-display.git",
			owner: "epdisplay",
			repo:  "epaper-display",
		},
		{
			name:  "HTTPS without .git",
			url:   "https://github.com/epdisplay/epaper-display",
			owner: "epdisplay",
			repo:  "epaper-display",
		},
		{
			name:  "SSH scp form",
			url:   "git@github.com:epdisplay/epaper-display.git",
			owner: "epdisplay",
			repo:  "epaper-display",
		},
		{
			name:  "SSH URL form",
			url:   "ssh://git@github.com/epdisplay/epaper-display.git",
			owner: "epdisplay",
			repo:  "epaper-display",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := github.ParseRepo(tt.url)
			gt.NoError(t, err)
			gt.Value(t, owner).Equal(tt.owner)
			gt.Value(t, repo).Equal(tt.repo)
		})
	}
}

func TestParseRepo_Invalid(t *testing.T) {
	for _, url := range []string{"", "github.com/", "https://github.com/malformed"} {
		_, _, err := github.ParseRepo(url)
		gt.Error(t, err)
	}
}
