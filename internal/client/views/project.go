// Package views decides what the presentation layer should show: which
// section is active after an event, and the per-story view models each
// section renders. Everything here is a pure function over sessions and
// story lists; no store, network, or terminal is touched.
package views

import (
	"strings"

	"github.com/storydeck/storydeck/internal/client/models"
)

// Flags is the per-render context of a single story.
type Flags struct {
	// Authenticated controls the favorite affordance: anonymous readers
	// cannot favorite, so the icon is hidden entirely.
	Authenticated bool
	Favorite      bool
	Own           bool
}

// StoryViewModel is the render-ready form of a story. The icon fields are
// display affordances only, not security gates; the services enforce
// authorization on every mutation.
type StoryViewModel struct {
	StoryID  string
	Title    string
	URL      string
	HostName string
	Author   string
	Username string

	ShowFavoriteIcon bool
	ShowDeleteIcon   bool
	FavoriteActive   bool
}

// Project maps a story plus its context flags into a view model.
func Project(story models.Story, f Flags) StoryViewModel {
	return StoryViewModel{
		StoryID:          story.StoryID,
		Title:            story.Title,
		URL:              story.URL,
		HostName:         HostName(story.URL),
		Author:           story.Author,
		Username:         story.Username,
		ShowFavoriteIcon: f.Authenticated,
		ShowDeleteIcon:   f.Own,
		FavoriteActive:   f.Favorite,
	}
}

// HostName returns the authority component of a story URL with any leading
// "www." stripped. URLs without a scheme are treated as starting at the
// authority, so "example.com/a" yields "example.com".
func HostName(rawURL string) string {
	var host string
	if strings.Contains(rawURL, "://") {
		parts := strings.Split(rawURL, "/")
		if len(parts) > 2 {
			host = parts[2]
		}
	} else {
		host = strings.Split(rawURL, "/")[0]
	}
	return strings.TrimPrefix(host, "www.")
}
