package models

import "time"

// User is an account profile as returned by the backend identity calls.
// OwnStories and Favorites are derived views refreshed by the server on
// every lookup; the client never maintains them independently.
type User struct {
	Username   string    `json:"username"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"createdAt"`
	OwnStories []Story   `json:"stories"`
	Favorites  []Story   `json:"favorites"`

	// LoginToken is the opaque credential attached from the auth response.
	// Required for every mutating call, never serialized back to the server.
	LoginToken string `json:"-"`
}

// FavoriteIDs returns the set of story ids the user has favorited.
func (u User) FavoriteIDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(u.Favorites))
	for _, s := range u.Favorites {
		ids[s.StoryID] = struct{}{}
	}
	return ids
}

// IsFavorite reports whether the story id is in the user's favorite set.
func (u User) IsFavorite(storyID string) bool {
	for _, s := range u.Favorites {
		if s.StoryID == storyID {
			return true
		}
	}
	return false
}

// Owns reports whether the story was submitted by this user. Ownership is
// determined by username match, not by the free-text author field.
func (u User) Owns(s Story) bool {
	return s.Username == u.Username
}
