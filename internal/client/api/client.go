// Package api talks to the bookmarking backend. Client is the fixed set of
// operations the core consumes; HTTPClient implements it over the REST
// interface.
package api

import (
	"context"

	"github.com/storydeck/storydeck/internal/client/models"
)

// Client is the backend operation surface. Users returned by the auth
// calls carry their LoginToken; identity lookups return the profile with
// own stories and favorites already resolved by the server.
type Client interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
	CreateAccount(ctx context.Context, username, password, name string) (*models.User, error)
	UserByToken(ctx context.Context, token, username string) (*models.User, error)
	Stories(ctx context.Context) ([]models.Story, error)
	AddStory(ctx context.Context, token string, draft models.StoryDraft) (*models.Story, error)
	DeleteStory(ctx context.Context, token, storyID string) error
	ToggleFavorite(ctx context.Context, token, username, storyID string) (*models.User, error)
}
