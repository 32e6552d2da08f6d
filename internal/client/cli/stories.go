package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/storydeck/storydeck/internal/client/api"
	"github.com/storydeck/storydeck/internal/client/models"
	"github.com/storydeck/storydeck/internal/client/views"
)

// Compose shows the submission form, prompts for a story draft, and
// submits it. After a successful post the session and feed are re-synced
// and the user lands on their own stories.
func (a *App) Compose(ctx context.Context) error {
	a.show(views.SectionComposer)
	if !a.isLoggedIn() {
		return nil
	}

	author, err := getSimpleText(a.reader, "Author", a.out)
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	url, err := getSimpleText(a.reader, "URL", a.out)
	if err != nil {
		return err
	}

	draft := models.StoryDraft{Author: author, Title: title, URL: url}
	story, err := a.stories.Add(ctx, a.session, draft)
	if err != nil {
		if errors.Is(err, api.ErrValidation) {
			fmt.Fprintf(a.out, "Submission rejected: %s\n", err.Error())
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "Story submitted (id %s).\n", story.StoryID)

	a.sync(ctx)
	a.show(views.SectionAfter(views.MutationAddStory))
	return nil
}

// Delete prompts for a story id and removes it. After the removal the
// session and feed are re-synced so the story disappears from every
// derived view at once.
func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter story id to delete", a.out)
	if err != nil {
		return err
	}

	if err := a.stories.Delete(ctx, a.session.Token(), id); err != nil {
		switch {
		case errors.Is(err, api.ErrNotFound):
			fmt.Fprintln(a.out, "No story with that id.")
			return nil
		case errors.Is(err, api.ErrUnauthorized):
			fmt.Fprintln(a.out, "You can only delete your own stories.")
			return nil
		}
		return err
	}

	fmt.Fprintln(a.out, "Story deleted.")

	a.sync(ctx)
	a.show(views.SectionAfter(views.MutationDeleteStory))
	return nil
}

// Favorite prompts for a story id and toggles it in the signed-in user's
// favorite set. The server decides the toggle direction; the returned
// session carries the authoritative set.
func (a *App) Favorite(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter story id to favorite/unfavorite", a.out)
	if err != nil {
		return err
	}

	session, err := a.sessions.UpdateFavorites(ctx, a.session, id)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			fmt.Fprintln(a.out, "Please log in to favorite stories.")
			return nil
		case errors.Is(err, api.ErrNotFound):
			fmt.Fprintln(a.out, "No story with that id.")
			return nil
		}
		return err
	}

	a.session = session

	list, err := a.stories.Refresh(ctx)
	if err == nil {
		a.list = list
	}
	a.show(views.SectionAfter(views.MutationToggleFavorite))
	return nil
}

// Feed refreshes and shows the shared story list.
func (a *App) Feed(ctx context.Context) error {
	a.sync(ctx)
	a.show(views.SectionFeed)
	return nil
}

// Favorites shows the signed-in user's favorites.
func (a *App) Favorites(ctx context.Context) error {
	a.sync(ctx)
	a.show(views.SectionFavorites)
	return nil
}

// Mine shows the stories the signed-in user submitted.
func (a *App) Mine(ctx context.Context) error {
	a.sync(ctx)
	a.show(views.SectionMine)
	return nil
}

// Profile shows the signed-in user's account details.
func (a *App) Profile(ctx context.Context) error {
	a.show(views.SectionProfile)
	return nil
}
