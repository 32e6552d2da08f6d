package views

import (
	"time"

	"github.com/storydeck/storydeck/internal/client/models"
)

// Section identifies a view section the presentation layer can show.
type Section string

const (
	SectionFeed      Section = "feed"
	SectionFavorites Section = "favorites"
	SectionMine      Section = "mine"
	SectionProfile   Section = "profile"
	SectionComposer  Section = "composer"
)

// Mutation identifies a completed state change for post-mutation dispatch.
type Mutation string

const (
	MutationAddStory       Mutation = "add"
	MutationDeleteStory    Mutation = "delete"
	MutationToggleFavorite Mutation = "favorite"
)

// Profile carries the account fields the profile section displays.
type Profile struct {
	Name      string
	Username  string
	CreatedAt time.Time
}

// ViewState is the dispatch result: the section to show, the stories it
// renders, and whether the requested section was denied to an anonymous
// visitor (in which case ActiveSection is the feed fallback).
type ViewState struct {
	ActiveSection Section
	Denied        bool
	Stories       []StoryViewModel
	Profile       *Profile
}

// SectionAfter returns the section made active once a mutation completes:
// additions and deletions land on the user's own stories, favorite toggles
// on the favorites list. One rule, applied uniformly.
func SectionAfter(m Mutation) Section {
	if m == MutationToggleFavorite {
		return SectionFavorites
	}
	return SectionMine
}

// Dispatch selects the active section and its projected stories for the
// given session and feed. Requesting an authenticated-only section while
// anonymous never fails; it falls back to the feed with Denied set so the
// boundary layer can offer a login prompt.
func Dispatch(session models.Session, list models.StoryList, section Section) ViewState {
	user, authed := session.User()

	switch section {
	case SectionFavorites, SectionMine, SectionProfile, SectionComposer:
		if !authed {
			return ViewState{
				ActiveSection: SectionFeed,
				Denied:        true,
				Stories:       projectFeed(list, models.User{}, false),
			}
		}
	}

	switch section {
	case SectionFavorites:
		stories := make([]StoryViewModel, 0, len(user.Favorites))
		for _, s := range user.Favorites {
			stories = append(stories, Project(s, Flags{Authenticated: true, Favorite: true, Own: user.Owns(s)}))
		}
		return ViewState{ActiveSection: SectionFavorites, Stories: stories}

	case SectionMine:
		stories := make([]StoryViewModel, 0, len(user.OwnStories))
		for _, s := range user.OwnStories {
			stories = append(stories, Project(s, Flags{Authenticated: true, Favorite: user.IsFavorite(s.StoryID), Own: true}))
		}
		return ViewState{ActiveSection: SectionMine, Stories: stories}

	case SectionProfile:
		return ViewState{
			ActiveSection: SectionProfile,
			Profile:       &Profile{Name: user.Name, Username: user.Username, CreatedAt: user.CreatedAt},
		}

	case SectionComposer:
		// the composer carries no stories; the boundary layer shows an
		// empty submission form
		return ViewState{ActiveSection: SectionComposer}

	default:
		return ViewState{ActiveSection: SectionFeed, Stories: projectFeed(list, user, authed)}
	}
}

// projectFeed projects the whole shared feed, flagging favorites and
// ownership against the viewing user. For anonymous viewers both flags are
// always false.
func projectFeed(list models.StoryList, user models.User, authed bool) []StoryViewModel {
	favorites := map[string]struct{}{}
	if authed {
		favorites = user.FavoriteIDs()
	}

	stories := make([]StoryViewModel, 0, len(list.Stories))
	for _, s := range list.Stories {
		_, fav := favorites[s.StoryID]
		stories = append(stories, Project(s, Flags{
			Authenticated: authed,
			Favorite:      fav,
			Own:           authed && user.Owns(s),
		}))
	}
	return stories
}
