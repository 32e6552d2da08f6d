package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storydeck/storydeck/internal/client/models"
)

func feedFixture() models.StoryList {
	return models.NewStoryList([]models.Story{
		{StoryID: "3", Title: "newest", URL: "https://c.example.com", Username: "bob"},
		{StoryID: "2", Title: "middle", URL: "https://b.example.com", Username: "ada"},
		{StoryID: "1", Title: "oldest", URL: "https://a.example.com", Username: "bob"},
	})
}

func adaSession() models.Session {
	return models.AuthenticatedSession(models.User{
		Username:  "ada",
		Name:      "Ada Lovelace",
		CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		OwnStories: []models.Story{
			{StoryID: "2", Title: "middle", URL: "https://b.example.com", Username: "ada"},
		},
		Favorites: []models.Story{
			{StoryID: "1", Title: "oldest", URL: "https://a.example.com", Username: "bob"},
		},
		LoginToken: "tok-1",
	})
}

func TestDispatch_FeedAnonymous(t *testing.T) {
	state := Dispatch(models.AnonymousSession(), feedFixture(), SectionFeed)

	assert.Equal(t, SectionFeed, state.ActiveSection)
	assert.False(t, state.Denied)
	require.Len(t, state.Stories, 3)
	for _, vm := range state.Stories {
		assert.False(t, vm.ShowFavoriteIcon)
		assert.False(t, vm.ShowDeleteIcon)
		assert.False(t, vm.FavoriteActive)
	}
	// server order preserved
	assert.Equal(t, "3", state.Stories[0].StoryID)
	assert.Equal(t, "1", state.Stories[2].StoryID)
}

func TestDispatch_FeedAuthenticatedFlags(t *testing.T) {
	state := Dispatch(adaSession(), feedFixture(), SectionFeed)

	require.Len(t, state.Stories, 3)

	byID := map[string]StoryViewModel{}
	for _, vm := range state.Stories {
		byID[vm.StoryID] = vm
	}

	assert.True(t, byID["1"].FavoriteActive, "favorited story flagged")
	assert.False(t, byID["1"].ShowDeleteIcon, "not own story")
	assert.True(t, byID["2"].ShowDeleteIcon, "own story gets trash affordance")
	assert.False(t, byID["2"].FavoriteActive)
	assert.True(t, byID["3"].ShowFavoriteIcon, "authenticated viewers always see the star")
}

func TestDispatch_AnonymousDeniedSections(t *testing.T) {
	for _, section := range []Section{SectionFavorites, SectionMine, SectionProfile, SectionComposer} {
		state := Dispatch(models.AnonymousSession(), feedFixture(), section)

		assert.Equal(t, SectionFeed, state.ActiveSection, "section %s", section)
		assert.True(t, state.Denied, "section %s", section)
		assert.Len(t, state.Stories, 3, "fallback still renders the feed")
	}
}

func TestDispatch_Favorites(t *testing.T) {
	state := Dispatch(adaSession(), feedFixture(), SectionFavorites)

	assert.Equal(t, SectionFavorites, state.ActiveSection)
	require.Len(t, state.Stories, 1)
	assert.Equal(t, "1", state.Stories[0].StoryID)
	assert.True(t, state.Stories[0].FavoriteActive, "favorites section is always starred")
	assert.False(t, state.Stories[0].ShowDeleteIcon, "bob's story is not deletable by ada")
}

func TestDispatch_Mine(t *testing.T) {
	state := Dispatch(adaSession(), feedFixture(), SectionMine)

	assert.Equal(t, SectionMine, state.ActiveSection)
	require.Len(t, state.Stories, 1)
	assert.Equal(t, "2", state.Stories[0].StoryID)
	assert.True(t, state.Stories[0].ShowDeleteIcon, "own section is always deletable")
	assert.False(t, state.Stories[0].FavoriteActive)
}

func TestDispatch_ProfileAndComposer(t *testing.T) {
	profile := Dispatch(adaSession(), feedFixture(), SectionProfile)
	require.NotNil(t, profile.Profile)
	assert.Equal(t, "Ada Lovelace", profile.Profile.Name)
	assert.Equal(t, "ada", profile.Profile.Username)
	assert.Empty(t, profile.Stories)

	composer := Dispatch(adaSession(), feedFixture(), SectionComposer)
	assert.Equal(t, SectionComposer, composer.ActiveSection)
	assert.Empty(t, composer.Stories)
	assert.Nil(t, composer.Profile)
}

func TestDispatch_UnknownSectionFallsBackToFeed(t *testing.T) {
	state := Dispatch(adaSession(), feedFixture(), Section("bogus"))

	assert.Equal(t, SectionFeed, state.ActiveSection)
	assert.False(t, state.Denied)
}

func TestSectionAfter(t *testing.T) {
	assert.Equal(t, SectionMine, SectionAfter(MutationAddStory))
	assert.Equal(t, SectionMine, SectionAfter(MutationDeleteStory))
	assert.Equal(t, SectionFavorites, SectionAfter(MutationToggleFavorite))
}
