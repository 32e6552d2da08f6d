package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/storydeck/storydeck/internal/client/api"
	"github.com/storydeck/storydeck/internal/client/models"
)

// StoryService synchronizes the shared feed and submits mutations.
//
// Refresh replaces the list wholesale in server order; there is no
// incremental merge. After Add or Delete the caller is expected to
// Refresh (and re-resolve the session) so the derived own-stories and
// favorites views cannot drift from server truth.
type StoryService interface {
	Refresh(ctx context.Context) (models.StoryList, error)
	Add(ctx context.Context, session models.Session, draft models.StoryDraft) (*models.Story, error)
	Delete(ctx context.Context, token, storyID string) error
}

type storyService struct {
	client api.Client
	log    zerolog.Logger
}

func NewStoryService(client api.Client, log zerolog.Logger) StoryService {
	return &storyService{
		client: client,
		log:    log.With().Str("component", "stories").Logger(),
	}
}

func (s *storyService) Refresh(ctx context.Context) (models.StoryList, error) {
	stories, err := s.client.Stories(ctx)
	if err != nil {
		return models.StoryList{}, fmt.Errorf("fetching stories: %w", err)
	}

	list := models.NewStoryList(stories)
	if dropped := len(stories) - len(list.Stories); dropped > 0 {
		s.log.Warn().Int("dropped", dropped).Msg("feed contained duplicate story ids")
	}
	return list, nil
}

func (s *storyService) Add(ctx context.Context, session models.Session, draft models.StoryDraft) (*models.Story, error) {
	if !session.IsAuthenticated() {
		return nil, fmt.Errorf("%w: submitting stories requires a signed-in user", api.ErrUnauthorized)
	}
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", api.ErrValidation, draftMessage(err))
	}

	story, err := s.client.AddStory(ctx, session.Token(), draft)
	if err != nil {
		return nil, fmt.Errorf("adding story: %w", err)
	}
	return story, nil
}

func (s *storyService) Delete(ctx context.Context, token, storyID string) error {
	if token == "" {
		return fmt.Errorf("%w: deleting stories requires a signed-in user", api.ErrUnauthorized)
	}
	if err := s.client.DeleteStory(ctx, token, storyID); err != nil {
		return fmt.Errorf("deleting story %s: %w", storyID, err)
	}
	return nil
}

// draftMessage strips the models.ErrInvalidDraft prefix so the message is
// not double-labelled once wrapped with api.ErrValidation.
func draftMessage(err error) string {
	return strings.TrimPrefix(err.Error(), models.ErrInvalidDraft.Error()+": ")
}
