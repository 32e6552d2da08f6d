// Package models defines the value types of the client: stories, users,
// sessions, and story drafts.
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Story is a single submitted link as returned by the backend.
//
// A story is a value snapshot: whether it belongs to a user's own stories
// or favorites is resolved by the services from the username and the
// favorite-id set, never stored on the story itself. StoryID is assigned
// by the server and immutable.
type Story struct {
	StoryID   string    `json:"storyId"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Author    string    `json:"author"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// StoryList is the canonical in-memory copy of the shared feed, in server
// order, newest first. The client never reorders it.
type StoryList struct {
	Stories []Story
}

// NewStoryList builds a StoryList from a server response, preserving order
// and dropping any story whose id was already seen.
func NewStoryList(stories []Story) StoryList {
	seen := make(map[string]struct{}, len(stories))
	result := make([]Story, 0, len(stories))
	for _, s := range stories {
		if _, ok := seen[s.StoryID]; ok {
			continue
		}
		seen[s.StoryID] = struct{}{}
		result = append(result, s)
	}
	return StoryList{Stories: result}
}

// Contains reports whether a story with the given id is in the list.
func (l StoryList) Contains(storyID string) bool {
	for _, s := range l.Stories {
		if s.StoryID == storyID {
			return true
		}
	}
	return false
}

// StoryDraft is a user-submitted story before the server assigns an id.
type StoryDraft struct {
	Author string `json:"author" validate:"required"`
	Title  string `json:"title" validate:"required"`
	URL    string `json:"url" validate:"required,url"`
}

var draftValidator = validator.New()

var ErrInvalidDraft = errors.New("invalid story draft")

// Validate checks the draft before it is sent to the backend. The returned
// error wraps ErrInvalidDraft and lists every failed field in a readable
// form.
func (d StoryDraft) Validate() error {
	err := draftValidator.Struct(d)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %v", ErrInvalidDraft, err)
	}

	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldError(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidDraft, strings.Join(msgs, "; "))
}

func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "url":
		return field + " must be a valid url"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
