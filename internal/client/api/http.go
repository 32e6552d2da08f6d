package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/storydeck/storydeck/internal/client/models"
)

// HTTPClient implements Client over the backend's JSON REST interface.
//
// Endpoints:
//
//	POST   /login                                  credentials -> token + user
//	POST   /signup                                 credentials -> token + user
//	GET    /users/{username}                       profile (auth)
//	GET    /stories                                full feed
//	POST   /stories                                draft -> story (auth)
//	DELETE /stories/{storyId}                      (auth)
//	POST   /users/{username}/favorites/{storyId}   toggle, returns user (auth)
//
// Authenticated calls send the token as a Bearer header. Every request
// carries an X-Request-Id for correlation with backend logs.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewHTTPClient returns a client for the backend at baseURL. A zero
// timeout means no client-side limit; context deadlines still apply.
func NewHTTPClient(baseURL string, timeout time.Duration, log zerolog.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log.With().Str("component", "api").Logger(),
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type signupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type userResponse struct {
	User models.User `json:"user"`
}

type storiesResponse struct {
	Stories []models.Story `json:"stories"`
}

type storyResponse struct {
	Story models.Story `json:"story"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.User, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/login", "", loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	user := resp.User
	user.LoginToken = resp.Token
	return &user, nil
}

func (c *HTTPClient) CreateAccount(ctx context.Context, username, password, name string) (*models.User, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/signup", "", signupRequest{Username: username, Password: password, Name: name}, &resp)
	if err != nil {
		return nil, err
	}
	user := resp.User
	user.LoginToken = resp.Token
	return &user, nil
}

func (c *HTTPClient) UserByToken(ctx context.Context, token, username string) (*models.User, error) {
	var resp userResponse
	err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(username), token, nil, &resp)
	if err != nil {
		return nil, err
	}
	user := resp.User
	user.LoginToken = token
	return &user, nil
}

func (c *HTTPClient) Stories(ctx context.Context) ([]models.Story, error) {
	var resp storiesResponse
	if err := c.do(ctx, http.MethodGet, "/stories", "", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Stories, nil
}

func (c *HTTPClient) AddStory(ctx context.Context, token string, draft models.StoryDraft) (*models.Story, error) {
	var resp storyResponse
	if err := c.do(ctx, http.MethodPost, "/stories", token, draft, &resp); err != nil {
		return nil, err
	}
	return &resp.Story, nil
}

func (c *HTTPClient) DeleteStory(ctx context.Context, token, storyID string) error {
	return c.do(ctx, http.MethodDelete, "/stories/"+url.PathEscape(storyID), token, nil, nil)
}

func (c *HTTPClient) ToggleFavorite(ctx context.Context, token, username, storyID string) (*models.User, error) {
	var resp userResponse
	path := "/users/" + url.PathEscape(username) + "/favorites/" + url.PathEscape(storyID)
	if err := c.do(ctx, http.MethodPost, path, token, nil, &resp); err != nil {
		return nil, err
	}
	user := resp.User
	user.LoginToken = token
	return &user, nil
}

// do issues one JSON round-trip and maps the response status onto the
// error taxonomy. A nil out skips body decoding.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Str("request_id", requestID).Msg("request failed")
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Msg("request")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
		}
		return nil
	}

	return statusError(resp)
}

// statusError converts a non-2xx response into a taxonomy error, keeping
// the server's message when one was provided.
func statusError(resp *http.Response) error {
	var sentinel error
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		sentinel = ErrUnauthorized
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusConflict:
		sentinel = ErrConflict
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		sentinel = ErrValidation
	default:
		sentinel = ErrUnavailable
	}

	var er errorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&er); err == nil && er.Error != "" {
		return fmt.Errorf("%w: %s", sentinel, er.Error)
	}
	return fmt.Errorf("%w: status %d", sentinel, resp.StatusCode)
}
