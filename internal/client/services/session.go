// Package services contains the application services of the client:
// session resolution and story-feed synchronization. Both hold no session
// state themselves; sessions and story lists are values passed in and
// returned, so the caller owns exactly one copy of the application state.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/storydeck/storydeck/internal/client/api"
	"github.com/storydeck/storydeck/internal/client/models"
	"github.com/storydeck/storydeck/internal/client/repositories/credentials"
	"github.com/storydeck/storydeck/internal/dbx"
)

// SessionService reconciles persisted credentials with backend identity.
//
// Contract:
//   - ResolveFromStore: never fails; any rejected or unreachable identity
//     lookup yields the anonymous session.
//   - Login / CreateAccount: on success persist credentials and return an
//     authenticated session; on failure return an error and no session, so
//     the caller keeps whatever session it already had.
//   - Logout: clears stored credentials unconditionally, idempotent, no
//     backend call.
//   - UpdateFavorites: toggles a story in the signed-in user's favorites;
//     the returned session reflects the server's authoritative set.
type SessionService interface {
	ResolveFromStore(ctx context.Context) models.Session
	Login(ctx context.Context, username, password string) (models.Session, error)
	CreateAccount(ctx context.Context, username, password, name string) (models.Session, error)
	Logout(ctx context.Context) error
	UpdateFavorites(ctx context.Context, session models.Session, storyID string) (models.Session, error)
}

type sessionService struct {
	client api.Client
	db     *sql.DB
	log    zerolog.Logger
}

// NewSessionService constructs a SessionService bound to the given API
// client and local credential database.
func NewSessionService(client api.Client, db *sql.DB, log zerolog.Logger) SessionService {
	return &sessionService{
		client: client,
		db:     db,
		log:    log.With().Str("component", "session").Logger(),
	}
}

func (s *sessionService) credentialsRepo() credentials.Repository {
	return credentials.NewSQLiteRepository(s.db)
}

func (s *sessionService) ResolveFromStore(ctx context.Context) models.Session {
	repo := s.credentialsRepo()

	token, err := repo.Get(ctx, credentials.KeyToken)
	if err != nil || token == "" {
		return models.AnonymousSession()
	}
	username, err := repo.Get(ctx, credentials.KeyUsername)
	if err != nil || username == "" {
		return models.AnonymousSession()
	}

	user, err := s.client.UserByToken(ctx, token, username)
	if err != nil {
		// Stored values stay in place for diagnostics but are not trusted
		// again this session.
		s.log.Debug().Err(err).Str("username", username).Msg("stored credentials rejected, continuing anonymous")
		return models.AnonymousSession()
	}

	return models.AuthenticatedSession(*user)
}

func (s *sessionService) Login(ctx context.Context, username, password string) (models.Session, error) {
	if username == "" || password == "" {
		return models.Session{}, fmt.Errorf("%w: username and password are required", api.ErrValidation)
	}

	user, err := s.client.Login(ctx, username, password)
	if err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}

	if err := s.saveCredentials(ctx, user.LoginToken, user.Username); err != nil {
		return models.Session{}, fmt.Errorf("persisting credentials: %w", err)
	}
	return models.AuthenticatedSession(*user), nil
}

func (s *sessionService) CreateAccount(ctx context.Context, username, password, name string) (models.Session, error) {
	if username == "" || password == "" {
		return models.Session{}, fmt.Errorf("%w: username and password are required", api.ErrValidation)
	}

	user, err := s.client.CreateAccount(ctx, username, password, name)
	if err != nil {
		return models.Session{}, fmt.Errorf("create account: %w", err)
	}

	if err := s.saveCredentials(ctx, user.LoginToken, user.Username); err != nil {
		return models.Session{}, fmt.Errorf("persisting credentials: %w", err)
	}
	return models.AuthenticatedSession(*user), nil
}

// saveCredentials writes token and username in a single transaction so a
// later ResolveFromStore never sees one without the other.
func (s *sessionService) saveCredentials(ctx context.Context, token, username string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := credentials.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, credentials.KeyToken, token); err != nil {
			return err
		}
		return repo.Set(ctx, credentials.KeyUsername, username)
	})
}

func (s *sessionService) Logout(ctx context.Context) error {
	return s.credentialsRepo().Clear(ctx)
}

func (s *sessionService) UpdateFavorites(ctx context.Context, session models.Session, storyID string) (models.Session, error) {
	user, ok := session.User()
	if !ok {
		return models.Session{}, fmt.Errorf("%w: favorites require a signed-in user", api.ErrUnauthorized)
	}

	updated, err := s.client.ToggleFavorite(ctx, user.LoginToken, user.Username, storyID)
	if err != nil {
		return models.Session{}, fmt.Errorf("toggle favorite: %w", err)
	}
	return models.AuthenticatedSession(*updated), nil
}
