// Package credentials persists the login token and username between runs.
// It is a plain key-value store; validation of what is stored happens in
// the session service.
package credentials

import "context"

// Keys used by the client.
const (
	KeyToken    = "token"
	KeyUsername = "username"
)

// Repository is the persistent key-value contract. Get returns "" for an
// absent key; Clear removes every stored entry and is idempotent.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Clear(ctx context.Context) error
}
