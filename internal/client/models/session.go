package models

// Session is the client's authentication state: anonymous, or authenticated
// with a user profile. Sessions are immutable values; every state change
// produces a new Session, so no operation can ever expose a partially
// updated user.
type Session struct {
	user *User
}

// AnonymousSession returns the unauthenticated session.
func AnonymousSession() Session {
	return Session{}
}

// AuthenticatedSession wraps a user profile in a session. The user is
// copied, so later mutations of the argument do not leak in.
func AuthenticatedSession(u User) Session {
	return Session{user: &u}
}

// IsAuthenticated reports whether a user is signed in.
func (s Session) IsAuthenticated() bool {
	return s.user != nil
}

// User returns the signed-in user and true, or a zero User and false for
// the anonymous session.
func (s Session) User() (User, bool) {
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// Token returns the login token, or "" for the anonymous session.
func (s Session) Token() string {
	if s.user == nil {
		return ""
	}
	return s.user.LoginToken
}

// Username returns the signed-in username, or "" for the anonymous session.
func (s Session) Username() string {
	if s.user == nil {
		return ""
	}
	return s.user.Username
}
