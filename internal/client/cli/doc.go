// Package cli is the terminal front end of the storydeck client. It binds
// REPL commands to the session and story services, holds the single copy
// of the application state (current session + story list), and renders the
// view state the dispatcher selects. All state-transition logic lives in
// the services and views packages; this package is presentation glue.
package cli
