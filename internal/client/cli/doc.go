// Package cli is the terminal presentation layer of Keto365.
//
// It wires configuration, local storage, the identity provider and the
// session controller, then runs a small REPL that renders one screen per
// session state:
//
//   - loading and signing-in progress lines
//   - the login screen with the last error, if any
//   - the welcome screen after a login, with an optional advisory
//   - the home screen with the recipe of the day
//
// NewRootCommand exposes the interactive client plus the one-shot "today",
// "status" and "version" commands.
package cli
