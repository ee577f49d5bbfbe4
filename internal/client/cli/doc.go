// Package cli provides the interactive newsdesk command-line client.
//
// It wires configuration, the session store, the API executor and the
// services into a REPL. A background watcher probes the API and flips the
// prompt between online and offline; the prompt also shows the signed-in
// user, refreshed whenever the session changes.
//
// Commands cover the account (signup, signin, signout, whoami, profile),
// reading (news, tag, search, headlines, breaking, categories, tags,
// featured, view), reactions (like, bookmark, bookmarks) and the optional
// hosted favorites list (fav).
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
