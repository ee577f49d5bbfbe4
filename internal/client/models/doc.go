// Package models defines the data exchanged with the news API and persisted
// by the client: the authenticated user, the session snapshot, stories and
// their taxonomy, featured sections and favorites.
package models
