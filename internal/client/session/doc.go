// Package session owns the persisted authentication state of the client and
// the session-changed broadcast.
//
// # Store
//
// Store keeps three keys in a metadata.Repository:
//
//	token         bearer token of the active session
//	user          full JSON user record
//	login_marker  denormalized {id,name,email,isLoggedIn} record
//
// Identity changes go through SetSession and ClearSession, which write or
// remove all three keys in one atomic repository call, so readers see either
// the old session or the new one. Reads fail closed: a storage error or a
// malformed record reads as "absent" and is logged, never returned.
//
// # Notifier
//
// Notifier is a zero-payload broadcast. Subscribers re-read the Store when
// notified; delivery order across subscribers is unspecified.
package session
