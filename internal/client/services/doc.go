// Package services is the typed endpoint catalog of the newsdesk client.
//
// NewsService wraps the content endpoints, AuthService the identity
// endpoints and their session side effects, FavoritesService the hosted
// favorites database. Every network operation returns a client.Result and
// never a Go error; callers branch on Result.Success.
//
// Listing endpoints share one query rule: language_id, offset and limit are
// always sent, starting from per-endpoint defaults; optional filters are
// appended only when set.
package services
