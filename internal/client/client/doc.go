// Package client performs round-trips against the news API and normalizes
// every outcome into a Result.
//
// # Overview
//
//  1. Request describes one call: method, base-relative path, an ordered
//     Query and an optional JSON body.
//  2. HTTPExecutor sends it with JSON content negotiation, a Bearer token
//     taken from a TokenSource at call time, no cookies, and one attempt
//     only (no retries, no backoff).
//  3. The response body is parsed as JSON when the declared content type
//     says so, otherwise kept as opaque text. A call fails when the HTTP
//     status is not 2xx or when the JSON envelope carries a truthy "error"
//     field, since the API reports some failures as HTTP 200.
//
// # Error Handling
//
// Execute never returns a Go error. Transport failures, remote-declared
// failures and invalid requests all come back as Result{Success: false}
// with a human-readable Error string. Result.Kind tells them apart and
// Result.Err maps them to the sentinel errors ErrUnavailable,
// ErrUnauthorized, ErrRemote and ErrInvalidRequest for errors.Is.
//
// # Concurrency
//
// HTTPExecutor is safe for concurrent use. Calls are independent; nothing
// orders or serializes them.
package client
