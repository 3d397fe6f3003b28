// Package sixcities is the REST boundary of the client: wire types for
// offers, reviews and users, local input validation, and an HTTP client.
//
// # Client
//
// Client exposes three primitives, Get, Post and Delete. Each returns the
// response status code alongside an error:
//
//   - 2xx: the JSON body is decoded into dest (when dest is non-nil)
//   - a status listed in expect: returned as-is with a nil error, body ignored
//   - any other status: *StatusError
//   - transport failure: wrapped error, status 0
//
// The expect list lets callers treat specific codes as ordinary outcomes.
// Fetching a missing offer, for instance, passes http.StatusNotFound and
// branches on the returned code instead of inspecting an error.
//
// Every request carries:
//
//   - Accept: application/json
//   - User-Agent: sixcities/<version>
//   - X-Trace-ID: a fresh UUID, also written to the debug log
//   - X-Token: the current token from the TokenSource, when non-empty
//
// The token is read per request, so saving or dropping it takes effect on
// the next call without rebuilding the client.
//
// # Routes
//
//	POST   /login                  credentials -> 201 + User
//	GET    /login                  validate token -> User
//	DELETE /logout
//	GET    /hotels                 []Offer
//	GET    /hotels/{id}            FullOffer or 404
//	GET    /hotels/{id}/nearby     []Offer
//	GET    /comments/{id}          []Review
//	POST   /comments/{id}          ReviewForm -> 201
//	GET    /favorite               []Offer
//	POST   /favorite/{id}/{0|1}    200/201
//
// # Validation
//
// AuthData and ReviewForm carry validator tags. Their Validate methods
// return errors wrapping ErrInvalidInput so callers can tell local rejection
// apart from server responses.
package sixcities
