// Package state holds the client state tree and the only way to change it.
//
// # Overview
//
// State is split into independent slices (city, listing, offers, offer,
// user, comments, favorites). Each slice has its own reducer, a pure
// function from (slice, Action) to the next slice. Reduce composes them into
// the root reducer. A slice reducer ignores every action it does not own,
// so clearing one list never touches another.
//
// # Actions
//
// Action is a closed set: an interface with an unexported method, one struct
// per state change. Reducers type-switch over the concrete types.
//
//	offers/loading   SetOffersLoadingStatus{Pending}
//	offers/set       SetOffers{Offers: ...}
//	offers/loading   SetOffersLoadingStatus{Success}
//
// Cross-slice effects never happen inside a reducer. They are sequences of
// dispatches issued by the operations package.
//
// # Store
//
// Store owns one State for the lifetime of the process (or test). There is
// no package-level instance; construct one with NewStore and pass it along.
//
//   - Dispatch(): reduces under a write lock; whole dispatches are
//     serialized, listeners included
//   - State(): returns a deep copy under a read lock
//   - Subscribe(): registers a Listener called after each dispatch
//
// # Loading Status
//
// Offers, offer, comments and favorites carry a LoadingStatus. The UI shows
// a spinner while Pending, content on Success, and an empty-state message
// when a settled fetch produced nothing.
//
// # Memoization Key
//
// OffersState.Revision increases on every SetOffers. listing.Memo uses it to
// tell a new offers list from an unchanged one without comparing slices.
package state
